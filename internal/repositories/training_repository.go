package repositories

import (
	"context"
	"fmt"
	"time"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// TrainingRepository defines the interface for training persistence.
type TrainingRepository interface {
	FindAll(ctx context.Context) ([]models.Training, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Training, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]models.Training, error)
	FindByTrainerID(ctx context.Context, trainerID uuid.UUID) ([]models.Training, error)
	FindUpcomingDetails(ctx context.Context, after time.Time) ([]models.TrainingDetails, error)
	FindDetailsByID(ctx context.Context, id uuid.UUID) (*models.TrainingDetails, error)
	Create(ctx context.Context, training *models.Training) error
	Update(ctx context.Context, training *models.Training) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type trainingRepository struct {
	db SQLExecutor
}

// NewTrainingRepository creates a new instance of TrainingRepository.
func NewTrainingRepository(db SQLExecutor) TrainingRepository {
	return &trainingRepository{db: db}
}

// Free places count every sign-up that has not been cancelled.
const trainingDetailsQuery = `SELECT t.id, t.date, r.id, r.name, r.capacity, tr.id, u.first_name || ' ' || u.last_name,
	    r.capacity - (SELECT COUNT(*) FROM attendances a WHERE a.training_id = t.id AND a.status <> 'cancelled')
	FROM trainings t
	JOIN training_rooms r ON r.id = t.room_id
	JOIN trainers tr ON tr.id = t.trainer_id
	JOIN users u ON u.id = tr.user_id`

func scanTraining(row scanner) (*models.Training, error) {
	training := &models.Training{}
	if err := row.Scan(&training.ID, &training.RoomID, &training.TrainerID, &training.Date); err != nil {
		return nil, err
	}
	return training, nil
}

func scanTrainingDetails(row scanner) (*models.TrainingDetails, error) {
	d := &models.TrainingDetails{}
	err := row.Scan(&d.ID, &d.Date, &d.RoomID, &d.RoomName, &d.Capacity, &d.TrainerID, &d.TrainerName, &d.FreePlaces)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *trainingRepository) queryTrainings(ctx context.Context, op, query string, args ...interface{}) ([]models.Training, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDatabaseError, op, err)
	}
	defer rows.Close()

	trainings := []models.Training{}
	for rows.Next() {
		training, err := scanTraining(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning training: %v", ErrDatabaseError, err)
		}
		trainings = append(trainings, *training)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating training rows: %v", ErrDatabaseError, err)
	}
	return trainings, nil
}

func (r *trainingRepository) FindAll(ctx context.Context) ([]models.Training, error) {
	return r.queryTrainings(ctx, "querying trainings",
		`SELECT id, room_id, trainer_id, date FROM trainings ORDER BY date`)
}

func (r *trainingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Training, error) {
	training, err := scanTraining(r.db.QueryRowContext(ctx,
		`SELECT id, room_id, trainer_id, date FROM trainings WHERE id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, "getting training by ID "+id.String())
	}
	return training, nil
}

func (r *trainingRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]models.Training, error) {
	return r.queryTrainings(ctx, "querying trainings by room",
		`SELECT id, room_id, trainer_id, date FROM trainings WHERE room_id = $1 ORDER BY date`, roomID)
}

func (r *trainingRepository) FindByTrainerID(ctx context.Context, trainerID uuid.UUID) ([]models.Training, error) {
	return r.queryTrainings(ctx, "querying trainings by trainer",
		`SELECT id, room_id, trainer_id, date FROM trainings WHERE trainer_id = $1 ORDER BY date`, trainerID)
}

func (r *trainingRepository) FindUpcomingDetails(ctx context.Context, after time.Time) ([]models.TrainingDetails, error) {
	rows, err := r.db.QueryContext(ctx, trainingDetailsQuery+` WHERE t.date > $1 ORDER BY t.date`, after)
	if err != nil {
		return nil, fmt.Errorf("%w: querying upcoming trainings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	details := []models.TrainingDetails{}
	for rows.Next() {
		d, err := scanTrainingDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning training details: %v", ErrDatabaseError, err)
		}
		details = append(details, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating training details rows: %v", ErrDatabaseError, err)
	}
	return details, nil
}

func (r *trainingRepository) FindDetailsByID(ctx context.Context, id uuid.UUID) (*models.TrainingDetails, error) {
	d, err := scanTrainingDetails(r.db.QueryRowContext(ctx, trainingDetailsQuery+` WHERE t.id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, "getting training details by ID "+id.String())
	}
	return d, nil
}

func (r *trainingRepository) Create(ctx context.Context, training *models.Training) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO trainings (id, room_id, trainer_id, date) VALUES ($1, $2, $3, $4)`,
		training.ID, training.RoomID, training.TrainerID, training.Date)
	if err != nil {
		return wrapWriteError(err, "creating training")
	}
	return nil
}

func (r *trainingRepository) Update(ctx context.Context, training *models.Training) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE trainings SET room_id = $1, trainer_id = $2, date = $3 WHERE id = $4`,
		training.RoomID, training.TrainerID, training.Date, training.ID)
	if err != nil {
		return wrapWriteError(err, "updating training ID "+training.ID.String())
	}
	return expectAffected(result, "updating training ID "+training.ID.String())
}

func (r *trainingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trainings WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, "deleting training ID "+id.String())
	}
	return expectAffected(result, "deleting training ID "+id.String())
}

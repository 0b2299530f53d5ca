package repositories

import (
	"context"
	"fmt"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// TrainerRepository defines the interface for trainer profile persistence.
type TrainerRepository interface {
	FindAll(ctx context.Context) ([]models.Trainer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Trainer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Trainer, error)
	FindAllProfiles(ctx context.Context) ([]models.TrainerProfile, error)
	FindProfileByID(ctx context.Context, id uuid.UUID) (*models.TrainerProfile, error)
	Create(ctx context.Context, trainer *models.Trainer) error
	Update(ctx context.Context, trainer *models.Trainer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type trainerRepository struct {
	db SQLExecutor
}

// NewTrainerRepository creates a new instance of TrainerRepository.
func NewTrainerRepository(db SQLExecutor) TrainerRepository {
	return &trainerRepository{db: db}
}

func scanTrainer(row scanner) (*models.Trainer, error) {
	trainer := &models.Trainer{}
	if err := row.Scan(&trainer.ID, &trainer.UserID, &trainer.Description); err != nil {
		return nil, err
	}
	return trainer, nil
}

func scanTrainerProfile(row scanner) (*models.TrainerProfile, error) {
	p := &models.TrainerProfile{}
	if err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Description); err != nil {
		return nil, err
	}
	return p, nil
}

const trainerProfileQuery = `SELECT t.id, t.user_id, u.first_name, u.last_name, t.description
	FROM trainers t JOIN users u ON u.id = t.user_id`

func (r *trainerRepository) FindAll(ctx context.Context) ([]models.Trainer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, description FROM trainers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying trainers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	trainers := []models.Trainer{}
	for rows.Next() {
		trainer, err := scanTrainer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning trainer: %v", ErrDatabaseError, err)
		}
		trainers = append(trainers, *trainer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating trainer rows: %v", ErrDatabaseError, err)
	}
	return trainers, nil
}

func (r *trainerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Trainer, error) {
	trainer, err := scanTrainer(r.db.QueryRowContext(ctx,
		`SELECT id, user_id, description FROM trainers WHERE id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, "getting trainer by ID "+id.String())
	}
	return trainer, nil
}

func (r *trainerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Trainer, error) {
	trainer, err := scanTrainer(r.db.QueryRowContext(ctx,
		`SELECT id, user_id, description FROM trainers WHERE user_id = $1`, userID))
	if err != nil {
		return nil, wrapReadError(err, "getting trainer by user ID "+userID.String())
	}
	return trainer, nil
}

func (r *trainerRepository) FindAllProfiles(ctx context.Context) ([]models.TrainerProfile, error) {
	rows, err := r.db.QueryContext(ctx, trainerProfileQuery+` ORDER BY u.last_name, u.first_name`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying trainer profiles: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	profiles := []models.TrainerProfile{}
	for rows.Next() {
		p, err := scanTrainerProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning trainer profile: %v", ErrDatabaseError, err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating trainer profile rows: %v", ErrDatabaseError, err)
	}
	return profiles, nil
}

func (r *trainerRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*models.TrainerProfile, error) {
	p, err := scanTrainerProfile(r.db.QueryRowContext(ctx, trainerProfileQuery+` WHERE t.id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, "getting trainer profile by ID "+id.String())
	}
	return p, nil
}

func (r *trainerRepository) Create(ctx context.Context, trainer *models.Trainer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO trainers (id, user_id, description) VALUES ($1, $2, $3)`,
		trainer.ID, trainer.UserID, trainer.Description)
	if err != nil {
		return wrapWriteError(err, "creating trainer")
	}
	return nil
}

func (r *trainerRepository) Update(ctx context.Context, trainer *models.Trainer) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE trainers SET user_id = $1, description = $2 WHERE id = $3`,
		trainer.UserID, trainer.Description, trainer.ID)
	if err != nil {
		return wrapWriteError(err, "updating trainer ID "+trainer.ID.String())
	}
	return expectAffected(result, "updating trainer ID "+trainer.ID.String())
}

func (r *trainerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, "deleting trainer ID "+id.String())
	}
	return expectAffected(result, "deleting trainer ID "+id.String())
}

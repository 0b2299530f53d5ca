package repositories

import (
	"context"
	"fmt"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// TrainingRoomRepository defines the interface for training room persistence.
type TrainingRoomRepository interface {
	FindAll(ctx context.Context) ([]models.TrainingRoom, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.TrainingRoom, error)
	FindByName(ctx context.Context, name string) (*models.TrainingRoom, error)
	FindByCapacity(ctx context.Context, capacity int) ([]models.TrainingRoom, error)
	Create(ctx context.Context, room *models.TrainingRoom) error
	Update(ctx context.Context, room *models.TrainingRoom) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type trainingRoomRepository struct {
	db SQLExecutor
}

// NewTrainingRoomRepository creates a new instance of TrainingRoomRepository.
func NewTrainingRoomRepository(db SQLExecutor) TrainingRoomRepository {
	return &trainingRoomRepository{db: db}
}

func scanTrainingRoom(row scanner) (*models.TrainingRoom, error) {
	room := &models.TrainingRoom{}
	if err := row.Scan(&room.ID, &room.Name, &room.Capacity); err != nil {
		return nil, err
	}
	return room, nil
}

func (r *trainingRoomRepository) queryRooms(ctx context.Context, op, query string, args ...interface{}) ([]models.TrainingRoom, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDatabaseError, op, err)
	}
	defer rows.Close()

	rooms := []models.TrainingRoom{}
	for rows.Next() {
		room, err := scanTrainingRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning training room: %v", ErrDatabaseError, err)
		}
		rooms = append(rooms, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating training room rows: %v", ErrDatabaseError, err)
	}
	return rooms, nil
}

func (r *trainingRoomRepository) FindAll(ctx context.Context) ([]models.TrainingRoom, error) {
	return r.queryRooms(ctx, "querying training rooms",
		`SELECT id, name, capacity FROM training_rooms ORDER BY name`)
}

func (r *trainingRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.TrainingRoom, error) {
	room, err := scanTrainingRoom(r.db.QueryRowContext(ctx,
		`SELECT id, name, capacity FROM training_rooms WHERE id = $1`, id))
	if err != nil {
		return nil, wrapReadError(err, "getting training room by ID "+id.String())
	}
	return room, nil
}

func (r *trainingRoomRepository) FindByName(ctx context.Context, name string) (*models.TrainingRoom, error) {
	room, err := scanTrainingRoom(r.db.QueryRowContext(ctx,
		`SELECT id, name, capacity FROM training_rooms WHERE name = $1`, name))
	if err != nil {
		return nil, wrapReadError(err, "getting training room by name")
	}
	return room, nil
}

func (r *trainingRoomRepository) FindByCapacity(ctx context.Context, capacity int) ([]models.TrainingRoom, error) {
	return r.queryRooms(ctx, "querying training rooms by capacity",
		`SELECT id, name, capacity FROM training_rooms WHERE capacity = $1 ORDER BY name`, capacity)
}

func (r *trainingRoomRepository) Create(ctx context.Context, room *models.TrainingRoom) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO training_rooms (id, name, capacity) VALUES ($1, $2, $3)`,
		room.ID, room.Name, room.Capacity)
	if err != nil {
		return wrapWriteError(err, "creating training room")
	}
	return nil
}

func (r *trainingRoomRepository) Update(ctx context.Context, room *models.TrainingRoom) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE training_rooms SET name = $1, capacity = $2 WHERE id = $3`,
		room.Name, room.Capacity, room.ID)
	if err != nil {
		return wrapWriteError(err, "updating training room ID "+room.ID.String())
	}
	return expectAffected(result, "updating training room ID "+room.ID.String())
}

func (r *trainingRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM training_rooms WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, "deleting training room ID "+id.String())
	}
	return expectAffected(result, "deleting training room ID "+id.String())
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
	"fitness_club_backend/internal/validators"

	"github.com/google/uuid"
)

// --- Training DTOs ---
type CreateTrainingRequest struct {
	RoomID    uuid.UUID `json:"roomId" binding:"required"`
	TrainerID uuid.UUID `json:"trainerId" binding:"required"`
	Date      string    `json:"date" binding:"required"` // Format "2006-01-02 15:04:05"
}

type UpdateTrainingRequest struct {
	RoomID    *uuid.UUID `json:"roomId"`
	TrainerID *uuid.UUID `json:"trainerId"`
	Date      *string    `json:"date"`
}

// TrainerTrainingRequest is what a trainer sends for their own schedule; the trainer is implied.
type TrainerTrainingRequest struct {
	RoomID *uuid.UUID `json:"roomId"`
	Date   *string    `json:"date"`
}

// --- TrainingService Interface ---
type TrainingService interface {
	FindAll(ctx context.Context) ([]models.Training, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Training, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]models.Training, error)
	FindByTrainerID(ctx context.Context, trainerID uuid.UUID) ([]models.Training, error)
	Create(ctx context.Context, req CreateTrainingRequest) (*models.Training, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTrainingRequest) (*models.Training, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListUpcoming(ctx context.Context) ([]models.TrainingDetails, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*models.TrainingDetails, error)

	ListForTrainer(ctx context.Context, userID uuid.UUID) ([]models.Training, error)
	CreateForTrainer(ctx context.Context, userID uuid.UUID, req TrainerTrainingRequest) (*models.Training, error)
	UpdateForTrainer(ctx context.Context, userID, id uuid.UUID, req TrainerTrainingRequest) (*models.Training, error)
	DeleteForTrainer(ctx context.Context, userID, id uuid.UUID) error
}

type trainingService struct {
	trainingRepo repositories.TrainingRepository
	roomRepo     repositories.TrainingRoomRepository
	trainerRepo  repositories.TrainerRepository
	now          func() time.Time
}

// NewTrainingService creates a new instance of TrainingService.
func NewTrainingService(
	trainingRepo repositories.TrainingRepository,
	roomRepo repositories.TrainingRoomRepository,
	trainerRepo repositories.TrainerRepository,
) TrainingService {
	return &trainingService{
		trainingRepo: trainingRepo,
		roomRepo:     roomRepo,
		trainerRepo:  trainerRepo,
		now:          time.Now,
	}
}

func (s *trainingService) FindAll(ctx context.Context) ([]models.Training, error) {
	trainings, err := s.trainingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get trainings: %w", err)
	}
	return trainings, nil
}

func (s *trainingService) FindByID(ctx context.Context, id uuid.UUID) (*models.Training, error) {
	training, err := s.trainingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainingNotFound
		}
		return nil, fmt.Errorf("failed to get training by ID: %w", err)
	}
	return training, nil
}

func (s *trainingService) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]models.Training, error) {
	trainings, err := s.trainingRepo.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trainings by room: %w", err)
	}
	return trainings, nil
}

func (s *trainingService) FindByTrainerID(ctx context.Context, trainerID uuid.UUID) ([]models.Training, error) {
	trainings, err := s.trainingRepo.FindByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trainings by trainer: %w", err)
	}
	return trainings, nil
}

func (s *trainingService) ensureRoom(ctx context.Context, roomID uuid.UUID) error {
	if _, err := s.roomRepo.FindByID(ctx, roomID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTrainingRoomNotFound
		}
		return fmt.Errorf("failed to check training room: %w", err)
	}
	return nil
}

func (s *trainingService) ensureTrainer(ctx context.Context, trainerID uuid.UUID) error {
	if _, err := s.trainerRepo.FindByID(ctx, trainerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return fmt.Errorf("failed to check trainer: %w", err)
	}
	return nil
}

func parseTrainingDate(raw string) (time.Time, error) {
	date, ok := validators.ParseDateTime(raw)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: invalid training date", ErrValidation)
	}
	return date, nil
}

// mapTrainingWriteError covers a room or trainer removed between the existence check and the write.
func mapTrainingWriteError(err error, action string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrTrainingNotFound
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		if repositories.Constraint(err) == "trainings_trainer_id_fkey" {
			return ErrTrainerNotFound
		}
		return ErrTrainingRoomNotFound
	}
	return fmt.Errorf("failed to %s training in repository: %w", action, err)
}

func (s *trainingService) Create(ctx context.Context, req CreateTrainingRequest) (*models.Training, error) {
	date, err := parseTrainingDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.ensureRoom(ctx, req.RoomID); err != nil {
		return nil, err
	}
	if err := s.ensureTrainer(ctx, req.TrainerID); err != nil {
		return nil, err
	}

	training := &models.Training{
		ID:        uuid.New(),
		RoomID:    req.RoomID,
		TrainerID: req.TrainerID,
		Date:      date,
	}
	if err := s.trainingRepo.Create(ctx, training); err != nil {
		return nil, mapTrainingWriteError(err, "create")
	}
	return training, nil
}

func (s *trainingService) Update(ctx context.Context, id uuid.UUID, req UpdateTrainingRequest) (*models.Training, error) {
	training, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomID != nil {
		if err := s.ensureRoom(ctx, *req.RoomID); err != nil {
			return nil, err
		}
		training.RoomID = *req.RoomID
	}
	if req.TrainerID != nil {
		if err := s.ensureTrainer(ctx, *req.TrainerID); err != nil {
			return nil, err
		}
		training.TrainerID = *req.TrainerID
	}
	if req.Date != nil {
		date, err := parseTrainingDate(*req.Date)
		if err != nil {
			return nil, err
		}
		training.Date = date
	}

	if err := s.trainingRepo.Update(ctx, training); err != nil {
		return nil, mapTrainingWriteError(err, "update")
	}
	return training, nil
}

func (s *trainingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trainingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTrainingNotFound
		}
		return fmt.Errorf("failed to delete training: %w", err)
	}
	return nil
}

func (s *trainingService) ListUpcoming(ctx context.Context) ([]models.TrainingDetails, error) {
	details, err := s.trainingRepo.FindUpcomingDetails(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming trainings: %w", err)
	}
	return details, nil
}

func (s *trainingService) GetDetails(ctx context.Context, id uuid.UUID) (*models.TrainingDetails, error) {
	details, err := s.trainingRepo.FindDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainingNotFound
		}
		return nil, fmt.Errorf("failed to get training details: %w", err)
	}
	return details, nil
}

// trainerFor resolves the trainer profile behind an authenticated user.
func (s *trainingService) trainerFor(ctx context.Context, userID uuid.UUID) (*models.Trainer, error) {
	trainer, err := s.trainerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("failed to resolve trainer profile: %w", err)
	}
	return trainer, nil
}

// ownedTraining loads a training and checks that it belongs to the trainer behind userID.
func (s *trainingService) ownedTraining(ctx context.Context, userID, id uuid.UUID) (*models.Training, error) {
	trainer, err := s.trainerFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	training, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if training.TrainerID != trainer.ID {
		return nil, ErrForbidden
	}
	return training, nil
}

func (s *trainingService) ListForTrainer(ctx context.Context, userID uuid.UUID) ([]models.Training, error) {
	trainer, err := s.trainerFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.FindByTrainerID(ctx, trainer.ID)
}

func (s *trainingService) CreateForTrainer(ctx context.Context, userID uuid.UUID, req TrainerTrainingRequest) (*models.Training, error) {
	trainer, err := s.trainerFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.RoomID == nil || req.Date == nil {
		return nil, fmt.Errorf("%w: roomId and date are required", ErrValidation)
	}
	return s.Create(ctx, CreateTrainingRequest{RoomID: *req.RoomID, TrainerID: trainer.ID, Date: *req.Date})
}

func (s *trainingService) UpdateForTrainer(ctx context.Context, userID, id uuid.UUID, req TrainerTrainingRequest) (*models.Training, error) {
	if _, err := s.ownedTraining(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.Update(ctx, id, UpdateTrainingRequest{RoomID: req.RoomID, Date: req.Date})
}

func (s *trainingService) DeleteForTrainer(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.ownedTraining(ctx, userID, id); err != nil {
		return err
	}
	return s.Delete(ctx, id)
}

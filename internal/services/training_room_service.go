package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- TrainingRoom DTOs ---
type CreateTrainingRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
}

type UpdateTrainingRoomRequest struct {
	Name     *string `json:"name"`
	Capacity *int    `json:"capacity"`
}

// --- TrainingRoomService Interface ---
type TrainingRoomService interface {
	FindAll(ctx context.Context) ([]models.TrainingRoom, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.TrainingRoom, error)
	FindByName(ctx context.Context, name string) (*models.TrainingRoom, error)
	FindByCapacity(ctx context.Context, capacity int) ([]models.TrainingRoom, error)
	Create(ctx context.Context, req CreateTrainingRoomRequest) (*models.TrainingRoom, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTrainingRoomRequest) (*models.TrainingRoom, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type trainingRoomService struct {
	roomRepo repositories.TrainingRoomRepository
}

// NewTrainingRoomService creates a new instance of TrainingRoomService.
func NewTrainingRoomService(repo repositories.TrainingRoomRepository) TrainingRoomService {
	return &trainingRoomService{roomRepo: repo}
}

func (s *trainingRoomService) FindAll(ctx context.Context) ([]models.TrainingRoom, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get training rooms: %w", err)
	}
	return rooms, nil
}

func (s *trainingRoomService) FindByID(ctx context.Context, id uuid.UUID) (*models.TrainingRoom, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainingRoomNotFound
		}
		return nil, fmt.Errorf("failed to get training room by ID: %w", err)
	}
	return room, nil
}

func (s *trainingRoomService) FindByName(ctx context.Context, name string) (*models.TrainingRoom, error) {
	room, err := s.roomRepo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainingRoomNotFound
		}
		return nil, fmt.Errorf("failed to get training room by name: %w", err)
	}
	return room, nil
}

func (s *trainingRoomService) FindByCapacity(ctx context.Context, capacity int) ([]models.TrainingRoom, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	rooms, err := s.roomRepo.FindByCapacity(ctx, capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to get training rooms by capacity: %w", err)
	}
	return rooms, nil
}

func (s *trainingRoomService) checkNameFree(ctx context.Context, selfID uuid.UUID, name string) error {
	existing, err := s.roomRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check training room name: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return ErrTrainingRoomNameExists
	}
	return nil
}

func (s *trainingRoomService) Create(ctx context.Context, req CreateTrainingRoomRequest) (*models.TrainingRoom, error) {
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	name := strings.TrimSpace(req.Name)
	if err := s.checkNameFree(ctx, uuid.Nil, name); err != nil {
		return nil, err
	}

	room := &models.TrainingRoom{ID: uuid.New(), Name: name, Capacity: req.Capacity}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrTrainingRoomNameExists
		}
		return nil, fmt.Errorf("failed to create training room in repository: %w", err)
	}
	return room, nil
}

func (s *trainingRoomService) Update(ctx context.Context, id uuid.UUID, req UpdateTrainingRoomRequest) (*models.TrainingRoom, error) {
	room, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := s.checkNameFree(ctx, id, name); err != nil {
			return nil, err
		}
		room.Name = name
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, fmt.Errorf("%w: capacity must be positive", ErrValidation)
		}
		room.Capacity = *req.Capacity
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainingRoomNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrTrainingRoomNameExists
		}
		return nil, fmt.Errorf("failed to update training room in repository: %w", err)
	}
	return room, nil
}

func (s *trainingRoomService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTrainingRoomNotFound
		}
		return fmt.Errorf("failed to delete training room: %w", err)
	}
	return nil
}

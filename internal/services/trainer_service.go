package services

import (
	"context"
	"errors"
	"fmt"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
	"fitness_club_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Trainer DTOs ---
type CreateTrainerRequest struct {
	UserID      uuid.UUID `json:"userId" binding:"required"`
	Description *string   `json:"description"`
}

type UpdateTrainerRequest struct {
	UserID      *uuid.UUID `json:"userId"`
	Description *string    `json:"description"`
}

// --- TrainerService Interface ---
type TrainerService interface {
	FindAll(ctx context.Context) ([]models.Trainer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Trainer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Trainer, error)
	ListProfiles(ctx context.Context) ([]models.TrainerProfile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.TrainerProfile, error)
	Create(ctx context.Context, req CreateTrainerRequest) (*models.Trainer, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTrainerRequest) (*models.Trainer, error)
	// UpdateOwn lets a trainer edit the description of their own profile.
	UpdateOwn(ctx context.Context, userID uuid.UUID, req UpdateTrainerRequest) (*models.Trainer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type trainerService struct {
	trainerRepo repositories.TrainerRepository
	userRepo    repositories.UserRepository
}

// NewTrainerService creates a new instance of TrainerService.
func NewTrainerService(trainerRepo repositories.TrainerRepository, userRepo repositories.UserRepository) TrainerService {
	return &trainerService{trainerRepo: trainerRepo, userRepo: userRepo}
}

func (s *trainerService) FindAll(ctx context.Context) ([]models.Trainer, error) {
	trainers, err := s.trainerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get trainers: %w", err)
	}
	return trainers, nil
}

func (s *trainerService) FindByID(ctx context.Context, id uuid.UUID) (*models.Trainer, error) {
	trainer, err := s.trainerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("failed to get trainer by ID: %w", err)
	}
	return trainer, nil
}

func (s *trainerService) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Trainer, error) {
	trainer, err := s.trainerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("failed to get trainer by user ID: %w", err)
	}
	return trainer, nil
}

func (s *trainerService) ListProfiles(ctx context.Context) ([]models.TrainerProfile, error) {
	profiles, err := s.trainerRepo.FindAllProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get trainer profiles: %w", err)
	}
	return profiles, nil
}

func (s *trainerService) GetProfile(ctx context.Context, id uuid.UUID) (*models.TrainerProfile, error) {
	profile, err := s.trainerRepo.FindProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("failed to get trainer profile: %w", err)
	}
	return profile, nil
}

// ensureTrainableUser loads the user and rejects it if another trainer profile already points at it.
func (s *trainerService) ensureTrainableUser(ctx context.Context, userID, selfID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to check trainer user: %w", err)
	}
	existing, err := s.trainerRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing trainer: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return nil, ErrTrainerExists
	}
	return user, nil
}

// promote gives a client account the trainer role so the trainer routes open up for it.
func (s *trainerService) promote(ctx context.Context, user *models.User) error {
	if user.Role != models.RoleClient {
		return nil
	}
	user.Role = models.RoleTrainer
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to promote user to trainer: %w", err)
	}
	return nil
}

func (s *trainerService) Create(ctx context.Context, req CreateTrainerRequest) (*models.Trainer, error) {
	user, err := s.ensureTrainableUser(ctx, req.UserID, uuid.Nil)
	if err != nil {
		return nil, err
	}

	trainer := &models.Trainer{
		ID:          uuid.New(),
		UserID:      req.UserID,
		Description: normalizeDescription(req.Description),
	}
	if err := s.trainerRepo.Create(ctx, trainer); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrTrainerExists
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create trainer in repository: %w", err)
	}
	if err := s.promote(ctx, user); err != nil {
		return nil, err
	}
	utils.LogInfo("Trainer profile created", map[string]interface{}{"trainer_id": trainer.ID.String(), "user_id": user.ID.String()})
	return trainer, nil
}

func (s *trainerService) Update(ctx context.Context, id uuid.UUID, req UpdateTrainerRequest) (*models.Trainer, error) {
	trainer, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UserID != nil && *req.UserID != trainer.UserID {
		user, err := s.ensureTrainableUser(ctx, *req.UserID, trainer.ID)
		if err != nil {
			return nil, err
		}
		if err := s.promote(ctx, user); err != nil {
			return nil, err
		}
		trainer.UserID = *req.UserID
	}
	if req.Description != nil {
		trainer.Description = normalizeDescription(req.Description)
	}

	if err := s.trainerRepo.Update(ctx, trainer); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrTrainerNotFound
		case errors.Is(err, repositories.ErrDuplicateKey):
			return nil, ErrTrainerExists
		case errors.Is(err, repositories.ErrForeignKeyViolation):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update trainer in repository: %w", err)
	}
	return trainer, nil
}

func (s *trainerService) UpdateOwn(ctx context.Context, userID uuid.UUID, req UpdateTrainerRequest) (*models.Trainer, error) {
	trainer, err := s.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, trainer.ID, UpdateTrainerRequest{Description: req.Description})
}

func (s *trainerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trainerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return fmt.Errorf("failed to delete trainer: %w", err)
	}
	return nil
}

func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	return utils.NewNullString(*description)
}

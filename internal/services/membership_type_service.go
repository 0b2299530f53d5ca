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

// --- MembershipType DTOs ---
type CreateMembershipTypeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Days     int     `json:"days" binding:"required"`
	Sessions int     `json:"sessions"`
}

type UpdateMembershipTypeRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Days     *int     `json:"days"`
	Sessions *int     `json:"sessions"`
}

// --- MembershipTypeService Interface ---
type MembershipTypeService interface {
	FindAll(ctx context.Context) ([]models.MembershipType, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.MembershipType, error)
	FindByName(ctx context.Context, name string) (*models.MembershipType, error)
	Create(ctx context.Context, req CreateMembershipTypeRequest) (*models.MembershipType, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateMembershipTypeRequest) (*models.MembershipType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type membershipTypeService struct {
	typeRepo repositories.MembershipTypeRepository
}

// NewMembershipTypeService creates a new instance of MembershipTypeService.
func NewMembershipTypeService(repo repositories.MembershipTypeRepository) MembershipTypeService {
	return &membershipTypeService{typeRepo: repo}
}

func (s *membershipTypeService) FindAll(ctx context.Context) ([]models.MembershipType, error) {
	types, err := s.typeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership types: %w", err)
	}
	return types, nil
}

func (s *membershipTypeService) FindByID(ctx context.Context, id uuid.UUID) (*models.MembershipType, error) {
	membershipType, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMembershipTypeNotFound
		}
		return nil, fmt.Errorf("failed to get membership type by ID: %w", err)
	}
	return membershipType, nil
}

func (s *membershipTypeService) FindByName(ctx context.Context, name string) (*models.MembershipType, error) {
	membershipType, err := s.typeRepo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMembershipTypeNotFound
		}
		return nil, fmt.Errorf("failed to get membership type by name: %w", err)
	}
	return membershipType, nil
}

func (s *membershipTypeService) checkNameFree(ctx context.Context, selfID uuid.UUID, name string) error {
	existing, err := s.typeRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check membership type name: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return ErrMembershipTypeNameExists
	}
	return nil
}

func validateMembershipType(t *models.MembershipType) error {
	switch {
	case t.Price <= 0:
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	case t.Days <= 0:
		return fmt.Errorf("%w: days must be positive", ErrValidation)
	case t.Sessions <= 0:
		return fmt.Errorf("%w: sessions must be positive", ErrValidation)
	}
	return nil
}

func (s *membershipTypeService) Create(ctx context.Context, req CreateMembershipTypeRequest) (*models.MembershipType, error) {
	membershipType := &models.MembershipType{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Price:    req.Price,
		Days:     req.Days,
		Sessions: req.Sessions,
	}
	if err := validateMembershipType(membershipType); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, uuid.Nil, membershipType.Name); err != nil {
		return nil, err
	}

	if err := s.typeRepo.Create(ctx, membershipType); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrMembershipTypeNameExists
		}
		return nil, fmt.Errorf("failed to create membership type in repository: %w", err)
	}
	return membershipType, nil
}

func (s *membershipTypeService) Update(ctx context.Context, id uuid.UUID, req UpdateMembershipTypeRequest) (*models.MembershipType, error) {
	membershipType, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := s.checkNameFree(ctx, id, name); err != nil {
			return nil, err
		}
		membershipType.Name = name
	}
	if req.Price != nil {
		membershipType.Price = *req.Price
	}
	if req.Days != nil {
		membershipType.Days = *req.Days
	}
	if req.Sessions != nil {
		membershipType.Sessions = *req.Sessions
	}
	if err := validateMembershipType(membershipType); err != nil {
		return nil, err
	}

	if err := s.typeRepo.Update(ctx, membershipType); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMembershipTypeNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrMembershipTypeNameExists
		}
		return nil, fmt.Errorf("failed to update membership type in repository: %w", err)
	}
	return membershipType, nil
}

func (s *membershipTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.typeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMembershipTypeNotFound
		}
		return fmt.Errorf("failed to delete membership type: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
	"fitness_club_backend/internal/validators"
	"fitness_club_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Membership DTOs ---

// CreateMembershipRequest DTO. Omitted dates and sessions are derived from the membership type.
type CreateMembershipRequest struct {
	UserID            uuid.UUID `json:"userId" binding:"required"`
	MembershipTypeID  uuid.UUID `json:"membershipTypeId" binding:"required"`
	StartDate         *string   `json:"startDate"`
	EndDate           *string   `json:"endDate"`
	AvailableSessions *int      `json:"availableSessions"`
}

type UpdateMembershipRequest struct {
	UserID            *uuid.UUID `json:"userId"`
	MembershipTypeID  *uuid.UUID `json:"membershipTypeId"`
	StartDate         *string    `json:"startDate"`
	EndDate           *string    `json:"endDate"`
	AvailableSessions *int       `json:"availableSessions"`
}

// PurchaseMembershipRequest DTO for the self-service purchase.
type PurchaseMembershipRequest struct {
	MembershipTypeID uuid.UUID `json:"membershipTypeId" binding:"required"`
}

// --- MembershipService Interface ---
type MembershipService interface {
	FindAll(ctx context.Context) ([]models.Membership, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Membership, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Membership, error)
	Create(ctx context.Context, req CreateMembershipRequest) (*models.Membership, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateMembershipRequest) (*models.Membership, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Purchase(ctx context.Context, userID uuid.UUID, req PurchaseMembershipRequest) (*models.Membership, error)
}

type membershipService struct {
	membershipRepo repositories.MembershipRepository
	typeRepo       repositories.MembershipTypeRepository
	userRepo       repositories.UserRepository
	now            func() time.Time
}

// NewMembershipService creates a new instance of MembershipService.
func NewMembershipService(
	membershipRepo repositories.MembershipRepository,
	typeRepo repositories.MembershipTypeRepository,
	userRepo repositories.UserRepository,
) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		typeRepo:       typeRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

func (s *membershipService) FindAll(ctx context.Context) ([]models.Membership, error) {
	memberships, err := s.membershipRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships: %w", err)
	}
	return memberships, nil
}

func (s *membershipService) FindByID(ctx context.Context, id uuid.UUID) (*models.Membership, error) {
	membership, err := s.membershipRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership by ID: %w", err)
	}
	return membership, nil
}

func (s *membershipService) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Membership, error) {
	memberships, err := s.membershipRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships by user: %w", err)
	}
	return memberships, nil
}

func (s *membershipService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to check membership user: %w", err)
	}
	return nil
}

func (s *membershipService) loadType(ctx context.Context, typeID uuid.UUID) (*models.MembershipType, error) {
	membershipType, err := s.typeRepo.FindByID(ctx, typeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMembershipTypeNotFound
		}
		return nil, fmt.Errorf("failed to check membership type: %w", err)
	}
	return membershipType, nil
}

func parseMembershipDate(raw *string, field string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	date, ok := validators.ParseDateTime(*raw)
	if !ok {
		return nil, fmt.Errorf("%w: invalid %s", ErrValidation, field)
	}
	return &date, nil
}

func validateMembershipWindow(m *models.Membership) error {
	if !m.StartDate.Before(m.EndDate) {
		return fmt.Errorf("%w: startDate must be before endDate", ErrValidation)
	}
	if m.AvailableSessions < 0 {
		return fmt.Errorf("%w: availableSessions must not be negative", ErrValidation)
	}
	return nil
}

func mapMembershipWriteError(err error, action string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrMembershipNotFound
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		if repositories.Constraint(err) == "memberships_user_id_fkey" {
			return ErrUserNotFound
		}
		return ErrMembershipTypeNotFound
	}
	return fmt.Errorf("failed to %s membership in repository: %w", action, err)
}

func (s *membershipService) Create(ctx context.Context, req CreateMembershipRequest) (*models.Membership, error) {
	if err := s.ensureUser(ctx, req.UserID); err != nil {
		return nil, err
	}
	membershipType, err := s.loadType(ctx, req.MembershipTypeID)
	if err != nil {
		return nil, err
	}
	startDate, err := parseMembershipDate(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	endDate, err := parseMembershipDate(req.EndDate, "endDate")
	if err != nil {
		return nil, err
	}

	membership := &models.Membership{
		ID:                uuid.New(),
		UserID:            req.UserID,
		MembershipTypeID:  membershipType.ID,
		StartDate:         s.now().UTC().Truncate(time.Second),
		AvailableSessions: membershipType.Sessions,
	}
	if startDate != nil {
		membership.StartDate = *startDate
	}
	membership.EndDate = membership.StartDate.AddDate(0, 0, membershipType.Days)
	if endDate != nil {
		membership.EndDate = *endDate
	}
	if req.AvailableSessions != nil {
		membership.AvailableSessions = *req.AvailableSessions
	}
	if err := validateMembershipWindow(membership); err != nil {
		return nil, err
	}

	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, mapMembershipWriteError(err, "create")
	}
	return membership, nil
}

func (s *membershipService) Update(ctx context.Context, id uuid.UUID, req UpdateMembershipRequest) (*models.Membership, error) {
	membership, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UserID != nil {
		if err := s.ensureUser(ctx, *req.UserID); err != nil {
			return nil, err
		}
		membership.UserID = *req.UserID
	}
	startDate, err := parseMembershipDate(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	endDate, err := parseMembershipDate(req.EndDate, "endDate")
	if err != nil {
		return nil, err
	}
	if startDate != nil {
		membership.StartDate = *startDate
	}

	// A new plan resets the window and sessions unless they are given explicitly.
	if req.MembershipTypeID != nil && *req.MembershipTypeID != membership.MembershipTypeID {
		membershipType, err := s.loadType(ctx, *req.MembershipTypeID)
		if err != nil {
			return nil, err
		}
		membership.MembershipTypeID = membershipType.ID
		membership.EndDate = membership.StartDate.AddDate(0, 0, membershipType.Days)
		membership.AvailableSessions = membershipType.Sessions
	}
	if endDate != nil {
		membership.EndDate = *endDate
	}
	if req.AvailableSessions != nil {
		membership.AvailableSessions = *req.AvailableSessions
	}
	if err := validateMembershipWindow(membership); err != nil {
		return nil, err
	}

	if err := s.membershipRepo.Update(ctx, membership); err != nil {
		return nil, mapMembershipWriteError(err, "update")
	}
	return membership, nil
}

func (s *membershipService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.membershipRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	return nil
}

func (s *membershipService) Purchase(ctx context.Context, userID uuid.UUID, req PurchaseMembershipRequest) (*models.Membership, error) {
	membership, err := s.Create(ctx, CreateMembershipRequest{UserID: userID, MembershipTypeID: req.MembershipTypeID})
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Membership purchased", map[string]interface{}{
		"user_id":       userID.String(),
		"membership_id": membership.ID.String(),
	})
	return membership, nil
}

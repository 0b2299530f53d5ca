package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
	"fitness_club_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Attendance DTOs ---
type CreateAttendanceRequest struct {
	MembershipID uuid.UUID `json:"membershipId" binding:"required"`
	TrainingID   uuid.UUID `json:"trainingId" binding:"required"`
	Status       string    `json:"status" binding:"required"`
}

type UpdateAttendanceRequest struct {
	MembershipID *uuid.UUID `json:"membershipId"`
	TrainingID   *uuid.UUID `json:"trainingId"`
	Status       *string    `json:"status"`
}

// SignUpRequest DTO for a member booking a place on a training.
type SignUpRequest struct {
	MembershipID uuid.UUID `json:"membershipId" binding:"required"`
	TrainingID   uuid.UUID `json:"trainingId" binding:"required"`
}

// --- AttendanceService Interface ---
type AttendanceService interface {
	FindAll(ctx context.Context) ([]models.Attendance, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error)
	FindByMembershipID(ctx context.Context, membershipID uuid.UUID) ([]models.Attendance, error)
	FindByTrainingID(ctx context.Context, trainingID uuid.UUID) ([]models.Attendance, error)
	Create(ctx context.Context, req CreateAttendanceRequest) (*models.Attendance, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateAttendanceRequest) (*models.Attendance, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Attendance, error)
	SignUp(ctx context.Context, userID uuid.UUID, req SignUpRequest) (*models.Attendance, error)
	Cancel(ctx context.Context, userID, id uuid.UUID) (*models.Attendance, error)
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	membershipRepo repositories.MembershipRepository
	trainingRepo   repositories.TrainingRepository
	roomRepo       repositories.TrainingRoomRepository
	now            func() time.Time
}

// NewAttendanceService creates a new instance of AttendanceService.
func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	membershipRepo repositories.MembershipRepository,
	trainingRepo repositories.TrainingRepository,
	roomRepo repositories.TrainingRoomRepository,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		membershipRepo: membershipRepo,
		trainingRepo:   trainingRepo,
		roomRepo:       roomRepo,
		now:            time.Now,
	}
}

func (s *attendanceService) FindAll(ctx context.Context) ([]models.Attendance, error) {
	attendances, err := s.attendanceRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendances: %w", err)
	}
	return attendances, nil
}

func (s *attendanceService) FindByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error) {
	attendance, err := s.attendanceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance by ID: %w", err)
	}
	return attendance, nil
}

func (s *attendanceService) FindByMembershipID(ctx context.Context, membershipID uuid.UUID) ([]models.Attendance, error) {
	attendances, err := s.attendanceRepo.FindByMembershipID(ctx, membershipID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendances by membership: %w", err)
	}
	return attendances, nil
}

func (s *attendanceService) FindByTrainingID(ctx context.Context, trainingID uuid.UUID) ([]models.Attendance, error) {
	attendances, err := s.attendanceRepo.FindByTrainingID(ctx, trainingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendances by training: %w", err)
	}
	return attendances, nil
}

func (s *attendanceService) loadMembership(ctx context.Context, id uuid.UUID) (*models.Membership, error) {
	membership, err := s.membershipRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	return membership, nil
}

func (s *attendanceService) loadTraining(ctx context.Context, id uuid.UUID) (*models.Training, error) {
	training, err := s.trainingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainingNotFound
		}
		return nil, fmt.Errorf("failed to check training: %w", err)
	}
	return training, nil
}

func parseAttendanceStatus(raw string) (models.AttendanceStatus, error) {
	status := models.AttendanceStatus(raw)
	switch status {
	case models.AttendanceWaiting, models.AttendanceAttended, models.AttendanceAbsent, models.AttendanceCancelled:
		return status, nil
	}
	return "", fmt.Errorf("%w: unknown attendance status '%s'", ErrValidation, raw)
}

func mapAttendanceWriteError(err error, action string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrAttendanceNotFound
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		if repositories.Constraint(err) == "attendances_training_id_fkey" {
			return ErrTrainingNotFound
		}
		return ErrMembershipNotFound
	}
	return fmt.Errorf("failed to %s attendance in repository: %w", action, err)
}

func (s *attendanceService) Create(ctx context.Context, req CreateAttendanceRequest) (*models.Attendance, error) {
	status, err := parseAttendanceStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if _, err := s.loadMembership(ctx, req.MembershipID); err != nil {
		return nil, err
	}
	if _, err := s.loadTraining(ctx, req.TrainingID); err != nil {
		return nil, err
	}

	attendance := &models.Attendance{
		ID:           uuid.New(),
		MembershipID: req.MembershipID,
		TrainingID:   req.TrainingID,
		Status:       status,
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, mapAttendanceWriteError(err, "create")
	}
	return attendance, nil
}

func (s *attendanceService) Update(ctx context.Context, id uuid.UUID, req UpdateAttendanceRequest) (*models.Attendance, error) {
	attendance, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.MembershipID != nil {
		if _, err := s.loadMembership(ctx, *req.MembershipID); err != nil {
			return nil, err
		}
		attendance.MembershipID = *req.MembershipID
	}
	if req.TrainingID != nil {
		if _, err := s.loadTraining(ctx, *req.TrainingID); err != nil {
			return nil, err
		}
		attendance.TrainingID = *req.TrainingID
	}
	if req.Status != nil {
		status, err := parseAttendanceStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		attendance.Status = status
	}

	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		return nil, mapAttendanceWriteError(err, "update")
	}
	return attendance, nil
}

func (s *attendanceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

func (s *attendanceService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Attendance, error) {
	attendances, err := s.attendanceRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendances by user: %w", err)
	}
	return attendances, nil
}

// SignUp books a place on a training against one of the user's memberships and consumes one session.
func (s *attendanceService) SignUp(ctx context.Context, userID uuid.UUID, req SignUpRequest) (*models.Attendance, error) {
	membership, err := s.loadMembership(ctx, req.MembershipID)
	if err != nil {
		return nil, err
	}
	if membership.UserID != userID {
		return nil, ErrForbidden
	}

	training, err := s.loadTraining(ctx, req.TrainingID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if !training.Date.After(now) {
		return nil, ErrTrainingInPast
	}
	if !membership.IsActive(now) || !training.Date.Before(membership.EndDate) {
		return nil, ErrMembershipInactive
	}

	existing, err := s.attendanceRepo.FindActive(ctx, membership.ID, training.ID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing sign-up: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadySignedUp
	}

	room, err := s.roomRepo.FindByID(ctx, training.RoomID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTrainingRoomNotFound
		}
		return nil, fmt.Errorf("failed to check training room: %w", err)
	}
	taken, err := s.attendanceRepo.CountActiveByTraining(ctx, training.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count training sign-ups: %w", err)
	}
	if taken >= room.Capacity {
		return nil, ErrTrainingFull
	}

	if err := s.membershipRepo.ConsumeSession(ctx, membership.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoSessionsLeft
		}
		return nil, fmt.Errorf("failed to consume membership session: %w", err)
	}

	attendance := &models.Attendance{
		ID:           uuid.New(),
		MembershipID: membership.ID,
		TrainingID:   training.ID,
		Status:       models.AttendanceWaiting,
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		if restoreErr := s.membershipRepo.RestoreSession(ctx, membership.ID); restoreErr != nil {
			utils.LogError(restoreErr, "Failed to restore session after sign-up failure for membership "+membership.ID.String())
		}
		return nil, mapAttendanceWriteError(err, "create")
	}
	return attendance, nil
}

// Cancel withdraws a waiting sign-up owned by the user and gives the session back.
func (s *attendanceService) Cancel(ctx context.Context, userID, id uuid.UUID) (*models.Attendance, error) {
	attendance, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	membership, err := s.loadMembership(ctx, attendance.MembershipID)
	if err != nil {
		return nil, err
	}
	if membership.UserID != userID {
		return nil, ErrForbidden
	}
	if attendance.Status != models.AttendanceWaiting {
		return nil, ErrAttendanceNotCancellable
	}

	attendance.Status = models.AttendanceCancelled
	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		return nil, mapAttendanceWriteError(err, "cancel")
	}
	if err := s.membershipRepo.RestoreSession(ctx, membership.ID); err != nil {
		return nil, fmt.Errorf("failed to restore membership session: %w", err)
	}
	return attendance, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
	"fitness_club_backend/internal/validators"
	"fitness_club_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- User DTOs ---
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	BirthDate   string `json:"birthDate" binding:"required"` // Format "2006-01-02 15:04:05"
	Role        string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	PhoneNumber *string `json:"phoneNumber"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Gender      *string `json:"gender"`
	BirthDate   *string `json:"birthDate"`
	Role        *string `json:"role"`
}

// --- UserService Interface ---
type UserService interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error)
	FindByRole(ctx context.Context, role models.Role) ([]models.User, error)
	Create(ctx context.Context, req CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*models.User, error)
	// UpdateProfile is the self-service update; the role never changes through it.
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{userRepo: repo}
}

func (s *userService) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

func (s *userService) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error) {
	user, err := s.userRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by phone number: %w", err)
	}
	return user, nil
}

func (s *userService) FindByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	if !validators.Role(string(role)) {
		return nil, fmt.Errorf("%w: unknown role '%s'", ErrValidation, role)
	}
	users, err := s.userRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by role: %w", err)
	}
	return users, nil
}

// checkUnique rejects an email or phone number already held by a different user.
func (s *userService) checkUnique(ctx context.Context, selfID uuid.UUID, email, phoneNumber *string) error {
	if email != nil {
		existing, err := s.userRepo.FindByEmail(ctx, *email)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if existing != nil && existing.ID != selfID {
			return ErrEmailExists
		}
	}
	if phoneNumber != nil {
		existing, err := s.userRepo.FindByPhoneNumber(ctx, *phoneNumber)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("failed to check phone number uniqueness: %w", err)
		}
		if existing != nil && existing.ID != selfID {
			return ErrPhoneNumberExists
		}
	}
	return nil
}

// mapUserDuplicate turns a unique violation that slipped past checkUnique into the matching service error.
func mapUserDuplicate(err error) error {
	switch repositories.Constraint(err) {
	case "users_email_key":
		return ErrEmailExists
	case "users_phone_number_key":
		return ErrPhoneNumberExists
	}
	return nil
}

func (s *userService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	birthDate, ok := validators.ParseDateTime(req.BirthDate)
	if !ok {
		return nil, fmt.Errorf("%w: invalid birth date", ErrValidation)
	}
	email := utils.NormalizeEmail(req.Email)
	if err := s.checkUnique(ctx, uuid.Nil, &email, &req.PhoneNumber); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
		Role:         models.Role(req.Role),
		Gender:       models.Gender(req.Gender),
		BirthDate:    birthDate,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			if mapped := mapUserDuplicate(err); mapped != nil {
				return nil, mapped
			}
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*models.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var email *string
	if req.Email != nil {
		normalized := utils.NormalizeEmail(*req.Email)
		email = &normalized
	}
	if err := s.checkUnique(ctx, id, email, req.PhoneNumber); err != nil {
		return nil, err
	}

	if email != nil {
		user.Email = *email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Gender != nil {
		user.Gender = models.Gender(*req.Gender)
	}
	if req.Role != nil {
		user.Role = models.Role(*req.Role)
	}
	if req.BirthDate != nil {
		birthDate, ok := validators.ParseDateTime(*req.BirthDate)
		if !ok {
			return nil, fmt.Errorf("%w: invalid birth date", ErrValidation)
		}
		user.BirthDate = birthDate
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			if mapped := mapUserDuplicate(err); mapped != nil {
				return nil, mapped
			}
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user in repository: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*models.User, error) {
	req.Role = nil
	return s.Update(ctx, id, req)
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

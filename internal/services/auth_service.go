package services

import (
	"context"
	"errors"
	"fmt"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Auth DTOs ---

// LoginRequest DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest DTO. Self-registered accounts always get the client role.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	BirthDate   string `json:"birthDate" binding:"required"`
}

// TokenIssuer signs access tokens. *utils.JWTManager satisfies it.
type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
}

// --- AuthService Interface ---
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.AuthToken, error)
	Login(ctx context.Context, req LoginRequest) (*models.AuthToken, error)
}

type authService struct {
	users  UserService
	tokens TokenIssuer
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(users UserService, tokens TokenIssuer) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) issue(user *models.User) (*models.AuthToken, error) {
	token, err := s.tokens.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &models.AuthToken{Token: token}, nil
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.AuthToken, error) {
	user, err := s.users.Create(ctx, CreateUserRequest{
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		BirthDate:   req.BirthDate,
		Role:        string(models.RoleClient),
	})
	if err != nil {
		return nil, err
	}
	utils.LogInfo("User registered", map[string]interface{}{"user_id": user.ID.String()})
	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*models.AuthToken, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

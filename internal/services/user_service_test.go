package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
	"fitness_club_backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateUserRequest() CreateUserRequest {
	return CreateUserRequest{
		Email:       "User@Example.com",
		Password:    "Password1234",
		PhoneNumber: "+1234567890",
		FirstName:   "Ivan",
		LastName:    "Petrov",
		Gender:      "male",
		BirthDate:   "2000-01-01 00:00:00",
		Role:        "client",
	}
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password and normalizes email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(nil, repositories.ErrNotFound).Once()
		repo.On("FindByPhoneNumber", mock.Anything, "+1234567890").Return(nil, repositories.ErrNotFound).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "user@example.com" &&
				u.PasswordHash != "Password1234" &&
				utils.CheckPassword("Password1234", u.PasswordHash) &&
				u.ID != uuid.Nil
		})).Return(nil).Once()

		user, err := NewUserService(repo).Create(ctx, newCreateUserRequest())

		require.NoError(t, err)
		assert.Equal(t, models.RoleClient, user.Role)
		assert.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), user.BirthDate)
		repo.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&models.User{ID: uuid.New()}, nil).Once()

		_, err := NewUserService(repo).Create(ctx, newCreateUserRequest())

		assert.ErrorIs(t, err, ErrEmailExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("phone number taken", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repositories.ErrNotFound).Once()
		repo.On("FindByPhoneNumber", mock.Anything, "+1234567890").Return(&models.User{ID: uuid.New()}, nil).Once()

		_, err := NewUserService(repo).Create(ctx, newCreateUserRequest())

		assert.ErrorIs(t, err, ErrPhoneNumberExists)
	})

	t.Run("invalid birth date", func(t *testing.T) {
		repo := new(mockUserRepo)
		req := newCreateUserRequest()
		req.BirthDate = "01.01.2000"

		_, err := NewUserService(repo).Create(ctx, req)

		assert.ErrorIs(t, err, ErrValidation)
		repo.AssertExpectations(t)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	existing := func() *models.User {
		return &models.User{
			ID:           id,
			FirstName:    "Ivan",
			LastName:     "Petrov",
			Email:        "ivan@example.com",
			PhoneNumber:  "+1234567890",
			PasswordHash: "old-hash",
			Role:         models.RoleClient,
			Gender:       models.GenderMale,
		}
	}

	t.Run("omitted fields stay unchanged", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByID", mock.Anything, id).Return(existing(), nil).Once()
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		name := "Pyotr"
		user, err := NewUserService(repo).Update(ctx, id, UpdateUserRequest{FirstName: &name})

		require.NoError(t, err)
		assert.Equal(t, "Pyotr", user.FirstName)
		assert.Equal(t, "Petrov", user.LastName)
		assert.Equal(t, "ivan@example.com", user.Email)
		assert.Equal(t, "old-hash", user.PasswordHash)
		repo.AssertExpectations(t)
	})

	t.Run("password is re-hashed", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByID", mock.Anything, id).Return(existing(), nil).Once()
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		password := "NewPassword99"
		user, err := NewUserService(repo).Update(ctx, id, UpdateUserRequest{Password: &password})

		require.NoError(t, err)
		assert.NotEqual(t, password, user.PasswordHash)
		assert.True(t, utils.CheckPassword(password, user.PasswordHash))
	})

	t.Run("own email is not a conflict", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByID", mock.Anything, id).Return(existing(), nil).Once()
		repo.On("FindByEmail", mock.Anything, "ivan@example.com").Return(existing(), nil).Once()
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		email := "IVAN@example.com"
		_, err := NewUserService(repo).Update(ctx, id, UpdateUserRequest{Email: &email})

		assert.NoError(t, err)
	})

	t.Run("profile update keeps role", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByID", mock.Anything, id).Return(existing(), nil).Once()
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		role := "admin"
		user, err := NewUserService(repo).UpdateProfile(ctx, id, UpdateUserRequest{Role: &role})

		require.NoError(t, err)
		assert.Equal(t, models.RoleClient, user.Role)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByID", mock.Anything, id).Return(nil, repositories.ErrNotFound).Once()

		_, err := NewUserService(repo).Update(ctx, id, UpdateUserRequest{})

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("Delete", mock.Anything, id).Return(repositories.ErrNotFound).Once()

		err := NewUserService(repo).Delete(context.Background(), id)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		repo := new(mockUserRepo)
		dbErr := errors.New("connection reset")
		repo.On("Delete", mock.Anything, id).Return(dbErr).Once()

		err := NewUserService(repo).Delete(context.Background(), id)

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserService_FindByRole(t *testing.T) {
	repo := new(mockUserRepo)

	_, err := NewUserService(repo).FindByRole(context.Background(), models.Role("superuser"))

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "FindByRole", mock.Anything, mock.Anything)
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("Password1234")
	require.NoError(t, err)
	stored := &models.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: hash, Role: models.RoleClient}

	t.Run("login success", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(stored, nil).Once()

		auth := NewAuthService(NewUserService(repo), stubTokenIssuer{token: "signed"})
		token, err := auth.Login(ctx, LoginRequest{Email: "USER@example.com", Password: "Password1234"})

		require.NoError(t, err)
		assert.Equal(t, "signed", token.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(stored, nil).Once()

		auth := NewAuthService(NewUserService(repo), stubTokenIssuer{token: "signed"})
		_, err := auth.Login(ctx, LoginRequest{Email: "user@example.com", Password: "Wrong1234"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repositories.ErrNotFound).Once()

		auth := NewAuthService(NewUserService(repo), stubTokenIssuer{token: "signed"})
		_, err := auth.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "Password1234"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("register creates a client", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repositories.ErrNotFound).Once()
		repo.On("FindByPhoneNumber", mock.Anything, mock.Anything).Return(nil, repositories.ErrNotFound).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == models.RoleClient
		})).Return(nil).Once()

		auth := NewAuthService(NewUserService(repo), stubTokenIssuer{token: "signed"})
		req := newCreateUserRequest()
		token, err := auth.Register(ctx, RegisterRequest{
			Email:       req.Email,
			Password:    req.Password,
			PhoneNumber: req.PhoneNumber,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Gender:      req.Gender,
			BirthDate:   req.BirthDate,
		})

		require.NoError(t, err)
		assert.Equal(t, "signed", token.Token)
		repo.AssertExpectations(t)
	})

	t.Run("token failure", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(stored, nil).Once()

		issueErr := errors.New("boom")
		auth := NewAuthService(NewUserService(repo), stubTokenIssuer{err: issueErr})
		_, err := auth.Login(ctx, LoginRequest{Email: "user@example.com", Password: "Password1234"})

		assert.ErrorIs(t, err, issueErr)
	})
}

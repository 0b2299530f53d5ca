package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitness_club_backend/internal/middleware"
	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Error utils.APIError `json:"error"`
}

type mockAttendanceService struct{ mock.Mock }

func (m *mockAttendanceService) FindAll(ctx context.Context) ([]models.Attendance, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Attendance)
	return list, args.Error(1)
}
func (m *mockAttendanceService) FindByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.Attendance)
	return a, args.Error(1)
}
func (m *mockAttendanceService) FindByMembershipID(ctx context.Context, id uuid.UUID) ([]models.Attendance, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]models.Attendance)
	return list, args.Error(1)
}
func (m *mockAttendanceService) FindByTrainingID(ctx context.Context, id uuid.UUID) ([]models.Attendance, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]models.Attendance)
	return list, args.Error(1)
}
func (m *mockAttendanceService) Create(ctx context.Context, req services.CreateAttendanceRequest) (*models.Attendance, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*models.Attendance)
	return a, args.Error(1)
}
func (m *mockAttendanceService) Update(ctx context.Context, id uuid.UUID, req services.UpdateAttendanceRequest) (*models.Attendance, error) {
	args := m.Called(ctx, id, req)
	a, _ := args.Get(0).(*models.Attendance)
	return a, args.Error(1)
}
func (m *mockAttendanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockAttendanceService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Attendance, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]models.Attendance)
	return list, args.Error(1)
}
func (m *mockAttendanceService) SignUp(ctx context.Context, userID uuid.UUID, req services.SignUpRequest) (*models.Attendance, error) {
	args := m.Called(ctx, userID, req)
	a, _ := args.Get(0).(*models.Attendance)
	return a, args.Error(1)
}
func (m *mockAttendanceService) Cancel(ctx context.Context, userID, id uuid.UUID) (*models.Attendance, error) {
	args := m.Called(ctx, userID, id)
	a, _ := args.Get(0).(*models.Attendance)
	return a, args.Error(1)
}

type mockNewsService struct{ mock.Mock }

func (m *mockNewsService) GetNews(ctx context.Context, query services.NewsQuery) ([]models.Article, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]models.Article)
	return list, args.Error(1)
}

// asUser stands in for AuthMiddleware.
func asUser(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Next()
	}
}

func perform(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.APIError {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestRespondServiceError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("lookup: %w", services.ErrTrainingNotFound), http.StatusNotFound, utils.ErrCodeNotFound},
		{"uniqueness", services.ErrEmailExists, http.StatusConflict, utils.ErrCodeConflict},
		{"business rule", services.ErrTrainingFull, http.StatusConflict, utils.ErrCodeConflict},
		{"validation", fmt.Errorf("%w: bad date", services.ErrValidation), http.StatusBadRequest, utils.ErrCodeValidationFailed},
		{"news query", services.ErrInvalidNewsQuery, http.StatusBadRequest, utils.ErrCodeValidationFailed},
		{"credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, utils.ErrCodeUnauthorized},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, utils.ErrCodeForbidden},
		{"upstream", services.ErrNewsUnavailable, http.StatusInternalServerError, utils.ErrCodeUpstreamFailed},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, utils.ErrCodeInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/", func(c *gin.Context) { respondServiceError(c, tc.err, "do something") })

			w := perform(engine, http.MethodGet, "/", nil)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, decodeError(t, w).Code)
		})
	}
}

func TestRespondServiceError_DoesNotLeakInternalError(t *testing.T) {
	engine := gin.New()
	engine.GET("/", func(c *gin.Context) { respondServiceError(c, errors.New("pq: password auth failed"), "fetch users") })

	w := perform(engine, http.MethodGet, "/", nil)

	assert.NotContains(t, w.Body.String(), "pq:")
	assert.Equal(t, "Failed to fetch users.", decodeError(t, w).Message)
}

func TestAttendanceHandler_SignUp(t *testing.T) {
	userID := uuid.New()
	req := services.SignUpRequest{MembershipID: uuid.New(), TrainingID: uuid.New()}

	t.Run("created", func(t *testing.T) {
		svc := new(mockAttendanceService)
		created := &models.Attendance{ID: uuid.New(), MembershipID: req.MembershipID, TrainingID: req.TrainingID, Status: models.AttendanceWaiting}
		svc.On("SignUp", mock.Anything, userID, req).Return(created, nil)

		engine := gin.New()
		engine.POST("/attendances", asUser(userID), NewAttendanceHandler(svc).SignUp)
		w := perform(engine, http.MethodPost, "/attendances", req)

		require.Equal(t, http.StatusCreated, w.Code)
		var got models.Attendance
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, models.AttendanceWaiting, got.Status)
		svc.AssertExpectations(t)
	})

	t.Run("full training is a conflict", func(t *testing.T) {
		svc := new(mockAttendanceService)
		svc.On("SignUp", mock.Anything, userID, req).Return(nil, services.ErrTrainingFull)

		engine := gin.New()
		engine.POST("/attendances", asUser(userID), NewAttendanceHandler(svc).SignUp)
		w := perform(engine, http.MethodPost, "/attendances", req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("someone else's membership", func(t *testing.T) {
		svc := new(mockAttendanceService)
		svc.On("SignUp", mock.Anything, userID, req).Return(nil, services.ErrForbidden)

		engine := gin.New()
		engine.POST("/attendances", asUser(userID), NewAttendanceHandler(svc).SignUp)
		w := perform(engine, http.MethodPost, "/attendances", req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no authenticated user", func(t *testing.T) {
		svc := new(mockAttendanceService)

		engine := gin.New()
		engine.POST("/attendances", NewAttendanceHandler(svc).SignUp)
		w := perform(engine, http.MethodPost, "/attendances", req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAttendanceHandler_CancelAndDelete(t *testing.T) {
	userID, id := uuid.New(), uuid.New()
	svc := new(mockAttendanceService)
	svc.On("Cancel", mock.Anything, userID, id).Return(&models.Attendance{ID: id, Status: models.AttendanceCancelled}, nil)
	svc.On("Delete", mock.Anything, id).Return(nil)

	h := NewAttendanceHandler(svc)
	engine := gin.New()
	engine.POST("/attendances/:id/cancel", asUser(userID), h.Cancel)
	engine.DELETE("/admin/attendances/:id", h.DeleteAttendance)

	w := perform(engine, http.MethodPost, "/attendances/"+id.String()+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)

	w = perform(engine, http.MethodDelete, "/admin/attendances/"+id.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = perform(engine, http.MethodDelete, "/admin/attendances/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id", decodeError(t, w).Field)
}

func TestAttendanceHandler_EmptyListIsArray(t *testing.T) {
	userID := uuid.New()
	svc := new(mockAttendanceService)
	svc.On("ListForUser", mock.Anything, userID).Return(nil, nil)

	engine := gin.New()
	engine.GET("/attendances/me", asUser(userID), NewAttendanceHandler(svc).GetMyAttendances)
	w := perform(engine, http.MethodGet, "/attendances/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAttendanceHandler_NotFound(t *testing.T) {
	id := uuid.New()
	svc := new(mockAttendanceService)
	svc.On("FindByID", mock.Anything, id).Return(nil, services.ErrAttendanceNotFound)

	engine := gin.New()
	engine.GET("/admin/attendances/:id", NewAttendanceHandler(svc).GetAttendanceByID)
	w := perform(engine, http.MethodGet, "/admin/attendances/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, services.ErrAttendanceNotFound.Error(), decodeError(t, w).Message)
}

func TestNewsHandler_GetNews(t *testing.T) {
	newEngine := func(svc services.NewsService) *gin.Engine {
		engine := gin.New()
		engine.GET("/news", NewNewsHandler(svc).GetNews)
		return engine
	}

	t.Run("passes parsed query", func(t *testing.T) {
		svc := new(mockNewsService)
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		svc.On("GetNews", mock.Anything, mock.MatchedBy(func(q services.NewsQuery) bool {
			return q.Topic == "sports" && q.Max != nil && *q.Max == 5 && q.From != nil && q.From.Equal(from) && q.To == nil
		})).Return([]models.Article{{Title: "Marathon"}}, nil)

		w := perform(newEngine(svc), http.MethodGet, "/news?topic=sports&max=5&from=2026-01-01T00:00:00Z", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Marathon")
		svc.AssertExpectations(t)
	})

	t.Run("non numeric max", func(t *testing.T) {
		svc := new(mockNewsService)
		w := perform(newEngine(svc), http.MethodGet, "/news?max=abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "max", decodeError(t, w).Field)
		svc.AssertNotCalled(t, "GetNews", mock.Anything, mock.Anything)
	})

	t.Run("malformed to", func(t *testing.T) {
		svc := new(mockNewsService)
		w := perform(newEngine(svc), http.MethodGet, "/news?to=yesterday", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "to", decodeError(t, w).Field)
	})

	t.Run("rejected topic", func(t *testing.T) {
		svc := new(mockNewsService)
		svc.On("GetNews", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: topic", services.ErrInvalidNewsQuery))

		w := perform(newEngine(svc), http.MethodGet, "/news?topic=politics", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("provider down", func(t *testing.T) {
		svc := new(mockNewsService)
		svc.On("GetNews", mock.Anything, mock.Anything).Return(nil, services.ErrNewsUnavailable)

		w := perform(newEngine(svc), http.MethodGet, "/news", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, utils.ErrCodeUpstreamFailed, decodeError(t, w).Code)
	})
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req services.RegisterRequest) (*models.AuthToken, error) {
	args := m.Called(ctx, req)
	token, _ := args.Get(0).(*models.AuthToken)
	return token, args.Error(1)
}
func (m *mockAuthService) Login(ctx context.Context, req services.LoginRequest) (*models.AuthToken, error) {
	args := m.Called(ctx, req)
	token, _ := args.Get(0).(*models.AuthToken)
	return token, args.Error(1)
}

func TestAuthHandler(t *testing.T) {
	svc := new(mockAuthService)
	login := services.LoginRequest{Email: "anna@example.com", Password: "secret1"}
	svc.On("Login", mock.Anything, login).Return(&models.AuthToken{Token: "jwt"}, nil).Once()
	svc.On("Login", mock.Anything, login).Return(nil, services.ErrInvalidCredentials).Once()
	register := services.RegisterRequest{
		Email: "anna@example.com", Password: "secret1", PhoneNumber: "+77001234567",
		FirstName: "Anna", LastName: "Ivanova", Gender: "female", BirthDate: "1995-04-12",
	}
	svc.On("Register", mock.Anything, register).Return(nil, services.ErrEmailExists)

	h := NewAuthHandler(svc)
	engine := gin.New()
	engine.POST("/auth/login", h.Login)
	engine.POST("/auth/register", h.Register)

	w := perform(engine, http.MethodPost, "/auth/login", login)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"jwt"}`, w.Body.String())

	w = perform(engine, http.MethodPost, "/auth/login", login)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(engine, http.MethodPost, "/auth/register", register)
	assert.Equal(t, http.StatusConflict, w.Code)

	svc.AssertExpectations(t)
}

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/validators"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers map[uuid.UUID]*models.User

func (f fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := f[id]; ok {
		return user, nil
	}
	return nil, errors.New("user not found")
}

type errorBody struct {
	Error utils.APIError `json:"error"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedEngine(t *testing.T, users fakeUsers, guards ...gin.HandlerFunc) (*gin.Engine, *utils.JWTManager) {
	t.Helper()
	manager, err := utils.NewJWTManager("test-secret", time.Hour)
	require.NoError(t, err)

	engine := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(manager, users)}, guards...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	engine.GET("/protected", handlers...)
	return engine, manager
}

func doGet(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	client := &models.User{ID: uuid.New(), Role: models.RoleClient}
	engine, manager := newProtectedEngine(t, fakeUsers{client.ID: client})

	t.Run("valid token", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(client.ID, string(client.Role))
		require.NoError(t, err)

		w := doGet(engine, token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), client.ID.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := doGet(engine, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, utils.ErrCodeUnauthorized, body.Error.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(engine, "not-a-jwt").Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := utils.NewJWTManager("other-secret", time.Hour)
		require.NoError(t, err)
		token, err := other.GenerateAccessToken(client.ID, string(client.Role))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, doGet(engine, token).Code)
	})

	t.Run("user deleted after login", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(uuid.New(), "client")
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, doGet(engine, token).Code)
	})
}

func TestRequireRole(t *testing.T) {
	admin := &models.User{ID: uuid.New(), Role: models.RoleAdmin}
	trainer := &models.User{ID: uuid.New(), Role: models.RoleTrainer}
	client := &models.User{ID: uuid.New(), Role: models.RoleClient}
	users := fakeUsers{admin.ID: admin, trainer.ID: trainer, client.ID: client}

	tests := []struct {
		name  string
		guard gin.HandlerFunc
		user  *models.User
		want  int
	}{
		{"admin on admin route", AdminOnly(), admin, http.StatusOK},
		{"client on admin route", AdminOnly(), client, http.StatusForbidden},
		{"trainer on admin route", AdminOnly(), trainer, http.StatusForbidden},
		{"trainer on trainer route", TrainerOnly(), trainer, http.StatusOK},
		{"admin on trainer route", TrainerOnly(), admin, http.StatusForbidden},
		{"admin on staff route", AdminOrTrainer(), admin, http.StatusOK},
		{"trainer on staff route", AdminOrTrainer(), trainer, http.StatusOK},
		{"client on staff route", AdminOrTrainer(), client, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, manager := newProtectedEngine(t, users, tt.guard)
			token, err := manager.GenerateAccessToken(tt.user.ID, string(tt.user.Role))
			require.NoError(t, err)

			assert.Equal(t, tt.want, doGet(engine, token).Code)
		})
	}
}

func TestRequireRoleUsesStoredRole(t *testing.T) {
	// The token still says admin but the account has been demoted.
	demoted := &models.User{ID: uuid.New(), Role: models.RoleClient}
	engine, manager := newProtectedEngine(t, fakeUsers{demoted.ID: demoted}, AdminOnly())
	token, err := manager.GenerateAccessToken(demoted.ID, string(models.RoleAdmin))
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doGet(engine, token).Code)
}

func newValidatedEngine(requireAll bool) *gin.Engine {
	engine := gin.New()
	engine.POST("/rooms", ValidateBody(validators.TrainingRoomFields, requireAll), func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusCreated, body)
	})
	return engine
}

func postJSON(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestValidateBody(t *testing.T) {
	t.Run("valid body reaches handler intact", func(t *testing.T) {
		w := postJSON(newValidatedEngine(true), `{"name":"Yoga","capacity":12}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"Yoga"`)
	})

	t.Run("missing field on create", func(t *testing.T) {
		w := postJSON(newValidatedEngine(true), `{"name":"Yoga"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "capacity", body.Error.Field)
		assert.Contains(t, body.Error.Message, "capacity")
	})

	t.Run("absent field allowed on update", func(t *testing.T) {
		w := postJSON(newValidatedEngine(false), `{"capacity":30}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid present field on update", func(t *testing.T) {
		w := postJSON(newValidatedEngine(false), `{"capacity":-3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "capacity", body.Error.Field)
	})

	t.Run("not a JSON object", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, postJSON(newValidatedEngine(false), `[1,2]`).Code)
		assert.Equal(t, http.StatusBadRequest, postJSON(newValidatedEngine(false), ``).Code)
	})
}

func TestValidateID(t *testing.T) {
	engine := gin.New()
	engine.GET("/rooms/:id", ValidateID("id"), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms/42", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"id"`)
}

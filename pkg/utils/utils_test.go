package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Password1234!")
	require.NoError(t, err)

	assert.NotEqual(t, "Password1234!", hash)
	assert.True(t, CheckPassword("Password1234!", hash))
	assert.False(t, CheckPassword("Password1234", hash))
}

func TestJWT(t *testing.T) {
	manager, err := NewJWTManager("supersecret", time.Hour)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := manager.GenerateAccessToken(userID, "admin")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	other, err := NewJWTManager("wrongsecret", time.Hour)
	require.NoError(t, err)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	manager, err := NewJWTManager("supersecret", time.Minute)
	require.NoError(t, err)
	manager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := manager.GenerateAccessToken(uuid.New(), "client")
	require.NoError(t, err)

	manager.now = time.Now
	_, err = manager.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTRejectsGarbage(t *testing.T) {
	manager, err := NewJWTManager("supersecret", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultAccessTokenTTL, manager.ttl)

	_, err = manager.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestNewJWTManagerEmptySecret(t *testing.T) {
	_, err := NewJWTManager("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestStrToPositiveInt(t *testing.T) {
	n, err := StrToPositiveInt(" 5 ")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	for _, in := range []string{"0", "-3", "abc", ""} {
		_, err := StrToPositiveInt(in)
		assert.Error(t, err, in)
	}
}

func TestRespondFieldInvalid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondFieldInvalid(c, "email", "Invalid email")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, c.IsAborted())
	assert.JSONEq(t, `{"error":{"code":"VALIDATION_FAILED","message":"Invalid email","field":"email"}}`, rec.Body.String())
}

func TestInitLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	initLogger(&buf, "debug", "production")

	LogInfo("hello", map[string]interface{}{"k": "v"})
	assert.True(t, strings.Contains(buf.String(), `"message":"hello"`))
	assert.True(t, strings.Contains(buf.String(), `"k":"v"`))
}

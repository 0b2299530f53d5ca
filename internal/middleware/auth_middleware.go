package middleware

import (
	"context"
	"net/http"
	"strings"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextUser     = "user"
)

// TokenValidator parses and verifies an access token. *utils.JWTManager satisfies it.
type TokenValidator interface {
	ValidateToken(tokenString string) (*utils.Claims, error)
}

// UserFinder loads the account behind a token.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

func unauthorized(c *gin.Context, message string) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, message, ""))
}

// AuthMiddleware creates a Gin middleware for JWT authentication.
// The token must be valid and its user must still exist.
func AuthMiddleware(tokens TokenValidator, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			unauthorized(c, "Invalid authorization header format. Use Bearer <token>")
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			utils.LogDebug("Token rejected", map[string]interface{}{"reason": err.Error()})
			unauthorized(c, "Invalid or expired token")
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			unauthorized(c, "User for this token no longer exists")
			return
		}

		// Set user information in the context for downstream handlers
		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Set(ContextUser, user)

		c.Next()
	}
}

// RequireRole creates a Gin middleware for role-based authorization.
// It checks if the authenticated user's role is one of the allowed roles.
func RequireRole(allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextUserRole)
		if !exists {
			unauthorized(c, "Authentication required")
			return
		}
		role, _ := value.(models.Role)

		for _, r := range allowedRoles {
			if role == r {
				c.Next()
				return
			}
		}

		names := make([]string, len(allowedRoles))
		for i, r := range allowedRoles {
			names[i] = string(r)
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden,
			"You do not have permission to access this resource", "Required roles: "+strings.Join(names, ", ")))
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

func TrainerOnly() gin.HandlerFunc {
	return RequireRole(models.RoleTrainer)
}

func AdminOrTrainer() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin, models.RoleTrainer)
}

// CurrentUserID returns the id stored by AuthMiddleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

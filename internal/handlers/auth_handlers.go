package handlers

import (
	"net/http"

	"fitness_club_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// Register godoc
// @Summary      Register a client account
// @Description  Creates a user with the client role and returns an access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body services.RegisterRequest true "New account"
// @Success      201  {object}  models.AuthToken
// @Failure      400  {object}  utils.APIError "A field is missing or invalid"
// @Failure      409  {object}  utils.APIError "Email or phone number already registered"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if !bindJSON(c, &req, "Register") {
		return
	}

	token, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "register user")
		return
	}
	c.JSON(http.StatusCreated, token)
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body services.LoginRequest true "Email and password"
// @Success      200  {object}  models.AuthToken
// @Failure      400  {object}  utils.APIError
// @Failure      401  {object}  utils.APIError "Invalid email or password"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if !bindJSON(c, &req, "Login") {
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "login")
		return
	}
	c.JSON(http.StatusOK, token)
}

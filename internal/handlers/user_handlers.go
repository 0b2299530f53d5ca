package handlers

import (
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us services.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// GetUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.User
// @Failure      401  {object}  utils.APIError
// @Failure      403  {object}  utils.APIError
// @Router       /admin/users/all [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "fetch users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      400  {object}  utils.APIError
// @Failure      404  {object}  utils.APIError
// @Router       /admin/users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByEmail godoc
// @Summary      Find a user by email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  models.User
// @Failure      404    {object}  utils.APIError
// @Router       /admin/users/email/{email} [get]
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userService.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondServiceError(c, err, "fetch user by email")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByPhoneNumber godoc
// @Summary      Find a user by phone number
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        phone-number  path      string  true  "Phone number"
// @Success      200           {object}  models.User
// @Failure      404           {object}  utils.APIError
// @Router       /admin/users/phone-number/{phone-number} [get]
func (h *UserHandler) GetUserByPhoneNumber(c *gin.Context) {
	user, err := h.userService.FindByPhoneNumber(c.Request.Context(), c.Param("phone-number"))
	if err != nil {
		respondServiceError(c, err, "fetch user by phone number")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUsersByRole godoc
// @Summary      List users with a role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role  path      string  true  "client, trainer or admin"
// @Success      200   {array}   models.User
// @Failure      400   {object}  utils.APIError
// @Router       /admin/users/role/{role} [get]
func (h *UserHandler) GetUsersByRole(c *gin.Context) {
	users, err := h.userService.FindByRole(c.Request.Context(), models.Role(c.Param("role")))
	if err != nil {
		respondServiceError(c, err, "fetch users by role")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user  body      services.CreateUserRequest  true  "New user"
// @Success      201   {object}  models.User
// @Failure      400   {object}  utils.APIError
// @Failure      409   {object}  utils.APIError
// @Router       /admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if !bindJSON(c, &req, "CreateUser") {
		return
	}
	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Only the fields present in the body are changed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "User ID"
// @Param        user  body      services.UpdateUserRequest  true  "Fields to change"
// @Success      200   {object}  models.User
// @Failure      400   {object}  utils.APIError
// @Failure      404   {object}  utils.APIError
// @Failure      409   {object}  utils.APIError
// @Router       /admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req services.UpdateUserRequest
	if !bindJSON(c, &req, "UpdateUser") {
		return
	}
	user, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  utils.APIError
// @Router       /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMe godoc
// @Summary      Current user's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  utils.APIError
// @Router       /user/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.userService.FindByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "fetch profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary      Update own profile
// @Description  The role cannot be changed here.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user  body      services.UpdateUserRequest  true  "Fields to change"
// @Success      200   {object}  models.User
// @Failure      400   {object}  utils.APIError
// @Failure      409   {object}  utils.APIError
// @Router       /user/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.UpdateUserRequest
	if !bindJSON(c, &req, "UpdateMe") {
		return
	}
	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "update profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

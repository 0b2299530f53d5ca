package handlers

import (
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// TrainerHandler holds the trainer service.
type TrainerHandler struct {
	trainerService services.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(ts services.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: ts}
}

// GetTrainers godoc
// @Summary      List trainer records
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Trainer
// @Router       /admin/trainers/all [get]
func (h *TrainerHandler) GetTrainers(c *gin.Context) {
	trainers, err := h.trainerService.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "fetch trainers")
		return
	}
	if trainers == nil {
		trainers = []models.Trainer{}
	}
	c.JSON(http.StatusOK, trainers)
}

// GetTrainerByID godoc
// @Summary      Get a trainer record
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trainer ID"
// @Success      200  {object}  models.Trainer
// @Failure      404  {object}  utils.APIError
// @Router       /admin/trainers/{id} [get]
func (h *TrainerHandler) GetTrainerByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	trainer, err := h.trainerService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "fetch trainer")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// GetTrainerByUserID godoc
// @Summary      Get the trainer record of a user
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  models.Trainer
// @Failure      404     {object}  utils.APIError
// @Router       /admin/trainers/user/{userId} [get]
func (h *TrainerHandler) GetTrainerByUserID(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	trainer, err := h.trainerService.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "fetch trainer by user")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// CreateTrainer godoc
// @Summary      Create a trainer profile for a user
// @Description  A client account is promoted to the trainer role.
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trainer  body      services.CreateTrainerRequest  true  "Trainer"
// @Success      201      {object}  models.Trainer
// @Failure      404      {object}  utils.APIError "User not found"
// @Failure      409      {object}  utils.APIError "User already has a trainer profile"
// @Router       /admin/trainers [post]
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req services.CreateTrainerRequest
	if !bindJSON(c, &req, "CreateTrainer") {
		return
	}
	trainer, err := h.trainerService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "create trainer")
		return
	}
	c.JSON(http.StatusCreated, trainer)
}

// UpdateTrainer godoc
// @Summary      Update a trainer record
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                         true  "Trainer ID"
// @Param        trainer  body      services.UpdateTrainerRequest  true  "Fields to change"
// @Success      200      {object}  models.Trainer
// @Failure      404      {object}  utils.APIError
// @Router       /admin/trainers/{id} [put]
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req services.UpdateTrainerRequest
	if !bindJSON(c, &req, "UpdateTrainer") {
		return
	}
	trainer, err := h.trainerService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "update trainer")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// DeleteTrainer godoc
// @Summary      Delete a trainer record
// @Tags         trainers
// @Security     BearerAuth
// @Param        id   path  string  true  "Trainer ID"
// @Success      204
// @Failure      404  {object}  utils.APIError
// @Router       /admin/trainers/{id} [delete]
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.trainerService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete trainer")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProfiles godoc
// @Summary      Trainer catalogue
// @Tags         catalogue
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.TrainerProfile
// @Router       /trainers/all [get]
func (h *TrainerHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.trainerService.ListProfiles(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "fetch trainer profiles")
		return
	}
	if profiles == nil {
		profiles = []models.TrainerProfile{}
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfile godoc
// @Summary      Trainer catalogue entry
// @Tags         catalogue
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trainer ID"
// @Success      200  {object}  models.TrainerProfile
// @Failure      404  {object}  utils.APIError
// @Router       /trainers/{id} [get]
func (h *TrainerHandler) GetProfile(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	profile, err := h.trainerService.GetProfile(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "fetch trainer profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetMe godoc
// @Summary      Own trainer record
// @Tags         trainer-self
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Trainer
// @Failure      404  {object}  utils.APIError "No trainer profile for this account"
// @Router       /trainer/me [get]
func (h *TrainerHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	trainer, err := h.trainerService.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "fetch own trainer profile")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// UpdateMe godoc
// @Summary      Update own trainer description
// @Tags         trainer-self
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trainer  body      services.UpdateTrainerRequest  true  "Only description is used"
// @Success      200      {object}  models.Trainer
// @Router       /trainer/me [put]
func (h *TrainerHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.UpdateTrainerRequest
	if !bindJSON(c, &req, "UpdateOwnTrainer") {
		return
	}
	trainer, err := h.trainerService.UpdateOwn(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "update own trainer profile")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

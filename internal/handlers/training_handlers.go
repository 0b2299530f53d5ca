package handlers

import (
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// TrainingHandler holds the training service.
type TrainingHandler struct {
	trainingService services.TrainingService
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(ts services.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: ts}
}

func respondTrainings(c *gin.Context, trainings []models.Training, err error, action string) {
	if err != nil {
		respondServiceError(c, err, action)
		return
	}
	if trainings == nil {
		trainings = []models.Training{}
	}
	c.JSON(http.StatusOK, trainings)
}

// GetTrainings godoc
// @Summary      List trainings
// @Tags         trainings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Training
// @Router       /admin/trainings/all [get]
func (h *TrainingHandler) GetTrainings(c *gin.Context) {
	trainings, err := h.trainingService.FindAll(c.Request.Context())
	respondTrainings(c, trainings, err, "fetch trainings")
}

// GetTrainingByID godoc
// @Summary      Get a training
// @Tags         trainings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Training ID"
// @Success      200  {object}  models.Training
// @Failure      404  {object}  utils.APIError
// @Router       /admin/trainings/{id} [get]
func (h *TrainingHandler) GetTrainingByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	training, err := h.trainingService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "fetch training")
		return
	}
	c.JSON(http.StatusOK, training)
}

// GetTrainingsByRoom godoc
// @Summary      List trainings in a room
// @Tags         trainings
// @Produce      json
// @Security     BearerAuth
// @Param        roomId  path     string  true  "Room ID"
// @Success      200     {array}  models.Training
// @Router       /admin/trainings/room/{roomId} [get]
func (h *TrainingHandler) GetTrainingsByRoom(c *gin.Context) {
	roomID, ok := parseUUIDParam(c, "roomId")
	if !ok {
		return
	}
	trainings, err := h.trainingService.FindByRoomID(c.Request.Context(), roomID)
	respondTrainings(c, trainings, err, "fetch trainings by room")
}

// GetTrainingsByTrainer godoc
// @Summary      List trainings led by a trainer
// @Tags         trainings
// @Produce      json
// @Security     BearerAuth
// @Param        trainerId  path     string  true  "Trainer ID"
// @Success      200        {array}  models.Training
// @Router       /admin/trainings/trainer/{trainerId} [get]
func (h *TrainingHandler) GetTrainingsByTrainer(c *gin.Context) {
	trainerID, ok := parseUUIDParam(c, "trainerId")
	if !ok {
		return
	}
	trainings, err := h.trainingService.FindByTrainerID(c.Request.Context(), trainerID)
	respondTrainings(c, trainings, err, "fetch trainings by trainer")
}

// CreateTraining godoc
// @Summary      Schedule a training
// @Tags         trainings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        training  body      services.CreateTrainingRequest  true  "Training"
// @Success      201       {object}  models.Training
// @Failure      400       {object}  utils.APIError
// @Failure      404       {object}  utils.APIError "Room or trainer not found"
// @Router       /admin/trainings [post]
func (h *TrainingHandler) CreateTraining(c *gin.Context) {
	var req services.CreateTrainingRequest
	if !bindJSON(c, &req, "CreateTraining") {
		return
	}
	training, err := h.trainingService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "create training")
		return
	}
	c.JSON(http.StatusCreated, training)
}

// UpdateTraining godoc
// @Summary      Update a training
// @Tags         trainings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string                          true  "Training ID"
// @Param        training  body      services.UpdateTrainingRequest  true  "Fields to change"
// @Success      200       {object}  models.Training
// @Failure      404       {object}  utils.APIError
// @Router       /admin/trainings/{id} [put]
func (h *TrainingHandler) UpdateTraining(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req services.UpdateTrainingRequest
	if !bindJSON(c, &req, "UpdateTraining") {
		return
	}
	training, err := h.trainingService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "update training")
		return
	}
	c.JSON(http.StatusOK, training)
}

// DeleteTraining godoc
// @Summary      Delete a training
// @Tags         trainings
// @Security     BearerAuth
// @Param        id   path  string  true  "Training ID"
// @Success      204
// @Failure      404  {object}  utils.APIError
// @Router       /admin/trainings/{id} [delete]
func (h *TrainingHandler) DeleteTraining(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.trainingService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete training")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUpcoming godoc
// @Summary      Upcoming trainings with free places
// @Tags         catalogue
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.TrainingDetails
// @Router       /trainings/all [get]
func (h *TrainingHandler) ListUpcoming(c *gin.Context) {
	details, err := h.trainingService.ListUpcoming(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "fetch upcoming trainings")
		return
	}
	if details == nil {
		details = []models.TrainingDetails{}
	}
	c.JSON(http.StatusOK, details)
}

// GetDetails godoc
// @Summary      Training catalogue entry
// @Tags         catalogue
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Training ID"
// @Success      200  {object}  models.TrainingDetails
// @Failure      404  {object}  utils.APIError
// @Router       /trainings/{id} [get]
func (h *TrainingHandler) GetDetails(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	details, err := h.trainingService.GetDetails(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "fetch training details")
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetOwnTrainings godoc
// @Summary      Trainings led by the current trainer
// @Tags         trainer-self
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Training
// @Router       /trainer/trainings [get]
func (h *TrainingHandler) GetOwnTrainings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	trainings, err := h.trainingService.ListForTrainer(c.Request.Context(), userID)
	respondTrainings(c, trainings, err, "fetch own trainings")
}

// CreateOwnTraining godoc
// @Summary      Schedule a training as the current trainer
// @Tags         trainer-self
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        training  body      services.TrainerTrainingRequest  true  "Room and date"
// @Success      201       {object}  models.Training
// @Router       /trainer/trainings [post]
func (h *TrainingHandler) CreateOwnTraining(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.TrainerTrainingRequest
	if !bindJSON(c, &req, "CreateOwnTraining") {
		return
	}
	training, err := h.trainingService.CreateForTrainer(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "create own training")
		return
	}
	c.JSON(http.StatusCreated, training)
}

// UpdateOwnTraining godoc
// @Summary      Update one of the current trainer's trainings
// @Tags         trainer-self
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string                           true  "Training ID"
// @Param        training  body      services.TrainerTrainingRequest  true  "Fields to change"
// @Success      200       {object}  models.Training
// @Failure      403       {object}  utils.APIError "Training belongs to another trainer"
// @Router       /trainer/trainings/{id} [put]
func (h *TrainingHandler) UpdateOwnTraining(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req services.TrainerTrainingRequest
	if !bindJSON(c, &req, "UpdateOwnTraining") {
		return
	}
	training, err := h.trainingService.UpdateForTrainer(c.Request.Context(), userID, id, req)
	if err != nil {
		respondServiceError(c, err, "update own training")
		return
	}
	c.JSON(http.StatusOK, training)
}

// DeleteOwnTraining godoc
// @Summary      Delete one of the current trainer's trainings
// @Tags         trainer-self
// @Security     BearerAuth
// @Param        id   path  string  true  "Training ID"
// @Success      204
// @Failure      403  {object}  utils.APIError
// @Router       /trainer/trainings/{id} [delete]
func (h *TrainingHandler) DeleteOwnTraining(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.trainingService.DeleteForTrainer(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err, "delete own training")
		return
	}
	c.Status(http.StatusNoContent)
}

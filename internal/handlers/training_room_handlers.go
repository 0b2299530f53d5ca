package handlers

import (
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TrainingRoomHandler holds the training room service.
type TrainingRoomHandler struct {
	roomService services.TrainingRoomService
}

// NewTrainingRoomHandler creates a new TrainingRoomHandler.
func NewTrainingRoomHandler(rs services.TrainingRoomService) *TrainingRoomHandler {
	return &TrainingRoomHandler{roomService: rs}
}

// GetTrainingRooms godoc
// @Summary      List training rooms
// @Tags         training-rooms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.TrainingRoom
// @Router       /admin/training-rooms/all [get]
func (h *TrainingRoomHandler) GetTrainingRooms(c *gin.Context) {
	rooms, err := h.roomService.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "fetch training rooms")
		return
	}
	if rooms == nil {
		rooms = []models.TrainingRoom{}
	}
	c.JSON(http.StatusOK, rooms)
}

// GetTrainingRoomByID godoc
// @Summary      Get a training room
// @Tags         training-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room ID"
// @Success      200  {object}  models.TrainingRoom
// @Failure      404  {object}  utils.APIError
// @Router       /admin/training-rooms/{id} [get]
func (h *TrainingRoomHandler) GetTrainingRoomByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	room, err := h.roomService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "fetch training room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetTrainingRoomByName godoc
// @Summary      Find a training room by name
// @Tags         training-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Room name"
// @Success      200   {object}  models.TrainingRoom
// @Failure      404   {object}  utils.APIError
// @Router       /admin/training-rooms/name/{name} [get]
func (h *TrainingRoomHandler) GetTrainingRoomByName(c *gin.Context) {
	room, err := h.roomService.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err, "fetch training room by name")
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetTrainingRoomsByCapacity godoc
// @Summary      List rooms with an exact capacity
// @Tags         training-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        capacity  path      int  true  "Capacity"
// @Success      200       {array}   models.TrainingRoom
// @Failure      400       {object}  utils.APIError
// @Router       /admin/training-rooms/capacity/{capacity} [get]
func (h *TrainingRoomHandler) GetTrainingRoomsByCapacity(c *gin.Context) {
	capacity, err := utils.StrToPositiveInt(c.Param("capacity"))
	if err != nil {
		utils.RespondFieldInvalid(c, "capacity", "capacity must be a positive integer")
		return
	}
	rooms, err := h.roomService.FindByCapacity(c.Request.Context(), capacity)
	if err != nil {
		respondServiceError(c, err, "fetch training rooms by capacity")
		return
	}
	if rooms == nil {
		rooms = []models.TrainingRoom{}
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateTrainingRoom godoc
// @Summary      Create a training room
// @Tags         training-rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        room  body      services.CreateTrainingRoomRequest  true  "Room"
// @Success      201   {object}  models.TrainingRoom
// @Failure      400   {object}  utils.APIError
// @Failure      409   {object}  utils.APIError
// @Router       /admin/training-rooms [post]
func (h *TrainingRoomHandler) CreateTrainingRoom(c *gin.Context) {
	var req services.CreateTrainingRoomRequest
	if !bindJSON(c, &req, "CreateTrainingRoom") {
		return
	}
	room, err := h.roomService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "create training room")
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateTrainingRoom godoc
// @Summary      Update a training room
// @Tags         training-rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                              true  "Room ID"
// @Param        room  body      services.UpdateTrainingRoomRequest  true  "Fields to change"
// @Success      200   {object}  models.TrainingRoom
// @Failure      404   {object}  utils.APIError
// @Failure      409   {object}  utils.APIError
// @Router       /admin/training-rooms/{id} [put]
func (h *TrainingRoomHandler) UpdateTrainingRoom(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req services.UpdateTrainingRoomRequest
	if !bindJSON(c, &req, "UpdateTrainingRoom") {
		return
	}
	room, err := h.roomService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "update training room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteTrainingRoom godoc
// @Summary      Delete a training room
// @Tags         training-rooms
// @Security     BearerAuth
// @Param        id   path  string  true  "Room ID"
// @Success      204
// @Failure      404  {object}  utils.APIError
// @Router       /admin/training-rooms/{id} [delete]
func (h *TrainingRoomHandler) DeleteTrainingRoom(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.roomService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete training room")
		return
	}
	c.Status(http.StatusNoContent)
}

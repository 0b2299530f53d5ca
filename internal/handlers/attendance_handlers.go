package handlers

import (
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler holds the attendance service.
type AttendanceHandler struct {
	attendanceService services.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(as services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: as}
}

func respondAttendances(c *gin.Context, attendances []models.Attendance, err error, action string) {
	if err != nil {
		respondServiceError(c, err, action)
		return
	}
	if attendances == nil {
		attendances = []models.Attendance{}
	}
	c.JSON(http.StatusOK, attendances)
}

// GetAttendances godoc
// @Summary      List attendances
// @Tags         attendances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Attendance
// @Router       /admin/attendances/all [get]
func (h *AttendanceHandler) GetAttendances(c *gin.Context) {
	attendances, err := h.attendanceService.FindAll(c.Request.Context())
	respondAttendances(c, attendances, err, "fetch attendances")
}

// GetAttendanceByID godoc
// @Summary      Get an attendance
// @Tags         attendances
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Attendance ID"
// @Success      200  {object}  models.Attendance
// @Failure      404  {object}  utils.APIError
// @Router       /admin/attendances/{id} [get]
func (h *AttendanceHandler) GetAttendanceByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	attendance, err := h.attendanceService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "fetch attendance")
		return
	}
	c.JSON(http.StatusOK, attendance)
}

// GetAttendancesByMembership godoc
// @Summary      List attendances of a membership
// @Tags         attendances
// @Produce      json
// @Security     BearerAuth
// @Param        membershipId  path     string  true  "Membership ID"
// @Success      200           {array}  models.Attendance
// @Router       /admin/attendances/membership/{membershipId} [get]
func (h *AttendanceHandler) GetAttendancesByMembership(c *gin.Context) {
	membershipID, ok := parseUUIDParam(c, "membershipId")
	if !ok {
		return
	}
	attendances, err := h.attendanceService.FindByMembershipID(c.Request.Context(), membershipID)
	respondAttendances(c, attendances, err, "fetch attendances by membership")
}

// GetAttendancesByTraining godoc
// @Summary      List attendances of a training
// @Tags         attendances
// @Produce      json
// @Security     BearerAuth
// @Param        trainingId  path     string  true  "Training ID"
// @Success      200         {array}  models.Attendance
// @Router       /admin/attendances/training/{trainingId} [get]
func (h *AttendanceHandler) GetAttendancesByTraining(c *gin.Context) {
	trainingID, ok := parseUUIDParam(c, "trainingId")
	if !ok {
		return
	}
	attendances, err := h.attendanceService.FindByTrainingID(c.Request.Context(), trainingID)
	respondAttendances(c, attendances, err, "fetch attendances by training")
}

// CreateAttendance godoc
// @Summary      Create an attendance
// @Tags         attendances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        attendance  body      services.CreateAttendanceRequest  true  "Attendance"
// @Success      201         {object}  models.Attendance
// @Failure      404         {object}  utils.APIError "Membership or training not found"
// @Router       /admin/attendances [post]
func (h *AttendanceHandler) CreateAttendance(c *gin.Context) {
	var req services.CreateAttendanceRequest
	if !bindJSON(c, &req, "CreateAttendance") {
		return
	}
	attendance, err := h.attendanceService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "create attendance")
		return
	}
	c.JSON(http.StatusCreated, attendance)
}

// UpdateAttendance godoc
// @Summary      Update an attendance
// @Description  Typically used to mark a member attended or absent.
// @Tags         attendances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string                            true  "Attendance ID"
// @Param        attendance  body      services.UpdateAttendanceRequest  true  "Fields to change"
// @Success      200         {object}  models.Attendance
// @Failure      404         {object}  utils.APIError
// @Router       /admin/attendances/{id} [put]
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req services.UpdateAttendanceRequest
	if !bindJSON(c, &req, "UpdateAttendance") {
		return
	}
	attendance, err := h.attendanceService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "update attendance")
		return
	}
	c.JSON(http.StatusOK, attendance)
}

// DeleteAttendance godoc
// @Summary      Delete an attendance
// @Tags         attendances
// @Security     BearerAuth
// @Param        id   path  string  true  "Attendance ID"
// @Success      204
// @Failure      404  {object}  utils.APIError
// @Router       /admin/attendances/{id} [delete]
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.attendanceService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete attendance")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMyAttendances godoc
// @Summary      Current user's sign-ups
// @Tags         attendances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Attendance
// @Router       /attendances/me [get]
func (h *AttendanceHandler) GetMyAttendances(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	attendances, err := h.attendanceService.ListForUser(c.Request.Context(), userID)
	respondAttendances(c, attendances, err, "fetch own attendances")
}

// SignUp godoc
// @Summary      Sign up for a training
// @Description  Uses one session of the given membership.
// @Tags         attendances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        signup  body      services.SignUpRequest  true  "Membership and training"
// @Success      201     {object}  models.Attendance
// @Failure      403     {object}  utils.APIError "Membership belongs to another user"
// @Failure      409     {object}  utils.APIError "Full, past, inactive, out of sessions or already signed up"
// @Router       /attendances [post]
func (h *AttendanceHandler) SignUp(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.SignUpRequest
	if !bindJSON(c, &req, "SignUp") {
		return
	}
	attendance, err := h.attendanceService.SignUp(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "sign up for training")
		return
	}
	c.JSON(http.StatusCreated, attendance)
}

// Cancel godoc
// @Summary      Cancel a sign-up
// @Description  Only waiting sign-ups can be cancelled; the session is returned.
// @Tags         attendances
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Attendance ID"
// @Success      200  {object}  models.Attendance
// @Failure      403  {object}  utils.APIError
// @Failure      409  {object}  utils.APIError
// @Router       /attendances/{id}/cancel [post]
func (h *AttendanceHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	attendance, err := h.attendanceService.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(c, err, "cancel attendance")
		return
	}
	c.JSON(http.StatusOK, attendance)
}

package handlers

import (
	"errors"
	"net/http"

	"fitness_club_backend/internal/middleware"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var notFoundErrors = []error{
	services.ErrUserNotFound,
	services.ErrTrainerNotFound,
	services.ErrTrainingRoomNotFound,
	services.ErrTrainingNotFound,
	services.ErrMembershipTypeNotFound,
	services.ErrMembershipNotFound,
	services.ErrAttendanceNotFound,
}

var conflictErrors = []error{
	services.ErrEmailExists,
	services.ErrPhoneNumberExists,
	services.ErrTrainerExists,
	services.ErrTrainingRoomNameExists,
	services.ErrMembershipTypeNameExists,
	services.ErrMembershipInactive,
	services.ErrNoSessionsLeft,
	services.ErrTrainingFull,
	services.ErrTrainingInPast,
	services.ErrAlreadySignedUp,
	services.ErrAttendanceNotCancellable,
}

func isAny(err error, targets []error) (error, bool) {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target, true
		}
	}
	return nil, false
}

// respondServiceError maps a service error to its HTTP response. action is used for logs and the 500 message.
func respondServiceError(c *gin.Context, err error, action string) {
	utils.LogError(err, action+": service error")

	if target, ok := isAny(err, notFoundErrors); ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, target.Error(), err.Error()))
		return
	}
	if target, ok := isAny(err, conflictErrors); ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, target.Error(), err.Error()))
		return
	}

	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidNewsQuery):
		utils.RespondValidationFailed(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid email or password.", ""))
	case errors.Is(err, services.ErrForbidden):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "You do not have permission to modify this resource.", err.Error()))
	case errors.Is(err, services.ErrNewsUnavailable):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeUpstreamFailed, "News provider request failed.", "Upstream error"))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to "+action+".", "Internal error"))
	}
}

// parseUUIDParam reads a UUID path parameter, answering 400 when it is malformed.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondFieldInvalid(c, name, name+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the request body into req, answering 400 on failure.
func bindJSON(c *gin.Context, req interface{}, action string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.LogError(err, action+": Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return false
	}
	return true
}

// currentUserID returns the authenticated user's id, answering 401 if AuthMiddleware did not run.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", "Missing user ID in context"))
		return uuid.Nil, false
	}
	return id, true
}

package services

import "errors"

// --- Custom Service Errors ---
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrTrainerNotFound        = errors.New("trainer not found")
	ErrTrainingRoomNotFound   = errors.New("training room not found")
	ErrTrainingNotFound       = errors.New("training not found")
	ErrMembershipTypeNotFound = errors.New("membership type not found")
	ErrMembershipNotFound     = errors.New("membership not found")
	ErrAttendanceNotFound     = errors.New("attendance not found")

	ErrEmailExists              = errors.New("email already exists")
	ErrPhoneNumberExists        = errors.New("phone number already exists")
	ErrTrainerExists            = errors.New("user already has a trainer profile")
	ErrTrainingRoomNameExists   = errors.New("training room name already exists")
	ErrMembershipTypeNameExists = errors.New("membership type name already exists")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrValidation         = errors.New("validation error")
	ErrForbidden          = errors.New("operation not permitted for this user")

	ErrMembershipInactive       = errors.New("membership is not active")
	ErrNoSessionsLeft           = errors.New("membership has no sessions left")
	ErrTrainingFull             = errors.New("training has no free places")
	ErrTrainingInPast           = errors.New("training has already started")
	ErrAlreadySignedUp          = errors.New("already signed up for this training")
	ErrAttendanceNotCancellable = errors.New("only waiting attendances can be cancelled")

	ErrInvalidNewsQuery = errors.New("invalid news query")
	ErrNewsUnavailable  = errors.New("news provider unavailable")
)

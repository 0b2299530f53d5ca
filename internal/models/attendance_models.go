package models

import "github.com/google/uuid"

// AttendanceStatus tracks a sign-up through its lifecycle.
type AttendanceStatus string

const (
	AttendanceWaiting   AttendanceStatus = "waiting"
	AttendanceAttended  AttendanceStatus = "attended"
	AttendanceAbsent    AttendanceStatus = "absent"
	AttendanceCancelled AttendanceStatus = "cancelled"
)

// Attendance links a membership to a training
type Attendance struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	MembershipID uuid.UUID        `json:"membershipId" db:"membership_id"`
	TrainingID   uuid.UUID        `json:"trainingId" db:"training_id"`
	Status       AttendanceStatus `json:"status" db:"status"`
}

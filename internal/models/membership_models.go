package models

import (
	"time"

	"github.com/google/uuid"
)

// MembershipType is a purchasable plan
type MembershipType struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Price    float64   `json:"price" db:"price"`
	Days     int       `json:"days" db:"days"`
	Sessions int       `json:"sessions" db:"sessions"`
}

// Membership is a plan bought by a user, valid between StartDate and EndDate
type Membership struct {
	ID                uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"userId" db:"user_id"`
	MembershipTypeID  uuid.UUID `json:"membershipTypeId" db:"membership_type_id"`
	StartDate         time.Time `json:"startDate" db:"start_date"`
	EndDate           time.Time `json:"endDate" db:"end_date"`
	AvailableSessions int       `json:"availableSessions" db:"available_sessions"`
}

// IsActive reports whether the membership window contains at.
func (m *Membership) IsActive(at time.Time) bool {
	return !at.Before(m.StartDate) && at.Before(m.EndDate)
}

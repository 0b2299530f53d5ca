package models

import "github.com/google/uuid"

// Trainer is the coaching profile attached to a user account
type Trainer struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	Description *string   `json:"description,omitempty" db:"description"`
}

// TrainerProfile is a trainer joined with the owning user's name, as shown to members.
type TrainerProfile struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Description *string   `json:"description,omitempty"`
}

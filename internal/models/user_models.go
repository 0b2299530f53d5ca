package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the capability level carried by a user and their token.
type Role string

const (
	RoleClient  Role = "client"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

// Gender of a club member.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// User represents a club member, trainer or administrator account
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	PhoneNumber  string    `json:"phoneNumber" db:"phone_number"`
	PasswordHash string    `json:"-" db:"password_hash"` // '-' means don't send in JSON response
	Role         Role      `json:"role" db:"role"`
	Gender       Gender    `json:"gender" db:"gender"`
	BirthDate    time.Time `json:"birthDate" db:"birth_date"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// FullName joins first and last name for listings.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// AuthToken is returned by login and register.
type AuthToken struct {
	Token string `json:"token"`
}

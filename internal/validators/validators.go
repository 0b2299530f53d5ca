package validators

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// DateTimeLayout is the wire format for dates and date-times, e.g. "2000-01-01 00:00:00".
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"

	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores everything past 72 bytes
)

var (
	validate = validator.New()

	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	nameRegex  = regexp.MustCompile(`^\p{L}[\p{L} '\-]{0,49}$`)
)

// Email checks address syntax.
func Email(email string) bool {
	return validate.Var(email, "required,email,max=255") == nil
}

// Password requires 8-72 characters with at least one upper-case letter, one lower-case letter and one digit.
func Password(password string) bool {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// PhoneNumber accepts 10 to 15 digits with an optional leading "+".
func PhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// PersonName accepts letters, spaces, hyphens and apostrophes, starting with a letter.
func PersonName(name string) bool {
	return nameRegex.MatchString(name) && utf8.RuneCountInString(name) <= 50
}

// EntityName is used for rooms and membership types.
func EntityName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && utf8.RuneCountInString(name) <= 100
}

// PositiveIntString is the path-parameter form of PositiveInt.
func PositiveIntString(value string) bool {
	_, err := utils.StrToPositiveInt(value)
	return err == nil
}

func Gender(gender string) bool {
	switch models.Gender(gender) {
	case models.GenderMale, models.GenderFemale:
		return true
	}
	return false
}

func Role(role string) bool {
	switch models.Role(role) {
	case models.RoleClient, models.RoleTrainer, models.RoleAdmin:
		return true
	}
	return false
}

func AttendanceStatus(status string) bool {
	switch models.AttendanceStatus(status) {
	case models.AttendanceWaiting, models.AttendanceAttended, models.AttendanceAbsent, models.AttendanceCancelled:
		return true
	}
	return false
}

func UUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ParseDateTime accepts DateTimeLayout, a bare DateLayout, or RFC 3339. Results are UTC.
func ParseDateTime(value string) (time.Time, bool) {
	for _, layout := range []string{DateTimeLayout, DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func DateTime(value string) bool {
	_, ok := ParseDateTime(value)
	return ok
}

// BirthDate must parse and must not lie in the future.
func BirthDate(value string) bool {
	t, ok := ParseDateTime(value)
	return ok && !t.After(time.Now())
}

package validators

import (
	"fmt"
	"math"
)

// FieldError names the request field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Check validates a single decoded JSON value.
type Check func(value interface{}) bool

// Field binds a JSON key to its check and the message reported on failure.
type Field struct {
	Name    string
	Check   Check
	Message string
}

// String lifts a string predicate into a Check. Non-string values fail.
func String(fn func(string) bool) Check {
	return func(value interface{}) bool {
		s, ok := value.(string)
		return ok && fn(s)
	}
}

// PositiveInt accepts JSON numbers holding a whole number > 0.
func PositiveInt() Check {
	return func(value interface{}) bool {
		v, ok := value.(float64)
		return ok && v > 0 && v == math.Trunc(v) && v <= math.MaxInt32
	}
}

// NonNegativeInt accepts JSON numbers holding a whole number >= 0.
func NonNegativeInt() Check {
	return func(value interface{}) bool {
		v, ok := value.(float64)
		return ok && v >= 0 && v == math.Trunc(v) && v <= math.MaxInt32
	}
}

// PositiveNumber accepts JSON numbers > 0.
func PositiveNumber() Check {
	return func(value interface{}) bool {
		v, ok := value.(float64)
		return ok && v > 0 && !math.IsInf(v, 0)
	}
}

// OptionalString accepts null or any string.
func OptionalString(maxLen int) Check {
	return func(value interface{}) bool {
		if value == nil {
			return true
		}
		s, ok := value.(string)
		return ok && len(s) <= maxLen
	}
}

// ValidateFields checks body against fields in order and returns the first failure.
// With requireAll every field must be present; otherwise absent fields are skipped.
// Keys not listed in fields are ignored.
func ValidateFields(body map[string]interface{}, fields []Field, requireAll bool) *FieldError {
	for _, f := range fields {
		value, present := body[f.Name]
		if !present {
			if requireAll {
				return &FieldError{Field: f.Name, Reason: "is required"}
			}
			continue
		}
		if !f.Check(value) {
			return &FieldError{Field: f.Name, Reason: f.Message}
		}
	}
	return nil
}

package validation

import (
	"strings"
	"time"
)

// DueDateFormat is the only accepted due date input format.
const DueDateFormat = "2006-01-02"

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// ParseDueDate parses a due date in strict YYYY-MM-DD form. Anything else is
// a format error; the date is never coerced or defaulted.
func (v *Validator) ParseDueDate(s string) (time.Time, error) {
	return time.ParseInLocation(DueDateFormat, strings.TrimSpace(s), time.UTC)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

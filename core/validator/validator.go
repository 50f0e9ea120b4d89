package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"court-reservation-api/core/constants"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult collects field errors for a single request body.
type ValidationResult struct {
	Errors []FieldError `json:"errors"`
}

func NewValidationResult() *ValidationResult {
	return &ValidationResult{Errors: []FieldError{}}
}

func (v *ValidationResult) HasError() bool {
	return len(v.Errors) > 0
}

func (v *ValidationResult) Add(field, message string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

func (v *ValidationResult) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, field+" is required")
	}
}

func (v *ValidationResult) Email(field, value string) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, field+" must be a valid email")
	}
}

func (v *ValidationResult) Date(field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse(constants.DateLayout, value); err != nil {
		v.Add(field, field+" must be a date in YYYY-MM-DD format")
	}
}

func (v *ValidationResult) Time(field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse(constants.TimeLayout, value); err != nil {
		v.Add(field, field+" must be a time in HH:MM:SS format")
	}
}

func (v *ValidationResult) OneOf(field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, field+" must be one of "+strings.Join(allowed, ", "))
}

var rutPattern = regexp.MustCompile(`^[0-9]{7,8}-[0-9kK]$`)

// RUT checks the shape of a Chilean national id ("12345678-9").
func (v *ValidationResult) RUT(field, value string) {
	if value == "" {
		return
	}
	if !rutPattern.MatchString(value) {
		v.Add(field, field+" must look like 12345678-9")
	}
}

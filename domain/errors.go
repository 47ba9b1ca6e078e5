package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Authentication errors
var (
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Resource errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTokenNotFound   = errors.New("token not found")
	ErrProjectNotFound = errors.New("project not found")
)

// Conflict errors
var (
	ErrPhoneTaken       = errors.New("phone number already in use")
	ErrAccessTokenTaken = errors.New("access token already exists")
	ErrProjectCodeTaken = errors.New("project code already exists")
)

// Project hierarchy errors
var (
	ErrProjectCycle         = errors.New("parent assignment would create a cycle")
	ErrParentProjectMissing = errors.New("parent project does not exist")
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates field-level validation failures. It is
// detected before any store call, so a validation failure never leaves a
// partial write behind.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationErrors unwraps err into ValidationErrors if possible.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrMissingFile      = errors.New("file not found")
	ErrRegistryNotFound = errors.New("registry not found")
	ErrThemeNotFound    = errors.New("theme not found")
	ErrInvalidOperation = errors.New("invalid operation")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RegistryError represents a failure loading or persisting a registry file
type RegistryError struct {
	Path   string
	Reason string
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry %s: %s", e.Path, e.Reason)
}

func (e *RegistryError) Is(target error) bool {
	return target == ErrRegistryNotFound
}

// LifecycleError represents an invalid theme state transition
type LifecycleError struct {
	ThemeID string
	Reason  string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("theme %s: %s", e.ThemeID, e.Reason)
}

func (e *LifecycleError) Is(target error) bool {
	return target == ErrInvalidOperation
}

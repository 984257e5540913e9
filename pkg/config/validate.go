package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific run configuration
// field.
type FieldError struct {
	// Field is the flag-style name of the offending field (e.g. "fd").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a run
// configuration. All field errors are collected and reported together.
type ValidationError struct {
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "run configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("run configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("run configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate checks a resolved RunConfig for inconsistent combinations. It
// returns a ValidationError when any rule fails, nil otherwise.
//
// The file descriptor, unix domain socket, and host/port binds are mutually
// exclusive; at most one may be active at launch.
func Validate(cfg *RunConfig) error {
	var errs []FieldError

	if cfg.AppPath == "" {
		errs = append(errs, FieldError{Field: "app", Message: "application path is required"})
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		errs = append(errs, FieldError{Field: "port", Message: fmt.Sprintf("invalid port %d, must be 1-65535", cfg.Port)})
	}
	if cfg.Workers < 1 {
		errs = append(errs, FieldError{Field: "web-concurrency", Message: "worker count must be at least 1"})
	}
	if cfg.FD != FDUnset && cfg.FD < 0 {
		errs = append(errs, FieldError{Field: "fd", Message: fmt.Sprintf("invalid file descriptor %d", cfg.FD)})
	}
	if cfg.FD != FDUnset && cfg.UDS != "" {
		errs = append(errs, FieldError{Field: "fd", Message: "cannot bind to both a file descriptor and a unix domain socket"})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

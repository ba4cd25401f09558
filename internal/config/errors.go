package config

import (
	"errors"
	"fmt"
)

// ErrMissingConfiguration matches any *MissingConfigurationError via errors.Is.
var ErrMissingConfiguration = errors.New("missing configuration")

// MissingConfigurationError reports a required variable that is unset or empty.
type MissingConfigurationError struct {
	Name string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("Missing env var: %s", e.Name)
}

func (e *MissingConfigurationError) Is(target error) bool {
	return target == ErrMissingConfiguration
}

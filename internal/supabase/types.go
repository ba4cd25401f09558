package supabase

import (
	"fmt"
)

// APIError is a non-2xx answer from the project. PostgREST fills Message,
// the auth service fills Msg or ErrorDescription.
type APIError struct {
	StatusCode       int    `json:"-"`
	Code             any    `json:"code,omitempty"`
	Message          string `json:"message,omitempty"`
	Msg              string `json:"msg,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
	Hint             string `json:"hint,omitempty"`
	Details          string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase api error: status %d: %s", e.StatusCode, e.message())
}

func (e *APIError) message() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Msg != "":
		return e.Msg
	default:
		return e.ErrorDescription
	}
}

type HealthStatus struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

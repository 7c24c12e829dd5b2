package apierror

import "fmt"

type APIError struct {
	Message    string `json:"message"`
	Details    string `json:"-"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Details)
	}

	return e.Message
}

func New(message string, details string, status int) *APIError {
	return &APIError{Message: message, Details: details, HTTPStatus: status}
}

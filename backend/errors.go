package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// NetworkError wraps a transport failure: the request never completed.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// NotFoundError is returned for 404 on single-item retrieval.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ValidationError covers 4xx responses, e.g. a missing required field.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("backend rejected request (%d): %s", e.Status, e.Message)
}

// ServerError covers 5xx responses.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("backend failure (%d): %s", e.Status, e.Message)
}

// errorFromResponse maps a non-2xx status onto the error taxonomy, pulling a
// human-readable message out of the body when the API provides one.
func errorFromResponse(status int, resource string, body []byte) error {
	msg := messageFromBody(body)

	switch {
	case status == http.StatusNotFound:
		return &NotFoundError{Resource: resource}
	case status >= 400 && status < 500:
		return &ValidationError{Status: status, Message: msg}
	default:
		return &ServerError{Status: status, Message: msg}
	}
}

func messageFromBody(body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	if len(body) > 0 {
		return string(body)
	}
	return "no detail provided"
}

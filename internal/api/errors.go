package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors callers can match with errors.Is.
var (
	// ErrAuthFailed covers 401 and 403 responses. By the time a caller
	// observes it, the locally held token has already been cleared.
	ErrAuthFailed = errors.New("authentication failed")
	// ErrNotFound covers 404 responses.
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx response that carries the backend's detail message.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError is a 422 response with structured per-field messages.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// errorBody is the FastAPI error envelope. Detail is either a plain string or
// a list of validation errors, so it is decoded lazily.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// parseError converts a non-2xx response body into the richest error the
// payload supports.
func parseError(status int, body []byte) error {
	var envelope errorBody
	detail := ""
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil {
			detail = s
		} else if status == http.StatusUnprocessableEntity {
			var items []validationItem
			if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
				return &ValidationError{Fields: fieldErrors(items)}
			}
		}
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		if detail != "" {
			return fmt.Errorf("%s: %w", detail, ErrAuthFailed)
		}
		return ErrAuthFailed
	case http.StatusNotFound:
		if detail != "" {
			return fmt.Errorf("%s: %w", detail, ErrNotFound)
		}
		return ErrNotFound
	}

	return &Error{StatusCode: status, Detail: detail}
}

// fieldErrors flattens FastAPI's loc paths ("body", "password", ...) into
// field names. The leading segment names the request part and is skipped.
func fieldErrors(items []validationItem) []FieldError {
	fields := make([]FieldError, 0, len(items))
	for _, item := range items {
		field := "request"
		for i := len(item.Loc) - 1; i >= 0; i-- {
			if s, ok := item.Loc[i].(string); ok && s != "body" {
				field = s
				break
			}
		}
		fields = append(fields, FieldError{Field: field, Message: item.Msg})
	}
	return fields
}

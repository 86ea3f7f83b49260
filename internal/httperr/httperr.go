// Package httperr renders request failures as {"detail": ...} JSON bodies.
package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure with a fixed status code and a message safe to show callers.
type Error struct {
	Status  int
	Detail  string
	Headers map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Detail)
}

func New(status int, detail string) *Error {
	return &Error{Status: status, Detail: detail}
}

// WithHeader returns a copy of e that also sets the given response header.
func (e *Error) WithHeader(key, value string) *Error {
	headers := make(map[string]string, len(e.Headers)+1)
	for k, v := range e.Headers {
		headers[k] = v
	}
	headers[key] = value
	return &Error{Status: e.Status, Detail: e.Detail, Headers: headers}
}

// ValidationDetail describes one rejected request parameter.
type ValidationDetail struct {
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Type  string   `json:"type"`
	Input string   `json:"input,omitempty"`
}

// ValidationError is rendered as 422 with a list of details.
type ValidationError struct {
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e.Details[0].Msg)
}

// PathParam builds a ValidationError for a malformed path parameter.
func PathParam(name, input, typ, msg string) *ValidationError {
	return &ValidationError{Details: []ValidationDetail{{
		Loc:   []string{"path", name},
		Msg:   msg,
		Type:  typ,
		Input: input,
	}}}
}

type detailBody struct {
	Detail any `json:"detail"`
}

// Status reports the HTTP status Write would use for err.
func Status(err error) int {
	var he *Error
	if errors.As(err, &he) {
		return he.Status
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// Write renders err. Errors that are neither *Error nor *ValidationError
// become a generic 500 so internals never leak.
func Write(w http.ResponseWriter, err error) {
	var he *Error
	if errors.As(err, &he) {
		for k, v := range he.Headers {
			w.Header().Set(k, v)
		}
		WriteJSON(w, he.Status, detailBody{Detail: he.Detail})
		return
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		WriteJSON(w, http.StatusUnprocessableEntity, detailBody{Detail: ve.Details})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, detailBody{Detail: http.StatusText(http.StatusInternalServerError)})
}

// WriteJSON encodes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here. Error responses
// always share one shape so API consumers know what to expect.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the standard envelope returned for error cases.
//
//	{ "status": "error", "error": "field Name must be at most 100 characters" }
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// OK is the body of a successful call that has nothing else to say.
func OK() Response {
	return Response{Status: StatusOK}
}

// WriteJSON writes data as JSON with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard Response shape.
// Use this for unexpected errors (upstream failures, decode errors, etc.)
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError converts validator.FieldError values into a single
// human-readable Response, one sentence per failing field joined by ", ".
func ValidationError(errs validator.ValidationErrors) Response {
	return Response{
		Status: StatusError,
		Error:  ValidationMessage(errs),
	}
}

// ValidationMessage is the text used by ValidationError. The HTML page
// shows the same text in its error banner.
func ValidationMessage(errs validator.ValidationErrors) string {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "max":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at most %s characters", e.Field(), e.Param()))
		case "url":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid URL", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(errMessages, ", ")
}

package web

// errors.go turns handler failures into user-facing responses.
//
// Every error is logged with its technical detail and request ID, then
// mapped to a short message, a suggested action and a code support staff
// can look up:
//
//	COL001  Column not found      the column index is outside the table
//	ROW001  Row not found         the row position no longer exists
//	REQ001  Invalid request       a path parameter or form could not be parsed
//	RATE001 Too many requests     the per-IP rate limit was exceeded
//	ERR000  Unexpected error      anything else
//
// htmx requests get an HTML fragment, API requests JSON and everything else
// plain text.

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/employee-table/internal/logging"
	"github.com/JonMunkholm/employee-table/internal/web/templates"
)

var (
	errColumnNotFound = errors.New("column not found")
	errRowNotFound    = errors.New("row not found")
	errBadRequest     = errors.New("invalid request")
	errRateLimited    = errors.New("rate limit exceeded")
)

// UserMessage is the client-facing description of an error.
type UserMessage struct {
	Message string
	Action  string
	Code    string
}

// ErrorResponse is the JSON body of an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
	Request string `json:"request_id,omitempty"`
}

var userMessages = []struct {
	err error
	msg UserMessage
}{
	{errColumnNotFound, UserMessage{"Column not found", "Reload the page to refresh the table", "COL001"}},
	{errRowNotFound, UserMessage{"Row not found", "Reload the page to refresh the table", "ROW001"}},
	{errBadRequest, UserMessage{"Invalid request", "Check the submitted values and try again", "REQ001"}},
	{errRateLimited, UserMessage{"Too many requests", "Please wait a moment before trying again", "RATE001"}},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again",
	Code:    "ERR000",
}

// MapError converts err to a user-facing message. Wrapped errors are
// matched with errors.Is.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return defaultMessage
}

// respondError logs err and writes a response suited to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error, status int) {
	msg := MapError(err)

	logging.FromContext(r.Context()).Warn("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", msg.Code,
	)

	switch {
	case isHTMX(r):
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_ = templates.ErrorAlert(msg.Message, msg.Action, msg.Code).Render(r.Context(), w)
	case wantsJSON(r):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Error:   msg.Message,
			Message: msg.Message,
			Action:  msg.Action,
			Code:    msg.Code,
			Request: middleware.GetReqID(r.Context()),
		})
	default:
		http.Error(w, msg.Message+" ("+msg.Code+")", status)
	}
}

// isHTMX checks if the request was issued by htmx.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	return strings.HasPrefix(r.URL.Path, "/api/")
}

package errors

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// ErrorResponse is the body of every failed function call
type ErrorResponse struct {
	Error string `json:"error"`
}

// Render writes err as {"error": message} with its mapped status. Server-side
// failures are logged with their cause; the cause never reaches the caller.
func Render(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", r.URL.Path, "status", status, "err", err)
	} else {
		slog.Debug("Request rejected", "path", r.URL.Path, "status", status, "err", err)
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: Message(err)})
}

// Package api implements the JSON API for component ratings and
// playground snapshots.
package api

import (
	"net/http"

	"plume/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// APIResponse provides a consistent JSON response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess sends a successful JSON response with data.
// Uses rweb's built-in WriteJSON which sets content-type automatically.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

// Health handles GET /api/v1/health
// Reports whether the server and its database are reachable.
func Health(ctx rweb.Context) error {
	if err := models.PingDB(); err != nil {
		logger.LogErr(serr.Wrap(err, "health check failed"))
		return writeError(ctx, http.StatusServiceUnavailable, "database unavailable")
	}
	return writeSuccess(ctx, http.StatusOK, map[string]string{"status": "ok"})
}

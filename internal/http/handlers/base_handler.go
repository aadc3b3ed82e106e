// README: Base handler utilities (response envelope, error mapping).
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"khusela/internal/geo"
	"khusela/internal/maps"
	"khusela/internal/modules/alerts"
	"khusela/internal/modules/assets"
	"khusela/internal/modules/destinations"
	"khusela/internal/modules/routes"
)

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeData(c *gin.Context, status int, data any) {
	c.JSON(status, successResponse{Success: true, Data: data})
}

func writeError(c *gin.Context, status int, errMsg, message string) {
	c.JSON(status, errorResponse{Success: false, Error: errMsg, Message: message})
}

// writePipelineError maps route/weather pipeline failures to status codes:
// bad input 400, no route 404, provider failure 502.
func writePipelineError(c *gin.Context, err error) {
	var upstream *maps.UpstreamError
	switch {
	case errors.Is(err, geo.ErrDecode):
		writeError(c, http.StatusBadRequest, "malformed polyline", err.Error())
	case errors.Is(err, maps.ErrNoRouteFound):
		writeError(c, http.StatusNotFound, "no route found", err.Error())
	case errors.As(err, &upstream):
		// Upstream responses can echo request details, so only a generic
		// message goes to the client; the full error stays in the log.
		log.Printf("upstream provider failed: %v", upstream)
		writeError(c, http.StatusBadGateway, "upstream provider failed",
			"the routing or weather provider did not respond, try again later")
	default:
		log.Printf("pipeline error: %v", err)
		writeError(c, http.StatusInternalServerError, "internal error", "")
	}
}

func writeRoutesError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, routes.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, routes.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error(), "")
	default:
		writeError(c, http.StatusInternalServerError, "internal error", "")
	}
}

func writeAlertsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, alerts.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, alerts.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error(), "")
	default:
		writeError(c, http.StatusInternalServerError, "internal error", "")
	}
}

func writeAssetsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assets.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, assets.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, assets.ErrAlreadyProcessed):
		writeError(c, http.StatusConflict, err.Error(), "")
	default:
		writeError(c, http.StatusInternalServerError, "internal error", "")
	}
}

func writeDestinationsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, destinations.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, destinations.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error(), "")
	default:
		writeError(c, http.StatusInternalServerError, "internal error", "")
	}
}

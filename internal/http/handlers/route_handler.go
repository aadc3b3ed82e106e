// README: Route preview handlers: fetch a route and optionally its
// along-route weather.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"khusela/internal/service"
)

type RouteHandler struct {
	assessor *service.Assessor
}

func NewRouteHandler(assessor *service.Assessor) *RouteHandler {
	return &RouteHandler{assessor: assessor}
}

type fetchRouteReq struct {
	StartLocation string `json:"startLocation"`
	EndLocation   string `json:"endLocation"`
}

func (r *fetchRouteReq) validate() bool {
	r.StartLocation = strings.TrimSpace(r.StartLocation)
	r.EndLocation = strings.TrimSpace(r.EndLocation)
	return r.StartLocation != "" && r.EndLocation != ""
}

// FetchRoute handles POST /api/route/fetch-route.
func (h *RouteHandler) FetchRoute(c *gin.Context) {
	var req fetchRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}
	if !req.validate() {
		writeError(c, http.StatusBadRequest, "startLocation and endLocation are required", "")
		return
	}

	summary, err := h.assessor.FetchRoute(c.Request.Context(), req.StartLocation, req.EndLocation)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	writeData(c, http.StatusOK, summary)
}

// FetchRouteWithWeather handles POST /api/route/route-with-weather.
func (h *RouteHandler) FetchRouteWithWeather(c *gin.Context) {
	var req fetchRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}
	if !req.validate() {
		writeError(c, http.StatusBadRequest, "startLocation and endLocation are required", "")
		return
	}

	result, err := h.assessor.FetchRouteWithWeather(c.Request.Context(), req.StartLocation, req.EndLocation)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	writeData(c, http.StatusOK, result)
}

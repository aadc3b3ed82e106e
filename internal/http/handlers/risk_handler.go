// README: Risk assessment handler.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"khusela/internal/service"
)

type RiskHandler struct {
	assessor *service.Assessor
}

func NewRiskHandler(assessor *service.Assessor) *RiskHandler {
	return &RiskHandler{assessor: assessor}
}

type assessRiskReq struct {
	StartLocation string `json:"startLocation"`
	EndLocation   string `json:"endLocation"`
	VehicleType   string `json:"vehicleType"`
}

// Assess handles POST /api/risk/assess.
func (h *RiskHandler) Assess(c *gin.Context) {
	var req assessRiskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	req.StartLocation = strings.TrimSpace(req.StartLocation)
	req.EndLocation = strings.TrimSpace(req.EndLocation)
	if req.StartLocation == "" || req.EndLocation == "" {
		writeError(c, http.StatusBadRequest, "startLocation and endLocation are required", "")
		return
	}

	assessment, err := h.assessor.Assess(c.Request.Context(), service.AssessCommand{
		Origin:      req.StartLocation,
		Destination: req.EndLocation,
		Vehicle:     strings.TrimSpace(req.VehicleType),
	})
	if err != nil {
		writePipelineError(c, err)
		return
	}
	writeData(c, http.StatusOK, assessment)
}

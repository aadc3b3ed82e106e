// README: Monitored destination CRUD handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"khusela/internal/http/middleware"
	"khusela/internal/modules/destinations"
	"khusela/internal/types"
)

type DestinationHandler struct {
	destinations *destinations.Service
}

func NewDestinationHandler(svc *destinations.Service) *DestinationHandler {
	return &DestinationHandler{destinations: svc}
}

type destinationReq struct {
	Location  string `json:"location"`
	RiskLevel string `json:"riskLevel"`
}

// Create handles POST /api/destinations.
func (h *DestinationHandler) Create(c *gin.Context) {
	var req destinationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	d, err := h.destinations.Create(c.Request.Context(), destinations.CreateCommand{
		UserID:    middleware.UserID(c),
		Location:  req.Location,
		RiskLevel: req.RiskLevel,
	})
	if err != nil {
		writeDestinationsError(c, err)
		return
	}
	writeData(c, http.StatusCreated, d)
}

// List handles GET /api/destinations.
func (h *DestinationHandler) List(c *gin.Context) {
	list, err := h.destinations.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeDestinationsError(c, err)
		return
	}
	writeData(c, http.StatusOK, list)
}

// Get handles GET /api/destinations/:id.
func (h *DestinationHandler) Get(c *gin.Context) {
	d, err := h.destinations.Get(c.Request.Context(), types.ID(c.Param("id")), middleware.UserID(c))
	if err != nil {
		writeDestinationsError(c, err)
		return
	}
	writeData(c, http.StatusOK, d)
}

// Update handles PUT /api/destinations/:id.
func (h *DestinationHandler) Update(c *gin.Context) {
	var req destinationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	d, err := h.destinations.Update(c.Request.Context(), types.ID(c.Param("id")), middleware.UserID(c),
		destinations.UpdateCommand{Location: req.Location, RiskLevel: req.RiskLevel})
	if err != nil {
		writeDestinationsError(c, err)
		return
	}
	writeData(c, http.StatusOK, d)
}

// Delete handles DELETE /api/destinations/:id.
func (h *DestinationHandler) Delete(c *gin.Context) {
	if err := h.destinations.Delete(c.Request.Context(), types.ID(c.Param("id")), middleware.UserID(c)); err != nil {
		writeDestinationsError(c, err)
		return
	}
	writeData(c, http.StatusOK, gin.H{"deleted": true})
}

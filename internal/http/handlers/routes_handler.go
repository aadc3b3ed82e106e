// README: Saved route CRUD handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"khusela/internal/http/middleware"
	"khusela/internal/modules/routes"
	"khusela/internal/types"
)

type RoutesHandler struct {
	routes *routes.Service
}

func NewRoutesHandler(svc *routes.Service) *RoutesHandler {
	return &RoutesHandler{routes: svc}
}

type createRouteReq struct {
	Title           string `json:"title"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	Category        string `json:"category"`
	Frequency       string `json:"frequency"`
	EncodedPolyline string `json:"encodedPolyline"`
}

// Create handles POST /api/routes.
func (h *RoutesHandler) Create(c *gin.Context) {
	var req createRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	r, err := h.routes.Create(c.Request.Context(), routes.CreateCommand{
		UserID:          middleware.UserID(c),
		Title:           req.Title,
		Origin:          req.Origin,
		Destination:     req.Destination,
		Category:        req.Category,
		Frequency:       req.Frequency,
		EncodedPolyline: req.EncodedPolyline,
	})
	if err != nil {
		writeRoutesError(c, err)
		return
	}
	writeData(c, http.StatusCreated, r)
}

// List handles GET /api/routes.
func (h *RoutesHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.routes.ListByUser(c.Request.Context(), middleware.UserID(c), limit, offset)
	if err != nil {
		writeRoutesError(c, err)
		return
	}
	writeData(c, http.StatusOK, list)
}

// Get handles GET /api/routes/:id.
func (h *RoutesHandler) Get(c *gin.Context) {
	r, err := h.routes.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeRoutesError(c, err)
		return
	}
	writeData(c, http.StatusOK, r)
}

// Update handles PUT /api/routes/:id.
func (h *RoutesHandler) Update(c *gin.Context) {
	var req createRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	r, err := h.routes.Update(c.Request.Context(), types.ID(c.Param("id")), routes.UpdateCommand{
		Title:           req.Title,
		Origin:          req.Origin,
		Destination:     req.Destination,
		Category:        req.Category,
		Frequency:       req.Frequency,
		EncodedPolyline: req.EncodedPolyline,
	})
	if err != nil {
		writeRoutesError(c, err)
		return
	}
	writeData(c, http.StatusOK, r)
}

// Delete handles DELETE /api/routes/:id.
func (h *RoutesHandler) Delete(c *gin.Context) {
	if err := h.routes.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeRoutesError(c, err)
		return
	}
	writeData(c, http.StatusOK, gin.H{"deleted": true})
}

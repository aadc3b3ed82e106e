// README: Alert CRUD handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"khusela/internal/http/middleware"
	"khusela/internal/modules/alerts"
	"khusela/internal/types"
)

type AlertHandler struct {
	alerts *alerts.Service
}

func NewAlertHandler(svc *alerts.Service) *AlertHandler {
	return &AlertHandler{alerts: svc}
}

type createAlertReq struct {
	Title  string `json:"title"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// Create handles POST /api/alerts.
func (h *AlertHandler) Create(c *gin.Context) {
	var req createAlertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	a, err := h.alerts.Create(c.Request.Context(), alerts.CreateCommand{
		UserID: middleware.UserID(c),
		Title:  req.Title,
		Type:   req.Type,
		Status: alerts.Status(req.Status),
	})
	if err != nil {
		writeAlertsError(c, err)
		return
	}
	writeData(c, http.StatusCreated, a)
}

// List handles GET /api/alerts.
func (h *AlertHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.alerts.ListByUser(c.Request.Context(), middleware.UserID(c), limit, offset)
	if err != nil {
		writeAlertsError(c, err)
		return
	}
	writeData(c, http.StatusOK, list)
}

type updateAlertStatusReq struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/alerts/:id.
func (h *AlertHandler) UpdateStatus(c *gin.Context) {
	var req updateAlertStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	err := h.alerts.MarkStatus(c.Request.Context(), types.ID(c.Param("id")), alerts.Status(req.Status))
	if err != nil {
		writeAlertsError(c, err)
		return
	}
	writeData(c, http.StatusOK, gin.H{"status": req.Status})
}

// Delete handles DELETE /api/alerts/:id.
func (h *AlertHandler) Delete(c *gin.Context) {
	if err := h.alerts.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeAlertsError(c, err)
		return
	}
	writeData(c, http.StatusOK, gin.H{"deleted": true})
}

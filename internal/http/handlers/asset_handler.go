// README: Insured asset CRUD and underwriting handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"khusela/internal/http/middleware"
	"khusela/internal/modules/assets"
	"khusela/internal/types"
)

type AssetHandler struct {
	assets *assets.Service
}

func NewAssetHandler(svc *assets.Service) *AssetHandler {
	return &AssetHandler{assets: svc}
}

type assetReq struct {
	Make            string `json:"make"`
	Model           string `json:"model"`
	Year            int    `json:"year"`
	PrimaryLocation string `json:"primaryLocation"`
	MainDriverAge   int    `json:"mainDriverAge"`
	Description     string `json:"description"`
}

// Create handles POST /api/insurance.
func (h *AssetHandler) Create(c *gin.Context) {
	var req assetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	a, err := h.assets.Create(c.Request.Context(), assets.CreateCommand{
		UserID:          middleware.UserID(c),
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		PrimaryLocation: req.PrimaryLocation,
		MainDriverAge:   req.MainDriverAge,
		Description:     req.Description,
	})
	if err != nil {
		writeAssetsError(c, err)
		return
	}
	writeData(c, http.StatusCreated, a)
}

// List handles GET /api/insurance, optionally filtered by ?status=.
func (h *AssetHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	var (
		list []assets.Asset
		err  error
	)
	if status := c.Query("status"); status != "" {
		list, err = h.assets.ListByStatus(c.Request.Context(), userID, assets.Status(status))
	} else {
		list, err = h.assets.ListByUser(c.Request.Context(), userID)
	}
	if err != nil {
		writeAssetsError(c, err)
		return
	}
	writeData(c, http.StatusOK, gin.H{"assets": list, "count": len(list)})
}

// Summary handles GET /api/insurance/summary.
func (h *AssetHandler) Summary(c *gin.Context) {
	summary, err := h.assets.Summary(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeAssetsError(c, err)
		return
	}
	writeData(c, http.StatusOK, summary)
}

// Get handles GET /api/insurance/:id.
func (h *AssetHandler) Get(c *gin.Context) {
	a, err := h.assets.Get(c.Request.Context(), types.ID(c.Param("id")), middleware.UserID(c))
	if err != nil {
		writeAssetsError(c, err)
		return
	}
	writeData(c, http.StatusOK, a)
}

// GetByPolicy handles GET /api/insurance/policy/:policyNumber.
func (h *AssetHandler) GetByPolicy(c *gin.Context) {
	a, err := h.assets.GetByPolicyNumber(c.Request.Context(), c.Param("policyNumber"), middleware.UserID(c))
	if err != nil {
		writeAssetsError(c, err)
		return
	}
	writeData(c, http.StatusOK, a)
}

// Update handles PUT /api/insurance/:id.
func (h *AssetHandler) Update(c *gin.Context) {
	var req assetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json", "")
		return
	}

	a, err := h.assets.Update(c.Request.Context(), types.ID(c.Param("id")), middleware.UserID(c), assets.UpdateCommand{
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		PrimaryLocation: req.PrimaryLocation,
		MainDriverAge:   req.MainDriverAge,
		Description:     req.Description,
	})
	if err != nil {
		writeAssetsError(c, err)
		return
	}
	writeData(c, http.StatusOK, a)
}

// Process handles POST /api/insurance/:id/process.
func (h *AssetHandler) Process(c *gin.Context) {
	result, err := h.assets.Process(c.Request.Context(), types.ID(c.Param("id")), middleware.UserID(c))
	if err != nil {
		writeAssetsError(c, err)
		return
	}
	writeData(c, http.StatusOK, result)
}

// Delete handles DELETE /api/insurance/:id.
func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.assets.Delete(c.Request.Context(), types.ID(c.Param("id")), middleware.UserID(c)); err != nil {
		writeAssetsError(c, err)
		return
	}
	writeData(c, http.StatusOK, gin.H{"deleted": true})
}

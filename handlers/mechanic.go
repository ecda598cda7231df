package handlers

import (
	"net/http"

	"github.com/Mareeswari-2005/Sara-The-road-assist/models"
	"github.com/Mareeswari-2005/Sara-The-road-assist/services/mechanic"
	"github.com/Mareeswari-2005/Sara-The-road-assist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MechanicHandler serves the /api/mechanics endpoints.
type MechanicHandler struct {
	Service mechanic.MechanicService
}

// NewMechanicHandler creates a handler backed by svc.
func NewMechanicHandler(svc mechanic.MechanicService) *MechanicHandler {
	return &MechanicHandler{Service: svc}
}

// SearchMechanicsHandler handles GET /api/mechanics.
func (h *MechanicHandler) SearchMechanicsHandler(c *gin.Context) {
	logger := getLogger(c)

	var params mechanic.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}

	results, err := h.Service.Search(c.Request.Context(), params)
	if err != nil {
		logger.Error("Mechanic search failed", zap.Any("params", params), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, results)
}

// CreateMechanicHandler handles POST /api/mechanics.
func (h *MechanicHandler) CreateMechanicHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.Mechanic
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warn("Invalid mechanic payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		if models.IsValidationError(err) {
			logger.Warn("Mechanic rejected", zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to create mechanic", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SeedMechanicsHandler handles GET /api/mechanics/seed.
func (h *MechanicHandler) SeedMechanicsHandler(c *gin.Context) {
	logger := getLogger(c)

	result, err := h.Service.Seed(c.Request.Context())
	if err != nil {
		logger.Error("Seed failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Seed failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

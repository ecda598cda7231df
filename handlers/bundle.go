package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Mechanic endpoints
	SearchMechanicsHandler gin.HandlerFunc
	CreateMechanicHandler  gin.HandlerFunc
	SeedMechanicsHandler   gin.HandlerFunc

	// Operational endpoints
	HealthHandler gin.HandlerFunc

	// FrontendDir is served for every non-API path.
	FrontendDir string
}

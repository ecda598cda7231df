package handlers

import (
	"net/http"

	"github.com/Mareeswari-2005/Sara-The-road-assist/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last store health snapshot.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := monitor.Status()
		code := http.StatusOK
		state := "ok"
		if !status.Mongo {
			code = http.StatusServiceUnavailable
			state = "degraded"
		}
		c.JSON(code, gin.H{
			"status":    state,
			"mongo":     status.Mongo,
			"checkedAt": status.CheckedAt,
		})
	}
}

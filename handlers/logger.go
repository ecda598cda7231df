package handlers

import (
	"github.com/Mareeswari-2005/Sara-The-road-assist/middleware"
	"github.com/Mareeswari-2005/Sara-The-road-assist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger, or the global one when the
// request logging middleware is not installed.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(middleware.LoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

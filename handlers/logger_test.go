package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/Mareeswari-2005/Sara-The-road-assist/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetLogger(t *testing.T) {
	global := zap.NewExample()
	defer zap.ReplaceGlobals(global)()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, global, getLogger(c))

	scoped := zap.NewNop()
	c.Set(middleware.LoggerKey, scoped)
	assert.Same(t, scoped, getLogger(c))
}

package cmd

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mareeswari-2005/Sara-The-road-assist/config"
	mechanicRepo "github.com/Mareeswari-2005/Sara-The-road-assist/database/repository/mechanic"
	"github.com/Mareeswari-2005/Sara-The-road-assist/middleware"
	"github.com/Mareeswari-2005/Sara-The-road-assist/services/mechanic"
	"github.com/Mareeswari-2005/Sara-The-road-assist/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRouterWiresEverything(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := &app{
		cfg:    config.Config{FrontendDir: t.TempDir()},
		logger: zap.NewNop(),
		repo:   mechanicRepo.NewMemoryMechanicRepo(),
	}
	monitor := utils.NewHealthMonitor(utils.PingerFunc(func(context.Context) error { return nil }))
	monitor.Check(context.Background())
	r := newRouter(a, mechanic.NewMechanicService(a.repo, a.logger), monitor)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/mechanics/seed", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/mechanics?q=battery", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCommandTree(t *testing.T) {
	seed, _, err := rootCmd.Find([]string{"seed"})
	assert.NoError(t, err)
	assert.Equal(t, "seed", seed.Name())
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestListenReportsPortInUse(t *testing.T) {
	held, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer held.Close()
	_, port, err := net.SplitHostPort(held.Addr().String())
	require.NoError(t, err)

	ln, err := listenOn("127.0.0.1", port)
	assert.Nil(t, ln)
	assert.ErrorIs(t, err, ErrPortInUse)
	assert.Contains(t, err.Error(), port)
}

func TestListenBindsFreePort(t *testing.T) {
	ln, err := listenOn("127.0.0.1", "0")
	require.NoError(t, err)
	assert.NoError(t, ln.Close())
}

func TestNewAppRequiresMongoURI(t *testing.T) {
	defer zap.ReplaceGlobals(zap.L())()
	for _, key := range []string{"PORT", "MONGODB_URI", "MONGODB_DATABASE", "ENV", "LOG_LEVEL", "FRONTEND_DIR", "HEALTH_INTERVAL"} {
		t.Setenv(key, "")
	}

	a, err := newApp(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, config.ErrMissingMongoURI)
	require.NotNil(t, a)
	assert.NotNil(t, a.logger)
	assert.Nil(t, a.client)
}

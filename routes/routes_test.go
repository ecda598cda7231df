package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	mechanicRepo "github.com/Mareeswari-2005/Sara-The-road-assist/database/repository/mechanic"
	"github.com/Mareeswari-2005/Sara-The-road-assist/handlers"
	"github.com/Mareeswari-2005/Sara-The-road-assist/services/mechanic"
	"github.com/Mareeswari-2005/Sara-The-road-assist/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o600))

	monitor := utils.NewHealthMonitor(utils.PingerFunc(func(context.Context) error { return nil }))
	monitor.Check(context.Background())

	mh := handlers.NewMechanicHandler(mechanic.NewMechanicService(mechanicRepo.NewMemoryMechanicRepo(), nil))
	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		SearchMechanicsHandler: mh.SearchMechanicsHandler,
		CreateMechanicHandler:  mh.CreateMechanicHandler,
		SeedMechanicsHandler:   mh.SeedMechanicsHandler,
		HealthHandler:          handlers.HealthHandler(monitor),
		FrontendDir:            dir,
	})
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestAPIRoutes(t *testing.T) {
	r := newRouter(t)

	for _, target := range []string{"/api/mechanics", "/api/mechanics/", "/api/mechanics/seed", "/health"} {
		assert.Equal(t, http.StatusOK, get(r, target).Code, target)
	}
}

func TestUnknownAPIPathIsJSON404(t *testing.T) {
	r := newRouter(t)
	w := get(r, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestFrontendServing(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/assets/app.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	for _, target := range []string{"/", "/map/nearby", "/assets", "/index.htm"} {
		w = get(r, target)
		assert.Equal(t, http.StatusOK, w.Code, target)
		assert.Contains(t, w.Body.String(), "<html>app</html>", target)
	}
}

func TestFrontendMissingIndex(t *testing.T) {
	r := gin.New()
	RegisterFrontend(r, t.TempDir())
	assert.Equal(t, http.StatusNotFound, get(r, "/anything").Code)
}

func TestCORSHeaders(t *testing.T) {
	r := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/mechanics", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

package routes

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mareeswari-2005/Sara-The-road-assist/handlers"
	"github.com/Mareeswari-2005/Sara-The-road-assist/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// APIPrefix is the path prefix reserved for JSON endpoints.
const APIPrefix = "/api"

// RegisterMechanicRoutes registers the mechanic directory endpoints.
func RegisterMechanicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group(APIPrefix + "/mechanics")
	{
		api.GET("", hb.SearchMechanicsHandler)
		api.GET("/", hb.SearchMechanicsHandler)
		api.POST("", hb.CreateMechanicHandler)
		api.POST("/", hb.CreateMechanicHandler)
		api.GET("/seed", hb.SeedMechanicsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.HealthHandler == nil {
		return
	}
	r.GET("/health", hb.HealthHandler)
}

// RegisterFrontend serves files from dir for every unmatched non-API GET
// request, falling back to dir/index.html so client-side routes resolve.
func RegisterFrontend(r *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")
	r.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if p == APIPrefix || strings.HasPrefix(p, APIPrefix+"/") {
			utils.JSONError(c, http.StatusNotFound, "Not found")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			utils.JSONError(c, http.StatusNotFound, "Not found")
			return
		}

		// path.Clean on a rooted path cannot climb above dir.
		file := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+p)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		if _, err := os.Stat(index); err != nil {
			utils.JSONError(c, http.StatusNotFound, "Not found")
			return
		}
		c.File(index)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterMechanicRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	RegisterFrontend(r, hb.FrontendDir)
}

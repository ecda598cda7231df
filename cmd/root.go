package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mareeswari-2005/Sara-The-road-assist/handlers"
	"github.com/Mareeswari-2005/Sara-The-road-assist/middleware"
	"github.com/Mareeswari-2005/Sara-The-road-assist/routes"
	"github.com/Mareeswari-2005/Sara-The-road-assist/services/mechanic"
	"github.com/Mareeswari-2005/Sara-The-road-assist/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:          "roadassist",
	Short:        "Road-assist mechanic directory API and frontend server",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		serve(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"directory holding config.yaml and .env (default: . and ./config)")
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the command line.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRouter assembles the gin engine for svc.
func newRouter(a *app, svc mechanic.MechanicService, monitor *utils.HealthMonitor) *gin.Engine {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler(a.logger))
	router.Use(middleware.RequestLogger(a.logger))

	mechanicHandler := handlers.NewMechanicHandler(svc)
	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		SearchMechanicsHandler: mechanicHandler.SearchMechanicsHandler,
		CreateMechanicHandler:  mechanicHandler.CreateMechanicHandler,
		SeedMechanicsHandler:   mechanicHandler.SeedMechanicsHandler,
		HealthHandler:          handlers.HealthHandler(monitor),
		FrontendDir:            a.cfg.FrontendDir,
	})
	return router
}

// ErrPortInUse is returned by listen when another process holds the port.
var ErrPortInUse = errors.New("port already in use")

// listen binds the HTTP port on every interface.
func listen(port string) (net.Listener, error) {
	return listenOn("0.0.0.0", port)
}

func listenOn(host, port string) (net.Listener, error) {
	ln, err := net.Listen("tcp", net.JoinHostPort(host, port))
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("%w: %s", ErrPortInUse, port)
		}
		return nil, fmt.Errorf("failed to bind port %s: %w", port, err)
	}
	return ln, nil
}

func serve(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := bootstrap(ctx, configDir)
	defer a.close()
	logger := a.logger

	monitor := utils.NewHealthMonitor(utils.PingerFunc(func(ctx context.Context) error {
		return a.client.Ping(ctx, nil)
	}))
	monitor.Start(ctx, a.cfg.HealthInterval)

	svc := mechanic.NewMechanicService(a.repo, logger)
	srv := &http.Server{
		Handler:           newRouter(a, svc, monitor),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := listen(a.cfg.Port)
	if err != nil {
		if errors.Is(err, ErrPortInUse) {
			logger.Fatal(fmt.Sprintf("Port %s is already in use. Please free the port or use a different one.", a.cfg.Port))
		}
		logger.Fatal("server failed to bind", zap.Error(err))
	}
	logger.Sugar().Infof("Server running on port %s", a.cfg.Port)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	case <-ctx.Done():
	}

	logger.Info("server is shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}
	logger.Info("server stopped gracefully")
}

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mareeswari-2005/Sara-The-road-assist/config"
	"github.com/Mareeswari-2005/Sara-The-road-assist/database"
	mechanicRepo "github.com/Mareeswari-2005/Sara-The-road-assist/database/repository/mechanic"
	"github.com/Mareeswari-2005/Sara-The-road-assist/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// app is the set of long-lived dependencies shared by every command.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	client *mongo.Client
	repo   mechanicRepo.MechanicRepository
}

// bootstrap loads configuration, builds the logger and connects to MongoDB.
// Configuration and connection failures are fatal; there is no retry.
func bootstrap(ctx context.Context, configDir string) *app {
	a, err := newApp(ctx, configDir)
	if err == nil {
		return a
	}
	logger := zap.L()
	if a != nil {
		logger = a.logger
	}
	if errors.Is(err, config.ErrMissingMongoURI) {
		logger.Fatal("MONGODB_URI not found; set it in the environment, .env or config.yaml")
	}
	logger.Fatal("startup failed", zap.Error(err))
	return nil
}

// newApp builds the app, returning the partially built app (logger set)
// alongside any configuration or connection error.
func newApp(ctx context.Context, configDir string) (*app, error) {
	var dirs []string
	if configDir != "" {
		dirs = []string{configDir}
	}
	cfg, cfgErr := config.Load(dirs...)

	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		if logger, _ = utils.NewLogger(cfg.IsProduction(), ""); logger == nil {
			logger = zap.NewExample()
		}
		logger.Warn("falling back to info level", zap.Error(err))
	}
	zap.ReplaceGlobals(logger)

	a := &app{cfg: cfg, logger: logger}
	if cfgErr != nil {
		return a, cfgErr
	}

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return a, fmt.Errorf("MongoDB connection error: %w", err)
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	a.client = client
	a.repo = mechanicRepo.NewMongoMechanicRepo(client.Database(cfg.MongoDatabase), logger)
	return a, nil
}

// close releases the MongoDB client and flushes the logger.
func (a *app) close() {
	if err := database.Disconnect(a.client); err != nil {
		a.logger.Warn("failed to disconnect from MongoDB", zap.Error(err))
	}
	_ = a.logger.Sync()
}

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingMongoURI is returned when no MongoDB connection string is configured.
var ErrMissingMongoURI = errors.New("MONGODB_URI is not set")

// Config holds all configuration values.
type Config struct {
	Port           string        `mapstructure:"PORT"`
	MongoURI       string        `mapstructure:"MONGODB_URI"`
	MongoDatabase  string        `mapstructure:"MONGODB_DATABASE"`
	Env            string        `mapstructure:"ENV"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	FrontendDir    string        `mapstructure:"FRONTEND_DIR"`
	HealthInterval time.Duration `mapstructure:"HEALTH_INTERVAL"`
}

// IsProduction reports whether the service runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from config.yaml (in "." or "./config"), an
// optional .env file and the environment, in increasing precedence.
// configDirs overrides the search locations.
func Load(configDirs ...string) (Config, error) {
	if len(configDirs) == 0 {
		configDirs = []string{".", "./config"}
	}
	v := viper.New()

	// Set default values.
	v.SetDefault("PORT", "3000")
	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DATABASE", "roadassist")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FRONTEND_DIR", "./frontend")
	v.SetDefault("HEALTH_INTERVAL", "60s")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range configDirs {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	}

	env := viper.New()
	env.SetConfigName(".env")
	env.SetConfigType("env")
	for _, dir := range configDirs {
		env.AddConfigPath(dir)
	}
	if err := env.ReadInConfig(); err == nil {
		if err := v.MergeConfigMap(env.AllSettings()); err != nil {
			return Config{}, fmt.Errorf("failed to merge .env: %w", err)
		}
	}

	// Automatically use environment variables where available.
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.MongoURI == "" {
		return cfg, ErrMissingMongoURI
	}
	return cfg, nil
}

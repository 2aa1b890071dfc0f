package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio-backend/internal/config"
	"portfolio-backend/pkg/logger"
)

func main() {
	// A .env file only exists on developer machines; deployed processes read the real environment.
	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "portfolio-api: invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	logger.Info("[API] starting", map[string]interface{}{
		"version":    cfg.App.Version,
		"env":        cfg.App.Environment,
		"env_file":   envLoaded,
		"port":       cfg.App.Port,
		"storage":    cfg.Upload.Backend,
		"rate_redis": cfg.Redis.Enabled,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := Serve(cfg); err != nil {
		logger.Error("[API] stopped with error", err)
		os.Exit(1)
	}
}

// Package main is the entry point for the sombrero viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/sombrero/internal/config"
	"github.com/Faultbox/sombrero/internal/engine/shader"
	"github.com/Faultbox/sombrero/internal/logger"
	"github.com/Faultbox/sombrero/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Sombrero ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg)
	if err != nil {
		// A shader build failure is the one fatal path; surface the
		// driver diagnostic before exiting
		var buildErr *shader.BuildError
		if errors.As(err, &buildErr) {
			logger.Error("shader build failed",
				zap.String("stage", buildErr.Stage),
				zap.String("log", buildErr.Log),
			)
		} else {
			logger.Error("failed to create viewer", zap.Error(err))
		}
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

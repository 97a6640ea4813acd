package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/nulzo/prism-registry/internal/config"
	"github.com/nulzo/prism-registry/internal/i18n"
	"github.com/nulzo/prism-registry/internal/platform/logger"
	"github.com/nulzo/prism-registry/internal/platform/otel"
	"github.com/nulzo/prism-registry/internal/registry"
	"github.com/nulzo/prism-registry/internal/server"
	"github.com/nulzo/prism-registry/pkg/api"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: cfg.Log.Color,
	})
	defer logger.Sync()

	// the global logger skips one frame for its wrappers
	log := logger.Get().WithOptions(zap.AddCallerSkip(-1))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		shutdown, err := otel.InitTracer(cfg.Tracing.ServiceName, log, os.Stdout)
		if err != nil {
			logger.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("Failed to flush traces", zap.Error(err))
			}
		}()
	}

	loc, err := i18n.New(cfg.Registry.Locale)
	if err != nil {
		logger.Fatal("Failed to load translations", zap.Error(err))
	}

	reg, err := registry.New(loc, registry.FromConfig(cfg.Registry, log)...)
	if err != nil {
		var integrity *api.DataIntegrityError
		if errors.As(err, &integrity) {
			logger.Fatal("Registry tables are inconsistent", zap.Strings("problems", integrity.Problems))
		}
		logger.Fatal("Failed to build registry", zap.Error(err))
	}

	srv, err := server.New(cfg, log, reg)
	if err != nil {
		logger.Fatal("Failed to create server", zap.Error(err))
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

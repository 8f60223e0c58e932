package main

import (
	"flag"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"

	"github.com/codepictor/metro/config"
	"github.com/codepictor/metro/handlers"
	"github.com/codepictor/metro/logging"
	"github.com/codepictor/metro/preprocessing"
	"github.com/codepictor/metro/routing"
	"github.com/codepictor/metro/services"
)

func main() {
	cfg, envLoaded := config.Load()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "address to listen on")
	flag.StringVar(&cfg.NetworkPath, "network", cfg.NetworkPath, "network file (.json, .gob) or CSV directory; empty uses the embedded network")
	flag.StringVar(&cfg.LinkPolicy, "link-policy", cfg.LinkPolicy, "duplicate link policy: reject or last-wins")
	flag.Parse()

	logger := mustLogger(cfg)
	if !envLoaded {
		logger.Debug("no .env file found, using environment variables")
	}

	policy, err := routing.ParseLinkPolicy(cfg.LinkPolicy)
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	net, err := preprocessing.LoadNetworkFromFile(cfg.NetworkPath)
	if err != nil {
		logger.Error("failed to load network", slog.String("path", cfg.NetworkPath), slog.Any("error", err))
		os.Exit(1)
	}
	router, err := routing.NewRouter(net, routing.WithLinkPolicy(policy))
	if err != nil {
		logger.Error("failed to build router", slog.Any("error", err))
		os.Exit(1)
	}

	components := router.Graph().Components()
	logger.Info("network loaded",
		slog.String("name", router.Name()),
		slog.Int("stations", router.Directory().Len()),
		slog.Int("links", len(router.Graph().Links())),
		slog.Int("components", len(components)))
	if len(components) > 1 {
		logger.Warn("network is not connected, some routes will fail", slog.Int("components", len(components)))
	}

	gin.SetMode(cfg.GinMode)
	engine := handlers.NewEngine(services.NewRoutingService(router, logger), logger, cfg.CORSOrigins)

	logger.Info("metro server starting", slog.String("addr", cfg.Addr))
	if err := engine.Run(cfg.Addr); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func mustLogger(cfg config.Config) *slog.Logger {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		slog.Error("invalid logging configuration", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(logger)
	return logger
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rohits2404/Code-Editor/internal/app"
	"github.com/rohits2404/Code-Editor/internal/config"
	"github.com/rohits2404/Code-Editor/internal/log"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file")
		addr       = flag.String("addr", "", "HTTP listen address (overrides config)")
		logLevel   = flag.String("log-level", "", "log level (overrides config)")
	)
	flag.Parse()

	logger := log.New("info")

	cfg, resolvedPath, err := config.Load(logger, *configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	cfg.UpdateFrom(config.Config{Addr: *addr, LogLevel: *logLevel})
	logger = log.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(&cfg, logger)

	logger.Info().Str("addr", cfg.Addr).Str("config", resolvedPath).Msg("starting code editor server")
	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
	logger.Info().Msg("server stopped")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/pwkeeper/internal/cli"
	"github.com/dmitrijs2005/pwkeeper/internal/config"
	"github.com/dmitrijs2005/pwkeeper/internal/cryptox"
	"github.com/dmitrijs2005/pwkeeper/internal/logging"
	"github.com/dmitrijs2005/pwkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/pwkeeper/internal/services"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "pwkeeper stopped", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	hasher, err := cryptox.NewHasher(cfg.Policy())
	if err != nil {
		return err
	}

	rm, err := repomanager.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer rm.Close()

	logger.Info(ctx, "credential store ready", "backend", rm.Backend(), "iterations", cfg.Iterations)

	svc := services.NewCredentialService(rm.Credentials(), hasher, logger)
	cli.NewApp(svc, hasher, logger, cfg.BenchTarget).Run(ctx)
	return nil
}

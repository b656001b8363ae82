package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/hakem/internal/common/clock"
	"github.com/KirkDiggler/hakem/internal/common/uuid"
	"github.com/KirkDiggler/hakem/internal/handlers/terminal"
	"github.com/KirkDiggler/hakem/internal/logger"
	sessionRepo "github.com/KirkDiggler/hakem/internal/repositories/session"
	"github.com/KirkDiggler/hakem/internal/services/game"
	"github.com/KirkDiggler/hakem/internal/services/messaging"
	"github.com/KirkDiggler/hakem/internal/shuffle"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	releaseVersion = "0.1.0"
)

func main() {
	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg, run).Execute())
}

func run(ctx context.Context, cfg *Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lgr, err := logger.New(cfg.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = lgr.Sync() }()

	gameSvc, err := game.New(&game.Config{
		Repository:    sessionRepo.NewMemory(),
		Shuffler:      shuffle.New(&shuffle.Config{Seed: cfg.seed}),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        lgr.Named("game"),
		Award:         cfg.award,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Seed: cfg.seed})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	console, err := terminal.New(&terminal.Config{
		GameService: gameSvc,
		Messaging:   messagingSvc,
		Out:         os.Stdout,
		Logger:      lgr.Named("terminal"),
		NoColor:     cfg.noColor,
	})
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}
	defer console.Close()

	lgr.Debug("starting", zap.Uint64("seed", cfg.seed), zap.Int("award", cfg.award))
	return console.Run(ctx)
}

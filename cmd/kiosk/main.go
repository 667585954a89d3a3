package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/disco-express/kiosk/internal/client"
	"github.com/disco-express/kiosk/internal/config"
	"github.com/disco-express/kiosk/internal/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	if err := run(cfg); err != nil {
		panic(err)
	}
}

func run(cfg config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}

	logger.Log.Info("starting jukebox kiosk",
		zap.String("server", cfg.ServerAddress),
		zap.Int("port", cfg.ServerPort))

	c := client.New(cfg.ServerAddress, cfg.ServerPort, cfg.RequestTimeout)

	appInstance, err := newApp(cfg, c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appInstance.run(ctx)

	logger.Log.Info("kiosk stopped")
	return nil
}

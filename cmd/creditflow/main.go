package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/obondar/creditflow/internal/app"
	"github.com/obondar/creditflow/internal/util/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := app.NewConfigFromFlags()

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		application.Logger.Info("Shutting down server...")
		cancel()
	}()

	application.Logger.Info("Starting HTTP server",
		zap.String("address", cfg.RunAddress))

	if err := application.Run(ctx); err != nil {
		application.Logger.Error("Server shutdown failed", zap.Error(err))
	}
}

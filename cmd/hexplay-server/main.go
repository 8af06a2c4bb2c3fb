package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hailam/hexplay/internal/bootstrap"
	"github.com/hailam/hexplay/internal/server"
)

var configPath = flag.String("config", "", "path to config file")

func main() {
	flag.Parse()

	logger := NewLogger()
	defer logger.Sync()

	cfg := bootstrap.Default()
	if *configPath != "" {
		loaded, err := bootstrap.Setup(*configPath)
		if err != nil {
			logger.Fatal("Failed to setup configuration", zap.Error(err))
		}
		cfg = loaded
	}

	r := chi.NewRouter()
	handler := server.NewHandler(*cfg, logger)
	handler.Router(r)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go handleShutdown(srv, logger)

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func handleShutdown(srv *http.Server, logger *zap.SugaredLogger) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/casino-api/internal/auth"
	"github.com/hongminglow/casino-api/internal/config"
	"github.com/hongminglow/casino-api/internal/logging"
	"github.com/hongminglow/casino-api/internal/server"
	"github.com/hongminglow/casino-api/internal/storage/backend"
)

func main() {
	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New("casino-api", cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	if !envLoaded {
		logger.Infow("no .env file found; relying on existing environment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	userStore, err := backend.Open(ctx, cfg.Database)
	cancel()
	if err != nil {
		logger.Errorw("init database", "error", err, "driver", cfg.Database.Driver)
		os.Exit(1)
	}
	defer userStore.Close()

	hasher, err := auth.NewHasher(bcrypt.DefaultCost)
	if err != nil {
		logger.Errorw("init password hasher", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, logger, userStore, hasher)

	go func() {
		logger.Infow("casino api listening", "addr", cfg.HTTPAddress(), "driver", cfg.Database.Driver, "env", cfg.Env)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Errorw("graceful shutdown error", "error", err)
	}
}

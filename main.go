package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/sirupsen/logrus"

	"github.com/okranz/daregame/internal/config"
	"github.com/okranz/daregame/internal/database"
	"github.com/okranz/daregame/internal/game"
	"github.com/okranz/daregame/internal/handlers"
	"github.com/okranz/daregame/internal/history"
	"github.com/okranz/daregame/internal/middleware"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	gs := handlers.NewGameServer(logger)

	// Optional Redis action queue. The game runs without it.
	if cfg.HistoryEnabled {
		pub, err := history.Connect(cfg.RedisAddr, cfg.RedisDB, cfg.HistoryQueue, logger)
		if err != nil {
			logger.WithError(err).Warn("history queue unavailable, continuing without it")
		} else {
			defer pub.Close()
			gs.Actions = pub
			logger.WithField("addr", cfg.RedisAddr).Info("history queue connected")
		}
	}

	// Optional Postgres result archive.
	if cfg.ArchiveEnabled && cfg.PostgresDSN != "" {
		store, err := database.Connect(context.Background(), cfg.PostgresDSN)
		if err != nil {
			logger.WithError(err).Warn("result archive unavailable, continuing without it")
		} else {
			defer store.Close()
			if err := store.EnsureSchema(context.Background()); err != nil {
				logger.WithError(err).Warn("could not ensure archive schema")
			}
			gs.ExtraSinks = []game.Notifier{database.NewArchiver(store, logger)}
			gs.Imports = store
			logger.Info("result archive connected")
		}
	}

	server := &http.Server{
		Handler:      middleware.LogMiddleware(logger)(gs.Routes()),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
	}

	l, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.HTTPPort))
	if err != nil {
		logger.Fatalf("failed to listen: %v", err)
	}
	logger.Infof("listening on %s", l.Addr())

	errc := make(chan error, 1)
	go func() {
		errc <- server.Serve(l)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	select {
	case err := <-errc:
		logger.Errorf("failed to serve: %v", err)
	case sig := <-sigs:
		logger.Infof("terminating: %v", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/fivehundred/internal/auth"
	"github.com/jason-s-yu/fivehundred/internal/cache"
	"github.com/jason-s-yu/fivehundred/internal/config"
	"github.com/jason-s-yu/fivehundred/internal/database"
	"github.com/jason-s-yu/fivehundred/internal/game"
	"github.com/jason-s-yu/fivehundred/internal/ws"
)

func main() {
	cfg := config.Load()

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	funnel := game.NewFunnel()
	session := game.NewSession(funnel)

	if cfg.RedisAddr != "" {
		historian, err := cache.NewHistorian(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		defer historian.Close()
		session.Historian = historian
	}

	if cfg.DatabaseURL != "" {
		store, err := database.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to postgres")
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			log.WithError(err).Fatal("failed to ensure schema")
		}
		session.Results = store
	}

	handler := &ws.Handler{Events: funnel}
	if cfg.AuthSecret != "" {
		handler.Gate = auth.NewGate(cfg.AuthSecret)
	}

	go session.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/ws", handler)

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	log.WithFields(log.Fields{"addr": cfg.Addr, "session_id": session.ID}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server failed")
	}
}

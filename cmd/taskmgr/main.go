package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskmgr/internal/reminder"
	"taskmgr/internal/server"
	"taskmgr/internal/storage/sqlite"
	"taskmgr/internal/task"
	"taskmgr/internal/util"
)

func main() {
	addrFlag := flag.String("addr", util.EnvOrDefault("TASKMGR_ADDR", ":8080"), "HTTP listen address")
	dbFlag := flag.String("db", util.EnvOrDefault("TASKMGR_DB_PATH", "data/taskmgr.db"), "Path to sqlite database file")
	staticFlag := flag.String("static", util.EnvOrDefault("TASKMGR_STATIC_DIR", "web/dist"), "Directory with built frontend")
	flag.Parse()

	level := util.ParseLogLevel(util.EnvOrDefault("TASKMGR_LOG_LEVEL", "info"))
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	kv, err := sqlite.Open(*dbFlag, logger)
	if err != nil {
		logger.Error("unable to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer kv.Close()

	store := task.NewStore(kv, logger)
	if err := store.Load(); err != nil {
		logger.Error("unable to load task collection", slog.String("error", err.Error()))
		os.Exit(1)
	}

	banner, err := reminder.New(kv, logger).Evaluate(store.Tasks())
	if err != nil {
		// The banner is still usable; only the shown-today marker failed to persist.
		logger.Warn("reminder evaluation incomplete", slog.String("error", err.Error()))
	}
	if banner.Visible {
		logger.Info("daily reminder active", slog.String("message", banner.Message))
	}

	srv := server.New(store, banner, logger, *staticFlag)

	httpServer := &http.Server{
		Addr:    *addrFlag,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("starting server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

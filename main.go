package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Aritra-2000/MBTI/cliparse"
	"github.com/Aritra-2000/MBTI/router"
	"github.com/Aritra-2000/MBTI/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Pick the record store backend
	var st store.Store
	if cfg.UsesSheets() {
		st, err = store.NewSheetsStore(context.Background(), cfg)
		if err != nil {
			slog.Error("sheets store setup failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Record store ready", "backend", "sheets", "sheet", cfg.SheetName)
	} else {
		sqlStore, err := store.OpenSQL(cfg.DatabaseURL)
		if err != nil {
			slog.Error("database setup failed", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		st = sqlStore
		slog.Info("Record store ready", "backend", "sql")
	}

	// Create router
	handler := router.NewRouter(st)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fsanano/listing-admin/internal/config"
	"fsanano/listing-admin/internal/handler"
	"fsanano/listing-admin/internal/logger"
	"fsanano/listing-admin/internal/supabase"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load config
	config.LoadDotenv()
	cfg, err := config.Load(config.EnvSource{})
	if err != nil {
		logger.New(logger.Config{}).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	log.Info("config loaded", "config", cfg.String())

	// 2. Setup backend handle, built once and shared by all requests
	admin, err := supabase.NewAdmin(config.EnvSource{})
	if err != nil {
		log.Error("failed to create supabase admin client", "error", err)
		os.Exit(1)
	}

	// 3. Setup Server
	h := handler.NewHandler(admin, log, handler.Config{AllowedOrigins: cfg.CORSAllowOrigins})
	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 4. Run Server with Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server exiting")
}

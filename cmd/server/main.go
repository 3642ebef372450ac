package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"showbooking/config"
	_ "showbooking/docs"
	httpdelivery "showbooking/internal/delivery/http"
	"showbooking/internal/delivery/http/controllers"
	"showbooking/internal/delivery/http/helpers"
	"showbooking/internal/delivery/http/views"
	"showbooking/internal/repository/postgres"
	"showbooking/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title Showbooking
// @version 1.0
// @description Venue, artist and show booking site. Every endpoint serves HTML; mutations accept URL-encoded forms and answer with a 303 redirect carrying a flash message.
// @BasePath /
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	store := postgres.NewStore(db)
	venueService := services.NewVenueService(store, cfg.RequestTimeout)
	artistService := services.NewArtistService(store, cfg.RequestTimeout)
	showService := services.NewShowService(store, cfg.RequestTimeout)

	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}
	pages := controllers.NewPages(logger, renderer, helpers.NewFlasher(cfg.FlashCookieName))

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Pages:   pages,
		Home:    controllers.NewHomeController(pages, venueService, artistService),
		Venues:  controllers.NewVenueController(pages, venueService),
		Artists: controllers.NewArtistController(pages, artistService),
		Shows:   controllers.NewShowController(pages, showService),
		Health:  controllers.NewHealthController(db, cfg.RequestTimeout),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpdelivery.WithMiddleware(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mandiprice/internal/catalog"
	"mandiprice/internal/config"
	"mandiprice/internal/db"
	"mandiprice/internal/logx"
	"mandiprice/internal/quote"
	"mandiprice/internal/rate"
	"mandiprice/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid configuration")
	}
	logx.Init(cfg.Environment(), cfg.LogLevel)

	cat := catalog.Default()
	if cfg.DatabaseURL != "" {
		cat = loadOverrides(cfg.DatabaseURL, cat)
	}

	provider := cfg.RateProvider
	est := rate.NewByName(provider, cat, rate.SourceFromSeed(cfg.PriceSeed))
	r := server.New(quote.NewService(cat, est))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logx.Info().
			Str("port", cfg.Port).
			Str("env", string(cfg.Environment())).
			Str("rate_provider", provider).
			Bool("seeded", cfg.PriceSeed != 0).
			Msg("api listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		logx.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logx.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}

// loadOverrides replaces static base prices with rows from commodity_prices.
// The static table stays in use when the table is missing.
func loadOverrides(databaseURL string, cat *catalog.Catalog) *catalog.Catalog {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to connect db")
	}
	defer pool.Close()

	next, skipped, err := catalog.ApplyOverrides(ctx, pool, cat)
	switch {
	case errors.Is(err, catalog.ErrNoPriceTable):
		logx.Warn().Msg("commodity_prices table not found; using built-in prices")
		return cat
	case err != nil:
		logx.Fatal().Err(err).Msg("failed to load base prices")
	}
	if len(skipped) > 0 {
		logx.Warn().Strs("keys", skipped).Msg("ignoring prices for unknown products")
	}
	logx.Info().Msg("base prices loaded from database")
	return next
}

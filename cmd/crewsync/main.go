package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/bridge"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/config"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/en"
	httpapi "github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/http"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/roster"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/w2w"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP trigger surface instead of a one-shot sync")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "crewsync").Logger()

	zone, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("unknown timezone")
	}

	rst, err := roster.Load(cfg.RosterFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.RosterFile).Msg("failed to load roster")
	}

	b := &bridge.Bridge{
		Shifts: &w2w.Client{
			BaseURL:    cfg.W2WBaseURL,
			Token:      cfg.W2WToken,
			HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		},
		Schedules: &en.Client{
			BaseURL:    cfg.ENBaseURL,
			Token:      cfg.ENToken,
			HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		},
		Roster: rst,
		Zone:   zone,
		Logger: logger,
	}

	if !*serve {
		runOnce(b, logger)
		return
	}

	router := httpapi.Router(cfg, b, rst, zone, logger)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}

func runOnce(b *bridge.Bridge, logger zerolog.Logger) {
	res, err := b.Run(context.Background(), time.Now())
	if err != nil {
		logger.Fatal().Err(err).Msg("sync run failed")
	}
	if res.Skipped {
		logger.Info().Str("reason", res.Reason).Msg("sync skipped")
		return
	}
	logger.Info().
		Int("equipment", len(res.Payload.Equipment)).
		Interface("response", res.Response).
		Msg("sync complete")
}

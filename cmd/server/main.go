// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/agsasports/leaguedesk/internal/config"
	"github.com/agsasports/leaguedesk/internal/db"
	"github.com/agsasports/leaguedesk/internal/scheduler"
	"github.com/agsasports/leaguedesk/internal/slots"
)

const shutdownTimeout = 30 * time.Second

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	store, err := slots.NewStore(database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create slot store")
	}

	server := newServer(cfg, store)

	var sweeper *scheduler.Service
	if cfg.Scheduler.Enabled {
		sweeper, err = scheduler.NewService()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create scheduler")
		}
		if err := scheduler.RegisterFeasibilitySweep(sweeper, store, cfg.Scheduler.FeasibilitySweepCron); err != nil {
			log.Fatal().Err(err).Msg("Failed to register feasibility sweep")
		}
		sweeper.Start()
	}

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Int("port", cfg.App.Port).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if sweeper != nil {
			if err := sweeper.Stop(); err != nil {
				log.Error().Err(err).Msg("Scheduler shutdown error")
			}
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}

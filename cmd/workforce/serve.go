package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/workforcepro/terceirizacao-api/internal/api"
	mongostore "github.com/workforcepro/terceirizacao-api/internal/infrastructure/db/mongo"
	"github.com/workforcepro/terceirizacao-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

var skipIndexes bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipIndexes, "skip-indexes", false, "do not create MongoDB indexes at startup")
}

func runServe(cmd *cobra.Command, _ []string) error {
	log := logger.Get()
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d, err := connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := d.close(closeCtx); err != nil {
			log.Error().Err(err).Msg("closing connections")
		}
	}()

	if !skipIndexes {
		if err := mongostore.EnsureIndexes(ctx, d.db); err != nil {
			return err
		}
	}

	svc, err := d.services()
	if err != nil {
		return err
	}

	e := api.NewRouter(svc, api.Options{
		CORSOrigins:  cfg.CORSOrigins(),
		Dependencies: d.readiness(),
	}, log)

	addr := net.JoinHostPort("", cfg.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", addr).
			Str("env", cfg.Env).
			Str("database", cfg.Mongo.Database).
			Bool("idempotency", d.redis != nil).
			Msg("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/strongpass/strongpass-go/internal/config"
	"github.com/strongpass/strongpass-go/internal/handler"
	"github.com/strongpass/strongpass-go/internal/middleware"
	"github.com/strongpass/strongpass-go/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the password generation API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", ":"+cfg.Port)
			if err != nil {
				return fmt.Errorf("listening on port %s: %w", cfg.Port, err)
			}
			return serve(ctx, *cfg, ln)
		},
	}

	cmd.Flags().StringVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")

	return cmd
}

// serve runs the API on ln until ctx is cancelled, then shuts down gracefully.
func serve(ctx context.Context, cfg config.Config, ln net.Listener) error {
	if !cfg.Secure {
		slog.Warn("serving passwords from a non-cryptographic random source; set STRONGPASS_SECURE=true for real credentials")
	}

	genService := service.NewGeneratorService(sourceFor(cfg.Secure), cfg.DefaultLength)
	genHandler := handler.NewGeneratorHandler(genService)
	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	srv := &http.Server{
		Handler:           handler.NewRouter(genHandler, limiter.Handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", ln.Addr().String(), "env", cfg.Env, "secure", cfg.Secure)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/peopledesk/console/config"
)

const shutdownTimeout = 5 * time.Second

// Run starts the console: session bootstrap, the live poll loops and the
// local HTTP server. Blocks until SIGINT/SIGTERM or a fatal error.
func Run(ctx context.Context, cfg config.AppConfig, services *Services, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := services.Sessions.Bootstrap(ctx); err != nil {
		// A failed bootstrap means starting logged out, not refusing to start.
		logger.WarnContext(ctx, "session bootstrap failed", "error", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return services.Live.Run(ctx)
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           services.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		logger.InfoContext(ctx, "console listening", "addr", cfg.HTTP.Addr, "url", cfg.HTTP.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		services.Watch.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("console stopped")
	return nil
}

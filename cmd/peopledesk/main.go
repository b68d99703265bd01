// Command peopledesk runs the local operator console: a small web UI over
// the remote HRMS API with live-polled dashboards.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/peopledesk/console/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting peopledesk console",
		"api_url", cfg.API.BaseURL,
		"addr", cfg.HTTP.Addr,
		"dev", cfg.IsDev)

	services, err := bootstrap.NewServices(cfg, logger)
	if err != nil {
		return err
	}

	return bootstrap.Run(ctx, cfg, services, logger)
}

package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/peopledesk/console/config"
	"github.com/peopledesk/console/internal/adapters/hrmsapi"
	"github.com/peopledesk/console/internal/adapters/tokenfile"
	httpx "github.com/peopledesk/console/internal/http"
	"github.com/peopledesk/console/internal/service"
)

// Services holds the wired console runtime.
type Services struct {
	Tokens   *tokenfile.Store
	API      *hrmsapi.Client
	Sessions *service.SessionService
	Live     *service.LiveService
	Watch    *service.AttendanceWatcher
	Handler  http.Handler
}

// NewServices wires all console services from config.
func NewServices(cfg config.AppConfig, logger *slog.Logger) (*Services, error) {
	tokens, err := tokenfile.New(cfg.Session.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("create token store: %w", err)
	}

	// The client and the session service reference each other: the client
	// reports 401s to the session, the session logs in through the client.
	// The indirection below breaks the construction cycle.
	var sessions *service.SessionService

	client, err := hrmsapi.New(hrmsapi.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Tokens:  tokens,
		OnUnauthorized: func() {
			if sessions != nil {
				sessions.Invalidate()
			}
		},
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	sessions, err = service.NewSessionService(service.SessionOptions{
		Tokens:   tokens,
		Identity: client,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create session service: %w", err)
	}

	live, err := service.NewLiveService(service.LiveOptions{
		Client:        client,
		Sessions:      sessions,
		ClockInterval: cfg.Poll.ClockInterval,
		LiveInterval:  cfg.Poll.LiveInterval,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create live service: %w", err)
	}

	watch, err := service.NewAttendanceWatcher(service.AttendanceWatchOptions{
		Client:   client,
		Interval: cfg.Poll.LiveInterval,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create attendance watcher: %w", err)
	}

	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}

	handler := httpx.NewRouter(httpx.RouterServices{
		API:      client,
		Sessions: sessions,
		Live:     live,
		Watch:    watch,
		Renderer: renderer,
		Logger:   logger,
	})

	return &Services{
		Tokens:   tokens,
		API:      client,
		Sessions: sessions,
		Live:     live,
		Watch:    watch,
		Handler:  handler,
	}, nil
}

package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/avolkhin/keydeck-server/internal/announce"
	"github.com/avolkhin/keydeck-server/internal/config"
	"github.com/avolkhin/keydeck-server/internal/core"
	"github.com/avolkhin/keydeck-server/internal/keys"
	"github.com/avolkhin/keydeck-server/internal/transport/httpd"
)

// App wires the emulator, announcer, dispatcher and server together.
type App struct {
	cfg    config.Config
	server *httpd.Server
	ann    announce.Announcer
	log    *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	emu := NewEmulator(cfg.Emulator, logger)

	var ann announce.Announcer = announce.Nop{}
	if cfg.Announce.Enabled {
		m, err := announce.NewMQTT(cfg.Announce.Broker, cfg.Announce.ClientID, cfg.Announce.Topic, logger)
		if err != nil {
			return nil, fmt.Errorf("init announcer: %w", err)
		}
		ann = m
	}

	dispatcher := core.NewDispatcher(emu, ann, logger)
	server := httpd.NewServer(cfg, dispatcher, logger)

	return &App{
		cfg:    cfg,
		server: server,
		ann:    ann,
		log:    logger,
	}, nil
}

// NewEmulator builds the configured keystroke emulator.
func NewEmulator(cfg config.Emulator, logger *zerolog.Logger) keys.Emulator {
	if cfg.DryRun {
		return keys.Null{Log: logger}
	}
	return keys.NewTool(cfg.Tool, logger)
}

// Run binds the listener and serves until context cancellation or a fatal
// accept error.
func (a *App) Run(ctx context.Context) error {
	if ap := a.cfg.AccessPoint.SSID; ap != "" {
		a.log.Info().Str("ssid", ap).Msg("expecting access point (host-managed)")
	}

	if err := a.server.Listen(a.cfg.Addr); err != nil {
		a.cleanup()
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.server.Serve()
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		a.log.Info().Msg("shutting down")
		if err := a.server.Close(); err != nil {
			a.cleanup()
			return err
		}
		err := <-serverErr
		a.cleanup()
		return err
	}
}

// cleanup releases the announcer connection.
func (a *App) cleanup() {
	if a.ann != nil {
		a.ann.Close()
	}
}

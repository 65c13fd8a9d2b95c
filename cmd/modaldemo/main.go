package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/debianitram/modalview"
	"github.com/debianitram/modalview/csrf"
	"github.com/debianitram/modalview/flash"
	"github.com/debianitram/modalview/que"
	"github.com/debianitram/modalview/que/headers"
	"github.com/debianitram/modalview/uuid"
)

func main() {
	var (
		configPath string
		addr       string
		viewPath   string
		logLevel   string
		dev        bool
	)

	app := &cli.Command{
		Name:  "modaldemo",
		Usage: "Serve the modal view showcase",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("MODALDEMO_CONFIG"),
				Value:       "modaldemo.yml",
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Sources:     cli.EnvVars("MODALDEMO_ADDR"),
				Destination: &addr,
			},
			&cli.StringFlag{
				Name:        "view-path",
				Usage:       "directory searched for template overrides",
				Sources:     cli.EnvVars("MODALDEMO_VIEW_PATH"),
				Destination: &viewPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("MODALDEMO_LOG_LEVEL"),
				Value:       "info",
				Destination: &logLevel,
			},
			&cli.BoolFlag{
				Name:        "dev",
				Usage:       "reload templates on change and allow plain http cookies",
				Sources:     cli.EnvVars("MODALDEMO_DEV"),
				Destination: &dev,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return ctx, fmt.Errorf("parse log level: %w", err)
			}
			log.Logger = zerolog.New(os.Stdout).
				With().
				Timestamp().
				Logger().
				Level(lvl)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			// flags beat the file
			if addr != "" {
				cfg.Addr = addr
			}
			if viewPath != "" {
				cfg.ViewPath = viewPath
			}
			if dev {
				cfg.Dev = true
			}

			return run(ctx, cfg)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("modaldemo failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	secret := cfg.CSRFSecret
	if secret == "" {
		secret = uuid.New()
		log.Warn().Msg("no csrf secret configured, open forms will not survive a restart")
	}
	csrf.Setup(secret, uuid.New())
	csrf.Secure = !cfg.Dev
	flash.Secure = !cfg.Dev

	renderer := modalview.NewRenderer(&modalview.RendererConfig{ViewPath: cfg.ViewPath})
	if cfg.Dev && cfg.ViewPath != "" {
		if err := renderer.Watch(ctx); err != nil {
			return fmt.Errorf("watch templates: %w", err)
		}
	}

	demo, err := newDemoHandler(renderer)
	if err != nil {
		return err
	}

	// SetMethod parses the body first so Verify can read multipart posts
	q := que.New(headers.Set("X-Frame-Options", "SAMEORIGIN"), que.SetMethod, csrf.Verify)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      q.Handle(demo),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Bool("dev", cfg.Dev).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

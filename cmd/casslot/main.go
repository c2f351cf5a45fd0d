// Package main is the entry point for the casslot arcade hub.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"casslot/internal/cli"
	"casslot/internal/config"
	"casslot/internal/pkg/logger"
)

func main() {
	// Until the config is read, log to stderr.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Cancel an in-flight spin reveal on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	var (
		app     *cli.App
		logSink io.Closer
	)

	load := func(ctx context.Context, configDir string) (*cli.App, error) {
		cfg, err := config.Load(configDir)
		if err != nil {
			return nil, err
		}

		logSink = logger.Setup(cfg.Log)
		log.Debug().Str("driver", cfg.Storage.Driver).Msg("Configuration loaded")

		kv, err := cli.OpenStorage(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}

		app, err = cli.NewApp(ctx, cfg, kv, cli.Deps{})
		if err != nil {
			_ = kv.Close()
			return nil, err
		}
		return app, nil
	}

	err := cli.NewRootCmd(load).ExecuteContext(ctx)

	if app != nil {
		if cerr := app.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("Failed to close storage")
		}
	}
	if logSink != nil {
		_ = logSink.Close()
	}
	stop()

	if err != nil {
		os.Exit(1)
	}
}

// Command hubtel sends SMS and queries the Hubtel gateway from the shell.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/oggyb/hubtel-sms/internal/config"
	"github.com/oggyb/hubtel-sms/internal/hubtel"
	"github.com/oggyb/hubtel-sms/internal/logger"
	"github.com/oggyb/hubtel-sms/internal/sms"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCommand(loadGateway, os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}

// loadGateway builds the Hubtel client from the environment.
func loadGateway() (sms.Gateway, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "hubtel: failed to load config")
	}

	lg, err := logger.New(cfg.App.Env, cfg.App.LogLevel, os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "hubtel: failed to init logger")
	}

	return hubtel.New(
		cfg.Hubtel.ClientID,
		cfg.Hubtel.ClientSecret,
		cfg.Hubtel.SenderID,
		hubtel.WithHTTPClient(&http.Client{Timeout: cfg.Hubtel.HTTPTimeout}),
		hubtel.WithLogger(*lg),
	), nil
}

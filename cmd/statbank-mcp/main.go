// Command statbank-mcp serves a statistics bureau's tabular data API as
// MCP tools over stdio, HTTP, or SSE.
//
// Configuration comes from the environment (optionally a .env file); see
// the config package for the variable list. Run with:
//
//	STATBANK_BASE_URL=https://api.example.org/v2 statbank-mcp
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/statbridge/statbank-mcp/catalog"
	"github.com/statbridge/statbank-mcp/config"
	"github.com/statbridge/statbank-mcp/registry"
	"github.com/statbridge/statbank-mcp/statbank"
	"github.com/statbridge/statbank-mcp/tools"
)

const (
	serverName    = "statbank-mcp"
	serverVersion = "1.0.0"

	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "statbank-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	client, err := statbank.NewClient(statbank.Options{
		BaseURL:    cfg.BaseURL,
		Language:   cfg.Language,
		UserAgent:  serverName + "/" + serverVersion,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:     logger.Named("statbank"),
	})
	if err != nil {
		return err
	}

	cat := catalog.New()
	defer func() {
		_ = cat.Close()
	}()

	svc, err := tools.NewService(tools.Options{
		Client:  client,
		Catalog: cat,
		Logger:  logger.Named("tools"),
	})
	if err != nil {
		return err
	}

	reg := registry.New(registry.Config{
		ServerInfo: registry.ServerInfo{Name: serverName, Version: serverVersion},
		Logger:     logger.Named("registry"),
	})
	if err := svc.Register(reg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server",
		zap.String("transport", cfg.Transport),
		zap.String("base_url", cfg.BaseURL))

	switch cfg.Transport {
	case config.TransportStdio:
		return registry.ServeStdio(ctx, reg)
	case config.TransportHTTP:
		return serveHTTP(ctx, logger, cfg.HTTPAddr, registry.ServeHTTP(reg))
	case config.TransportSSE:
		return serveHTTP(ctx, logger, cfg.HTTPAddr, registry.ServeSSE(reg))
	default:
		return fmt.Errorf("unsupported transport %q", cfg.Transport)
	}
}

func serveHTTP(ctx context.Context, logger *zap.Logger, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // SSE responses stream
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.LogFormat == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zcfg.Level = level

	// With the stdio transport, stdout carries the JSON-RPC stream; logs
	// must stay on stderr.
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/temporalkit/tgmin/internal/api"
	"github.com/temporalkit/tgmin/pkg/minimize"
)

// newServeCmd creates the serve command for the HTTP API.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the minimization HTTP API",
		Long: `Serve exposes the minimization engine over HTTP:

  GET  /healthz      liveness probe
  POST /v1/minimize  minimize one graph (pkg/graphio JSON format)

The server shuts down gracefully on SIGINT/SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}

func runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	if addr == "" {
		addr = cfg.Serve.Addr
	}

	runCfg := minimize.DefaultConfig()
	if cfg.Minimize.MaxIterations > 0 {
		runCfg = runCfg.WithMaxIterations(cfg.Minimize.MaxIterations)
	}

	verdictCache, backend := buildCache(ctx, cfg)
	defer verdictCache.Close()
	logger.Debug("verdict cache ready", "backend", backend)

	srv := api.New(api.Options{
		Config:   runCfg,
		Cache:    verdictCache,
		CacheTTL: cfg.CacheTTL(),
		Logger:   logger,
	})
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

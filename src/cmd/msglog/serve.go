// FILE: msglog/src/cmd/msglog/serve.go
package main

import (
	"context"
	"os/signal"
	"syscall"

	"msglog/src/internal/config"
	"msglog/src/internal/msglog"
	"msglog/src/internal/server"
)

// runServer serves the store over HTTP until SIGINT or SIGTERM
func runServer(ctx context.Context, cfg *config.Config, store *msglog.Store) error {
	shared := msglog.NewSyncStore(store)
	defer shared.Clear()

	srv := server.New(cfg.Server, shared, cfg.Store.Path, logger)
	if err := srv.Start(); err != nil {
		return err
	}
	Print("Serving on http://%s\n", srv.Addr())

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("msg", "Shutdown signal received, stopping server")
	srv.Stop()
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wesen/studio/internal/api"
	"github.com/wesen/studio/internal/logging"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editing core over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log, "stderr")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if addr == "" {
				addr = cfg.Serve.Addr
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := api.NewServer(api.Options{
				Catalog:      cat,
				HistoryLimit: cfg.History.Limit,
				Logger:       logger,
			})
			if err := srv.Serve(ctx, addr); err != nil {
				logger.Error("server failed", zap.Error(err))
				return err
			}
			logger.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

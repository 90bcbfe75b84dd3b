package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/ker0olos/sift/pkg/accesslog"
	"github.com/ker0olos/sift/pkg/log"
	"github.com/ker0olos/sift/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newStartCmd() *cobra.Command {
	start := &cobra.Command{
		Use:   "start",
		Short: "Start server",
		Long:  `Start an HTTP server that validates every configured route against its schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(configurationFile)
			if err != nil {
				return err
			}

			logger, err := log.NewZapLogger(&cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var opts server.Options
			if cfg.AccessLog.Enabled {
				opts.AccessLog, err = accesslog.NewAccessLogger("server", accesslog.Options{
					File:    cfg.AccessLog.File,
					Format:  string(cfg.AccessLog.Format),
					Colored: cfg.AccessLog.Colored,
				})
				if err != nil {
					return err
				}
			}

			srv := server.NewServer(cfg.Server, cfg.Routes, opts)
			if err := srv.Start(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Stop(shutdownCtx)
		},
	}

	start.PersistentFlags().StringVarP(&configurationFile, "config", "", "", "The configuration filename")

	return start
}

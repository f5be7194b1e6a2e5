package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"folio/internal/logging"
	"folio/internal/telemetry"
	"folio/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Long: `serve renders the portfolio as HTML. Project details are served as
fragments under /projects/<slug>.html and assets under /static. With --watch
the content directory is reloaded on change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(a.cfg.LogLevel)
			logger := logging.InitForCLI(level, os.Stderr)
			if level > slog.LevelDebug {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			exp, err := telemetry.NewOTLPExporter(ctx)
			if err != nil {
				logger.Warn("tracing disabled", "err", err)
			}
			defer exp.Shutdown(context.Background()) //nolint:errcheck

			site, err := a.store.Load()
			if err != nil {
				return err
			}
			srv := web.NewServer(site, web.Options{
				StaticDir: a.store.StaticDir(),
				Logger:    logging.Subsystem(logger, "http"),
				Tracer:    exp.Tracer(),
			})
			if err := srv.Start(a.cfg.Addr); err != nil {
				return err
			}

			if a.cfg.Watch {
				go func() {
					reload := func() error {
						next, err := a.store.Load()
						if err != nil {
							return err
						}
						srv.SetSite(next)
						return nil
					}
					if err := web.Watch(ctx, a.store.BaseDir(), reload, logging.Subsystem(logger, "watch")); err != nil {
						logger.Error("live reload disabled", "err", err)
					}
				}()
			}

			<-ctx.Done()
			logger.Info("shutting down")
			return srv.Stop(context.Background())
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080, env FOLIO_ADDR)")
	cmd.Flags().Bool("watch", false, "reload content when files change")
	return cmd
}

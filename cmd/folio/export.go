package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/logging"
	"folio/internal/web"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the portfolio as static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.InitForCLI(logging.ParseLevel(a.cfg.LogLevel), os.Stderr)
			site, err := a.store.Load()
			if err != nil {
				return err
			}
			res, err := web.Export(site, a.cfg.Out, a.store.StaticDir())
			if err != nil {
				return err
			}
			logger.Info("exported", "out", a.cfg.Out, "pages", len(res.Pages), "assets", res.Assets)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d pages and %d assets to %s\n", len(res.Pages), res.Assets, a.cfg.Out)
			return nil
		},
	}
	cmd.Flags().String("out", "", "output directory (default public, env FOLIO_OUT)")
	return cmd
}

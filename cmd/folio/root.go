package main

import (
	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/content"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app is the state shared by all subcommands once configuration is resolved.
type app struct {
	cfgFile string
	cfg     config.Config
	store   *content.Store
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "folio",
		Short: "A single-page portfolio for the terminal and the web",
		Long: `folio renders a personal portfolio from one YAML file: interactively in
the terminal (folio tui), as an HTTP server (folio serve), or as static
files (folio export).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.store = content.NewStore(cfg.ContentDir)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./folio.yaml)")
	root.PersistentFlags().String("content", "", "content directory holding site.yaml and static/ (env FOLIO_CONTENT_DIR)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newTUICmd(a),
		newServeCmd(a),
		newExportCmd(a),
		newVersionCmd(),
	)
	return root
}

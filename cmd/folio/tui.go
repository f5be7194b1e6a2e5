package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"folio/internal/logging"
	"folio/internal/telemetry"
	"folio/internal/ui"
)

func newTUICmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the portfolio in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The alt screen owns the terminal, so logs go to a file.
			logger, closer, err := logging.InitForTUI(logging.ParseLevel(a.cfg.LogLevel), a.cfg.LogFile)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx := cmd.Context()
			exp, err := telemetry.NewOTLPExporter(ctx)
			if err != nil {
				logger.Warn("tracing disabled", "err", err)
			}
			defer exp.Shutdown(context.Background()) //nolint:errcheck

			site, err := a.store.Load()
			if err != nil {
				return err
			}
			logger.Info("starting tui", "content", a.store.SitePath(), "projects", len(site.Projects))

			ui.SetMarkdownStyle(ui.DetectMarkdownStyle())
			model := ui.NewAppModel(site, ui.Options{
				Logger:   logging.Subsystem(logger, "ui"),
				Observer: exp.TransitionObserver(),
			}).AsTeaModel()
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(ctx),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("log-file", "", "TUI log file (env FOLIO_LOG_FILE)")
	return cmd
}

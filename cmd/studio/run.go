package main

import (
	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wesen/studio/internal/logging"
	"github.com/wesen/studio/internal/prefs"
	"github.com/wesen/studio/internal/studioui"
)

func runCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the canvas editor (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(opts)
		},
	}
}

func runEditor(opts *rootOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	cat, err := opts.loadCatalog()
	if err != nil {
		return err
	}
	// The terminal belongs to the UI, so logs only go to a configured file.
	logger, err := logging.New(cfg.Log, "")
	if err != nil {
		bad.Printf("studio: %v\n", err)
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting editor", zap.String("version", version))
	p := tea.NewProgram(studioui.NewModel(studioui.Options{
		Catalog:      cat,
		UI:           cfg.UI,
		HistoryLimit: cfg.History.Limit,
		Prefs:        prefs.NewStore(opts.configDir()),
		Logger:       logger,
	}))
	if _, err := p.Run(); err != nil {
		bad.Printf("studio: %v\n", err)
		return err
	}
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/wesen/studio/internal/config"
	"github.com/wesen/studio/internal/prefs"
)

func prefsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage stored preferences",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Show the welcome dialog again on next start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := prefs.NewStore(opts.configDir())
			if err := store.ResetWelcome(); err != nil {
				bad.Printf("studio: %v\n", err)
				return err
			}
			good.Printf("  welcome dialog re-enabled (%s)\n", store.Path())
			return nil
		},
	})
	return cmd
}

func configCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the current configuration (defaults when none exists)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			path := opts.configPath
			if path == "" {
				path = config.Path()
			}
			if err := config.Save(cfg, path); err != nil {
				bad.Printf("studio: %v\n", err)
				return err
			}
			good.Printf("  wrote %s\n", path)
			return nil
		},
	})
	return cmd
}

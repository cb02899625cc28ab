package main

import (
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wesen/studio/internal/catalog"
	"github.com/wesen/studio/internal/config"
)

var version = "0.3.0"

var (
	brand  = color.New(color.FgHiCyan, color.Bold)
	subtle = color.New(color.FgHiBlack)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
)

type rootOptions struct {
	configPath string
	pluginDir  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "studio",
		Short: "Visual workflow design studio",
		Long: brand.Sprint("studio") + " lays out analysis workflows on a canvas\n" +
			subtle.Sprint("Drag tools from the palette, connect them and configure each step."),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(opts)
		},
	}
	root.SetVersionTemplate("studio {{ .Version }}\n")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.Path()+")")
	root.PersistentFlags().StringVar(&opts.pluginDir, "templates", "", "directory of extra palette TOML files (default templates/ next to the config file)")

	root.AddCommand(
		runCmd(opts),
		paletteCmd(opts),
		serveCmd(opts),
		prefsCmd(opts),
		configCmd(opts),
	)
	return root
}

// configDir is the directory holding the config file in use. Preferences
// and plugin templates live next to it.
func (o *rootOptions) configDir() string {
	if o.configPath != "" {
		return filepath.Dir(o.configPath)
	}
	return config.Dir()
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		bad.Printf("studio: %v\n", err)
		return nil, err
	}
	return cfg, nil
}

func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	dir := o.pluginDir
	if dir == "" {
		dir = filepath.Join(o.configDir(), "templates")
	}
	cat, err := catalog.Load(dir)
	if err != nil {
		bad.Printf("studio: failed to load palette: %v\n", err)
		return nil, err
	}
	return cat, nil
}

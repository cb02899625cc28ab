package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func paletteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "palette [query]",
		Short: "List the tools available in the palette",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			categories := cat.Categories()
			if len(args) == 1 {
				categories = cat.Filter(args[0])
			}
			if len(categories) == 0 {
				subtle.Println("  no matching tools")
				return nil
			}
			for _, c := range categories {
				brand.Printf("%s\n", c.Label)
				for _, t := range c.Templates {
					mode := "tab"
					if t.Inline {
						mode = "inline"
					}
					fmt.Printf("  %s %-20s %s\n", t.Icon, t.Name, subtle.Sprintf("%s (%s)", t.Type, mode))
					if t.Description != "" {
						fmt.Printf("    %s\n", strings.TrimSpace(t.Description))
					}
				}
				fmt.Println()
			}
			return nil
		},
	}
}

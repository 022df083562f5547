package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"streammax/config"
	"streammax/content"
)

func catalogCmd() *cobra.Command {
	var (
		file     string
		validate bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the page content, optionally checking it",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := content.Load(file)
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), c)

			if validate {
				if err := content.Validate(c); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog OK")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog override file (defaults to CATALOG_FILE)")
	cmd.Flags().BoolVar(&validate, "validate", false, "fail when the catalog is inconsistent")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if file == "" {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			file = cfg.CatalogFile
		}
		return nil
	}
	return cmd
}

func printCatalog(w io.Writer, c *content.Catalog) {
	fmt.Fprintf(w, "%s\n\nPlans:\n", c.Brand())
	for _, p := range c.Plans() {
		popular := ""
		if p.Popular {
			popular = " (most popular)"
		}
		fmt.Fprintf(w, "  %-10s %s%s  %s%s\n", p.Name, p.Price, p.Period, p.Variant, popular)
	}

	fmt.Fprintln(w, "\nFeatures:")
	for _, f := range c.Features() {
		fmt.Fprintf(w, "  %-24s %s\n", f.Title, f.Icon)
	}

	nav := make([]string, 0, len(c.NavItems()))
	for _, n := range c.NavItems() {
		nav = append(nav, n.Name+"=#"+n.ID)
	}
	fmt.Fprintf(w, "\nNav: %s\nSections: %s\n", strings.Join(nav, " "), strings.Join(c.Sections(), ", "))
}

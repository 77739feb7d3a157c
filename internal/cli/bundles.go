package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var bundlesCmd = &cobra.Command{
	Use:   "bundles",
	Short: "List available bundles",
	Long: `List the curated bundles and the modules each one installs. Entries
marked optional are recommendations; the rest are installed with the bundle.`,
	Args: cobra.NoArgs,
	RunE: runBundles,
}

func init() {
	rootCmd.AddCommand(bundlesCmd)
}

func runBundles(cmd *cobra.Command, _ []string) error {
	d := GetDeps()
	out := cmd.OutOrStdout()

	if len(d.Catalog.Bundles) == 0 {
		fmt.Fprintln(out, "No bundles in the catalog.")
		return nil
	}

	for _, b := range d.Catalog.Bundles {
		header := b.Name
		if header == "" {
			header = b.ID
		}
		if b.Complexity != "" {
			header += " " + d.Theme.Muted.Render("("+b.Complexity+")")
		}
		fmt.Fprintln(out, d.Theme.Title.Render(header))
		fmt.Fprintf(out, "  ID: %s\n", b.ID)
		if b.Description != "" {
			fmt.Fprintf(out, "  %s\n", b.Description)
		}
		if len(b.AlternativeTo) > 0 {
			fmt.Fprintln(out, d.Theme.Muted.Render("  Alternative to: "+strings.Join(b.AlternativeTo, ", ")))
		}
		for _, entry := range b.Modules {
			line := fmt.Sprintf("    %s/%s", entry.Category, entry.ID)
			if entry.Optional {
				line += " " + d.Theme.Muted.Render("(optional)")
			}
			if len(entry.RequiredBy) > 0 {
				line += " " + d.Theme.Muted.Render("required by "+strings.Join(entry.RequiredBy, ", "))
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintln(out)
	}
	return nil
}

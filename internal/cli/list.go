package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/stackkit/stackkit/pkg/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List available modules",
	Long: `List the modules in the catalog, grouped by category. Installed
modules are marked when the current directory (or --root) holds an
initialized project.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("installed", false, "Show only installed modules")
}

func runList(cmd *cobra.Command, args []string) error {
	d := GetDeps()
	out := cmd.OutOrStdout()

	categories := catalog.Categories()
	if len(args) == 1 {
		c, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		categories = []catalog.Category{c}
	}

	// Installation marks are best-effort: listing works outside a project.
	installed := func(catalog.Category, string) bool { return false }
	root, err := projectRoot(cmd)
	if err == nil {
		if cfg, err := d.Config.Load(root); err == nil && d.Config.ProjectInitialized() {
			installed = cfg.Selection.Installed
		}
	}
	onlyInstalled := getBoolFlag(cmd, "installed")

	titleCaser := cases.Title(language.English)
	for _, c := range categories {
		modules := d.Catalog.In(c)
		fmt.Fprintln(out, d.Theme.Title.Render(titleCaser.String(string(c))))

		shown := 0
		for _, m := range modules {
			isInstalled := installed(c, m.ID)
			if onlyInstalled && !isInstalled {
				continue
			}
			shown++

			mark := " "
			if isInstalled {
				mark = d.Theme.Success.Render("*")
			}
			line := fmt.Sprintf("  %s %-16s %s", mark, m.ID, m.Description)
			if len(m.Tags) > 0 {
				line += " " + d.Theme.Muted.Render("["+strings.Join(m.Tags, ", ")+"]")
			}
			if len(m.Dependencies) > 0 {
				line += " " + d.Theme.Muted.Render("needs: "+strings.Join(m.Dependencies, ", "))
			}
			fmt.Fprintln(out, line)
		}
		if shown == 0 {
			fmt.Fprintln(out, d.Theme.Muted.Render("  (none)"))
		}
		fmt.Fprintln(out)
	}
	return nil
}

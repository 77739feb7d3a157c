package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackkit/stackkit/internal/resolve"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest modules related to the installed selection",
	Long: `Suggest catalog modules that share at least one tag with an installed
module but are not installed themselves.`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	d := GetDeps()
	out := cmd.OutOrStdout()

	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadProject(d, root)
	if err != nil {
		return err
	}

	suggestions := resolve.Suggestions(d.Catalog, installedSelection(cfg))
	if len(suggestions) == 0 {
		fmt.Fprintln(out, "No suggestions; the installed selection covers its tags.")
		return nil
	}

	fmt.Fprintln(out, d.Theme.Title.Render("Suggested modules"))
	for _, m := range suggestions {
		line := fmt.Sprintf("  %s/%-16s %s", m.Category, m.ID, m.Description)
		if len(m.Tags) > 0 {
			line += " " + d.Theme.Muted.Render("["+strings.Join(m.Tags, ", ")+"]")
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, d.Theme.Muted.Render("Install with: stackkit add <category> <id>"))
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackkit/stackkit/internal/config"
	"github.com/stackkit/stackkit/internal/resolve"
	"github.com/stackkit/stackkit/internal/template"
	"github.com/stackkit/stackkit/pkg/catalog"
)

var removeCmd = &cobra.Command{
	Use:   "remove <category> <module-id>",
	Short: "Remove an installed module",
	Long: `Remove a module from the project. If other installed modules in the
same category depend on it directly, the removal is refused; use --force to
remove it anyway.`,
	Args: cobra.ExactArgs(2),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().Bool("force", false, "Remove even when installed modules depend on it")
}

func runRemove(cmd *cobra.Command, args []string) error {
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
	category, err := parseCategory(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	if !cfg.Selection.Installed(category, id) {
		return fmt.Errorf("%s/%s is not installed", category, id)
	}

	impact := resolve.RemovalImpact(d.Catalog, category, id, cfg.Selection.Modules[category])
	if !impact.CanRemove {
		if !getBoolFlag(cmd, "force") {
			return fmt.Errorf("cannot remove %s/%s: required by %s (use --force to remove anyway)",
				category, id, strings.Join(impact.BlockedBy, ", "))
		}
		fmt.Fprintln(out, d.Theme.Warning.Render(fmt.Sprintf(
			"Warning: removing %s/%s although %s depend(s) on it.", category, id, strings.Join(impact.BlockedBy, ", "))))
	}

	m, ok := d.Catalog.Module(category, id)
	if !ok {
		// Installed under an older catalog; enough identity to delete the file.
		m = catalog.Module{ID: id, Category: category}
	}
	inst := template.NewInstaller(d.Assets)
	if err := inst.Remove(root, m); err != nil {
		return err
	}

	err = d.Config.Update(func(cfg *config.Config) {
		cfg.Selection.Remove(category, id)
	})
	if err != nil {
		return err
	}
	if err := d.Config.Save(); err != nil {
		return err
	}

	fmt.Fprintln(out, d.Theme.Success.Render(fmt.Sprintf("Removed %s/%s.", category, id)))
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackkit/stackkit/internal/config"
	"github.com/stackkit/stackkit/internal/resolve"
	"github.com/stackkit/stackkit/internal/template"
)

var addCmd = &cobra.Command{
	Use:   "add <category> <module-or-tag>...",
	Short: "Add modules to an initialized project",
	Long: `Add modules by id or tag. Dependencies are resolved transitively and
installed alongside, in dependency order. Identifiers that match neither a
module id nor a tag are skipped with a warning.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().Bool("force", false, "Overwrite existing module files")
}

func runAdd(cmd *cobra.Command, args []string) error {
	d := GetDeps()
	out := cmd.OutOrStdout()

	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}
	if _, err := loadProject(d, root); err != nil {
		return err
	}
	category, err := parseCategory(args[0])
	if err != nil {
		return err
	}

	res := resolve.Modules(d.Catalog, category, args[1:])
	for _, id := range res.Unresolved {
		fmt.Fprintln(out, d.Theme.Warning.Render(fmt.Sprintf("Warning: %q matched no %s module or tag; skipped.", id, category)))
	}
	if len(res.Circular) > 0 {
		fmt.Fprintln(out, d.Theme.Warning.Render(fmt.Sprintf("Warning: circular %s dependencies: %v", category, res.Circular)))
	}
	if len(res.Resolved) == 0 {
		fmt.Fprintln(out, "Nothing to add.")
		return nil
	}

	modules := resolve.SortByDependencies(res.Resolved)
	force := getBoolFlag(cmd, "force")
	inst := template.NewInstaller(d.Assets, template.WithForce(force))

	bar := d.Progress.Start(fmt.Sprintf("Installing %s", category), len(modules))
	report, err := inst.Install(cmd.Context(), root, modules, nil)
	bar.Increment(len(modules))
	bar.Done()
	if err != nil {
		return fmt.Errorf("install %s: %w", category, err)
	}

	var added []string
	err = d.Config.Update(func(cfg *config.Config) {
		added = cfg.Selection.Add(category, moduleIDs(modules)...)
	})
	if err != nil {
		return err
	}
	if err := d.Config.Save(); err != nil {
		return err
	}

	switch {
	case len(added) == 0:
		fmt.Fprintln(out, "All requested modules were already installed.")
	default:
		fmt.Fprintln(out, d.Theme.Success.Render(fmt.Sprintf("Added %d %s module(s): %v", len(added), category, added)))
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintln(out, d.Theme.Muted.Render(fmt.Sprintf("Kept %d existing file(s); use --force to overwrite.", len(report.Skipped))))
	}
	return nil
}

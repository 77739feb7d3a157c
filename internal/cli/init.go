package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/stackkit/stackkit/internal/cli/wizard"
	"github.com/stackkit/stackkit/internal/config"
	"github.com/stackkit/stackkit/internal/resolve"
	"github.com/stackkit/stackkit/internal/template"
	"github.com/stackkit/stackkit/pkg/catalog"
	"github.com/stackkit/stackkit/pkg/version"
)

var initCmd = &cobra.Command{
	Use:   "init [project-dir]",
	Short: "Initialize a project with curated Claude Code modules",
	Long: `Initialize a project: pick bundles and modules, resolve their
dependencies, install the files under .claude/, and record the selection in
.stackkit/config.yaml.

Usage patterns:
  stackkit init              Initialize the current directory
  stackkit init my-app       Create ./my-app/ and initialize inside it

Without a terminal (or with --non-interactive) the selection comes from the
--bundle and per-category flags instead of the wizard.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("name", "", "Project name (default: directory name)")
	initCmd.Flags().String("user", "", "User display name")
	initCmd.Flags().StringSlice("bundle", nil, "Bundle ids to install")
	initCmd.Flags().StringSlice("agents", nil, "Agent module ids or tags")
	initCmd.Flags().StringSlice("skills", nil, "Skill module ids or tags")
	initCmd.Flags().StringSlice("commands", nil, "Command module ids or tags")
	initCmd.Flags().StringSlice("docs", nil, "Doc module ids or tags")
	initCmd.Flags().Bool("force", false, "Reinstall over an already-initialized project")
}

func runInit(cmd *cobra.Command, args []string) error {
	d := GetDeps()

	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	root, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolve project directory: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}

	cfg, err := d.Config.Load(root)
	if err != nil {
		return err
	}
	force := getBoolFlag(cmd, "force")
	if d.Config.ProjectInitialized() && !force {
		return fmt.Errorf("project already initialized at %s (use --force to reinstall)", root)
	}

	var (
		projectName string
		userName    string
		bundleIDs   []string
		requested   = make(map[catalog.Category][]string)
	)

	nonInteractive := cfg.Settings.NonInteractive || d.Headless.IsHeadless()
	if nonInteractive {
		projectName = getStringFlag(cmd, "name")
		if projectName == "" {
			projectName = filepath.Base(root)
		}
		userName = getStringFlag(cmd, "user")
		bundleIDs = getStringSliceFlag(cmd, "bundle")

		// Bundle modules come first so dependency-carrying bundle entries
		// keep their relative order.
		fromBundles := resolve.Bundles(d.Catalog, bundleIDs)
		for _, c := range catalog.Categories() {
			requested[c] = append(fromBundles[c], getStringSliceFlag(cmd, string(c))...)
		}
	} else {
		res, err := wizard.Run(d.Catalog, root)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			return err
		}
		projectName = res.ProjectName
		userName = res.UserName
		bundleIDs = res.Bundles
		for c, ids := range res.Modules {
			requested[c] = ids
		}
	}

	resolved, selection := resolveSelection(cmd, d, requested)
	applyBundleValidation(cmd, d, bundleIDs, selection, resolved)

	installed, err := installSelection(cmd, d, root, resolved, force, &template.Context{
		ProjectName:   projectName,
		ProjectRoot:   root,
		UserName:      userName,
		Version:       version.GetVersion(),
		Platform:      runtime.GOOS,
		InitializedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	err = d.Config.Update(func(cfg *config.Config) {
		cfg.Project = config.ProjectConfig{
			Name:          projectName,
			Version:       version.GetVersion(),
			InitializedAt: time.Now().UTC().Format(time.RFC3339),
		}
		cfg.Selection.Bundles = bundleIDs
		for _, c := range catalog.Categories() {
			cfg.Selection.Modules[c] = moduleIDs(resolved[c])
		}
	})
	if err != nil {
		return err
	}
	if err := d.Config.Save(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, d.Theme.Success.Render(fmt.Sprintf("Initialized %s with %d modules.", projectName, installed)))
	fmt.Fprintln(out, d.Theme.Muted.Render("Selection recorded in "+config.ConfigPath(root)))
	return nil
}

// resolveSelection resolves the requested identifiers per category, printing
// warnings for unresolved identifiers and dependency cycles. Neither aborts
// the run.
func resolveSelection(cmd *cobra.Command, d *Dependencies, requested map[catalog.Category][]string) (map[catalog.Category][]catalog.Module, resolve.Selection) {
	out := cmd.OutOrStdout()
	resolved := make(map[catalog.Category][]catalog.Module)
	selection := make(resolve.Selection)

	for _, c := range catalog.Categories() {
		res := resolve.Modules(d.Catalog, c, requested[c])
		for _, id := range res.Unresolved {
			fmt.Fprintln(out, d.Theme.Warning.Render(fmt.Sprintf("Warning: %q matched no %s module or tag; skipped.", id, c)))
		}
		if len(res.Circular) > 0 {
			fmt.Fprintln(out, d.Theme.Warning.Render(fmt.Sprintf("Warning: circular %s dependencies: %v", c, res.Circular)))
		}
		resolved[c] = res.Resolved
		selection[c] = moduleIDs(res.Resolved)
	}
	return resolved, selection
}

// applyBundleValidation checks the selection against the chosen bundles'
// requirements, printing warnings and adding missing hard requirements.
func applyBundleValidation(cmd *cobra.Command, d *Dependencies, bundleIDs []string, selection resolve.Selection, resolved map[catalog.Category][]catalog.Module) {
	out := cmd.OutOrStdout()

	var chosen []catalog.Bundle
	for _, id := range bundleIDs {
		if b, ok := d.Catalog.Bundle(id); ok {
			chosen = append(chosen, b)
		}
	}
	validation := resolve.ValidateBundles(selection, chosen)

	for _, w := range validation.Warnings {
		fmt.Fprintln(out, d.Theme.Warning.Render("Warning: "+w.Message))
	}
	for _, inc := range validation.AutoIncluded {
		res := resolve.Modules(d.Catalog, inc.Category, []string{inc.ID})
		before := len(resolved[inc.Category])
		resolved[inc.Category] = mergeModules(resolved[inc.Category], res.Resolved)
		if len(resolved[inc.Category]) > before {
			selection[inc.Category] = moduleIDs(resolved[inc.Category])
			fmt.Fprintln(out, d.Theme.Muted.Render(fmt.Sprintf("Auto-included %s/%s (required by a selected bundle).", inc.Category, inc.ID)))
		}
	}
}

// installSelection installs all resolved modules in dependency order plus
// the root templates, reporting progress. Returns the number of files
// written.
func installSelection(cmd *cobra.Command, d *Dependencies, root string, resolved map[catalog.Category][]catalog.Module, force bool, tmplCtx *template.Context) (int, error) {
	inst := template.NewInstaller(d.Assets, template.WithForce(force))
	total := 0
	for _, c := range catalog.Categories() {
		resolved[c] = resolve.SortByDependencies(resolved[c])
		total += len(resolved[c])
	}

	bar := d.Progress.Start("Installing modules", total)
	defer bar.Done()

	written := 0
	for _, c := range catalog.Categories() {
		if len(resolved[c]) == 0 {
			continue
		}
		bar.SetTitle(fmt.Sprintf("Installing %s", c))
		report, err := inst.Install(cmd.Context(), root, resolved[c], nil)
		if err != nil {
			return written, fmt.Errorf("install %s: %w", c, err)
		}
		written += len(report.Written)
		bar.Increment(len(resolved[c]))
	}

	if tmplCtx != nil {
		bar.SetTitle("Writing project files")
		report, err := inst.Install(cmd.Context(), root, nil, tmplCtx)
		if err != nil {
			return written, fmt.Errorf("write project files: %w", err)
		}
		written += len(report.Written)
	}
	return written, nil
}

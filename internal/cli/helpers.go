package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackkit/stackkit/internal/config"
	"github.com/stackkit/stackkit/internal/resolve"
	"github.com/stackkit/stackkit/pkg/catalog"
)

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getStringSliceFlag retrieves a string slice flag value from the command.
func getStringSliceFlag(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return nil
	}
	return val
}

// projectRoot determines the project root from the --root flag or the
// current working directory.
func projectRoot(cmd *cobra.Command) (string, error) {
	root := getStringFlag(cmd, "root")
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve project root: %w", err)
	}
	return abs, nil
}

// parseCategory maps a command argument to a module category. Both plural
// and singular forms are accepted.
func parseCategory(arg string) (catalog.Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(arg))
	switch normalized {
	case "agent":
		normalized = "agents"
	case "skill":
		normalized = "skills"
	case "command":
		normalized = "commands"
	case "doc":
		normalized = "docs"
	}

	c := catalog.Category(normalized)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category %q: must be one of agents, skills, commands, docs", arg)
	}
	return c, nil
}

// loadProject loads the configuration for an already-initialized project.
func loadProject(d *Dependencies, root string) (*config.Config, error) {
	cfg, err := d.Config.Load(root)
	if err != nil {
		return nil, err
	}
	if !d.Config.ProjectInitialized() {
		return nil, fmt.Errorf("%w: run \"stackkit init\" in %s first", config.ErrNoProject, root)
	}
	return cfg, nil
}

// installedSelection converts the persisted selection to the resolver's
// selection type.
func installedSelection(cfg *config.Config) resolve.Selection {
	return resolve.Selection(cfg.Selection.Modules)
}

// mergeModules appends modules from add that are not already in dst.
func mergeModules(dst, add []catalog.Module) []catalog.Module {
	have := make(map[string]bool, len(dst))
	for _, m := range dst {
		have[m.ID] = true
	}
	for _, m := range add {
		if !have[m.ID] {
			dst = append(dst, m)
			have[m.ID] = true
		}
	}
	return dst
}

// moduleIDs extracts the id of every module in order.
func moduleIDs(modules []catalog.Module) []string {
	ids := make([]string, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}
	return ids
}

package cli

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <category> <module-id>",
	Short: "Show a module's details and content",
	Args:  cobra.ExactArgs(2),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	d := GetDeps()
	out := cmd.OutOrStdout()

	category, err := parseCategory(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	m, ok := d.Catalog.Module(category, id)
	if !ok {
		return fmt.Errorf("no %s module %q in the catalog", category, id)
	}

	name := m.Name
	if name == "" {
		name = m.ID
	}
	fmt.Fprintln(out, d.Theme.Title.Render(name))
	fmt.Fprintf(out, "  ID:        %s/%s\n", m.Category, m.ID)
	if m.Description != "" {
		fmt.Fprintf(out, "  About:     %s\n", m.Description)
	}
	if len(m.Tags) > 0 {
		fmt.Fprintf(out, "  Tags:      %s\n", strings.Join(m.Tags, ", "))
	}
	if len(m.Dependencies) > 0 {
		fmt.Fprintf(out, "  Needs:     %s\n", strings.Join(m.Dependencies, ", "))
	}
	if dependents := d.Catalog.Dependents(category, id); len(dependents) > 0 {
		fmt.Fprintf(out, "  Needed by: %s\n", strings.Join(dependents, ", "))
	}
	fmt.Fprintln(out)

	src := m.Path
	if src == "" {
		src = fmt.Sprintf("%s/%s.md", m.Category, m.ID)
	}
	content, err := fs.ReadFile(d.Assets, src)
	if err != nil {
		return fmt.Errorf("read module content: %w", err)
	}
	body := stripFrontmatter(string(content))

	if isatty.IsTerminal(os.Stdout.Fd()) && !d.Theme.NoColor {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			if rendered, err := renderer.Render(body); err == nil {
				fmt.Fprint(out, rendered)
				return nil
			}
		}
	}
	fmt.Fprintln(out, body)
	return nil
}

// stripFrontmatter drops a leading YAML frontmatter block, if present.
func stripFrontmatter(content string) string {
	if !strings.HasPrefix(content, "---\n") {
		return content
	}
	rest := content[len("---\n"):]
	if idx := strings.Index(rest, "\n---\n"); idx >= 0 {
		return strings.TrimLeft(rest[idx+len("\n---\n"):], "\n")
	}
	return content
}

package registry

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatterDelimiter separates YAML frontmatter from the markdown body.
const frontmatterDelimiter = "---"

// moduleFrontmatter is the YAML metadata block at the top of a module file.
type moduleFrontmatter struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Tags         []string `yaml:"tags"`
	Dependencies []string `yaml:"dependencies"`
}

// parseFrontmatter extracts the YAML frontmatter from a markdown document.
// Returns (meta, body, nil) on success. A document without a frontmatter
// block returns an empty meta and the full content as body.
func parseFrontmatter(content []byte) (moduleFrontmatter, string, error) {
	var meta moduleFrontmatter

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") {
		return meta, text, nil
	}

	rest := text[len(frontmatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontmatterDelimiter)
	if end < 0 {
		return meta, "", fmt.Errorf("%w: unterminated frontmatter block", ErrInvalidFrontmatter)
	}

	block := rest[:end]
	body := rest[end+len(frontmatterDelimiter)+1:]
	body = strings.TrimPrefix(body, "\n")

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return meta, "", fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}

	return meta, body, nil
}

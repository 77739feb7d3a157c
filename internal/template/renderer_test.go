package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fsys := fstest.MapFS{
			"CLAUDE.md.tmpl": &fstest.MapFile{
				Data: []byte("# {{.ProjectName}}\n\nVersion: {{.Version}}\n"),
			},
		}
		r := NewRenderer(fsys)

		data := map[string]string{
			"ProjectName": "demo-app",
			"Version":     "1.0.0",
		}

		result, err := r.Render("CLAUDE.md.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "# demo-app\n\nVersion: 1.0.0\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fsys := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{
				Data: []byte("Hello {{.Name}}, your role is {{.Role}}"),
			},
		}
		r := NewRenderer(fsys)

		_, err := r.Render("test.tmpl", map[string]string{"Name": "dev"})
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nonexistent.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("json_escape_func", func(t *testing.T) {
		fsys := fstest.MapFS{
			"settings.tmpl": &fstest.MapFile{
				Data: []byte(`{"name": "{{jsonEscape .Name}}"}`),
			},
		}
		r := NewRenderer(fsys)

		result, err := r.Render("settings.tmpl", map[string]string{"Name": `a"b\c`})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if string(result) != `{"name": "a\"b\\c"}` {
			t.Errorf("result = %q", string(result))
		}
	})

	t.Run("runtime_variables_pass_through", func(t *testing.T) {
		fsys := fstest.MapFS{
			"cmd.tmpl": &fstest.MapFile{
				Data: []byte("Run in $CLAUDE_PROJECT_DIR with $ARGUMENTS for {{.ProjectName}}"),
			},
		}
		r := NewRenderer(fsys)

		result, err := r.Render("cmd.tmpl", map[string]string{"ProjectName": "p"})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(string(result), "$CLAUDE_PROJECT_DIR") {
			t.Errorf("runtime variable stripped: %q", string(result))
		}
	})

	t.Run("leftover_env_token_rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"bad.tmpl": &fstest.MapFile{
				Data: []byte("path is ${HOME_DIR}"),
			},
		}
		r := NewRenderer(fsys)

		_, err := r.Render("bad.tmpl", map[string]string{})
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})
}

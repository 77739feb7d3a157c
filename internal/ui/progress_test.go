package ui

import (
	"bytes"
	"strings"
	"testing"
)

func headlessFixture(w *bytes.Buffer) *progressImpl {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return newProgressImpl(NewTheme(true), hm, w)
}

func TestHeadlessProgressBar(t *testing.T) {
	t.Run("logs_each_increment", func(t *testing.T) {
		var buf bytes.Buffer
		bar := headlessFixture(&buf).Start("installing modules", 3)

		bar.Increment(1)
		bar.Increment(1)
		bar.Done()

		out := buf.String()
		for _, want := range []string{"[1/3]", "[2/3]", "[3/3]"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("increment_clamps_at_total", func(t *testing.T) {
		var buf bytes.Buffer
		bar := headlessFixture(&buf).Start("install", 2)

		bar.Increment(5)

		if !strings.Contains(buf.String(), "[2/2]") {
			t.Errorf("expected clamp to total, got:\n%s", buf.String())
		}
	})

	t.Run("set_title_applies_to_next_line", func(t *testing.T) {
		var buf bytes.Buffer
		bar := headlessFixture(&buf).Start("first", 2)

		bar.Increment(1)
		bar.SetTitle("second")
		bar.Increment(1)

		if !strings.Contains(buf.String(), "[2/2] second") {
			t.Errorf("title change not reflected:\n%s", buf.String())
		}
	})
}

func TestHeadlessSpinner(t *testing.T) {
	t.Run("prints_title_and_updates", func(t *testing.T) {
		var buf bytes.Buffer
		sp := headlessFixture(&buf).Spinner("resolving dependencies")

		sp.SetTitle("writing files")
		sp.Stop()

		out := buf.String()
		if !strings.Contains(out, "resolving dependencies") || !strings.Contains(out, "writing files") {
			t.Errorf("spinner output = %q", out)
		}
	})
}

func TestHeadlessManager(t *testing.T) {
	t.Run("force_overrides_detection", func(t *testing.T) {
		hm := NewHeadlessManager()

		hm.ForceHeadless(true)
		if !hm.IsHeadless() {
			t.Error("forced headless not honored")
		}

		hm.ForceHeadless(false)
		if hm.IsHeadless() {
			t.Error("forced interactive not honored")
		}
	})
}

func TestNewTheme(t *testing.T) {
	t.Run("no_color_renders_plain_text", func(t *testing.T) {
		theme := NewTheme(true)
		if got := theme.Error.Render("failed"); got != "failed" {
			t.Errorf("NoColor Error.Render = %q", got)
		}
	})

	t.Run("palette_is_populated", func(t *testing.T) {
		theme := NewTheme(false)
		if theme.Colors.Primary == "" || theme.Colors.Error == "" {
			t.Errorf("palette incomplete: %+v", theme.Colors)
		}
	})
}

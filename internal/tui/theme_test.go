package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func writeTheme(t *testing.T, dir, name, body string) {
	t.Helper()
	themes := filepath.Join(dir, "themes")
	if err := os.MkdirAll(themes, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(themes, name+".yml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadThemes_Defaults(t *testing.T) {
	t.Parallel()

	ts, err := LoadThemes(t.TempDir())
	if err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	if ts.Light != LightTheme() || ts.Dark != DarkTheme() {
		t.Fatal("missing files should keep built-in palettes")
	}
	if ts.Get("dark").Name != "dark" || ts.Get("anything").Name != "light" {
		t.Fatal("Get did not pick the right palette")
	}
}

func TestLoadThemes_Override(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTheme(t, dir, "dark", "primary: \"#FF00FF\"\nstatus_bg: \"#101010\"\n")

	ts, err := LoadThemes(dir)
	if err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	if ts.Dark.Primary != lipgloss.Color("#FF00FF") {
		t.Fatalf("primary = %q", ts.Dark.Primary)
	}
	if ts.Dark.StatusBg != lipgloss.Color("#101010") {
		t.Fatalf("status bg = %q", ts.Dark.StatusBg)
	}
	if ts.Dark.Text != DarkTheme().Text {
		t.Fatal("unset keys should keep the built-in value")
	}
	if ts.Light != LightTheme() {
		t.Fatal("light palette changed")
	}
}

func TestLoadThemes_BadYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTheme(t, dir, "light", "primary: [unterminated\n")

	ts, err := LoadThemes(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if ts.Light != LightTheme() {
		t.Fatal("bad file should fall back to the built-in palette")
	}
}

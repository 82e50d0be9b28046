package cards

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSheet(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "card.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSheet(t *testing.T) {
	path := writeSheet(t, `
[player]
name = "Alex Johnson"
position = "Shortstop"
team = "Harbor City Herons"
card_number = "12"
set = "Prime Series"
year = "2024"
style = "vintage"
photo = "photo.jpg"
emblem = "emblem.png"
`)
	p, err := LoadSheet(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Alex Johnson" || p.Team != "Harbor City Herons" {
		t.Fatalf("unexpected player: %+v", p)
	}
	if p.Style != StyleVintage {
		t.Fatalf("style = %q, want vintage", p.Style)
	}
	// Image paths resolve lazily; the sources just have to exist.
	if p.Photo == nil || p.Emblem == nil {
		t.Fatal("photo and emblem sources must be set")
	}
}

func TestLoadSheetRejectsMissingName(t *testing.T) {
	path := writeSheet(t, `
[player]
photo = "photo.jpg"
emblem = "emblem.png"
`)
	if _, err := LoadSheet(path); err == nil {
		t.Fatal("sheet without a name must be rejected")
	}
}

func TestLoadSheetRejectsUnknownStyle(t *testing.T) {
	path := writeSheet(t, `
[player]
name = "Alex Johnson"
style = "chrome"
photo = "photo.jpg"
emblem = "emblem.png"
`)
	if _, err := LoadSheet(path); err == nil {
		t.Fatal("unknown style must be rejected at load time")
	}
}

func TestLoadSheetMissingFile(t *testing.T) {
	if _, err := LoadSheet(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("missing sheet file must error")
	}
}

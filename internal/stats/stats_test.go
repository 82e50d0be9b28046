package stats

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/youruser/cardforge/internal/cards"
)

func testPlayer() cards.Player {
	return cards.Player{Name: "Alex Johnson"}
}

func TestSheetDeterministicWithFixedSource(t *testing.T) {
	a := New(rand.NewSource(42)).Sheet(testPlayer())
	b := New(rand.NewSource(42)).Sheet(testPlayer())
	if a.Text() != b.Text() {
		t.Fatalf("same seed produced different sheets:\n%s\nvs\n%s", a.Text(), b.Text())
	}
}

func TestSheetHasFiveLines(t *testing.T) {
	s := New(rand.NewSource(1)).Sheet(testPlayer())
	if len(s.Lines) != 5 {
		t.Fatalf("got %d stat lines, want 5", len(s.Lines))
	}
}

func TestSheetRanges(t *testing.T) {
	g := New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		s := g.Sheet(testPlayer())
		byLabel := map[string]string{}
		for _, ln := range s.Lines {
			byLabel[ln.Label] = ln.Value
		}

		games, _ := strconv.Atoi(byLabel["Games"])
		if games < 100 || games > 160 {
			t.Fatalf("Games = %d out of range", games)
		}
		hr, _ := strconv.Atoi(byLabel["Home Runs"])
		if hr < 2 || hr > 9 {
			t.Fatalf("Home Runs = %d out of range", hr)
		}
		avg, err := strconv.ParseFloat(byLabel["Batting Average"], 64)
		if err != nil {
			t.Fatalf("unparseable average %q: %v", byLabel["Batting Average"], err)
		}
		if avg < 0.200 || avg > 0.500 {
			t.Fatalf("Batting Average = %.3f out of range", avg)
		}
	}
}

func TestSheetTextFormat(t *testing.T) {
	s := New(rand.NewSource(3)).Sheet(testPlayer())
	text := s.Text()

	parts := strings.SplitN(text, "---\n", 2)
	if len(parts) != 2 {
		t.Fatalf("text block missing --- separator:\n%s", text)
	}
	lines := strings.Split(strings.TrimRight(parts[0], "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d stat lines before separator, want 5:\n%s", len(lines), parts[0])
	}
	for _, line := range lines {
		label, value, ok := strings.Cut(line, ": ")
		if !ok || label == "" || value == "" {
			t.Fatalf("line %q is not in Label: Value form", line)
		}
	}
	if strings.TrimSpace(parts[1]) == "" {
		t.Fatal("bio section must not be empty")
	}
}

func TestSheetGeneratedBioUsesName(t *testing.T) {
	s := New(rand.NewSource(5)).Sheet(testPlayer())
	if !strings.Contains(s.Bio, "Alex Johnson") {
		t.Fatalf("generated bio should mention the player, got %q", s.Bio)
	}
}

func TestSheetKeepsSuppliedBio(t *testing.T) {
	p := testPlayer()
	p.Bio = "Two-time all-star."
	s := New(rand.NewSource(5)).Sheet(p)
	if s.Bio != "Two-time all-star." {
		t.Fatalf("supplied bio was replaced: %q", s.Bio)
	}
}

func TestSheetCustomStatsOverride(t *testing.T) {
	p := testPlayer()
	p.CustomStats = "Wins: 18\nERA: 2.73\n\nnot a stat line\nSaves: 3"
	s := New(rand.NewSource(9)).Sheet(p)
	if len(s.Lines) != 3 {
		t.Fatalf("got %d custom lines, want 3: %+v", len(s.Lines), s.Lines)
	}
	if s.Lines[0].Label != "Wins" || s.Lines[0].Value != "18" {
		t.Fatalf("first custom line = %+v", s.Lines[0])
	}
}

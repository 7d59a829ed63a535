package view

import (
	"regexp"
	"testing"

	tuitheme "github.com/glabrego/keepass-cli/internal/tui/theme"
)

var ansiStrip = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiStrip.ReplaceAllString(s, "")
}

func TestHeader(t *testing.T) {
	th := tuitheme.Default()
	got := stripANSI(Header("Database", "(press ESC to exit)", th))
	if got != "? Database (press ESC to exit)" {
		t.Fatalf("unexpected header: %q", got)
	}
}

func TestScrollMarker(t *testing.T) {
	th := tuitheme.Default()
	if got := stripANSI(ScrollMarker(3, true, th)); got != "  ↑ 3 more" {
		t.Fatalf("unexpected above marker: %q", got)
	}
	if got := stripANSI(ScrollMarker(1, false, th)); got != "  ↓ 1 more" {
		t.Fatalf("unexpected below marker: %q", got)
	}
}

package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRenderActiveLine_StylesBothStates(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	active := th.RenderActiveLine(true, "📁 Web")
	if !strings.Contains(active, "\x1b[") || !strings.Contains(active, "📁 Web") {
		t.Fatalf("expected styled active line, got %q", active)
	}

	inactive := th.RenderActiveLine(false, "📁 Web")
	if !strings.Contains(inactive, "📁 Web") {
		t.Fatalf("expected label in inactive line, got %q", inactive)
	}
	if active == inactive {
		t.Fatalf("expected active and inactive lines to differ, both %q", active)
	}
}

func TestEntryStyles_EmphasisePasswordAndTitle(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	if got := th.EntryTitle.Render("Email"); !strings.Contains(got, "\x1b[3") {
		t.Fatalf("expected italic title, got %q", got)
	}
	if got := th.EntryValue.Render("p1"); !strings.Contains(got, "\x1b[1") {
		t.Fatalf("expected bold value, got %q", got)
	}
}

package tree

import (
	"errors"
	"reflect"
	"testing"

	"github.com/glabrego/keepass-cli/internal/vault"
)

func TestBuildRows_KeepsChildOrderAndIcons(t *testing.T) {
	tr := vault.NewTree("Database")
	web := tr.AddGroup(tr.Root(), "Web")
	email := tr.AddEntry(tr.Root(), map[string]string{vault.FieldTitle: "Email"})
	tr.AddGroup(tr.Root(), "Web")

	rows, err := BuildRows(tr, tr.Root())
	if err != nil {
		t.Fatalf("BuildRows returned error: %v", err)
	}
	got := Labels(rows)
	want := []string{"📁 Web", "🔑 Email", "📁 Web"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected labels: got=%v want=%v", got, want)
	}
	if rows[0].Kind != RowGroup || rows[0].Node != web {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Kind != RowEntry || rows[1].Node != email {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestBuildRows_EmptyGroup(t *testing.T) {
	tr := vault.NewTree("Database")
	rows, err := BuildRows(tr, tr.Root())
	if err != nil {
		t.Fatalf("BuildRows returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}

func TestBuildRows_UntitledEntryFails(t *testing.T) {
	tr := vault.NewTree("Database")
	tr.AddEntry(tr.Root(), map[string]string{vault.FieldUserName: "someone"})

	_, err := BuildRows(tr, tr.Root())
	if !errors.Is(err, vault.ErrMissingField) {
		t.Fatalf("expected missing field error, got %v", err)
	}
}

func TestBuildRows_EmptyTitleIsLabelled(t *testing.T) {
	tr := vault.NewTree("Database")
	tr.AddEntry(tr.Root(), map[string]string{vault.FieldTitle: ""})

	rows, err := BuildRows(tr, tr.Root())
	if err != nil {
		t.Fatalf("BuildRows returned error: %v", err)
	}
	if rows[0].Label != "🔑 " {
		t.Fatalf("unexpected label %q", rows[0].Label)
	}
}

func TestDepth(t *testing.T) {
	tr := vault.NewTree("Database")
	if got := Depth(tr, tr.Root()); got != 0 {
		t.Fatalf("expected depth 0, got %d", got)
	}
	a := tr.AddGroup(tr.Root(), "A")
	tr.AddGroup(tr.AddGroup(a, "B"), "C")
	tr.AddGroup(tr.Root(), "D")
	if got := Depth(tr, tr.Root()); got != 3 {
		t.Fatalf("expected depth 3, got %d", got)
	}
}

package entry

import (
	"fmt"
	"io"
	"strings"

	tuitheme "github.com/glabrego/keepass-cli/internal/tui/theme"
	"github.com/glabrego/keepass-cli/internal/vault"
)

const (
	userIcon = "👤"
	keyIcon  = "🔑"
	noteIcon = "📝"
)

// Lines renders an entry as title, username, password and, when present
// and non-empty, notes. The password is shown in clear text. Notes are left
// unstyled since they may span several lines.
func Lines(t *vault.Tree, id vault.NodeID, th tuitheme.Theme) ([]string, error) {
	title, err := t.RequireField(id, vault.FieldTitle)
	if err != nil {
		return nil, err
	}
	username, err := t.RequireField(id, vault.FieldUserName)
	if err != nil {
		return nil, err
	}
	password, err := t.RequireField(id, vault.FieldPassword)
	if err != nil {
		return nil, err
	}

	lines := []string{
		th.EntryTitle.Render(title),
		fmt.Sprintf("  %s: %s", userIcon, th.EntryValue.Render(username)),
		fmt.Sprintf("  %s: %s", keyIcon, th.EntryValue.Render(password)),
	}
	if notes, ok := t.Field(id, vault.FieldNotes); ok && notes != "" {
		lines = append(lines, fmt.Sprintf("  %s: %s", noteIcon, notes))
	}
	return lines, nil
}

// Write prints the entry. Nothing is written when a required field is
// missing.
func Write(w io.Writer, t *vault.Tree, id vault.NodeID, th tuitheme.Theme) error {
	lines, err := Lines(t, id, th)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	return nil
}

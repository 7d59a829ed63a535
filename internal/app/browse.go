package app

import (
	"context"
	"fmt"

	"github.com/glabrego/keepass-cli/internal/audit"
	"github.com/glabrego/keepass-cli/internal/render/entry"
	"github.com/glabrego/keepass-cli/internal/tui"
	"github.com/glabrego/keepass-cli/internal/tui/state"
	"github.com/glabrego/keepass-cli/internal/tui/tree"
	"github.com/glabrego/keepass-cli/internal/vault"
)

// RunInteractive browses the tree from its root until the user backs out
// of the root menu, then prints a blank line and END.
//
// Choosing a group opens it. Choosing an entry prints it and shows the same
// menu again with the cursor on that entry. ESC returns to the parent menu,
// which reopens on the row that was last chosen there.
func (s *Service) RunInteractive(ctx context.Context, t *vault.Tree) error {
	stack := state.NewStack(t.Root())
	s.logger.Debugw("browse", "root", t.Name(t.Root()), "depth", tree.Depth(t, t.Root()))

	for !stack.Empty() {
		frame := stack.Top()
		rows, err := tree.BuildRows(t, frame.Group)
		if err != nil {
			return err
		}

		breadcrumb := stack.Breadcrumb(t)
		choice, err := s.prompter.Select(ctx, tui.Prompt{
			Breadcrumb: breadcrumb,
			Hint:       stack.Hint(),
			Labels:     tree.Labels(rows),
			Default:    state.ClampCursor(frame.Cursor, len(rows)),
		})
		if err != nil {
			return err
		}

		if !choice.Selected {
			s.logger.Debugw("leave group", "group", t.Name(frame.Group), "depth", stack.Depth())
			stack.Pop()
			continue
		}
		if choice.Index < 0 || choice.Index >= len(rows) {
			return fmt.Errorf("choice %d out of range for %d rows", choice.Index, len(rows))
		}

		stack.SetCursor(choice.Index)
		row := rows[choice.Index]
		switch row.Kind {
		case tree.RowGroup:
			s.logger.Debugw("enter group", "group", t.Name(row.Node), "depth", stack.Depth()+1)
			stack.Push(row.Node)
		case tree.RowEntry:
			if err := entry.Write(s.out, t, row.Node, s.theme); err != nil {
				return fmt.Errorf("print entry: %w", err)
			}
			if _, err := fmt.Fprintln(s.out); err != nil {
				return err
			}
			title, _ := t.Field(row.Node, vault.FieldTitle)
			s.record(ctx, audit.ModeBrowse, breadcrumb, title)
		}
	}

	_, err := fmt.Fprint(s.out, "\nEND\n")
	return err
}

package tree

import (
	"fmt"

	"github.com/glabrego/keepass-cli/internal/vault"
)

type RowKind string

const (
	RowGroup RowKind = "group"
	RowEntry RowKind = "entry"
)

const (
	GroupIcon = "📁"
	EntryIcon = "🔑"
)

type Row struct {
	Kind  RowKind
	Label string
	Node  vault.NodeID
}

// BuildRows lists the children of group in their stored order. An entry
// without a Title cannot be labelled and fails the whole list.
func BuildRows(t *vault.Tree, group vault.NodeID) ([]Row, error) {
	children := t.Children(group)
	rows := make([]Row, 0, len(children))
	for _, id := range children {
		switch t.Kind(id) {
		case vault.KindGroup:
			rows = append(rows, Row{
				Kind:  RowGroup,
				Label: GroupIcon + " " + t.Name(id),
				Node:  id,
			})
		case vault.KindEntry:
			title, err := t.RequireField(id, vault.FieldTitle)
			if err != nil {
				return nil, fmt.Errorf("list group %q: %w", t.Name(group), err)
			}
			rows = append(rows, Row{
				Kind:  RowEntry,
				Label: EntryIcon + " " + title,
				Node:  id,
			})
		}
	}
	return rows, nil
}

func Labels(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Label)
	}
	return out
}

// Depth counts group levels below root, root alone being 0.
func Depth(t *vault.Tree, root vault.NodeID) int {
	deepest := 0
	var walk func(vault.NodeID, int)
	walk = func(id vault.NodeID, depth int) {
		if depth > deepest {
			deepest = depth
		}
		for _, child := range t.Children(id) {
			if t.Kind(child) == vault.KindGroup {
				walk(child, depth+1)
			}
		}
	}
	walk(root, 0)
	return deepest
}

package vault

// SearchByTitle walks the tree below root depth-first in child order and
// returns every entry whose Title equals title exactly. Entries without a
// Title field never match.
func SearchByTitle(t *Tree, root NodeID, title string) []NodeID {
	matches := make([]NodeID, 0)
	Walk(t, root, func(id NodeID) {
		if t.Kind(id) != KindEntry {
			return
		}
		if got, ok := t.Field(id, FieldTitle); ok && got == title {
			matches = append(matches, id)
		}
	})
	return matches
}

// Walk visits root and everything below it in pre-order. It uses an
// explicit stack so deep databases do not grow the goroutine stack.
func Walk(t *Tree, root NodeID, visit func(NodeID)) {
	pending := []NodeID{root}
	for len(pending) > 0 {
		id := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		visit(id)
		children := t.Children(id)
		for i := len(children) - 1; i >= 0; i-- {
			pending = append(pending, children[i])
		}
	}
}

// Path returns the group names from root down to id, inclusive when id is
// a group. The tree has no parent links, so this is a search.
func Path(t *Tree, id NodeID) []string {
	var walk func(NodeID, []string) ([]string, bool)
	walk = func(cur NodeID, trail []string) ([]string, bool) {
		if t.Kind(cur) == KindGroup {
			trail = append(trail, t.Name(cur))
		}
		if cur == id {
			return trail, true
		}
		for _, child := range t.Children(cur) {
			if t.Kind(child) != KindGroup && child != id {
				continue
			}
			if found, ok := walk(child, trail); ok {
				return found, true
			}
		}
		return nil, false
	}
	found, _ := walk(t.Root(), make([]string, 0, 8))
	return found
}

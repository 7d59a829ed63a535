package vault

import (
	"errors"
	"fmt"
)

// Standard KeePass field names.
const (
	FieldTitle    = "Title"
	FieldUserName = "UserName"
	FieldPassword = "Password"
	FieldNotes    = "Notes"
	FieldURL      = "URL"
)

var ErrMissingField = errors.New("missing field")

type NodeKind string

const (
	KindGroup NodeKind = "group"
	KindEntry NodeKind = "entry"
)

// NodeID addresses a node inside the Tree that created it.
type NodeID int

type Node struct {
	Kind     NodeKind
	Name     string
	Children []NodeID
	Fields   map[string]string
}

// Tree owns every group and entry of an opened database. Nodes refer to
// each other by NodeID, so callers can hold ids without borrowing nodes.
// A Tree is read-only once Open or the test builders have returned it.
type Tree struct {
	nodes []Node
	root  NodeID
}

func NewTree(rootName string) *Tree {
	t := &Tree{}
	t.root = t.add(Node{Kind: KindGroup, Name: rootName})
	return t
}

func (t *Tree) Root() NodeID {
	return t.root
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Kind(id NodeID) NodeKind {
	return t.nodes[id].Kind
}

func (t *Tree) Name(id NodeID) string {
	return t.nodes[id].Name
}

func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].Children
}

// Field returns the value of an entry field. Groups have no fields.
func (t *Tree) Field(id NodeID, name string) (string, bool) {
	v, ok := t.nodes[id].Fields[name]
	return v, ok
}

// RequireField is Field that turns absence into ErrMissingField.
func (t *Tree) RequireField(id NodeID, name string) (string, error) {
	v, ok := t.Field(id, name)
	if !ok {
		return "", fmt.Errorf("entry %d: %w %q", id, ErrMissingField, name)
	}
	return v, nil
}

func (t *Tree) AddGroup(parent NodeID, name string) NodeID {
	id := t.add(Node{Kind: KindGroup, Name: name})
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

func (t *Tree) AddEntry(parent NodeID, fields map[string]string) NodeID {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	id := t.add(Node{Kind: KindEntry, Fields: copied})
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

func (t *Tree) add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

package state

import (
	"strings"

	"github.com/glabrego/keepass-cli/internal/vault"
)

const (
	PathSeparator = " > "
	HintExit      = "(press ESC to exit)"
	HintBack      = "(press ESC to go back)"
)

// Frame is one breadcrumb level: the group on screen and the row that was
// last chosen in it.
type Frame struct {
	Group  vault.NodeID
	Cursor int
}

// Stack is the breadcrumb trail, root first.
type Stack struct {
	frames []Frame
}

func NewStack(root vault.NodeID) *Stack {
	return &Stack{frames: []Frame{{Group: root}}}
}

func (s *Stack) Depth() int {
	return len(s.frames)
}

func (s *Stack) Empty() bool {
	return len(s.frames) == 0
}

// Top returns the frame on screen. It panics on an empty stack.
func (s *Stack) Top() Frame {
	return s.frames[len(s.frames)-1]
}

func (s *Stack) Frames() []Frame {
	return append([]Frame(nil), s.frames...)
}

func (s *Stack) Push(group vault.NodeID) {
	s.frames = append(s.frames, Frame{Group: group})
}

// Pop drops the top frame and reports whether any frame is left.
func (s *Stack) Pop() bool {
	if len(s.frames) == 0 {
		return false
	}
	s.frames = s.frames[:len(s.frames)-1]
	return len(s.frames) > 0
}

func (s *Stack) SetCursor(cursor int) {
	if len(s.frames) == 0 {
		return
	}
	s.frames[len(s.frames)-1].Cursor = cursor
}

// Breadcrumb joins the group names from root to top.
func (s *Stack) Breadcrumb(t *vault.Tree) string {
	names := make([]string, 0, len(s.frames))
	for _, f := range s.frames {
		names = append(names, t.Name(f.Group))
	}
	return strings.Join(names, PathSeparator)
}

func (s *Stack) Hint() string {
	if len(s.frames) <= 1 {
		return HintExit
	}
	return HintBack
}

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

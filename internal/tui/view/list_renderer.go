package view

import (
	"strings"

	tuitheme "github.com/glabrego/keepass-cli/internal/tui/theme"
)

type ListRenderInput struct {
	Labels []string
	Start  int
	End    int
	Cursor int
	Width  int
}

// RenderListBody draws the rows in [Start, End) with the cursor row
// highlighted, plus scroll markers when rows are hidden above or below.
func RenderListBody(in ListRenderInput, th tuitheme.Theme) string {
	if len(in.Labels) == 0 {
		return RenderEmptyLine(th) + "\n"
	}
	if in.Start < 0 || in.Start >= in.End || in.End > len(in.Labels) {
		return ""
	}
	var b strings.Builder
	if in.Start > 0 {
		b.WriteString(ScrollMarker(in.Start, true, th))
		b.WriteString("\n")
	}
	for i := in.Start; i < in.End; i++ {
		b.WriteString(RenderRowLine(in.Labels[i], in.Width, i == in.Cursor, th))
		b.WriteString("\n")
	}
	if hidden := len(in.Labels) - in.End; hidden > 0 {
		b.WriteString(ScrollMarker(hidden, false, th))
		b.WriteString("\n")
	}
	return b.String()
}

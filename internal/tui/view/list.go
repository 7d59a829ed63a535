package view

import (
	"regexp"
	"strings"
	"unicode/utf8"

	tuitheme "github.com/glabrego/keepass-cli/internal/tui/theme"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

const (
	cursorMarker = "❯ "
	blankMarker  = "  "
	emptyLabel   = "(empty group)"
)

// RenderRowLine draws one selectable row. A width of 0 disables truncation.
func RenderRowLine(label string, width int, active bool, th tuitheme.Theme) string {
	if width > 0 {
		label = truncateRunes(label, width-visibleLen(blankMarker))
	}
	if !active {
		return blankMarker + th.RenderActiveLine(false, label)
	}
	return th.Cursor.Render(cursorMarker) + th.RenderActiveLine(true, label)
}

func RenderEmptyLine(th tuitheme.Theme) string {
	return blankMarker + th.Empty.Render(emptyLabel)
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSIText(s))
}

func stripANSIText(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}

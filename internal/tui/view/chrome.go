package view

import (
	"fmt"

	tuitheme "github.com/glabrego/keepass-cli/internal/tui/theme"
)

// Header is the prompt line: breadcrumb followed by the dimmed ESC hint.
func Header(breadcrumb, hint string, th tuitheme.Theme) string {
	return fmt.Sprintf("%s %s %s", th.PromptMark.Render("?"), th.Breadcrumb.Render(breadcrumb), th.Hint.Render(hint))
}

func ScrollMarker(hidden int, above bool, th tuitheme.Theme) string {
	arrow := "↓"
	if above {
		arrow = "↑"
	}
	return blankMarker + th.Hint.Render(fmt.Sprintf("%s %d more", arrow, hidden))
}

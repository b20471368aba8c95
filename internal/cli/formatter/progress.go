package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a percent (0..100) as a bar like [████░░░░]  45%.
// Red below a third, yellow below two thirds, green above.
func RenderProgress(percent int, width int) string {
	percent = min(max(percent, 0), 100)
	width = max(width, 2)

	filled := percent * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case percent < 33:
		style = StyleRed
	case percent < 66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), percent)
}

package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay describes a calendar day relative to today: "Today",
// "Yesterday", "3d ago", "2w ago", or "In 4d" for future dates.
func RelativeDay(day, today time.Time) string {
	d1 := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	d0 := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := int(d1.Sub(d0).Hours() / 24)

	switch {
	case days == 0:
		return "Today"
	case days == -1:
		return "Yesterday"
	case days == 1:
		return "Tomorrow"
	case days > 0:
		return fmt.Sprintf("In %dd", days)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes renders minutes as "45m", "1h 30m" or "2h". Fractions
// below a minute are dropped.
func FormatMinutes(minutes float64) string {
	m := int(minutes)
	if m <= 0 {
		return "0m"
	}
	h, rem := m/60, m%60
	switch {
	case h > 0 && rem > 0:
		return fmt.Sprintf("%dh %dm", h, rem)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", rem)
	}
}

// FormatNumber prints a float without trailing zeros: 80, 62.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// dash is shown for absent optional values.
const dash = "—"

func optInt(v *int) string {
	if v == nil {
		return Dim(dash)
	}
	return strconv.Itoa(*v)
}

func optFloat(v *float64, unit string) string {
	if v == nil {
		return Dim(dash)
	}
	return FormatNumber(*v) + unit
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

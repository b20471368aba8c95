package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Table is an aligned text table. Widths are measured on visible text, so
// cells may carry ANSI styling.
type Table struct {
	Headers []string
	Rows    [][]string
	// Cursor marks one row with a pointer gutter; -1 renders no gutter.
	Cursor int
}

// RenderTable renders headers and rows without a cursor gutter.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows, Cursor: -1}.Render()
}

func (t Table) Render() string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	gutter := ""
	if t.Cursor >= 0 {
		gutter = "  "
	}

	var b strings.Builder
	b.WriteString(gutter)
	writeRow(&b, widths, t.Headers, StyleHeader.Render)

	b.WriteString(gutter)
	seps := make([]string, cols)
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	writeRow(&b, widths, seps, StyleDim.Render)

	for i, row := range t.Rows {
		if t.Cursor >= 0 {
			if i == t.Cursor {
				b.WriteString(StyleGreen.Render("▸ "))
			} else {
				b.WriteString(gutter)
			}
		}
		writeRow(&b, widths, row, nil)
	}
	return b.String()
}

func writeRow(b *strings.Builder, widths []int, cells []string, style func(...string) string) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := max(w-lipgloss.Width(cell), 0)
		if style != nil {
			cell = style(cell)
		}
		b.WriteString(cell)
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}

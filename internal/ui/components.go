package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dorijanhabek/orbfolio/internal/control"
	"github.com/dorijanhabek/orbfolio/internal/menu"
	"github.com/dorijanhabek/orbfolio/internal/util"
)

const (
	barIndent  = 2
	buttonGap  = 3
	columnGap  = 3
	labelWidth = 18
	credit     = "Made by Dorijan Habek"
	creditURL  = "https://www.linkedin.com/in/dorijan-habek/"
)

// buttonSpans returns the [start, end) columns of each nav button.
func buttonSpans(menus []menu.Menu) [][2]int {
	spans := make([][2]int, len(menus))
	x := barIndent
	for i, m := range menus {
		w := lipgloss.Width(m.Name)
		spans[i] = [2]int{x, x + w}
		x += w + buttonGap
	}
	return spans
}

func buttonAt(menus []menu.Menu, x int) (int, bool) {
	for i, s := range buttonSpans(menus) {
		if x >= s[0] && x < s[1] {
			return i, true
		}
	}
	return 0, false
}

func renderMenuBar(bar *menu.Bar) string {
	open, ok := bar.Open()
	var b strings.Builder
	b.WriteString(spaces(barIndent))
	for i, m := range bar.Menus() {
		if i > 0 {
			b.WriteString(spaces(buttonGap))
		}
		if ok && i == open {
			b.WriteString(activeButtonStyle.Render(m.Name))
		} else {
			b.WriteString(buttonStyle.Render(m.Name))
		}
	}
	return b.String()
}

// renderDropdown draws the open dropdown below its button, or "" when every
// dropdown is closed.
func renderDropdown(bar *menu.Bar) string {
	i, ok := bar.Open()
	if !ok {
		return ""
	}
	m := bar.Menus()[i]
	cursor := bar.Cursor()

	var blocks []string
	if len(m.Items) > 0 {
		cells := make([]string, len(m.Items))
		for k, it := range m.Items {
			cells[k] = renderEntry(it.Label, k == cursor)
		}
		blocks = append(blocks, grid(cells, m.Columns))
	}
	for j, sec := range m.Sections {
		caret := "▶"
		if bar.SectionOpen(j) {
			caret = "▼"
		}
		blocks = append(blocks, renderEntry(sec.Title+" "+caret, len(m.Items)+j == cursor))
		if bar.SectionOpen(j) {
			cells := make([]string, len(sec.Items))
			for k, label := range sec.Items {
				cells[k] = itemStyle.Render(label)
			}
			blocks = append(blocks, lipgloss.NewStyle().PaddingLeft(2).Render(grid(cells, sec.Columns())))
		}
	}

	left := buttonSpans(bar.Menus())[i][0]
	return lipgloss.NewStyle().PaddingLeft(left).Render(strings.Join(blocks, "\n"))
}

func renderEntry(label string, focused bool) string {
	if focused {
		return focusStyle.Render("› " + label)
	}
	return itemStyle.Render("  " + label)
}

// grid lays cells out row by row in cols columns.
func grid(cells []string, cols int) string {
	if cols <= 1 {
		return strings.Join(cells, "\n")
	}
	columns := make([][]string, cols)
	for k, c := range cells {
		columns[k%cols] = append(columns[k%cols], c)
	}
	parts := make([]string, 0, 2*cols-1)
	for c, col := range columns {
		if c > 0 {
			parts = append(parts, spaces(columnGap))
		}
		parts = append(parts, strings.Join(col, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderSliders(c *control.Controls, selected int, bar progress.Model) string {
	ids := control.IDs()
	lines := make([]string, len(ids))
	for i, id := range ids {
		p := control.Describe(id)
		v := c.Get(id)
		name := fmt.Sprintf("%-*s", labelWidth, p.Name)
		marker, label := "  ", labelStyle.Render(name)
		if i == selected {
			marker, label = focusStyle.Render("› "), focusStyle.Render(name)
		}
		lines[i] = marker + label + " " + bar.ViewAs(p.Fraction(v)) + " " + valueStyle.Render(util.FormatFixed(v, p.Decimals))
	}
	return strings.Join(lines, "\n")
}

func musicLabel(on bool) string {
	if on {
		return "Music: On"
	}
	return "Music: Off"
}

func renderMusic(on bool, track string) string {
	s := musicOffStyle.Render(musicLabel(false))
	if on {
		s = musicOnStyle.Render(musicLabel(true))
	}
	if track != "" {
		s += "  " + valueStyle.Render(track)
	}
	return s
}

// spread puts left and right on one line, right-aligned to width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + spaces(gap) + right
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}

package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

// menuKey maps the number keys to a dropdown index.
func menuKey(msg tea.KeyMsg) (int, bool) {
	switch s := msg.String(); s {
	case "1", "2", "3", "4":
		return int(s[0] - '1'), true
	}
	return 0, false
}

func helpText(hasMusic bool) string {
	s := "1-4 menus  ↑/↓ move  enter open  tab slider  ←/→ adjust  r reset  g graph"
	if hasMusic {
		s += "  m music  s spectrum"
	}
	s += "  c credit  q quit"
	return s
}

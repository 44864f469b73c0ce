package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dorijanhabek/orbfolio/internal/visualizer"
)

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/visualizer.FPS, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

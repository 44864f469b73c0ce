package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dorijanhabek/orbfolio/internal/control"
	"github.com/dorijanhabek/orbfolio/internal/menu"
	"github.com/dorijanhabek/orbfolio/internal/sim"
	"github.com/dorijanhabek/orbfolio/internal/util"
	"github.com/dorijanhabek/orbfolio/internal/visualizer"
)

const (
	defaultWidth   = 80
	defaultHeight  = 24
	sliderWidth    = 24
	graphHeight    = 6
	spectrumHeight = 4
	graphHistory   = 10 * visualizer.FPS
)

// Music is the background track the landing page toggles.
type Music interface {
	Toggle()
	LabelOn() bool
	Close()
}

// SpectrumSource yields the latest byte spectrum of the music.
type SpectrumSource interface {
	FrequencyBytes() []uint8
}

// Model is the Bubbletea model for the landing page.
type Model struct {
	sim      *sim.Simulator
	controls *control.Controls
	music    Music
	track    string

	bar    *menu.Bar
	sphere *visualizer.Sphere
	orbit  *visualizer.Orbit
	graph  *visualizer.LevelGraph
	bars   *visualizer.Spectrum
	bins   SpectrumSource
	slider progress.Model

	frame     sim.Frame
	selected  int
	showGraph bool
	showBars  bool
	status    string

	dragging     bool
	lastX, lastY int

	width    int
	height   int
	quitting bool
	now      func() time.Time
}

// New creates the landing page model. music may be nil when no track was
// given; track is the title shown next to the music label.
func New(s *sim.Simulator, controls *control.Controls, music Music, track string) Model {
	if controls == nil {
		controls = control.New()
	}
	slider := progress.New(
		progress.WithScaledGradient("#3A1452", "#CC00FF"),
		progress.WithoutPercentage(),
		progress.WithWidth(sliderWidth),
	)
	return Model{
		sim:      s,
		controls: controls,
		music:    music,
		track:    track,
		bar:      menu.NewBar(menu.Default()),
		sphere:   visualizer.NewSphere(),
		orbit:    visualizer.NewOrbit(),
		graph:    visualizer.NewLevelGraph(graphHistory),
		bars:     visualizer.NewSpectrum(),
		slider:   slider,
		width:    defaultWidth,
		height:   defaultHeight,
		now:      time.Now,
	}
}

// WithSpectrum attaches the analyser whose spectrum the s key shows.
func (m Model) WithSpectrum(src SpectrumSource) Model {
	m.bins = src
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), tea.SetWindowTitle("Dorijan Habek"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case frameMsg:
		m.step(time.Time(msg))
		return m, frameCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		if m.music != nil {
			m.music.Close()
		}
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	if i, ok := menuKey(msg); ok {
		m.bar.Toggle(i)
		m.status = ""
		return m, nil
	}

	ids := control.IDs()
	switch msg.String() {
	case "m":
		if m.music != nil {
			m.music.Toggle()
		}
	case "tab":
		m.selected = (m.selected + 1) % len(ids)
	case "shift+tab":
		m.selected = (m.selected + len(ids) - 1) % len(ids)
	case "left", "h":
		m.controls.Nudge(ids[m.selected], -1)
	case "right", "l":
		m.controls.Nudge(ids[m.selected], 1)
	case "up", "k":
		m.bar.Move(-1)
	case "down", "j":
		m.bar.Move(1)
	case "enter":
		if m.bar.Activate() {
			return m, nil
		}
		if it, ok := m.bar.Selected(); ok && it.URL != "" {
			m.status = it.Label + "  " + it.URL
		}
	case "c":
		m.status = credit + "  " + creditURL
	case "g":
		m.showGraph = !m.showGraph
	case "s":
		m.showBars = m.bins != nil && !m.showBars
	case "r":
		m.controls.Reset()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		top, rows := m.layout()
		switch {
		case msg.Y == 0:
			if i, ok := buttonAt(m.bar.Menus(), msg.X); ok {
				m.bar.Toggle(i)
				m.status = ""
			} else {
				m.bar.CloseAll()
			}
		case msg.Y < top:
			// inside the open dropdown
		case msg.Y < top+rows:
			m.bar.CloseAll()
			m.dragging = true
			m.lastX, m.lastY = msg.X, msg.Y
			if m.sim != nil {
				m.sim.InteractionStart(m.now())
			}
		default:
			m.bar.CloseAll()
			if m.onCredit(msg.X, msg.Y, top+rows) {
				m.status = credit + "  " + creditURL
			}
		}

	case tea.MouseActionMotion:
		if m.dragging {
			m.orbit.Drag(msg.X-m.lastX, msg.Y-m.lastY)
			m.lastX, m.lastY = msg.X, msg.Y
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			if m.sim != nil {
				m.sim.InteractionEnd(m.now())
			}
		}
	}
	return m
}

// onCredit reports whether x, y falls on the credit text. The credit sits
// right-aligned on the second to last row of the bottom panel.
func (m Model) onCredit(x, y, bottom int) bool {
	row := bottom + lipgloss.Height(m.renderBottom()) - 2
	end := m.width - barIndent
	return y == row && x >= end-lipgloss.Width(credit) && x < end
}

// step advances the simulation one frame and redraws the renderers.
func (m *Model) step(now time.Time) {
	if m.sim != nil {
		m.frame = m.sim.Step(now)
	}
	camYaw, camPitch := m.orbit.Update()

	m.graph.Push(m.frame.AudioLevel)
	if m.showGraph {
		m.graph.Update(m.width-2*barIndent, graphHeight)
	}
	if m.showBars {
		m.bars.Update(m.bins.FrequencyBytes(), m.width-2*barIndent, spectrumHeight)
	}

	var pos []float64
	if m.sim != nil {
		pos = m.sim.Positions()
	}
	_, rows := m.layout()
	m.sphere.Update(pos, m.frame.Yaw, m.frame.Pitch, camYaw, camPitch, m.width, rows)
}

// layout returns the first row of the sphere area and its height.
func (m Model) layout() (top, rows int) {
	top = 1
	if dd := renderDropdown(m.bar); dd != "" {
		top += lipgloss.Height(dd)
	}
	rows = m.height - top - lipgloss.Height(m.renderBottom())
	return top, max(rows, 0)
}

func (m Model) renderBottom() string {
	var b strings.Builder
	if m.showGraph {
		if g := m.graph.View(); g != "" {
			b.WriteString(indentLines(g, barIndent))
			b.WriteString("\n")
		}
	}
	if m.showBars {
		if v := m.bars.View(); v != "" {
			b.WriteString(indentLines(v, barIndent))
			b.WriteString("\n")
		}
	}
	b.WriteString(renderSliders(m.controls, m.selected, m.slider))
	b.WriteString("\n")

	on := m.music != nil && m.music.LabelOn()
	left := spaces(barIndent) + renderMusic(on, m.track)
	right := headerStyle.Render(credit) + spaces(barIndent)
	b.WriteString(spread(left, right, m.width))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(spaces(barIndent) + statusStyle.Render(m.status))
	} else {
		uptime := util.FormatDuration(m.frame.Elapsed)
		b.WriteString(spaces(barIndent) + helpStyle.Render(uptime+"  "+helpText(m.music != nil)))
	}
	return b.String()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{renderMenuBar(m.bar)}
	if dd := renderDropdown(m.bar); dd != "" {
		sections = append(sections, dd)
	}
	if _, rows := m.layout(); rows > 0 {
		sections = append(sections, m.fitSphere(rows))
	}
	sections = append(sections, m.renderBottom())
	return strings.Join(sections, "\n")
}

// fitSphere returns exactly rows lines of sphere output, padding or trimming
// the last frame when the layout changed since it was drawn.
func (m Model) fitSphere(rows int) string {
	lines := strings.Split(m.sphere.View(), "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func indentLines(s string, n int) string {
	pad := spaces(n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

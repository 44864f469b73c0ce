package visualizer

import "github.com/guptarohit/asciigraph"

// LevelGraph keeps a rolling history of the smoothed audio level and plots it.
type LevelGraph struct {
	history []float64
	limit   int
	output  string
}

// NewLevelGraph keeps up to limit samples.
func NewLevelGraph(limit int) *LevelGraph {
	if limit < 2 {
		limit = 2
	}
	return &LevelGraph{limit: limit, history: make([]float64, 0, limit)}
}

func (g *LevelGraph) Name() string { return "audio level" }

// Push records one frame's level.
func (g *LevelGraph) Push(level float64) {
	if len(g.history) == g.limit {
		copy(g.history, g.history[1:])
		g.history = g.history[:g.limit-1]
	}
	g.history = append(g.history, clamp01(level))
}

// Update redraws the plot to fit width×height cells.
func (g *LevelGraph) Update(width, height int) {
	if len(g.history) < 2 || width < 10 || height < 2 {
		g.output = ""
		return
	}
	plotWidth := width - 8 // axis labels
	g.output = asciigraph.Plot(g.history,
		asciigraph.Height(height-1),
		asciigraph.Width(plotWidth),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.Caption(g.Name()),
	)
}

func (g *LevelGraph) View() string { return g.output }

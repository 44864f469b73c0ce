package visualizer

import (
	"strings"
	"testing"
)

func TestLevelGraphRollsHistory(t *testing.T) {
	g := NewLevelGraph(3)
	for _, v := range []float64{0.1, 0.2, 0.3, 0.4} {
		g.Push(v)
	}
	if len(g.history) != 3 {
		t.Fatalf("history = %d, want 3", len(g.history))
	}
	if g.history[0] != 0.2 || g.history[2] != 0.4 {
		t.Fatalf("history = %v, want [0.2 0.3 0.4]", g.history)
	}
}

func TestLevelGraphClampsInput(t *testing.T) {
	g := NewLevelGraph(4)
	g.Push(5)
	g.Push(-1)
	if g.history[0] != 1 || g.history[1] != 0 {
		t.Fatalf("history = %v, want [1 0]", g.history)
	}
}

func TestLevelGraphPlot(t *testing.T) {
	g := NewLevelGraph(40)
	if g.Update(40, 6); g.View() != "" {
		t.Fatal("expected empty plot without history")
	}
	for i := range 40 {
		g.Push(float64(i%10) / 10)
	}
	g.Update(40, 6)
	if !strings.Contains(g.View(), "audio level") {
		t.Fatalf("plot missing caption:\n%s", g.View())
	}
}

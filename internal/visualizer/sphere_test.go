package visualizer

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSphereDrawsWithinBounds(t *testing.T) {
	s := &Sphere{profile: colorNone}
	pos := []float64{
		0, 0, 1,
		1, 0, 0,
		0, 1, 0,
		0, 0, 50, // behind the camera
		100, 0, 0, // off canvas
	}
	s.Update(pos, 0, 0, 0, 0, 20, 10)

	view := s.View()
	if h := lipgloss.Height(view); h != 10 {
		t.Fatalf("height = %d, want 10", h)
	}
	for _, line := range strings.Split(view, "\n") {
		if w := lipgloss.Width(line); w != 20 {
			t.Fatalf("line width = %d, want 20: %q", w, line)
		}
	}
	dots := 0
	for _, r := range view {
		if r >= 0x2800 && r <= 0x28FF {
			dots++
		}
	}
	if dots == 0 || dots > 3 {
		t.Fatalf("drew %d braille cells, want 1..3", dots)
	}
}

func TestSphereCentrePoint(t *testing.T) {
	s := &Sphere{profile: colorNone}
	s.Update([]float64{0, 0, 0}, 0, 0, 0, 0, 10, 5)
	lines := strings.Split(s.View(), "\n")
	if r := []rune(lines[2])[5]; r == ' ' {
		t.Fatalf("origin not drawn at the centre cell: %q", lines[2])
	}
}

func TestSphereRotationMovesPoints(t *testing.T) {
	a := &Sphere{profile: colorNone}
	b := &Sphere{profile: colorNone}
	pos := []float64{1, 0, 0}
	a.Update(pos, 0, 0, 0, 0, 20, 10)
	b.Update(pos, math.Pi/2, 0, 0, 0, 20, 10)
	if a.View() == b.View() {
		t.Fatal("yaw did not move the point")
	}
}

func TestDepthColorEndpoints(t *testing.T) {
	if got := depthColor(0); got != farColor {
		t.Fatalf("depthColor(0) = %v, want %v", got, farColor)
	}
	if got := depthColor(1); got != nearColor {
		t.Fatalf("depthColor(1) = %v, want %v", got, nearColor)
	}
}

func TestBrailleCanvasColours(t *testing.T) {
	var c brailleCanvas
	c.resize(2, 1)
	c.plot(0, 0, 1)
	out := c.render(colorTrueColor)
	if !strings.HasPrefix(out, "\x1b[38;2;255;255;255m") || !strings.HasSuffix(out, "\x1b[0m") {
		t.Fatalf("unexpected escape sequences: %q", out)
	}
}

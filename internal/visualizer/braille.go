package visualizer

import "strings"

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// brailleCanvas is a dot grid backed by terminal cells, 2 dots wide and 4 dots
// tall per cell. Each cell remembers the brightest dot plotted into it.
type brailleCanvas struct {
	cols, rows int
	pattern    []uint8
	bright     []float64
}

func (c *brailleCanvas) resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if c.cols == cols && c.rows == rows {
		return
	}
	c.cols, c.rows = cols, rows
	c.pattern = make([]uint8, cols*rows)
	c.bright = make([]float64, cols*rows)
}

func (c *brailleCanvas) clear() {
	for i := range c.pattern {
		c.pattern[i] = 0
		c.bright[i] = 0
	}
}

func (c *brailleCanvas) dotWidth() int  { return c.cols * 2 }
func (c *brailleCanvas) dotHeight() int { return c.rows * 4 }

// plot sets the dot at (x, y) with brightness in [0,1]. Dots outside the grid
// are dropped.
func (c *brailleCanvas) plot(x, y int, brightness float64) {
	if x < 0 || y < 0 || x >= c.dotWidth() || y >= c.dotHeight() {
		return
	}
	cell := (y/4)*c.cols + x/2
	c.pattern[cell] |= 1 << brailleBits[x%2][y%4]
	if brightness > c.bright[cell] {
		c.bright[cell] = brightness
	}
}

func (c *brailleCanvas) render(p colorProfile) string {
	var sb strings.Builder
	sb.Grow(c.cols * c.rows * 4)
	state := newANSIState(p)
	for row := range c.rows {
		if row > 0 {
			state.reset(&sb)
			sb.WriteByte('\n')
		}
		for col := range c.cols {
			cell := row*c.cols + col
			if c.pattern[cell] == 0 {
				sb.WriteRune(' ')
				continue
			}
			state.set(&sb, depthColor(c.bright[cell]))
			sb.WriteRune(rune(0x2800 + int(c.pattern[cell])))
		}
	}
	state.reset(&sb)
	return sb.String()
}

package visualizer

import (
	"math"
	"strings"
)

const spectrumBands = 16

var barChars = []rune(" ▁▂▃▄▅▆▇█")

// Spectrum draws the analyser's byte spectrum as vertical bars on
// logarithmic frequency bands.
type Spectrum struct {
	bands  [spectrumBands]float64
	output string
}

// NewSpectrum creates a spectrum renderer.
func NewSpectrum() *Spectrum {
	return &Spectrum{}
}

func (s *Spectrum) Name() string { return "spectrum" }

// Update groups bins into bands and redraws them in width×height cells. Bins
// are already smoothed over time by the analyser.
func (s *Spectrum) Update(bins []uint8, width, height int) {
	if height < 1 {
		height = 1
	}
	s.group(bins)

	colWidth := (width - 2) / spectrumBands
	if colWidth < 1 {
		colWidth = 1
	}
	gap := 1
	if colWidth <= 1 {
		gap = 0
	}

	rows := make([]string, height)
	for row := range height {
		var line strings.Builder
		for b := range spectrumBands {
			if b > 0 && gap > 0 {
				line.WriteByte(' ')
			}
			level := s.bands[b] * float64(height)
			rowFromBottom := float64(height - 1 - row)
			charIdx := 0
			if level >= rowFromBottom+1 {
				charIdx = len(barChars) - 1
			} else if level > rowFromBottom {
				charIdx = int((level - rowFromBottom) * float64(len(barChars)-1))
			}
			line.WriteString(strings.Repeat(string(barChars[charIdx]), max(colWidth-gap, 1)))
		}
		rows[row] = line.String()
	}
	s.output = strings.Join(rows, "\n")
}

// group averages bins into logarithmic bands scaled to [0,1].
func (s *Spectrum) group(bins []uint8) {
	maxBin := len(bins)
	for b := range spectrumBands {
		s.bands[b] = 0
		if maxBin < 2 {
			continue
		}
		lo := int(math.Pow(float64(maxBin), float64(b)/spectrumBands))
		hi := int(math.Pow(float64(maxBin), float64(b+1)/spectrumBands))
		if lo < 1 {
			lo = 1
		}
		if hi <= lo {
			hi = lo + 1
		}
		if hi > maxBin {
			hi = maxBin
		}
		if lo >= hi {
			continue
		}

		sum := 0
		for _, v := range bins[lo:hi] {
			sum += int(v)
		}
		s.bands[b] = float64(sum) / float64(hi-lo) / 255
	}
}

func (s *Spectrum) View() string {
	return s.output
}

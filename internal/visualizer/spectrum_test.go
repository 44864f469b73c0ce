package visualizer

import (
	"strings"
	"testing"
)

func TestSpectrumSilenceIsBlank(t *testing.T) {
	s := NewSpectrum()
	s.Update(make([]uint8, AnalyserFFTSize/2), 40, 4)
	if strings.TrimSpace(s.View()) != "" {
		t.Fatalf("expected blank spectrum, got %q", s.View())
	}
	if got := len(strings.Split(s.View(), "\n")); got != 4 {
		t.Fatalf("rows = %d, want 4", got)
	}
}

func TestSpectrumFullScaleFillsColumns(t *testing.T) {
	bins := make([]uint8, AnalyserFFTSize/2)
	for i := range bins {
		bins[i] = 255
	}
	s := NewSpectrum()
	s.Update(bins, 40, 3)
	for _, line := range strings.Split(s.View(), "\n") {
		if strings.Count(line, "█") < spectrumBands {
			t.Fatalf("expected full bars on every row, got %q", line)
		}
	}
}

func TestSpectrumEmptyInput(t *testing.T) {
	s := NewSpectrum()
	s.Update(nil, 20, 2)
	if strings.TrimSpace(s.View()) != "" {
		t.Fatal("expected blank output without bins")
	}
}

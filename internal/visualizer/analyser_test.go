package visualizer

import (
	"encoding/binary"
	"math"
	"testing"
)

func sinePCM(frames, channels int, freq, amp float64) []byte {
	raw := make([]byte, frames*channels*2)
	for i := range frames {
		v := int16(amp * 32767 * math.Sin(2*math.Pi*freq*float64(i)/44100))
		for ch := range channels {
			binary.LittleEndian.PutUint16(raw[(i*channels+ch)*2:], uint16(v))
		}
	}
	return raw
}

func TestAnalyserWithoutBufferIsDetached(t *testing.T) {
	var a *Analyser
	if _, ok := a.Amplitude(); ok {
		t.Fatal("nil analyser reported an attached source")
	}
	if _, ok := NewAnalyser(nil, 2).Amplitude(); ok {
		t.Fatal("analyser without ring reported an attached source")
	}
}

func TestAnalyserSilence(t *testing.T) {
	a := NewAnalyser(NewRingBuffer(4096), 2)
	level, ok := a.Amplitude()
	if !ok {
		t.Fatal("expected attached source")
	}
	if level != 0 {
		t.Fatalf("silence level = %v, want 0", level)
	}
}

func TestAnalyserRespondsToTone(t *testing.T) {
	ring := NewRingBuffer(AnalyserFFTSize * 4 * 4)
	a := NewAnalyser(ring, 2)
	ring.Write(sinePCM(AnalyserFFTSize*2, 2, 1000, 0.8))

	var level float64
	for range 30 {
		level, _ = a.Amplitude()
	}
	if level <= 0.02 || level > 1 {
		t.Fatalf("tone level = %v, want within (0.02, 1]", level)
	}
	if bins := a.FrequencyBytes(); len(bins) != AnalyserFFTSize/2 {
		t.Fatalf("len(FrequencyBytes()) = %d, want %d", len(bins), AnalyserFFTSize/2)
	}
}

func TestAnalyserDecaysAfterSilence(t *testing.T) {
	ring := NewRingBuffer(AnalyserFFTSize * 4 * 4)
	a := NewAnalyser(ring, 2)
	ring.Write(sinePCM(AnalyserFFTSize*2, 2, 1000, 0.8))
	for range 30 {
		a.Amplitude()
	}
	loud, _ := a.Amplitude()

	ring.Clear()
	first, _ := a.Amplitude()
	if first >= loud || first == 0 {
		t.Fatalf("first silent frame = %v, want below %v and above 0 (time smoothing)", first, loud)
	}
	var last float64
	for range 200 {
		last, _ = a.Amplitude()
	}
	if last != 0 {
		t.Fatalf("level after long silence = %v, want 0", last)
	}
}

func TestAnalyserMonoInput(t *testing.T) {
	ring := NewRingBuffer(AnalyserFFTSize * 2 * 2)
	a := NewAnalyser(ring, 1)
	ring.Write(sinePCM(AnalyserFFTSize, 1, 440, 0.5))
	if level, _ := a.Amplitude(); level <= 0 {
		t.Fatalf("mono tone level = %v, want > 0", level)
	}
}

func TestFFTImpulse(t *testing.T) {
	re := make([]float64, 8)
	im := make([]float64, 8)
	re[0] = 1
	fft(re, im)
	for k := range re {
		if math.Abs(re[k]-1) > 1e-12 || math.Abs(im[k]) > 1e-12 {
			t.Fatalf("bin %d = (%v, %v), want (1, 0)", k, re[k], im[k])
		}
	}
}

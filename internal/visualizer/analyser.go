package visualizer

import (
	"encoding/binary"
	"math"
)

const (
	// AnalyserFFTSize is the number of time-domain samples per analysis.
	AnalyserFFTSize = 256
	// AnalyserSmoothing is the per-bin smoothing between successive analyses.
	AnalyserSmoothing = 0.85

	minDecibels = -100.0
	maxDecibels = -30.0
)

// Analyser measures loudness from the PCM written into a RingBuffer the way a
// browser AnalyserNode does: Blackman window, FFT, time smoothing per bin,
// decibel mapping to bytes, and the mean byte level scaled to [0,1].
type Analyser struct {
	ring     *RingBuffer
	channels int
	size     int
	window   []float64
	re       []float64
	im       []float64
	smoothed []float64
	bytes    []uint8
}

// NewAnalyser reads interleaved s16le PCM with the given channel count from
// ring.
func NewAnalyser(ring *RingBuffer, channels int) *Analyser {
	if channels < 1 {
		channels = 1
	}
	n := AnalyserFFTSize
	a := &Analyser{
		ring:     ring,
		channels: channels,
		size:     n,
		window:   make([]float64, n),
		re:       make([]float64, n),
		im:       make([]float64, n),
		smoothed: make([]float64, n/2),
		bytes:    make([]uint8, n/2),
	}
	for i := range n {
		x := float64(i) / float64(n)
		a.window[i] = 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	}
	return a
}

// Amplitude analyses the latest window and returns its mean spectral level.
// ok is false when the analyser has no buffer to read from.
func (a *Analyser) Amplitude() (float64, bool) {
	if a == nil || a.ring == nil {
		return 0, false
	}
	frameSize := a.channels * 2
	raw := a.ring.Read(a.size * frameSize)
	a.load(raw, frameSize)
	a.spectrum()

	sum := 0
	for _, b := range a.bytes {
		sum += int(b)
	}
	return float64(sum) / float64(len(a.bytes)) / 255, true
}

// FrequencyBytes returns the byte spectrum from the last analysis.
func (a *Analyser) FrequencyBytes() []uint8 {
	return a.bytes
}

// load mixes the window down to mono in [-1,1]. Missing leading samples are
// silence.
func (a *Analyser) load(raw []byte, frameSize int) {
	frames := len(raw) / frameSize
	pad := a.size - frames
	for i := range a.size {
		a.im[i] = 0
		if i < pad {
			a.re[i] = 0
			continue
		}
		off := (i - pad) * frameSize
		var sum float64
		for ch := range a.channels {
			sum += float64(int16(binary.LittleEndian.Uint16(raw[off+ch*2:])))
		}
		a.re[i] = sum / float64(a.channels) / 32768.0 * a.window[i]
	}
}

func (a *Analyser) spectrum() {
	fft(a.re, a.im)

	scale := 255 / (maxDecibels - minDecibels)
	for k := range a.smoothed {
		mag := math.Sqrt(a.re[k]*a.re[k]+a.im[k]*a.im[k]) / float64(a.size)
		s := AnalyserSmoothing*a.smoothed[k] + (1-AnalyserSmoothing)*mag
		if math.IsNaN(s) || math.IsInf(s, 0) {
			s = 0
		}
		a.smoothed[k] = s

		if s <= 0 {
			a.bytes[k] = 0
			continue
		}
		v := math.Floor(scale * (20*math.Log10(s) - minDecibels))
		a.bytes[k] = uint8(math.Max(0, math.Min(255, v)))
	}
}

package field

import "math"

const (
	// AudioSmoothing is the per-frame low-pass coefficient on the audio level.
	AudioSmoothing = 0.08
	// AudioCenter is the smoothed level that leaves the shell at base radius.
	AudioCenter = 0.3

	MinAudioScale = 0.7
	MaxAudioScale = 1.6

	MaxReactivity = 2.0
)

// AudioMapper turns raw amplitude samples into a bounded shell-radius
// multiplier. The zero value is ready to use.
type AudioMapper struct {
	level float64
}

// Level returns the smoothed audio level in [0,1].
func (a *AudioMapper) Level() float64 { return a.level }

// Map feeds one amplitude sample and returns the audio scale for this frame.
// ok reports whether an audio source is attached; without one the scale is 1
// and the smoothed level is left alone.
func (a *AudioMapper) Map(sample float64, ok bool, reactivity float64) float64 {
	if !ok {
		return 1
	}
	norm := math.Sqrt(clampUnit(sample, 0, 1))
	a.level += (norm - a.level) * AudioSmoothing
	return Scale(a.level, reactivity)
}

// Scale maps a smoothed level and a reactivity setting to the shell
// multiplier, always within [MinAudioScale, MaxAudioScale].
func Scale(level, reactivity float64) float64 {
	react := math.Pow(clampUnit(reactivity, 0, MaxReactivity), 1.5)
	dynamicRange := 0.06 + react*0.25
	scale := 1 + (level-AudioCenter)*dynamicRange
	if math.IsNaN(scale) {
		return 1
	}
	return math.Max(MinAudioScale, math.Min(MaxAudioScale, scale))
}

// TargetRadius is the shell radius for a given audio scale.
func TargetRadius(baseRadius, scale float64) float64 {
	return baseRadius * scale
}

func clampUnit(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

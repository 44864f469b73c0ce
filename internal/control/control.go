package control

import (
	"math"
	"sync/atomic"

	"github.com/dorijanhabek/orbfolio/internal/field"
)

// ID identifies one of the live animation parameters.
type ID int

const (
	Wobble ID = iota
	Reactivity
	RotationSpeed
	numParams
)

// Param describes the range and resolution of a control.
type Param struct {
	Name     string
	Min      float64
	Max      float64
	Step     float64
	Default  float64
	Decimals int
}

var params = [numParams]Param{
	Wobble:        {Name: "Particle Wobble", Min: 0, Max: 0.05, Step: 0.001, Default: 0.019, Decimals: 3},
	Reactivity:    {Name: "Audio Reactivity", Min: 0, Max: 2, Step: 0.05, Default: 1.0, Decimals: 2},
	RotationSpeed: {Name: "Rotation Speed", Min: 0, Max: 0.01, Step: 0.0001, Default: 0.0006, Decimals: 4},
}

// IDs returns every control in display order.
func IDs() []ID {
	return []ID{Wobble, Reactivity, RotationSpeed}
}

// Describe returns the descriptor for id.
func Describe(id ID) Param {
	return params[id]
}

// Clamp bounds v to the control's range and snaps it to the step grid.
func (p Param) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return p.Default
	}
	if p.Step > 0 {
		v = p.Min + math.Round((v-p.Min)/p.Step)*p.Step
	}
	return math.Max(p.Min, math.Min(p.Max, v))
}

// Fraction returns where v sits in the range, from 0 to 1.
func (p Param) Fraction(v float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	return math.Max(0, math.Min(1, (v-p.Min)/(p.Max-p.Min)))
}

// Controls holds the live parameter values. One goroutine writes, the frame
// loop reads; every value is a single atomic word.
type Controls struct {
	values [numParams]atomic.Uint64
}

// New returns controls at their default values.
func New() *Controls {
	c := &Controls{}
	c.Reset()
	return c
}

// Reset restores every control to its default.
func (c *Controls) Reset() {
	for _, id := range IDs() {
		c.store(id, params[id].Default)
	}
}

// Get returns the current value of id.
func (c *Controls) Get(id ID) float64 {
	return math.Float64frombits(c.values[id].Load())
}

// Set stores v, clamped and snapped, and returns the stored value.
func (c *Controls) Set(id ID, v float64) float64 {
	v = params[id].Clamp(v)
	c.store(id, v)
	return v
}

// Nudge moves id by steps increments of its resolution.
func (c *Controls) Nudge(id ID, steps int) float64 {
	return c.Set(id, c.Get(id)+float64(steps)*params[id].Step)
}

// Snapshot reads all controls for one frame.
func (c *Controls) Snapshot() field.Params {
	return field.Params{
		Wobble:        c.Get(Wobble),
		Reactivity:    c.Get(Reactivity),
		RotationSpeed: c.Get(RotationSpeed),
	}
}

func (c *Controls) store(id ID, v float64) {
	c.values[id].Store(math.Float64bits(v))
}

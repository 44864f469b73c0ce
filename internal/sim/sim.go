// Package sim drives one frame of the particle sphere: it reads the controls,
// samples the audio source, steps the field and advances the rotation.
package sim

import (
	"math/rand"
	"time"

	"github.com/dorijanhabek/orbfolio/internal/control"
	"github.com/dorijanhabek/orbfolio/internal/field"
)

// AmplitudeSource yields the latest audio amplitude in [0,1] without
// blocking. ok is false when no source is attached.
type AmplitudeSource interface {
	Amplitude() (level float64, ok bool)
}

// Frame is the outcome of one simulation step.
type Frame struct {
	Elapsed      time.Duration
	AudioLevel   float64
	AudioScale   float64
	TargetRadius float64
	DYaw         float64
	DPitch       float64
	Yaw          float64
	Pitch        float64
}

// Simulator owns the particle field and its per-frame inputs.
type Simulator struct {
	field    *field.Field
	audio    field.AudioMapper
	rotation field.Rotator
	controls *control.Controls
	source   AmplitudeSource
	start    time.Time
}

// New builds a simulator with n points. source may be nil when there is no
// audio.
func New(n int, controls *control.Controls, source AmplitudeSource, rng *rand.Rand) *Simulator {
	if controls == nil {
		controls = control.New()
	}
	return &Simulator{
		field:    field.New(n, field.BaseRadius, rng),
		controls: controls,
		source:   source,
	}
}

// Step runs one frame at wall time now.
func (s *Simulator) Step(now time.Time) Frame {
	if s.start.IsZero() {
		s.start = now
	}
	p := s.controls.Snapshot()

	var level float64
	var ok bool
	if s.source != nil {
		level, ok = s.source.Amplitude()
	}
	scale := s.audio.Map(level, ok, p.Reactivity)
	target := field.TargetRadius(s.field.BaseRadius(), scale)

	elapsed := now.Sub(s.start)
	s.field.Step(elapsed.Seconds(), target, p)
	dYaw, dPitch := s.rotation.Advance(now, p.RotationSpeed)

	return Frame{
		Elapsed:      elapsed,
		AudioLevel:   s.audio.Level(),
		AudioScale:   scale,
		TargetRadius: target,
		DYaw:         dYaw,
		DPitch:       dPitch,
		Yaw:          s.rotation.Yaw,
		Pitch:        s.rotation.Pitch,
	}
}

// Positions returns the current point positions, packed x,y,z per point.
func (s *Simulator) Positions() []float64 { return s.field.Positions() }

// InteractionStart pauses auto-rotation while the user orbits the view.
func (s *Simulator) InteractionStart(now time.Time) { s.rotation.InteractionStart(now) }

// InteractionEnd schedules auto-rotation to resume.
func (s *Simulator) InteractionEnd(now time.Time) { s.rotation.InteractionEnd(now) }

// RotationState reports the auto-rotation phase.
func (s *Simulator) RotationState() field.RotationState { return s.rotation.State() }

package field

import (
	"time"

	"github.com/dorijanhabek/orbfolio/internal/ease"
)

const (
	// ResumeDelay is how long auto-rotation waits after an interaction ends.
	ResumeDelay = 2 * time.Second
	// RampDuration is how long the resumed rotation takes to reach full speed.
	RampDuration = 1500 * time.Millisecond
	// PitchRatio scales the horizontal-axis increment against the vertical one.
	PitchRatio = 0.6
)

// RotationState is the auto-rotation phase.
type RotationState int

const (
	Steady RotationState = iota
	Paused
	Resuming
)

// String returns the name of the rotation state.
func (s RotationState) String() string {
	switch s {
	case Paused:
		return "paused"
	case Resuming:
		return "resuming"
	default:
		return "steady"
	}
}

// Rotator accumulates the point cloud's yaw and pitch. The zero value rotates
// steadily.
type Rotator struct {
	Yaw   float64
	Pitch float64

	state     RotationState
	resumeAt  time.Time // zero unless a resume is armed
	rampStart time.Time
}

// State returns the current rotation phase.
func (r *Rotator) State() RotationState { return r.state }

// InteractionStart pauses auto-rotation and cancels any pending resume.
func (r *Rotator) InteractionStart(now time.Time) {
	r.state = Paused
	r.resumeAt = time.Time{}
	r.rampStart = time.Time{}
}

// InteractionEnd arms the resume timer.
func (r *Rotator) InteractionEnd(now time.Time) {
	if r.state != Paused {
		return
	}
	r.resumeAt = now.Add(ResumeDelay)
}

// Scale returns the easing multiplier at now, moving through the resume
// transitions as their deadlines pass.
func (r *Rotator) Scale(now time.Time) float64 {
	if r.state == Paused && !r.resumeAt.IsZero() && now.After(r.resumeAt) {
		r.state = Resuming
		r.resumeAt = time.Time{}
		r.rampStart = now
	}
	if r.state != Resuming {
		return 1
	}
	k := ease.Progress(now.Sub(r.rampStart).Seconds(), RampDuration.Seconds())
	if k >= 1 {
		r.state = Steady
		r.rampStart = time.Time{}
	}
	return ease.InOutCubic(k)
}

// Advance adds one frame of rotation at speed and returns the increments.
func (r *Rotator) Advance(now time.Time, speed float64) (dYaw, dPitch float64) {
	s := r.Scale(now)
	dYaw = speed * s
	dPitch = speed * PitchRatio * s
	r.Yaw += dYaw
	r.Pitch += dPitch
	return dYaw, dPitch
}

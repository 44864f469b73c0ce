package sim

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/dorijanhabek/orbfolio/internal/control"
	"github.com/dorijanhabek/orbfolio/internal/field"
)

type stubSource struct {
	level float64
	calls int
}

func (s *stubSource) Amplitude() (float64, bool) {
	s.calls++
	return s.level, true
}

func TestStepWithoutSourceKeepsBaseRadius(t *testing.T) {
	s := New(10, nil, nil, rand.New(rand.NewSource(1)))
	f := s.Step(time.Unix(0, 0))
	if f.AudioScale != 1 || f.TargetRadius != field.BaseRadius {
		t.Fatalf("frame = %+v, want neutral scale", f)
	}
	if f.Elapsed != 0 {
		t.Fatalf("first frame elapsed = %v, want 0", f.Elapsed)
	}
}

func TestStepSamplesSourceOncePerFrame(t *testing.T) {
	src := &stubSource{level: 1}
	s := New(10, control.New(), src, rand.New(rand.NewSource(1)))
	now := time.Unix(0, 0)

	f := s.Step(now)
	if src.calls != 1 {
		t.Fatalf("source sampled %d times, want 1", src.calls)
	}
	if math.Abs(f.AudioLevel-field.AudioSmoothing) > 1e-12 {
		t.Fatalf("audio level after loud frame = %v, want %v", f.AudioLevel, field.AudioSmoothing)
	}
	if f.AudioScale < field.MinAudioScale || f.AudioScale > field.MaxAudioScale {
		t.Fatalf("audio scale %v out of bounds", f.AudioScale)
	}
}

func TestStepReadsControlsEachFrame(t *testing.T) {
	c := control.New()
	s := New(10, c, nil, rand.New(rand.NewSource(1)))
	now := time.Unix(0, 0)

	f := s.Step(now)
	if f.DYaw != 0.0006 {
		t.Fatalf("dYaw = %v, want default speed", f.DYaw)
	}

	c.Set(control.RotationSpeed, 0.005)
	f = s.Step(now.Add(time.Second / 60))
	if math.Abs(f.DYaw-0.005) > 1e-12 {
		t.Fatalf("dYaw after slider change = %v, want 0.005", f.DYaw)
	}
	if math.Abs(f.Yaw-(0.0006+f.DYaw)) > 1e-12 {
		t.Fatalf("yaw = %v, want accumulated %v", f.Yaw, 0.0006+f.DYaw)
	}
}

func TestInteractionPausesAndResumes(t *testing.T) {
	s := New(10, nil, nil, rand.New(rand.NewSource(1)))
	now := time.Unix(0, 0)
	s.InteractionStart(now)
	s.InteractionEnd(now)
	if s.RotationState() != field.Paused {
		t.Fatalf("state = %v, want paused", s.RotationState())
	}
	s.Step(now.Add(3 * time.Second))
	if s.RotationState() != field.Resuming {
		t.Fatalf("state = %v, want resuming", s.RotationState())
	}
}

func TestPositionsExposeField(t *testing.T) {
	s := New(25, nil, nil, rand.New(rand.NewSource(1)))
	if got := len(s.Positions()); got != 75 {
		t.Fatalf("len(Positions()) = %d, want 75", got)
	}
}

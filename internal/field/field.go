package field

import (
	"math"
	"math/rand"
	"time"
)

const (
	// DefaultPoints is the number of particles on the landing page sphere.
	DefaultPoints = 1000
	// BaseRadius is the shell radius at silence.
	BaseRadius = 1.0

	Damping       = 0.94
	ShellSpring   = 0.030
	AngleSpring   = 0.010
	NoiseStrength = 0.0012 // random drift, higher is looser
	MaxSpeed      = 0.06

	seedRange = 1000.0
)

// Params are the externally controlled scalars read once per frame.
type Params struct {
	Wobble        float64
	Reactivity    float64
	RotationSpeed float64
}

type tuning struct {
	damping     float64
	shellSpring float64
	angleSpring float64
	noise       float64
	maxSpeed    float64
}

var defaultTuning = tuning{
	damping:     Damping,
	shellSpring: ShellSpring,
	angleSpring: AngleSpring,
	noise:       NoiseStrength,
	maxSpeed:    MaxSpeed,
}

// Field is a fixed set of point masses spring-pulled toward a breathing
// spherical shell. Per-point data is stored as parallel arrays indexed i*3+axis.
type Field struct {
	n          int
	baseRadius float64
	pos        []float64
	vel        []float64
	base       []float64 // unit directions, never written after New
	seed       []float64
	tuning     tuning
}

// New lays n points out on a Fibonacci sphere of radius baseRadius and draws
// three noise phases per point from rng. A nil rng is seeded from the clock.
func New(n int, baseRadius float64, rng *rand.Rand) *Field {
	if n < 1 {
		n = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	f := &Field{
		n:          n,
		baseRadius: baseRadius,
		pos:        make([]float64, n*3),
		vel:        make([]float64, n*3),
		base:       FibonacciSphere(n),
		seed:       make([]float64, n*3),
		tuning:     defaultTuning,
	}
	for i := range f.pos {
		f.pos[i] = f.base[i] * baseRadius
		f.seed[i] = rng.Float64() * seedRange
	}
	return f
}

// BaseRadius returns the shell radius at silence.
func (f *Field) BaseRadius() float64 { return f.baseRadius }

// Positions returns the live position buffer. Callers must not modify it.
func (f *Field) Positions() []float64 { return f.pos }

// Step advances every point by one frame at elapsed time t toward the shell of
// radius targetRadius.
func (f *Field) Step(t, targetRadius float64, p Params) {
	tu := f.tuning
	wobble := p.Wobble

	// per-frame phase terms shared by all points
	wx, wy, wz := t*0.40, t*0.33, t*0.47
	nx, ny, nz := t*0.8, t*0.9, t*1.0

	for i := 0; i < len(f.pos); i += 3 {
		x, y, z := f.pos[i], f.pos[i+1], f.pos[i+2]
		vx, vy, vz := f.vel[i], f.vel[i+1], f.vel[i+2]
		bx, by, bz := f.base[i], f.base[i+1], f.base[i+2]
		sx, sy, sz := f.seed[i], f.seed[i+1], f.seed[i+2]

		tx, ty, tz := bx*targetRadius, by*targetRadius, bz*targetRadius

		wobbleX := math.Sin(wx+sx) * wobble
		wobbleY := math.Cos(wy+sy) * wobble
		wobbleZ := math.Sin(wz+sz) * wobble

		rlen := math.Sqrt(x*x + y*y + z*z)
		if rlen == 0 {
			rlen = 1
		}
		fx := (tx-x)*tu.shellSpring + (bx-x/rlen)*tu.angleSpring
		fy := (ty-y)*tu.shellSpring + (by-y/rlen)*tu.angleSpring
		fz := (tz-z)*tu.shellSpring + (bz-z/rlen)*tu.angleSpring

		vx = (vx + fx + math.Sin(nx+sx*1.7)*tu.noise) * tu.damping
		vy = (vy + fy + math.Cos(ny+sy*1.9)*tu.noise) * tu.damping
		vz = (vz + fz + math.Sin(nz+sz*2.1)*tu.noise) * tu.damping

		if sp := math.Sqrt(vx*vx + vy*vy + vz*vz); sp > tu.maxSpeed {
			s := tu.maxSpeed / sp
			vx *= s
			vy *= s
			vz *= s
		}

		f.vel[i], f.vel[i+1], f.vel[i+2] = vx, vy, vz
		f.pos[i] = x + wobbleX + vx
		f.pos[i+1] = y + wobbleY + vy
		f.pos[i+2] = z + wobbleZ + vz
	}
}

package field

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

func TestFibonacciSphereUnitVectors(t *testing.T) {
	for _, n := range []int{1, 2, 4, 17, 1000} {
		dirs := FibonacciSphere(n)
		if len(dirs) != n*3 {
			t.Fatalf("n=%d: got %d floats, want %d", n, len(dirs), n*3)
		}
		for i := 0; i < n; i++ {
			x, y, z := dirs[i*3], dirs[i*3+1], dirs[i*3+2]
			if l := math.Sqrt(x*x + y*y + z*z); math.Abs(l-1) > 1e-12 {
				t.Fatalf("n=%d point %d: |dir| = %v", n, i, l)
			}
		}
	}
}

func TestFibonacciSphereFirstPointIsPole(t *testing.T) {
	dirs := FibonacciSphere(4)
	if dirs[0] != 0 || dirs[1] != 0 || dirs[2] != 1 {
		t.Fatalf("first direction = (%v, %v, %v), want (0, 0, 1)", dirs[0], dirs[1], dirs[2])
	}
}

func TestFibonacciSphereCoversBothHemispheres(t *testing.T) {
	dirs := FibonacciSphere(1000)
	var north, south int
	for i := 2; i < len(dirs); i += 3 {
		if dirs[i] > 0 {
			north++
		} else {
			south++
		}
	}
	if diff := north - south; diff < -2 || diff > 2 {
		t.Fatalf("unbalanced hemispheres: north=%d south=%d", north, south)
	}
}

func TestNewPlacesPointsOnBaseShell(t *testing.T) {
	f := New(100, 2.5, rand.New(rand.NewSource(1)))
	if f.n != 100 {
		t.Fatalf("n = %d, want 100", f.n)
	}
	pos := f.Positions()
	for i := 0; i < f.n; i++ {
		d := direction(f, i)
		for a := range 3 {
			if want := d[a] * 2.5; pos[i*3+a] != want {
				t.Fatalf("point %d axis %d = %v, want %v", i, a, pos[i*3+a], want)
			}
		}
	}
	for i, v := range f.vel {
		if v != 0 {
			t.Fatalf("velocity[%d] = %v, want 0", i, v)
		}
	}
	for i, s := range f.seed {
		if s < 0 || s >= seedRange {
			t.Fatalf("seed[%d] = %v out of [0, %v)", i, s, seedRange)
		}
	}
}

func TestNewClampsPointCount(t *testing.T) {
	if n := New(0, 1, nil).n; n != 1 {
		t.Fatalf("New(0) has %d points, want 1", n)
	}
}

func TestStepFixedPointWithoutForcing(t *testing.T) {
	f := New(4, 1.0, rand.New(rand.NewSource(7)))
	f.tuning.noise = 0

	f.Step(12.5, 1.0, Params{})

	pos := f.Positions()
	for i := 0; i < f.n; i++ {
		d := direction(f, i)
		for a := range 3 {
			if pos[i*3+a] != d[a] {
				t.Fatalf("point %d axis %d moved: %v != %v", i, a, pos[i*3+a], d[a])
			}
		}
	}
}

func TestStepNoiseIsOnlyForcingAtRest(t *testing.T) {
	f := New(4, 1.0, rand.New(rand.NewSource(7)))
	f.Step(3, 1.0, Params{})

	for i := 0; i < f.n; i++ {
		idx := i * 3
		sx := f.seed[idx]
		want := math.Sin(3*0.8+sx*1.7) * NoiseStrength * Damping
		if got := f.vel[idx]; math.Abs(got-want) > 1e-15 {
			t.Fatalf("point %d vx = %v, want %v", i, got, want)
		}
	}
}

func TestStepClampsVelocity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	f := New(200, 1.0, rng)
	for frame := range 300 {
		target := 1.0
		if frame%50 < 5 {
			target = 40 // violent transient
		}
		f.Step(float64(frame)/60, target, Params{Wobble: 0.05})
		vel := f.vel
		for i := 0; i < len(vel); i += 3 {
			sp := math.Sqrt(vel[i]*vel[i] + vel[i+1]*vel[i+1] + vel[i+2]*vel[i+2])
			if sp > MaxSpeed+1e-12 {
				t.Fatalf("frame %d point %d: |v| = %v exceeds %v", frame, i/3, sp, MaxSpeed)
			}
		}
	}
}

func TestStepGuardsOriginPoint(t *testing.T) {
	f := New(1, 1.0, rand.New(rand.NewSource(3)))
	f.tuning.noise = 0
	f.pos[0], f.pos[1], f.pos[2] = 0, 0, 0

	f.Step(0, 1.0, Params{})

	for i, v := range f.Positions() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("position[%d] = %v", i, v)
		}
	}
	if f.pos[2] <= 0 {
		t.Fatalf("point at origin should move toward its direction, z = %v", f.pos[2])
	}
}

func TestStepConvergesToTargetShell(t *testing.T) {
	f := New(50, 1.0, rand.New(rand.NewSource(9)))
	f.tuning.noise = 0
	for frame := range 600 {
		f.Step(float64(frame)/60, 1.3, Params{})
	}
	pos := f.Positions()
	for i := 0; i < len(pos); i += 3 {
		r := math.Sqrt(pos[i]*pos[i] + pos[i+1]*pos[i+1] + pos[i+2]*pos[i+2])
		if math.Abs(r-1.3) > 1e-3 {
			t.Fatalf("point %d radius = %v, want ~1.3", i/3, r)
		}
	}
}

func TestStepKeepsDirectionsImmutable(t *testing.T) {
	f := New(32, 1.0, rand.New(rand.NewSource(5)))
	before := append([]float64(nil), f.base...)
	for frame := range 20 {
		f.Step(float64(frame), 1.4, Params{Wobble: 0.02})
	}
	for i := range before {
		if f.base[i] != before[i] {
			t.Fatalf("base[%d] changed", i)
		}
	}
}

func BenchmarkStep(b *testing.B) {
	for _, n := range []int{1000, 10000} {
		b.Run(fmt.Sprintf("Points-%d", n), func(b *testing.B) {
			f := New(n, BaseRadius, rand.New(rand.NewSource(1)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f.Step(float64(i)/60, 1.05, Params{Wobble: 0.019})
			}
		})
	}
}

func direction(f *Field, i int) [3]float64 {
	idx := i * 3
	return [3]float64{f.base[idx], f.base[idx+1], f.base[idx+2]}
}

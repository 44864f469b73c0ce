package visualizer

import "math"

const (
	orbitYaw = iota
	orbitPitch
)

const (
	// OrbitRadiansPerCell is how far one cell of mouse drag turns the view.
	OrbitRadiansPerCell = 0.06
	maxOrbitPitch       = math.Pi / 2
)

// Orbit is a drag-to-rotate camera whose angles glide toward their targets on
// a critically damped spring.
type Orbit struct {
	springs     springField
	targetYaw   float64
	targetPitch float64
	yaw, pitch  float64
}

// NewOrbit returns a camera facing the sphere head-on.
func NewOrbit() *Orbit {
	return &Orbit{springs: newSpringField(2, FPS, 6.0, 1.0)}
}

// Drag turns the camera target by a mouse movement measured in cells.
func (o *Orbit) Drag(dx, dy int) {
	o.targetYaw += float64(dx) * OrbitRadiansPerCell
	o.targetPitch += float64(dy) * OrbitRadiansPerCell
	o.targetPitch = math.Max(-maxOrbitPitch, math.Min(maxOrbitPitch, o.targetPitch))
}

// Update advances the camera one frame and returns its angles.
func (o *Orbit) Update() (yaw, pitch float64) {
	o.yaw = o.springs.step(orbitYaw, o.targetYaw)
	o.pitch = o.springs.step(orbitPitch, o.targetPitch)
	return o.yaw, o.pitch
}

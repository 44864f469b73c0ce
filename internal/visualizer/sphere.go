package visualizer

import "math"

const (
	cameraDistance = 3.0
	// focal is 1/tan(fov/2) for a 75° vertical field of view.
	focal = 1.3032253728412058
	// sphereFill is the share of the shorter canvas side the base sphere spans.
	sphereFill = 0.9
	depthRange = 1.6
)

// Sphere projects the particle cloud onto a braille canvas.
type Sphere struct {
	canvas  brailleCanvas
	profile colorProfile
	output  string
}

// NewSphere creates a sphere renderer for the current terminal.
func NewSphere() *Sphere {
	return &Sphere{profile: currentColorProfile()}
}

func (s *Sphere) Name() string { return "sphere" }

// Update rotates the packed x,y,z positions by the cloud's yaw and pitch, then
// by the camera orbit, and draws them in a cols×rows cell area.
func (s *Sphere) Update(pos []float64, yaw, pitch, camYaw, camPitch float64, cols, rows int) {
	s.canvas.resize(cols, rows)
	s.canvas.clear()

	w, h := s.canvas.dotWidth(), s.canvas.dotHeight()
	cx, cy := float64(w)/2, float64(h)/2
	scale := 0.5 * math.Min(float64(w), float64(h)) * sphereFill

	// object rotation: yaw about Y, then pitch about X
	sinY, cosY := math.Sincos(yaw)
	sinP, cosP := math.Sincos(pitch)
	// camera orbit applied as the inverse rotation of the world
	sinCY, cosCY := math.Sincos(-camYaw)
	sinCP, cosCP := math.Sincos(-camPitch)

	for i := 0; i+2 < len(pos); i += 3 {
		x, y, z := pos[i], pos[i+1], pos[i+2]

		x, z = x*cosY+z*sinY, -x*sinY+z*cosY
		y, z = y*cosP-z*sinP, y*sinP+z*cosP

		x, z = x*cosCY+z*sinCY, -x*sinCY+z*cosCY
		y, z = y*cosCP-z*sinCP, y*sinCP+z*cosCP

		depth := cameraDistance - z
		if depth <= 0.1 {
			continue
		}
		px := cx + x*focal/depth*scale
		py := cy - y*focal/depth*scale
		s.canvas.plot(int(math.Floor(px)), int(math.Floor(py)), (z+depthRange)/(2*depthRange))
	}

	s.output = s.canvas.render(s.profile)
}

func (s *Sphere) View() string { return s.output }

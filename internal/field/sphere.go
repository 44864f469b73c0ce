package field

import "math"

// goldenTurn is the per-index angular step of the golden-angle spiral.
var goldenTurn = math.Pi * (1 + math.Sqrt(5))

// FibonacciSphere returns n unit vectors spread near-uniformly over the unit
// sphere, packed as x0,y0,z0,x1,y1,z1,...
func FibonacciSphere(n int) []float64 {
	if n < 1 {
		n = 1
	}
	dirs := make([]float64, n*3)
	for i := range n {
		phi := math.Acos(1 - 2*(float64(i)/float64(n)))
		theta := goldenTurn * float64(i)
		sinPhi := math.Sin(phi)
		idx := i * 3
		dirs[idx] = sinPhi * math.Cos(theta)
		dirs[idx+1] = sinPhi * math.Sin(theta)
		dirs[idx+2] = math.Cos(phi)
	}
	return dirs
}

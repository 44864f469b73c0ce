package visualizer

import "math"

// fft performs an in-place radix-2 Cooley-Tukey FFT on complex data.
// len(re) and len(im) must be equal and a power of 2.
func fft(re, im []float64) {
	n := len(re)
	if n <= 1 {
		return
	}

	// bit-reversal permutation
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		angleStep := -2.0 * math.Pi / float64(size)
		for i := 0; i < n; i += size {
			for k := range half {
				angle := angleStep * float64(k)
				wr, wi := math.Cos(angle), math.Sin(angle)
				a := i + k
				b := a + half
				tr := wr*re[b] - wi*im[b]
				ti := wr*im[b] + wi*re[b]
				re[b] = re[a] - tr
				im[b] = im[a] - ti
				re[a] += tr
				im[a] += ti
			}
		}
	}
}

package diffuse

import (
	hwyimage "github.com/ajroetker/go-highway/hwy/contrib/image"
)

// bsplineFilter is the 1D binomial approximation of a gaussian; the 2D
// blur kernel is its outer product.
var bsplineFilter = [5]float32{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}

// decompose splits in into one scale of the à trous wavelet pyramid:
// lf receives the B-spline blur with taps spaced dilation pixels apart,
// hf the per-channel residual in - lf. Border taps clamp to the buffer
// edge. Because the transform is undecimated, summing every scale's hf
// plus the coarsest lf reproduces the input exactly.
func (e *Engine) decompose(in, hf, lf []float32, dilation, width, height int) {
	e.pool.ParallelFor(height, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < width; j++ {
				index := (i*width + j) * 4
				var acc [4]float32
				for ii := 0; ii < 5; ii++ {
					row := hwyimage.Clamp(i+dilation*(ii-2), height)
					fi := bsplineFilter[ii]
					for jj := 0; jj < 5; jj++ {
						col := hwyimage.Clamp(j+dilation*(jj-2), width)
						w := fi * bsplineFilter[jj]
						k := (row*width + col) * 4
						for c := 0; c < 4; c++ {
							acc[c] += w * in[k+c]
						}
					}
				}
				for c := 0; c < 4; c++ {
					lf[index+c] = acc[c]
					hf[index+c] = in[index+c] - acc[c]
				}
			}
		}
	})
}

package diffuse

import (
	hwyimage "github.com/ajroetker/go-highway/hwy/contrib/image"
)

// passState holds the parameter-derived values shared by every scale of
// one wavelets pass. Computed once per pass, read-only afterwards.
type passState struct {
	anisotropy        [4]float32
	mode              [4]isotropyMode
	regularization    float32
	varianceThreshold float32
}

func newPassState(p *Params) *passState {
	return &passState{
		anisotropy: [4]float32{
			anisotropyFactor(p.AnisotropyFirst),
			anisotropyFactor(p.AnisotropySecond),
			anisotropyFactor(p.AnisotropyThird),
			anisotropyFactor(p.AnisotropyFourth),
		},
		mode: [4]isotropyMode{
			isotropyModeFor(p.AnisotropyFirst),
			isotropyModeFor(p.AnisotropySecond),
			isotropyModeFor(p.AnisotropyThird),
			isotropyModeFor(p.AnisotropyFourth),
		},
		regularization:    pow10f(p.Regularization) - 1,
		varianceThreshold: pow10f(p.VarianceThreshold),
	}
}

// diffuseStep applies one scale of the anisotropic heat-transfer model
// to the wavelet layers hf and lf and accumulates the result into out.
//
// For each pixel and channel, four stencils are synthesized (1st order
// from the lf gradient, 2nd from the lf laplacian, 3rd from the hf
// gradient, 4th from the hf laplacian) over a 3×3 neighborhood whose
// taps are spaced by the scale's dilation so the stencil matches the
// à trous spacing. The four derivative estimates are weighted by the
// scale's abcd coefficients and divided by a local variance proxy, which
// suppresses the update near edges and texture. Non-final scales
// contribute only their high-frequency correction; the final scale adds
// back the low-frequency layer to complete the reconstruction.
//
// Pixels where the mask is zero pass through unchanged. Writes are
// per-pixel disjoint, so the output does not depend on how rows are
// split across workers.
func (e *Engine) diffuseStep(hf, lf []float32, mask []uint8, out []float32, width, height int, ps *passState, si scaleInfo) {
	mult := si.dilation
	e.pool.ParallelFor(height, func(start, end int) {
		var nHF, nLF [9][4]float32
		var kernFirst, kernSecond, kernThird, kernFourth [9]float32

		for i := start; i < end; i++ {
			for j := 0; j < width; j++ {
				idx := i*width + j
				index := idx * 4

				if mask != nil && mask[idx] == 0 {
					for c := 0; c < 4; c++ {
						v := hf[index+c]
						if si.last {
							v += lf[index+c]
						}
						out[index+c] += v
					}
					continue
				}

				// non-local neighbour coordinates, clamped at borders
				rows := [3]int{hwyimage.Clamp(i-mult, height), i, hwyimage.Clamp(i+mult, height)}
				cols := [3]int{hwyimage.Clamp(j-mult, width), j, hwyimage.Clamp(j+mult, width)}

				for ii := 0; ii < 3; ii++ {
					for jj := 0; jj < 3; jj++ {
						k := (rows[ii]*width + cols[jj]) * 4
						n := 3*ii + jj
						for c := 0; c < 4; c++ {
							nHF[n][c] = hf[k+c]
							nLF[n][c] = lf[k+c]
						}
					}
				}

				for c := 0; c < 4; c++ {
					computeStencil(&nLF, c, ps.anisotropy[0], ps.mode[0], true, &kernFirst)
					computeStencil(&nLF, c, ps.anisotropy[1], ps.mode[1], false, &kernSecond)
					computeStencil(&nHF, c, ps.anisotropy[2], ps.mode[2], true, &kernThird)
					computeStencil(&nHF, c, ps.anisotropy[3], ps.mode[3], false, &kernFourth)

					var d0, d1, d2, d3, variance float32
					for k := 0; k < 9; k++ {
						d0 += kernFirst[k] * nLF[k][c]
						d1 += kernSecond[k] * nLF[k][c]
						d2 += kernThird[k] * nHF[k][c]
						d3 += kernFourth[k] * nHF[k][c]
						variance += sqf(nHF[k][c])
					}
					variance = ps.varianceThreshold + variance/9*ps.regularization

					acc := d0*si.abcd[0] + d1*si.abcd[1] + d2*si.abcd[2] + d3*si.abcd[3]
					acc = (hf[index+c] + acc/variance) * si.strength
					if si.last {
						acc += lf[index+c]
					}
					out[index+c] += acc
				}
			}
		}
	})
}

package diffuse

// Params is the immutable configuration snapshot for one processing
// invocation. The host pipeline is expected to validate user input before
// handing a Params to the engine; Clamp is provided as a convenience for
// callers that want the documented ranges enforced.
type Params struct {
	// Iterations is the number of outer wavelet+diffusion passes.
	// Range [1, 128], default 1.
	Iterations int
	// Radius is the spatial extent of the effect in pixels at reference
	// zoom. Range [1, 256], default 8.
	Radius int
	// Sharpness multiplies the high-frequency layers, mimicking a
	// contrast equalizer. Range [-1, 1], default 0.
	Sharpness float32
	// Regularization is the edge sensitivity exponent: the variance
	// denominator is scaled by 10^Regularization - 1. Range [0, 6],
	// default 0.
	Regularization float32
	// VarianceThreshold is the edge threshold exponent: the variance
	// denominator is offset by 10^VarianceThreshold. Range [-1, 1],
	// default 0.
	VarianceThreshold float32

	// Anisotropy of each derivative order. Zero diffuses equally in all
	// directions; positive values favor the isophote direction, negative
	// values the gradient direction. Range [-4, 4], default 0.
	AnisotropyFirst  float32
	AnisotropySecond float32
	AnisotropyThird  float32
	AnisotropyFourth float32

	// Threshold is the luminance masking threshold. When positive,
	// pixels with any RGB channel above it are reconstructed by
	// noise-seeded inpainting while the rest of the image passes
	// through. Range [0, 8], default 0 (disabled).
	Threshold float32

	// Weights of the four derivative orders: First follows the
	// low-frequency gradient, Second the low-frequency laplacian, Third
	// the high-frequency gradient, Fourth the high-frequency laplacian.
	// Negative weights sharpen, positive weights diffuse.
	// Range [-1, 1], default 0 each.
	First  float32
	Second float32
	Third  float32
	Fourth float32
}

// DefaultParams returns a no-op parameter set: one iteration, radius 8,
// all weights and anisotropies at zero.
func DefaultParams() Params {
	return Params{
		Iterations: 1,
		Radius:     8,
	}
}

// Clamp forces every field into its documented range.
func (p *Params) Clamp() {
	p.Iterations = clampi(p.Iterations, 1, 128)
	p.Radius = clampi(p.Radius, 1, 256)
	p.Sharpness = clampf(p.Sharpness, -1, 1)
	p.Regularization = clampf(p.Regularization, 0, 6)
	p.VarianceThreshold = clampf(p.VarianceThreshold, -1, 1)
	p.AnisotropyFirst = clampf(p.AnisotropyFirst, -4, 4)
	p.AnisotropySecond = clampf(p.AnisotropySecond, -4, 4)
	p.AnisotropyThird = clampf(p.AnisotropyThird, -4, 4)
	p.AnisotropyFourth = clampf(p.AnisotropyFourth, -4, 4)
	p.Threshold = clampf(p.Threshold, 0, 8)
	p.First = clampf(p.First, -1, 1)
	p.Second = clampf(p.Second, -1, 1)
	p.Third = clampf(p.Third, -1, 1)
	p.Fourth = clampf(p.Fourth, -1, 1)
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package diffuse

import "math"

// isotropyMode selects the shape of the local diffusion tensor.
type isotropyMode uint8

const (
	modeIsotrope isotropyMode = iota // same intensity in all directions
	modeIsophote                     // favor the isophote, orthogonal to the gradient
	modeGradient                     // favor the gradient direction
)

// isotropyModeFor decodes the user anisotropy scalar: the sign selects
// the diffusion direction, the magnitude the anisotropy ratio.
func isotropyModeFor(anisotropy float32) isotropyMode {
	switch {
	case anisotropy == 0:
		return modeIsotrope
	case anisotropy > 0:
		return modeIsophote
	default:
		return modeGradient
	}
}

// anisotropyFactor maps the user anisotropy setting to the K parameter
// of the damping term c² = exp(-magnitude/K), on a perceptually even
// curve. Zero maps to an effectively infinite K.
func anisotropyFactor(user float32) float32 {
	const normalize = float32(math.E - 1)
	if user == 0 {
		return math.MaxFloat32
	}
	return expf(absf(1/user)-1) / normalize
}

// findGradient estimates the gradient of one channel with centered
// finite differences over a 3×3 neighborhood. x is vertical and y is
// horizontal, matching the buffer layout.
func findGradient(px *[9][4]float32, c int) (dx, dy float32) {
	dx = (px[7][c] - px[1][c]) / 2
	dy = (px[5][c] - px[3][c]) / 2
	return dx, dy
}

// findLaplacian estimates the per-axis second derivatives of one channel
// with centered finite differences over a 3×3 neighborhood.
func findLaplacian(px *[9][4]float32, c int) (dx, dy float32) {
	dx = px[7][c] + px[1][c] - 2*px[4][c]
	dy = px[5][c] + px[3][c] - 2*px[4][c]
	return dx, dy
}

// sym2 is a symmetric 2×2 diffusion tensor:
//
//	[ xx xy ]
//	[ xy yy ]
type sym2 struct {
	xx, yy, xy float32
}

// anisotropicDirection extracts magnitude and angle from a derivative
// estimate and evaluates the anisotropy damping c².
func anisotropicDirection(dx, dy, factor float32) (c2, cos, sin, cos2, sin2 float32) {
	magnitude := float32(math.Hypot(float64(dx), float64(dy)))
	theta := math.Atan2(float64(dy), float64(dx))

	s, c := math.Sincos(theta)
	sin = float32(s)
	cos = float32(c)
	cos2 = sqf(cos)
	sin2 = sqf(sin)

	c2 = expf(-magnitude / factor)
	return c2, cos, sin, cos2, sin2
}

// isophoteTensor rotates the diffusion tensor so that c² dampens the
// gradient direction, leaving the isophote free to diffuse.
func isophoteTensor(c2, cos, sin, cos2, sin2 float32) sym2 {
	return sym2{
		xx: cos2 + c2*sin2,
		yy: c2*cos2 + sin2,
		xy: (c2 - 1) * cos * sin,
	}
}

// gradientTensor is the inverted variant: c² dampens the isophote
// direction, leaving the gradient free to diffuse.
func gradientTensor(c2, cos, sin, cos2, sin2 float32) sym2 {
	return sym2{
		xx: c2*cos2 + sin2,
		yy: cos2 + c2*sin2,
		xy: (1 - c2) * cos * sin,
	}
}

// buildStencil expands the diffusion tensor into the 3×3 stencil of the
// rotated anisotropic laplacian:
//
//	[ -xy/2,  yy,            xy/2 ]
//	[  xx,   -2 (xx + yy),   xx   ]
//	[  xy/2,  yy,           -xy/2 ]
func buildStencil(a sym2, kernel *[9]float32) {
	b11 := -a.xy / 2
	b13 := -b11
	b22 := -2 * (a.xx + a.yy)

	kernel[0] = b11
	kernel[1] = a.yy
	kernel[2] = b13
	kernel[3] = a.xx
	kernel[4] = b22
	kernel[5] = a.xx
	kernel[6] = b13
	kernel[7] = a.yy
	kernel[8] = b11
}

// isotropicStencil is the rotation-invariant second-order laplacian
// (Oono & Puri), used whenever the anisotropy is exactly zero. The
// general tensor formula is numerically singular there, so this is a
// dedicated path rather than a limiting case.
func isotropicStencil(kernel *[9]float32) {
	*kernel = [9]float32{
		0.25, 0.5, 0.25,
		0.5, -3, 0.5,
		0.25, 0.5, 0.25,
	}
}

// computeStencil builds the 3×3 convolution stencil for one channel of
// a 3×3 neighborhood. useGradient selects whether the local direction
// comes from the gradient or from the laplacian estimate.
func computeStencil(px *[9][4]float32, c int, factor float32, mode isotropyMode, useGradient bool, kernel *[9]float32) {
	if mode == modeIsotrope {
		isotropicStencil(kernel)
		return
	}

	var dx, dy float32
	if useGradient {
		dx, dy = findGradient(px, c)
	} else {
		dx, dy = findLaplacian(px, c)
	}

	c2, cos, sin, cos2, sin2 := anisotropicDirection(dx, dy, factor)
	var a sym2
	if mode == modeIsophote {
		a = isophoteTensor(c2, cos, sin, cos2, sin2)
	} else {
		a = gradientTensor(c2, cos, sin, cos2, sin2)
	}
	buildStencil(a, kernel)
}

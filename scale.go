package diffuse

import "math"

// bSplineSigma is the standard deviation of the gaussian best
// approximated by the 5-tap binomial B-spline filter.
const bSplineSigma = 1.0553651328015339

// maxScales bounds the depth of the wavelet pyramid so memory and
// compute stay finite for very large radii.
const maxScales = 12

// Discretization of the PDE solver: time step for a unit spatial step.
const kappa = 0.25

// equivalentSigmaAtStep returns the standard deviation reached after
// stacking s+1 blurs of constant sigma with dyadic dilations 1, 2, 4...
// The first step is s = 0.
func equivalentSigmaAtStep(sigma float32, s int) float32 {
	r := sigma
	for i := 1; i <= s; i++ {
		r = float32(math.Sqrt(float64(sqf(r) + sqf(float32(int32(1)<<i)*sigma))))
	}
	return r
}

// numStepsToSigma is the inverse of equivalentSigmaAtStep: the number of
// sequential dyadic blurs of constant sigmaFilter needed to reach or
// exceed sigmaFinal, counting the zeroth scale.
func numStepsToSigma(sigmaFilter, sigmaFinal float32) int {
	s := 0
	radius := sigmaFilter
	for radius < sigmaFinal && s < 31 {
		s++
		radius = float32(math.Sqrt(float64(sqf(radius) + sqf(float32(int32(1)<<s)*sigmaFilter))))
	}
	return s + 1
}

// outerIterations compensates the user iteration count for
// preview-resolution processing: at zoom-out z, one iteration covers z
// times the full-resolution distance.
func outerIterations(iterations int, zoom float32) int {
	n := int(math.Ceil(float64(iterations) / float64(zoom)))
	if n < 1 {
		n = 1
	}
	return n
}

// scaleInfo carries the derived values of one wavelet scale. It is
// computed fresh for every scale of every pass and never stored.
type scaleInfo struct {
	dilation   int     // à trous tap spacing, 2^scale
	realRadius float32 // equivalent sigma at full resolution
	norm       float32 // radius decay of this scale's contribution
	abcd       [4]float32
	strength   float32
	last       bool
}

func scaleInfoFor(s, scales int, zoom float32, p *Params) scaleInfo {
	sigma := equivalentSigmaAtStep(bSplineSigma, s)
	real := sigma * zoom
	norm := expf(-sqf(real) / sqf(float32(p.Radius)))
	return scaleInfo{
		dilation:   1 << s,
		realRadius: real,
		norm:       norm,
		abcd: [4]float32{
			p.First * kappa * norm,
			p.Second * kappa * norm,
			p.Third * kappa * norm,
			p.Fourth * kappa * norm,
		},
		strength: p.Sharpness*norm + 1,
		last:     s == scales-1,
	}
}

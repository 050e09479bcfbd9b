package diffuse

import (
	"math"
	"testing"
)

func TestEquivalentSigmaAtStep(t *testing.T) {
	const sigma = float32(bSplineSigma)

	if got := equivalentSigmaAtStep(sigma, 0); got != sigma {
		t.Errorf("step 0: got %v, want %v", got, sigma)
	}

	// one step stacks a blur dilated by 2: sqrt(sigma² + (2 sigma)²) = sigma·sqrt(5)
	want := sigma * float32(math.Sqrt(5))
	got := equivalentSigmaAtStep(sigma, 1)
	if math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("step 1: got %v, want %v", got, want)
	}

	prev := float32(0)
	for s := 0; s <= 8; s++ {
		r := equivalentSigmaAtStep(sigma, s)
		if r <= prev {
			t.Errorf("step %d: sigma %v not increasing (prev %v)", s, r, prev)
		}
		prev = r
	}
}

func TestNumStepsToSigmaMonotonic(t *testing.T) {
	radii := []float32{0.5, 1, 2, 4, 8, 16, 32, 64, 128, 256, 512}
	prev := 0
	for _, r := range radii {
		s := numStepsToSigma(bSplineSigma, r)
		if s < prev {
			t.Errorf("radius %v: %d steps, less than %d at smaller radius", r, s, prev)
		}
		if s < 1 {
			t.Errorf("radius %v: got %d steps, want at least 1", r, s)
		}
		prev = s
	}
}

func TestNumStepsToSigmaReachesRadius(t *testing.T) {
	for _, radius := range []float32{2, 8, 30, 100} {
		s := numStepsToSigma(bSplineSigma, radius)
		// the count includes the zeroth scale, so s-1 is the last step index
		if got := equivalentSigmaAtStep(bSplineSigma, s-1); got < radius {
			t.Errorf("radius %v: %d steps only reach sigma %v", radius, s, got)
		}
		if s >= 2 {
			if got := equivalentSigmaAtStep(bSplineSigma, s-2); got >= radius {
				t.Errorf("radius %v: %d steps is not minimal, %d already reach %v", radius, s, s-1, got)
			}
		}
	}
}

func TestOuterIterations(t *testing.T) {
	tests := []struct {
		iterations int
		zoom       float32
		want       int
	}{
		{1, 1, 1},
		{8, 1, 8},
		{8, 2, 4},
		{9, 2, 5},
		{1, 4, 1},
		{3, 8, 1},
	}
	for _, tt := range tests {
		if got := outerIterations(tt.iterations, tt.zoom); got != tt.want {
			t.Errorf("outerIterations(%d, %v) = %d, want %d", tt.iterations, tt.zoom, got, tt.want)
		}
	}
}

func TestScaleInfoDecay(t *testing.T) {
	p := DefaultParams()
	p.Radius = 8
	p.First = 1
	p.Sharpness = 0.5

	const scales = 6
	prevNorm := float32(2)
	for s := 0; s < scales; s++ {
		si := scaleInfoFor(s, scales, 1, &p)
		if si.dilation != 1<<s {
			t.Errorf("scale %d: dilation %d, want %d", s, si.dilation, 1<<s)
		}
		if si.norm <= 0 || si.norm > 1 {
			t.Errorf("scale %d: norm %v out of (0, 1]", s, si.norm)
		}
		if want := p.First * kappa * si.norm; si.abcd[0] != want {
			t.Errorf("scale %d: abcd[0] = %v, want %v", s, si.abcd[0], want)
		}
		if want := p.Sharpness*si.norm + 1; si.strength != want {
			t.Errorf("scale %d: strength %v, want %v", s, si.strength, want)
		}
		if si.last != (s == scales-1) {
			t.Errorf("scale %d: last = %v", s, si.last)
		}
		// the radius decay must fall once the scale passes the configured radius
		if s >= 4 && si.norm >= prevNorm {
			t.Errorf("scale %d: norm %v did not decay (prev %v)", s, si.norm, prevNorm)
		}
		prevNorm = si.norm
	}
}

package diffuse

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// Engine runs the diffusion solver on a persistent worker pool. An
// Engine is safe to reuse across many Process calls; it is not safe for
// concurrent use because the internal stages ping-pong shared buffers.
type Engine struct {
	pool *workerpool.Pool
}

// NewEngine creates an engine backed by the given number of workers.
// workers <= 0 uses GOMAXPROCS.
func NewEngine(workers int) *Engine {
	return &Engine{pool: workerpool.New(workers)}
}

// Close releases the worker pool. The engine must not be used after
// Close.
func (e *Engine) Close() {
	e.pool.Close()
}

// Run processes in into out with a one-shot engine. Both buffers are
// flat row-major width×height×4 float32 slices; out must be allocated
// by the caller and is fully overwritten. inputScale is the pipeline
// zoom factor of the buffers, iscale the reference scale used to
// normalize radius and iteration count when processing a zoomed-out
// preview.
func Run(in, out []float32, width, height int, p Params, inputScale, iscale float32) error {
	e := NewEngine(0)
	defer e.Close()
	return e.Process(in, out, width, height, p, inputScale, iscale)
}

// Process applies the configured diffusion to in and writes the result
// to out. See Run for the buffer contract.
func (e *Engine) Process(in, out []float32, width, height int, p Params, inputScale, iscale float32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	n := width * height * 4
	if len(in) < n || len(out) < n {
		return fmt.Errorf("%w: need %d floats, in=%d out=%d", ErrBufferSize, n, len(in), len(out))
	}

	zoom := float32(1)
	if inputScale > 0 && iscale/inputScale > 1 {
		zoom = iscale / inputScale
	}

	finalRadius := float32(p.Radius) * 2 / zoom
	iterations := outerIterations(p.Iterations, zoom)
	scales := clampi(numStepsToSigma(bSplineSigma, finalRadius), 1, maxScales)

	temp1 := make([]float32, n)
	temp2 := make([]float32, n)

	src := in
	var mask []uint8
	if p.Threshold > 0 {
		mask = make([]uint8, width*height)
		e.buildMask(in, mask, p.Threshold, width, height)
		e.inpaintSeed(temp1, in, mask, inpaintNoise, width, height)
		src = temp1
	}

	ps := newPassState(&p)

	// Outer iterations ping-pong between the two work buffers; the last
	// one writes straight into the caller's output. Repeating the whole
	// wavelet+diffusion pass is what propagates corrections over large
	// radii without deepening the pyramid.
	cur, next := src, temp2
	for it := 0; it < iterations; it++ {
		dst := next
		if it == iterations-1 {
			dst = out
		}
		e.wavelets(cur, dst, mask, width, height, &p, ps, zoom, scales)
		if it == 0 {
			// the caller's input is never recycled as an output buffer
			cur, next = dst, temp1
		} else {
			cur, next = dst, cur
		}
	}
	return nil
}

// wavelets runs one full pass: build the à trous pyramid scale by scale
// and let the PDE solver accumulate every scale's correction into
// reconstructed. Only two low-frequency buffers are needed; the one
// holding scale s-1 is consumed as the input of scale s and then reused.
func (e *Engine) wavelets(in, reconstructed []float32, mask []uint8, width, height int, p *Params, ps *passState, zoom float32, scales int) {
	n := width * height * 4
	lfCur := make([]float32, n)
	lfNext := make([]float32, n)
	hf := make([]float32, n)

	clear(reconstructed[:n])

	detail := in
	for s := 0; s < scales; s++ {
		si := scaleInfoFor(s, scales, zoom, p)
		e.decompose(detail, hf, lfCur, si.dilation, width, height)
		e.diffuseStep(hf, lfCur, mask, reconstructed, width, height, ps, si)

		detail = lfCur
		lfCur, lfNext = lfNext, lfCur
	}
}

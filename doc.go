// Package diffuse implements a multi-scale anisotropic diffusion engine
// for image restoration.
//
// The engine solves a discretized heat-transfer PDE independently on the
// frequency bands of an undecimated (à trous) wavelet decomposition of
// the image. Depending on the sign and magnitude of the per-order weights
// and anisotropy settings, the same solver expresses denoising,
// deconvolution-like sharpening, surface blur, and inpainting of
// over-threshold regions.
//
// Input and output are flat row-major float32 buffers with four channels
// per pixel (RGB plus one padding channel), as supplied by a host pixel
// pipeline.
//
// One-shot processing:
//
//	p := diffuse.ParamsForPreset(diffuse.PresetDenoise)
//	err := diffuse.Run(in, out, width, height, p, 1, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Reusing the worker pool across many calls:
//
//	e := diffuse.NewEngine(0)
//	defer e.Close()
//	for _, frame := range frames {
//	    err := e.Process(frame.In, frame.Out, w, h, p, 1, 1)
//	    ...
//	}
package diffuse

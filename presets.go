package diffuse

// Preset selects a curated parameter recipe for a common restoration
// task. The recipes assume linear scene-referred RGB input.
type Preset int

const (
	// PresetDenoise removes fine noise while keeping edges.
	PresetDenoise Preset = iota
	// PresetSurfaceBlur smooths smooth areas and preserves structure.
	PresetSurfaceBlur
	// PresetSharpen increases perceptual acutance.
	PresetSharpen
	// PresetLensDeblur removes medium lens blur by blind deconvolution.
	PresetLensDeblur
	// PresetDiffuse applies a plain isotropic diffusion (creative blur).
	PresetDiffuse
	// PresetWatercolour bleeds edges outward for a painterly look.
	PresetWatercolour
)

// ParamsForPreset returns the parameter recipe for the given preset.
// Unknown presets fall back to DefaultParams.
func ParamsForPreset(preset Preset) Params {
	p := DefaultParams()
	switch preset {
	case PresetDenoise:
		p.Iterations = 5
		p.Radius = 8
		p.Regularization = 5
		p.AnisotropyFirst = -1
		p.AnisotropySecond = -1
		p.AnisotropyThird = 1
		p.AnisotropyFourth = 1
		p.First = -0.10
		p.Second = -0.10
		p.Third = 0.10
		p.Fourth = 0.10
	case PresetSurfaceBlur:
		p.Iterations = 2
		p.Radius = 32
		p.Regularization = 4
		p.AnisotropySecond = 4
		p.AnisotropyThird = 4
		p.AnisotropyFourth = 4
		p.Second = 0.25
		p.Third = 0.25
		p.Fourth = 0.25
	case PresetSharpen:
		p.Iterations = 1
		p.Radius = 8
		p.Sharpness = 0.5
		p.VarianceThreshold = 0.25
		p.Regularization = 1
		p.AnisotropyFirst = 4
		p.AnisotropySecond = 4
		p.AnisotropyThird = 4
		p.AnisotropyFourth = 4
		p.First = 0.25
		p.Second = 0.25
		p.Third = 0.25
		p.Fourth = 0.25
	case PresetLensDeblur:
		p.Iterations = 8
		p.Radius = 8
		p.Regularization = 5.5
		p.AnisotropyFirst = -4
		p.AnisotropySecond = -4
		p.AnisotropyThird = 2
		p.AnisotropyFourth = -4
		p.First = -0.25
		p.Second = -0.50
		p.Third = 0.40
		p.Fourth = -0.40
	case PresetDiffuse:
		p.Iterations = 2
		p.Radius = 16
		p.First = 0.25
		p.Second = 0.25
		p.Third = 0.25
		p.Fourth = 0.25
	case PresetWatercolour:
		p.Iterations = 4
		p.Radius = 64
		p.Sharpness = -0.05
		p.Regularization = 4
		p.AnisotropyFirst = -4
		p.AnisotropySecond = 4
		p.AnisotropyThird = 4
		p.AnisotropyFourth = 4
		p.First = -0.50
		p.Third = 0.25
		p.Fourth = 0.25
	}
	return p
}

package diffuse

import "math"

func sqf(x float32) float32 { return x * x }

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func expf(x float32) float32 { return float32(math.Exp(float64(x))) }

func pow10f(x float32) float32 { return float32(math.Pow(10, float64(x))) }

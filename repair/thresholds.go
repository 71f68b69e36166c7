package repair

import "math"

// Thresholds holds the three dimensionless shape parameters spec.md
// §3 names: the needle ratio, the cap angle cosine, and the collapse
// length cap.
type Thresholds struct {
	NeedleRatio       float64
	CapAngleCosine    float64
	CollapseLengthMax float64
}

// DefaultThresholds returns ρ=4, γ=cos(160°), L=0.2 - the defaults
// named in §3.
func DefaultThresholds() Thresholds {
	return Thresholds{
		NeedleRatio:       4.0,
		CapAngleCosine:    math.Cos(160 * math.Pi / 180),
		CollapseLengthMax: 0.2,
	}
}

// validate checks the precondition every public entry point requires:
// a positive ratio, a cosine in [-1, 1], and a positive collapse cap.
func (t Thresholds) validate() error {
	if t.NeedleRatio <= 0 {
		return wrapPrecondition("needle ratio must be positive")
	}
	if t.CapAngleCosine < -1 || t.CapAngleCosine > 1 {
		return wrapPrecondition("cap angle cosine must be in [-1, 1]")
	}
	if t.CollapseLengthMax <= 0 {
		return wrapPrecondition("collapse length max must be positive")
	}
	return nil
}

package dome

import (
	"math"
	"strconv"

	"marsdome/internal/domain"
	"marsdome/internal/materials"
)

const (
	// MarsGravityRatio is Martian surface gravity relative to Earth's.
	MarsGravityRatio = 0.378

	// DefaultThickness is the shell thickness in centimeters used when none is given.
	DefaultThickness = 1.0

	// Precision is the number of decimals kept in results.
	Precision = 3
)

// DefaultSpec returns a spec for diameter with the default material and thickness.
func DefaultSpec(diameter float64) domain.DomeSpec {
	return domain.DomeSpec{
		Diameter:  diameter,
		Material:  materials.Default,
		Thickness: DefaultThickness,
	}
}

// Compute returns the area and weight of the dome described by spec.
//
// The diameter is validated before the thickness, so a spec with both invalid
// reports ErrInvalidDiameter. Unknown materials are not an error.
func Compute(spec domain.DomeSpec) (domain.DomeResult, error) {
	// Negated comparisons also reject NaN.
	if !(spec.Diameter > 0) {
		return domain.DomeResult{}, domain.ErrInvalidDiameter
	}
	if !(spec.Thickness > 0) {
		return domain.DomeResult{}, domain.ErrInvalidThickness
	}

	radius := spec.Diameter / 2
	areaM2 := 2 * math.Pi * (radius * radius)

	material, known := materials.Resolve(spec.Material)
	densityGCm3 := materials.Density(material)

	thicknessM := spec.Thickness / 100
	densityKgM3 := densityGCm3 * 1000

	volumeM3 := areaM2 * thicknessM
	earthWeightKg := volumeM3 * densityKgM3
	marsWeightKg := earthWeightKg * MarsGravityRatio

	return domain.DomeResult{
		Material:  material,
		Density:   densityGCm3,
		Diameter:  spec.Diameter,
		Thickness: spec.Thickness,
		Area:      Round(areaM2),
		Weight:    Round(marsWeightKg),
		Fallback:  !known,
	}, nil
}

// Round rounds x to Precision decimals. The exact binary value of x is
// rounded, halves to even, so 21.0605 (stored just above the half) gives 21.061.
func Round(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', Precision, 64), 64)
	if err != nil {
		return x
	}
	return r
}

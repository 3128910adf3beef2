package shell

import (
	"fmt"
	"strconv"
	"strings"

	"marsdome/internal/domain"
	"marsdome/internal/dome"
	"marsdome/internal/materials"
)

// ParseSpec converts raw prompt answers into a DomeSpec.
//
// An empty material selects the default material and an empty thickness
// selects dome.DefaultThickness. The diameter has no default. Range checks
// are left to the calculator.
func ParseSpec(diameter, material, thickness string) (domain.DomeSpec, error) {
	d, err := parseNumber(diameter)
	if err != nil {
		return domain.DomeSpec{}, err
	}

	spec := domain.DomeSpec{
		Diameter:  d,
		Material:  domain.Material(material),
		Thickness: dome.DefaultThickness,
	}
	if material == "" {
		spec.Material = materials.Default
	}
	if strings.TrimSpace(thickness) != "" {
		if spec.Thickness, err = parseNumber(thickness); err != nil {
			return domain.DomeSpec{}, err
		}
	}
	return spec, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w (got %q)", domain.ErrNonNumericInput, s)
	}
	return v, nil
}

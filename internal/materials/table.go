package materials

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"marsdome/internal/domain"
)

const (
	Glass       domain.Material = "glass"
	Aluminum    domain.Material = "aluminum"
	CarbonSteel domain.Material = "carbon-steel"

	// Default is used for empty and unknown material names.
	Default = Glass
)

// densities in g/cm³.
var densities = map[domain.Material]float64{
	Glass:       2.4,
	Aluminum:    2.7,
	CarbonSteel: 7.85,
}

var aliases = map[string]domain.Material{
	"유리":   Glass,
	"알루미늄": Aluminum,
	"탄소강":  CarbonSteel,
}

// Resolve maps a requested name to a table key. known is false when the name
// is not in the table and Default was substituted. An empty name resolves to
// Default and counts as known.
func Resolve(name domain.Material) (m domain.Material, known bool) {
	key := Normalize(name)
	if key == "" {
		return Default, true
	}
	if _, ok := densities[key]; ok {
		return key, true
	}
	if a, ok := aliases[string(key)]; ok {
		return a, true
	}
	return Default, false
}

// Density returns the density in g/cm³ for name, or the default material's
// density when name is unknown.
func Density(name domain.Material) float64 {
	m, _ := Resolve(name)
	return densities[m]
}

// Normalize trims surrounding whitespace and case folds name.
func Normalize(name domain.Material) domain.Material {
	s := strings.TrimSpace(string(name))
	if s == "" {
		return ""
	}
	return domain.Material(cases.Fold().String(s))
}

// List returns the table sorted by density, lightest first.
func List() []domain.MaterialDensity {
	out := make([]domain.MaterialDensity, 0, len(densities))
	for name, d := range densities {
		out = append(out, domain.MaterialDensity{Name: name, Density: d, Default: name == Default})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Density < out[j].Density })
	return out
}

// Names returns the table keys in List order.
func Names() []domain.Material {
	list := List()
	out := make([]domain.Material, len(list))
	for i, md := range list {
		out[i] = md.Name
	}
	return out
}

package types

// DomeSpec is the input of a dome calculation.
//
// Diameter is in meters and Thickness in centimeters. An empty Material
// selects the default material.
type DomeSpec struct {
	Diameter  float64  `json:"diameter_m" yaml:"diameter_m"`
	Material  Material `json:"material" yaml:"material"`
	Thickness float64  `json:"thickness_cm" yaml:"thickness_cm"`
}

// DomeResult is the outcome of a successful calculation.
//
// Area (m²) and Weight (kg, under Martian gravity) are rounded to three
// decimals. Material is the table entry whose density was used; Fallback
// reports that the requested name was unknown and the default was substituted.
type DomeResult struct {
	Material  Material `json:"material" yaml:"material"`
	Density   float64  `json:"density_g_cm3" yaml:"density_g_cm3"`
	Diameter  float64  `json:"diameter_m" yaml:"diameter_m"`
	Thickness float64  `json:"thickness_cm" yaml:"thickness_cm"`
	Area      float64  `json:"area_m2" yaml:"area_m2"`
	Weight    float64  `json:"weight_kg" yaml:"weight_kg"`
	Fallback  bool     `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// MaterialDensity is one row of the density table.
type MaterialDensity struct {
	Name    Material `json:"name" yaml:"name"`
	Density float64  `json:"density_g_cm3" yaml:"density_g_cm3"`
	Default bool     `json:"default,omitempty" yaml:"default,omitempty"`
}

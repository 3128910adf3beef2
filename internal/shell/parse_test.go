package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marsdome/internal/domain"
	"marsdome/internal/materials"
	"marsdome/internal/shell"
)

func TestParseSpec_Defaults(t *testing.T) {
	spec, err := shell.ParseSpec("10", "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DomeSpec{Diameter: 10, Material: materials.Glass, Thickness: 1}, spec)
}

func TestParseSpec_AllGiven(t *testing.T) {
	spec, err := shell.ParseSpec(" 6 ", "aluminum", "2.5")
	require.NoError(t, err)
	assert.Equal(t, domain.DomeSpec{Diameter: 6, Material: materials.Aluminum, Thickness: 2.5}, spec)
}

func TestParseSpec_NonNumeric(t *testing.T) {
	tests := []struct{ diameter, thickness string }{
		{"abc", "1"},
		{"", "1"},
		{"10", "thick"},
	}
	for _, tt := range tests {
		_, err := shell.ParseSpec(tt.diameter, "", tt.thickness)
		assert.ErrorIs(t, err, domain.ErrNonNumericInput, "diameter=%q thickness=%q", tt.diameter, tt.thickness)
	}
}

func TestParseSpec_LeavesRangeChecksToCalculator(t *testing.T) {
	spec, err := shell.ParseSpec("-5", "", "0")
	require.NoError(t, err)
	assert.Equal(t, -5.0, spec.Diameter)
	assert.Equal(t, 0.0, spec.Thickness)
}

package dome_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marsdome/internal/domain"
	"marsdome/internal/materials"
	domesvc "marsdome/internal/services/dome"
)

func newService(buf *bytes.Buffer) *domesvc.Service {
	return domesvc.New(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func TestCalculate_LogsResultWithSession(t *testing.T) {
	var buf bytes.Buffer
	svc := newService(&buf)
	ctx := domain.WithSessionID(context.Background(), "abc-123")

	res, err := svc.Calculate(ctx, domain.DomeSpec{Diameter: 10, Material: materials.Glass, Thickness: 1})
	require.NoError(t, err)
	assert.Equal(t, 157.08, res.Area)
	assert.Equal(t, 1425.026, res.Weight)

	assert.Contains(t, buf.String(), "msg=\"dome calculated\"")
	assert.Contains(t, buf.String(), "session_id=abc-123")
	assert.Contains(t, buf.String(), "weight_kg=1425.026")
}

func TestCalculate_ValidationErrorPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	svc := newService(&buf)

	_, err := svc.Calculate(context.Background(), domain.DomeSpec{Diameter: -5, Thickness: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidDiameter)

	_, err = svc.Calculate(context.Background(), domain.DomeSpec{Diameter: 4, Thickness: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidThickness)

	assert.Contains(t, buf.String(), "level=INFO msg=\"dome calculation rejected\"")
	assert.NotContains(t, buf.String(), "session_id")
}

func TestCalculate_WarnsOnFallback(t *testing.T) {
	var buf bytes.Buffer
	svc := newService(&buf)

	res, err := svc.Calculate(context.Background(), domain.DomeSpec{Diameter: 4, Material: "wood", Thickness: 1})
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, materials.Default, res.Material)
	assert.Contains(t, buf.String(), "level=WARN msg=\"unknown material, using default\" requested=wood material=glass")
}

func TestMaterials(t *testing.T) {
	svc := domesvc.New(nil)
	assert.Equal(t, materials.List(), svc.Materials())
}

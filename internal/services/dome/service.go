package dome

import (
	"context"
	"errors"
	"log/slog"

	"marsdome/internal/domain"
	calc "marsdome/internal/dome"
	"marsdome/internal/materials"
)

// Service runs dome calculations and logs their outcome.
type Service struct {
	log *slog.Logger
}

// New returns a dome service logging to log. A nil logger uses slog.Default.
func New(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{log: log}
}

// Calculate computes area and weight for spec.
//
// Validation failures are returned unchanged so callers can match them with
// errors.Is.
func (s *Service) Calculate(ctx context.Context, spec domain.DomeSpec) (domain.DomeResult, error) {
	log := s.log
	if id, ok := domain.SessionIDFrom(ctx); ok {
		log = log.With("session_id", id.String())
	}

	res, err := calc.Compute(spec)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, domain.ErrInvalidDiameter) || errors.Is(err, domain.ErrInvalidThickness) {
			level = slog.LevelInfo
		}
		log.Log(ctx, level, "dome calculation rejected",
			"diameter_m", spec.Diameter,
			"thickness_cm", spec.Thickness,
			"error", err)
		return domain.DomeResult{}, err
	}

	if res.Fallback {
		log.WarnContext(ctx, "unknown material, using default",
			"requested", spec.Material.String(),
			"material", res.Material.String())
	}
	log.DebugContext(ctx, "dome calculated",
		"material", res.Material.String(),
		"diameter_m", res.Diameter,
		"thickness_cm", res.Thickness,
		"area_m2", res.Area,
		"weight_kg", res.Weight)
	return res, nil
}

// Materials lists the density table, lightest first.
func (s *Service) Materials() []domain.MaterialDensity {
	return materials.List()
}

// Compile-time assertion that Service implements domain.DomeService.
var _ domain.DomeService = (*Service)(nil)

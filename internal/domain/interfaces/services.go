package interfaces

import (
	"context"

	domaintypes "marsdome/internal/domain/types"
)

// DomeService computes dome area and weight for a spec.
type DomeService interface {
	Calculate(ctx context.Context, spec domaintypes.DomeSpec) (domaintypes.DomeResult, error)
	Materials() []domaintypes.MaterialDensity
}

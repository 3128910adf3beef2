package domain

import (
	interfaces "marsdome/internal/domain/interfaces"
	types "marsdome/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Material        = types.Material
	SessionID       = types.SessionID
	DomeSpec        = types.DomeSpec
	DomeResult      = types.DomeResult
	MaterialDensity = types.MaterialDensity
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DomeService = interfaces.DomeService
)

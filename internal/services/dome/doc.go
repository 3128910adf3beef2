// Package dome exposes the dome calculator as a service.
//
// It delegates the arithmetic to internal/dome and records each outcome
// through the configured slog logger.
package dome

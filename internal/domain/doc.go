// Package domain defines the dome calculation models, error kinds and service
// contracts shared across the app. It contains plain types and interfaces only.
package domain

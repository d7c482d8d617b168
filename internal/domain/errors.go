package domain

import "errors"

// Sentinel errors for the simulation core.
// Callers match with errors.Is after the usual %w wrapping.
var (
	// A rate, probability, range, or count fails its domain constraint.
	// Raised before any sampling happens; the whole run aborts.
	ErrInvalidParameter = errors.New("invalid parameter")

	// A statistic was requested over an empty batch.
	ErrDegenerateBatch = errors.New("degenerate batch")
)

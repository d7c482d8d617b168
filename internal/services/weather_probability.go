package services

import (
	"delivery-time-simulator/internal/domain"
	"fmt"
)

// CombinedOccurrenceProbability folds a set of weather indices into a
// single daily disruption probability, treating the indices as
// independent events: P(any) = 1 - prod(1 - p_i).
//
// Each consumed probability must lie in [0,1]; the provenance of the
// mapping is the weather-data collaborator's concern, its range is ours.
func CombinedOccurrenceProbability(indices []domain.WeatherIndex) (float64, error) {
	noneOccurs := 1.0
	for _, idx := range indices {
		p := idx.DailyProbability
		if p < 0 || p > 1 {
			return 0, fmt.Errorf(
				"combine weather probability: index %q probability must be in [0,1] (got %g): %w",
				idx.Code, p, domain.ErrInvalidParameter,
			)
		}
		noneOccurs *= 1 - p
	}
	return 1 - noneOccurs, nil
}

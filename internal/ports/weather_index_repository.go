package ports

import (
	"context"
	"delivery-time-simulator/internal/domain"
)

// Port: boundary to the weather-data collaborator, which maps index
// codes to daily occurrence probabilities.
type WeatherIndexRepository interface {
	// Return every known index, ordered by code.
	ListIndices(ctx context.Context) ([]domain.WeatherIndex, error)
	// Return the indices for the given codes. A code with no stored
	// probability is an error; simulations must not silently drop it.
	GetIndices(ctx context.Context, codes []string) ([]domain.WeatherIndex, error)
}

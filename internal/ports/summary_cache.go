package ports

import "context"

// Port: cache for serialized simulation summaries. Seeded runs are
// pure functions of their request, so a hit is always exact.
type SummaryCache interface {
	// Return the cached payload for key; ok is false on a miss.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	// Store payload under key.
	Set(ctx context.Context, key string, payload []byte) error
}

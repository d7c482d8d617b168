package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries the per-request id assigned by the API
// middleware, so engine timings can be correlated with request logs.
const RequestIDKey ctxKey = "req_id"

// Time logs the wall-clock duration of a named operation.
// Usage: defer obs.Time(ctx, "simulation.Run")(&err)
// Simulation batches are CPU-bound, so this is the main signal for
// spotting oversized trial counts in production traffic.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}

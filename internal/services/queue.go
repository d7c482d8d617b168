package services

import "fmt"

// Timing of one parcel through the single-server hub queue.
// All fields are in operating hours.
type QueuePass struct {
	ArrivalHours      float64
	ServiceHours      float64
	StartServiceHours float64
	DepartureHours    float64
	WaitingHours      float64
}

// SimulateHubQueue runs an M/M/1 FIFO queue over n parcels.
//
// Arrivals form a cumulative point process over exponential
// inter-arrival intervals; service durations are exponential.
// The recurrence carries the previous parcel's departure time as its
// only accumulator state: parcel i starts service at
// max(arrival[i], departure[i-1]), which makes waiting times
// non-negative by construction. The loop is inherently sequential;
// arrival order is defined by generation index, never by comparison.
func SimulateHubQueue(sampler *Sampler, arrivalRatePerHour, serviceRatePerHour float64, n int) ([]QueuePass, error) {
	interArrivals, err := sampler.Exponential(arrivalRatePerHour, n)
	if err != nil {
		return nil, fmt.Errorf("simulate hub queue: inter-arrival intervals: %w", err)
	}

	serviceDurations, err := sampler.Exponential(serviceRatePerHour, n)
	if err != nil {
		return nil, fmt.Errorf("simulate hub queue: service durations: %w", err)
	}

	passes := make([]QueuePass, n)
	arrival := 0.0
	prevDeparture := 0.0

	for i := 0; i < n; i++ {
		arrival += interArrivals[i]

		start := arrival
		if i > 0 && prevDeparture > start {
			start = prevDeparture
		}
		departure := start + serviceDurations[i]

		passes[i] = QueuePass{
			ArrivalHours:      arrival,
			ServiceHours:      serviceDurations[i],
			StartServiceHours: start,
			DepartureHours:    departure,
			WaitingHours:      start - arrival,
		}
		prevDeparture = departure
	}

	return passes, nil
}

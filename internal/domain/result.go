package domain

// The ordered outcome of one Monte Carlo batch.
// Trials keep their generation order; that order defines the
// single-server FIFO recurrence, so it must not be re-sorted.
// The result is owned by the engine's caller and not shared for
// mutation; the derived sequences below allocate fresh slices.
type SimulationResult struct {
	Trials      []ParcelTrial
	HoursPerDay float64
}

func (r *SimulationResult) Len() int { return len(r.Trials) }

// WaitingDays is the per-parcel queueing delay at the hub, converted
// from operating hours to days.
func (r *SimulationResult) WaitingDays() []float64 {
	out := make([]float64, len(r.Trials))
	for i, t := range r.Trials {
		out[i] = t.WaitingHours / r.HoursPerDay
	}
	return out
}

// ExternalDelayDays is the per-parcel disruption delay.
func (r *SimulationResult) ExternalDelayDays() []float64 {
	out := make([]float64, len(r.Trials))
	for i, t := range r.Trials {
		out[i] = float64(t.ExternalDelayDays())
	}
	return out
}

// TotalDays is the per-parcel end-to-end delivery time.
func (r *SimulationResult) TotalDays() []float64 {
	out := make([]float64, len(r.Trials))
	for i, t := range r.Trials {
		out[i] = t.TotalDays
	}
	return out
}

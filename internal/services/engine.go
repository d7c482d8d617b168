package services

import (
	"delivery-time-simulator/internal/domain"
	"fmt"
)

// RunSimulation produces the full Monte Carlo batch for one
// configuration: per-parcel total delivery time = base transit time
// + queueing delay at the hub + external disruption delay.
//
// The run is atomic. Parameters are validated up front and a failure
// in either sub-model aborts the whole batch; there is no partial
// result. The batch models n parcels flowing through one hub queue
// instance, so trial order carries the FIFO recurrence.
func RunSimulation(params domain.SimulationParameters, seed uint64) (*domain.SimulationResult, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	n := params.TrialCount
	sampler := NewSampler(seed)

	passes, err := SimulateHubQueue(sampler, params.ArrivalRatePerHour, params.ServiceRatePerHour, n)
	if err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	disruptions, err := SimulateDisruptions(sampler, params, n)
	if err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	trials := make([]domain.ParcelTrial, n)
	for i := 0; i < n; i++ {
		pass := passes[i]
		dis := disruptions[i]

		waitingDays := pass.WaitingHours / params.OperatingHoursPerDay
		trials[i] = domain.ParcelTrial{
			ArrivalHours:      pass.ArrivalHours,
			ServiceHours:      pass.ServiceHours,
			StartServiceHours: pass.StartServiceHours,
			DepartureHours:    pass.DepartureHours,
			WaitingHours:      pass.WaitingHours,
			WeatherOccurred:   dis.WeatherOccurred,
			WeatherDelayDays:  dis.WeatherDelayDays,
			StrikeOccurred:    dis.StrikeOccurred,
			StrikeDelayDays:   dis.StrikeDelayDays,
			TotalDays:         params.BaseTransitDays + waitingDays + float64(dis.TotalDelayDays()),
		}
	}

	return &domain.SimulationResult{
		Trials:      trials,
		HoursPerDay: params.OperatingHoursPerDay,
	}, nil
}

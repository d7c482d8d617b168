package services

import (
	"delivery-time-simulator/internal/domain"
	"fmt"
)

// Disruption outcome for one parcel. Weather and strike events are
// independent and may co-occur; their delays simply add.
type DisruptionOutcome struct {
	WeatherOccurred  bool
	WeatherDelayDays int
	StrikeOccurred   bool
	StrikeDelayDays  int
}

func (d DisruptionOutcome) TotalDelayDays() int {
	return d.WeatherDelayDays + d.StrikeDelayDays
}

// SimulateDisruptions draws, for each of n parcels, whether a weather
// and/or a strike disruption occurred and the magnitude of each.
//
// Magnitude vectors are drawn eagerly for the whole batch regardless
// of which events fired, so the sampler consumption order is fixed:
// weather flags, strike flags, weather magnitudes, strike magnitudes
// (n draws each). Changing that order changes every seeded run.
func SimulateDisruptions(sampler *Sampler, p domain.SimulationParameters, n int) ([]DisruptionOutcome, error) {
	weatherOccurs, err := sampler.Bernoulli(p.WeatherProbability, n)
	if err != nil {
		return nil, fmt.Errorf("simulate disruptions: weather occurrence: %w", err)
	}
	strikeOccurs, err := sampler.Bernoulli(p.StrikeProbability, n)
	if err != nil {
		return nil, fmt.Errorf("simulate disruptions: strike occurrence: %w", err)
	}
	weatherDays, err := sampler.UniformInts(p.WeatherDelayMinDays, p.WeatherDelayMaxDays, n)
	if err != nil {
		return nil, fmt.Errorf("simulate disruptions: weather magnitudes: %w", err)
	}
	strikeDays, err := sampler.UniformInts(p.StrikeDelayMinDays, p.StrikeDelayMaxDays, n)
	if err != nil {
		return nil, fmt.Errorf("simulate disruptions: strike magnitudes: %w", err)
	}

	outcomes := make([]DisruptionOutcome, n)
	for i := 0; i < n; i++ {
		out := DisruptionOutcome{
			WeatherOccurred: weatherOccurs[i],
			StrikeOccurred:  strikeOccurs[i],
		}
		if out.WeatherOccurred {
			out.WeatherDelayDays = weatherDays[i]
		}
		if out.StrikeOccurred {
			out.StrikeDelayDays = strikeDays[i]
		}
		outcomes[i] = out
	}

	return outcomes, nil
}

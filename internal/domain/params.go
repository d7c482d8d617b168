package domain

import "fmt"

// Immutable configuration for one simulation run.
// Rates are in parcels per operating hour; delays are whole days.
// A value is built once per run and never mutated afterwards.
type SimulationParameters struct {
	BaseTransitDays      float64
	ArrivalRatePerHour   float64
	ServiceRatePerHour   float64
	OperatingHoursPerDay float64
	WeatherProbability   float64
	WeatherDelayMinDays  int
	WeatherDelayMaxDays  int
	StrikeProbability    float64
	StrikeDelayMinDays   int
	StrikeDelayMaxDays   int
	TrialCount           int
}

// Validate checks every field against its domain constraint.
// The queue stability condition (service rate > arrival rate) is
// deliberately not enforced; a critically or over-loaded hub is a
// legal, if slow, configuration.
func (p SimulationParameters) Validate() error {
	if p.BaseTransitDays <= 0 {
		return fmt.Errorf("validate parameters: base_transit_days must be > 0 (got %g): %w", p.BaseTransitDays, ErrInvalidParameter)
	}
	if p.ArrivalRatePerHour <= 0 {
		return fmt.Errorf("validate parameters: arrival_rate_per_hour must be > 0 (got %g): %w", p.ArrivalRatePerHour, ErrInvalidParameter)
	}
	if p.ServiceRatePerHour <= 0 {
		return fmt.Errorf("validate parameters: service_rate_per_hour must be > 0 (got %g): %w", p.ServiceRatePerHour, ErrInvalidParameter)
	}
	if p.OperatingHoursPerDay <= 0 {
		return fmt.Errorf("validate parameters: operating_hours_per_day must be > 0 (got %g): %w", p.OperatingHoursPerDay, ErrInvalidParameter)
	}
	if p.WeatherProbability < 0 || p.WeatherProbability > 1 {
		return fmt.Errorf("validate parameters: weather_probability must be in [0,1] (got %g): %w", p.WeatherProbability, ErrInvalidParameter)
	}
	if p.StrikeProbability < 0 || p.StrikeProbability > 1 {
		return fmt.Errorf("validate parameters: strike_probability must be in [0,1] (got %g): %w", p.StrikeProbability, ErrInvalidParameter)
	}
	if err := validateDayRange("weather_delay", p.WeatherDelayMinDays, p.WeatherDelayMaxDays); err != nil {
		return err
	}
	if err := validateDayRange("strike_delay", p.StrikeDelayMinDays, p.StrikeDelayMaxDays); err != nil {
		return err
	}
	if p.TrialCount <= 0 {
		return fmt.Errorf("validate parameters: trial_count must be > 0 (got %d): %w", p.TrialCount, ErrInvalidParameter)
	}
	return nil
}

// Delay ranges are inclusive on both ends and never negative.
func validateDayRange(name string, min, max int) error {
	if min < 0 {
		return fmt.Errorf("validate parameters: %s_min_days must be >= 0 (got %d): %w", name, min, ErrInvalidParameter)
	}
	if max < min {
		return fmt.Errorf("validate parameters: %s range is malformed (min=%d max=%d): %w", name, min, max, ErrInvalidParameter)
	}
	return nil
}

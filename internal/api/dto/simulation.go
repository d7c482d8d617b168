package dto

type SimulationRequest struct {
	BaseTransitDays      float64   `json:"base_transit_days"`
	ArrivalRatePerHour   float64   `json:"arrival_rate_per_hour"`
	ServiceRatePerHour   float64   `json:"service_rate_per_hour"`
	OperatingHoursPerDay float64   `json:"operating_hours_per_day"`
	WeatherProbability   *float64  `json:"weather_probability,omitempty"`
	WeatherIndexCodes    []string  `json:"weather_index_codes,omitempty"`
	WeatherDelayMinDays  int       `json:"weather_delay_min_days"`
	WeatherDelayMaxDays  int       `json:"weather_delay_max_days"`
	StrikeProbability    float64   `json:"strike_probability"`
	StrikeDelayMinDays   int       `json:"strike_delay_min_days"`
	StrikeDelayMaxDays   int       `json:"strike_delay_max_days"`
	TrialCount           int       `json:"trial_count"`
	Seed                 *uint64   `json:"seed,omitempty"`
	ThresholdsDays       []float64 `json:"thresholds_days,omitempty"`
	HistogramBins        int       `json:"histogram_bins,omitempty"`
	IncludeTrials        bool      `json:"include_trials,omitempty"`
}

type ExceedanceResponse struct {
	ThresholdDays float64 `json:"threshold_days"`
	Probability   float64 `json:"probability"`
}

type HistogramResponse struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

type SummaryResponse struct {
	TrialCount int                  `json:"trial_count"`
	MeanDays   float64              `json:"mean_days"`
	MedianDays float64              `json:"median_days"`
	Exceedance []ExceedanceResponse `json:"exceedance"`
	Histogram  HistogramResponse    `json:"histogram"`
}

// The three aligned per-parcel sequences, all in days.
type TrialSeriesResponse struct {
	TotalDays         []float64 `json:"total_days"`
	QueueDelayDays    []float64 `json:"queue_delay_days"`
	ExternalDelayDays []float64 `json:"external_delay_days"`
}

type SimulationResponse struct {
	Seed               uint64               `json:"seed"`
	WeatherProbability float64              `json:"weather_probability"`
	Summary            SummaryResponse      `json:"summary"`
	Trials             *TrialSeriesResponse `json:"trials,omitempty"`
	Cached             bool                 `json:"cached"`
}

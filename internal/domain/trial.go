package domain

// One simulated parcel passing through the hub.
// Timing fields are in operating hours; delay fields are whole days.
// A trial is populated in a single aggregation pass and treated as
// immutable once its derived fields are computed.
type ParcelTrial struct {
	ArrivalHours      float64
	ServiceHours      float64
	StartServiceHours float64
	DepartureHours    float64
	WaitingHours      float64
	WeatherOccurred   bool
	WeatherDelayDays  int
	StrikeOccurred    bool
	StrikeDelayDays   int
	TotalDays         float64
}

// ExternalDelayDays is the combined disruption contribution for this
// parcel. Weather and strike delays may co-occur and simply add.
func (t ParcelTrial) ExternalDelayDays() int {
	return t.WeatherDelayDays + t.StrikeDelayDays
}

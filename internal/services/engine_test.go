package services

import (
	"delivery-time-simulator/internal/domain"
	"errors"
	"reflect"
	"testing"
)

func scenarioParams() domain.SimulationParameters {
	return domain.SimulationParameters{
		BaseTransitDays:      3,
		ArrivalRatePerHour:   500,
		ServiceRatePerHour:   550,
		OperatingHoursPerDay: 8,
		WeatherProbability:   0.1,
		WeatherDelayMinDays:  1,
		WeatherDelayMaxDays:  2,
		StrikeProbability:    0.05,
		StrikeDelayMinDays:   2,
		StrikeDelayMaxDays:   3,
		TrialCount:           10000,
	}
}

func TestRunSimulationScenarioMean(t *testing.T) {
	result, err := RunSimulation(scenarioParams(), 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Len() != 10000 {
		t.Fatalf("trial count = %d, want 10000", result.Len())
	}

	sum := 0.0
	for _, v := range result.TotalDays() {
		sum += v
	}
	mean := sum / float64(result.Len())

	// Sanity bound, not an exact value: with a lightly loaded hub the
	// mean sits just above base + expected external delay (~3.28 days).
	if mean <= 3.0 || mean >= 4.5 {
		t.Fatalf("mean total delivery time = %v, want strictly within (3.0, 4.5)", mean)
	}
}

func TestRunSimulationDeterminism(t *testing.T) {
	a, err := RunSimulation(scenarioParams(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := RunSimulation(scenarioParams(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed and parameters produced different results")
	}
}

func TestRunSimulationTotalsNeverBelowBase(t *testing.T) {
	result, err := RunSimulation(scenarioParams(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, total := range result.TotalDays() {
		if total < 3 {
			t.Fatalf("parcel %d total %v below base transit time", i, total)
		}
	}
}

func TestRunSimulationNoDisruptions(t *testing.T) {
	params := scenarioParams()
	params.WeatherProbability = 0
	params.StrikeProbability = 0
	params.TrialCount = 2000

	result, err := RunSimulation(params, 55)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	waiting := result.WaitingDays()
	external := result.ExternalDelayDays()
	totals := result.TotalDays()

	for i := range totals {
		if external[i] != 0 {
			t.Fatalf("parcel %d external delay = %v, want 0", i, external[i])
		}
		// Exact equality: the only contributions are base and queueing delay.
		if totals[i] != params.BaseTransitDays+waiting[i] {
			t.Fatalf("parcel %d total %v != base + queueing delay %v", i, totals[i], params.BaseTransitDays+waiting[i])
		}
	}
}

func TestRunSimulationSingleTrial(t *testing.T) {
	params := scenarioParams()
	params.TrialCount = 1

	result, err := RunSimulation(params, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Len() != 1 {
		t.Fatalf("trial count = %d, want 1", result.Len())
	}
	if result.Trials[0].WaitingHours != 0 {
		t.Fatalf("single parcel waiting time = %v, want 0", result.Trials[0].WaitingHours)
	}
}

func TestRunSimulationInvalidParameters(t *testing.T) {
	params := scenarioParams()
	params.ServiceRatePerHour = 0

	result, err := RunSimulation(params, 1)
	if !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if result != nil {
		t.Fatal("expected no result on invalid parameters")
	}
}

func TestRunSimulationTrialInvariants(t *testing.T) {
	result, err := RunSimulation(scenarioParams(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, trial := range result.Trials {
		if trial.WaitingHours < 0 {
			t.Fatalf("parcel %d waiting time negative", i)
		}
		if trial.DepartureHours < trial.StartServiceHours {
			t.Fatalf("parcel %d departs before starting service", i)
		}
		if i > 0 && trial.StartServiceHours < result.Trials[i-1].DepartureHours {
			t.Fatalf("parcel %d violates FIFO ordering", i)
		}
	}
}

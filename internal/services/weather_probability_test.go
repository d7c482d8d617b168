package services

import (
	"delivery-time-simulator/internal/domain"
	"errors"
	"math"
	"testing"
)

func TestCombinedOccurrenceProbability(t *testing.T) {
	indices := []domain.WeatherIndex{
		{Code: "FD", DailyProbability: 0.2},
		{Code: "R20MM", DailyProbability: 0.1},
	}

	got, err := CombinedOccurrenceProbability(indices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1 - (0.8 * 0.9) = 0.28
	if math.Abs(got-0.28) > 1e-12 {
		t.Fatalf("combined probability = %v, want 0.28", got)
	}
}

func TestCombinedOccurrenceProbabilityEmpty(t *testing.T) {
	got, err := CombinedOccurrenceProbability(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("combined probability = %v, want 0", got)
	}
}

func TestCombinedOccurrenceProbabilityOutOfRange(t *testing.T) {
	_, err := CombinedOccurrenceProbability([]domain.WeatherIndex{
		{Code: "SD5CM", DailyProbability: 1.7},
	})
	if !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

package services

import (
	"delivery-time-simulator/internal/domain"
	"fmt"
	"slices"
)

// Reporting defaults matching the operational review thresholds.
var DefaultThresholdsDays = []float64{3, 5}

const DefaultHistogramBins = 30

// Exceedance is the empirical probability that a total delivery time
// strictly exceeds ThresholdDays.
type Exceedance struct {
	ThresholdDays float64
	Probability   float64
}

// Equal-width histogram over [min, max] of the observed totals.
// Edges has one more entry than Counts.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// Scalar and distributional reduction of one simulation batch.
type Summary struct {
	TrialCount int
	MeanDays   float64
	MedianDays float64
	Exceedance []Exceedance
	Histogram  Histogram
}

// Summarize reduces a batch of total delivery times into a Summary.
// A nil thresholds slice selects DefaultThresholdsDays; bins <= 0
// selects DefaultHistogramBins. An empty batch has no defined mean or
// median and fails with ErrDegenerateBatch rather than returning a
// sentinel value.
func Summarize(result *domain.SimulationResult, thresholdsDays []float64, bins int) (*Summary, error) {
	if result == nil || result.Len() == 0 {
		return nil, fmt.Errorf("summarize: empty batch: %w", domain.ErrDegenerateBatch)
	}
	if thresholdsDays == nil {
		thresholdsDays = DefaultThresholdsDays
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}

	totals := result.TotalDays()
	n := len(totals)

	sum := 0.0
	for _, v := range totals {
		sum += v
	}

	exceedance := make([]Exceedance, 0, len(thresholdsDays))
	for _, threshold := range thresholdsDays {
		count := 0
		for _, v := range totals {
			if v > threshold {
				count++
			}
		}
		exceedance = append(exceedance, Exceedance{
			ThresholdDays: threshold,
			Probability:   float64(count) / float64(n),
		})
	}

	return &Summary{
		TrialCount: n,
		MeanDays:   sum / float64(n),
		MedianDays: median(totals),
		Exceedance: exceedance,
		Histogram:  histogram(totals, bins),
	}, nil
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// histogram buckets values into equal-width bins spanning the observed
// [min, max]. Reporting-only; a degenerate range (all values equal)
// collapses into the first bin.
func histogram(values []float64, bins int) Histogram {
	min := slices.Min(values)
	max := slices.Max(values)
	width := (max - min) / float64(bins)

	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[bins] = max

	counts := make([]int, bins)
	for _, v := range values {
		idx := 0
		if width > 0 {
			idx = int((v - min) / width)
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}

	return Histogram{Edges: edges, Counts: counts}
}

package services

import (
	"delivery-time-simulator/internal/domain"
	"errors"
	"testing"
)

func TestSamplerDeterminism(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)

	xa, err := a.Exponential(500, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	xb, _ := b.Exponential(500, 100)

	for i := range xa {
		if xa[i] != xb[i] {
			t.Fatalf("exponential sample %d differs: %v vs %v", i, xa[i], xb[i])
		}
	}

	ia, _ := a.UniformInts(1, 6, 50)
	ib, _ := b.UniformInts(1, 6, 50)
	for i := range ia {
		if ia[i] != ib[i] {
			t.Fatalf("uniform int sample %d differs: %d vs %d", i, ia[i], ib[i])
		}
	}

	ba, _ := a.Bernoulli(0.3, 50)
	bb, _ := b.Bernoulli(0.3, 50)
	for i := range ba {
		if ba[i] != bb[i] {
			t.Fatalf("bernoulli sample %d differs", i)
		}
	}
}

func TestSamplerSeedsDiffer(t *testing.T) {
	xa, _ := NewSampler(1).Exponential(1, 20)
	xb, _ := NewSampler(2).Exponential(1, 20)

	same := true
	for i := range xa {
		if xa[i] != xb[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical batches")
	}
}

func TestSamplerExponentialPositive(t *testing.T) {
	xs, err := NewSampler(7).Exponential(550, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(xs) != 1000 {
		t.Fatalf("batch size = %d, want 1000", len(xs))
	}
	for i, x := range xs {
		if x < 0 {
			t.Fatalf("sample %d is negative: %v", i, x)
		}
	}
}

func TestSamplerUniformIntsInclusiveBounds(t *testing.T) {
	xs, err := NewSampler(9).UniformInts(1, 2, 2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sawLow, sawHigh := false, false
	for _, x := range xs {
		if x < 1 || x > 2 {
			t.Fatalf("sample %d outside [1,2]", x)
		}
		if x == 1 {
			sawLow = true
		}
		if x == 2 {
			sawHigh = true
		}
	}
	if !sawLow || !sawHigh {
		t.Fatal("expected both inclusive bounds to occur in 2000 draws")
	}
}

func TestSamplerUniformIntsDegenerateRange(t *testing.T) {
	xs, err := NewSampler(3).UniformInts(4, 4, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, x := range xs {
		if x != 4 {
			t.Fatalf("sample = %d, want 4", x)
		}
	}
}

func TestSamplerFailsFast(t *testing.T) {
	s := NewSampler(1)

	if _, err := s.Exponential(0, 10); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("zero rate: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := s.Exponential(-1, 10); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("negative rate: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := s.UniformInts(5, 2, 10); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("inverted range: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := s.Bernoulli(1.5, 10); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("probability above one: expected ErrInvalidParameter, got %v", err)
	}

	// A rejected call must not consume randomness: the next valid draw
	// matches a fresh sampler with the same seed.
	fresh := NewSampler(1)
	got, _ := s.Exponential(2, 5)
	want, _ := fresh.Exponential(2, 5)
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("sample %d differs after rejected calls: %v vs %v", i, got[i], want[i])
		}
	}
}

func TestSamplerBernoulliExtremes(t *testing.T) {
	s := NewSampler(11)

	never, _ := s.Bernoulli(0, 100)
	for _, v := range never {
		if v {
			t.Fatal("p=0 produced a true indicator")
		}
	}

	always, _ := s.Bernoulli(1, 100)
	for _, v := range always {
		if !v {
			t.Fatal("p=1 produced a false indicator")
		}
	}
}

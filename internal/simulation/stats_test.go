package simulation

import (
	"math"
	"testing"
)

func TestAggregateEmpty(t *testing.T) {
	m := aggregate(nil)
	if m.Mean != 0 || m.StdDev != 0 || m.StdErr != 0 || m.Count != 0 {
		t.Errorf("aggregate(nil) = %+v, want all zeros", m)
	}
}

func TestAggregateSingleValue(t *testing.T) {
	m := aggregate([]float64{3000})
	if m.Mean != 3000 {
		t.Errorf("Mean = %v, want 3000", m.Mean)
	}
	if m.StdDev != 0 || m.StdErr != 0 {
		t.Errorf("StdDev = %v, StdErr = %v, want 0 for a single value", m.StdDev, m.StdErr)
	}
}

func TestAggregateBesselCorrection(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	m := aggregate(values)

	if m.Mean != 5 {
		t.Fatalf("Mean = %v, want 5", m.Mean)
	}

	// Sum of squared deviations is 32; sample variance divides by n-1.
	wantStdDev := math.Sqrt(32.0 / 7.0)
	wantStdErr := wantStdDev / math.Sqrt(8)
	if diff := math.Abs(m.StdDev - wantStdDev); diff > 1e-9 {
		t.Errorf("StdDev = %v, want %v", m.StdDev, wantStdDev)
	}
	if diff := math.Abs(m.StdErr - wantStdErr); diff > 1e-9 {
		t.Errorf("StdErr = %v, want %v", m.StdErr, wantStdErr)
	}
}

func TestAggregateIsPure(t *testing.T) {
	values := []float64{1500, 2500, 3500, 4500}

	first := aggregate(values)
	second := aggregate(values)

	if first != second {
		t.Errorf("aggregate is not idempotent: %+v vs %+v", first, second)
	}
}

func TestDistributionEmpty(t *testing.T) {
	d := distribution(nil)
	if d != (Distribution{}) {
		t.Errorf("distribution(nil) = %+v, want zero value", d)
	}
}

func TestDistributionRange(t *testing.T) {
	values := []float64{1000, 2000, 3000, 4000, 5000}

	d := distribution(values)

	// HDR histogram bucketing keeps 3 significant figures, so allow a
	// small relative tolerance.
	approx := func(got, want float64) bool {
		return math.Abs(got-want) <= want*0.01
	}
	if !approx(d.Min, 1000) {
		t.Errorf("Min = %v, want ~1000", d.Min)
	}
	if !approx(d.Max, 5000) {
		t.Errorf("Max = %v, want ~5000", d.Max)
	}
	if d.P50 < 2000 || d.P50 > 4000 {
		t.Errorf("P50 = %v, want within [2000, 4000]", d.P50)
	}
	if d.P99 < d.P50 {
		t.Errorf("P99 = %v below P50 = %v", d.P99, d.P50)
	}
}

func TestDistributionSingleValue(t *testing.T) {
	d := distribution([]float64{42.5})
	if math.Abs(d.Min-42.5) > 0.5 || math.Abs(d.Max-42.5) > 0.5 {
		t.Errorf("single-value distribution = %+v, want everything ~42.5", d)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 3.14159, want: 3.14},
		{in: 1.999, want: 2},
		{in: -1.2345, want: -1.23},
		{in: 0, want: 0},
		{in: 2999.999, want: 3000},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

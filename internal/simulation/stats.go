package simulation

import (
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Metrics holds the aggregate statistics over the satellite values.
type Metrics struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	StdErr float64 `json:"stdErr"`
	Count  int     `json:"count"`
}

// aggregate computes mean, Bessel-corrected sample standard deviation and
// standard error over values. Degenerate inputs yield zeroed metrics
// rather than an error: everything is 0 for an empty slice, stddev and
// stderr are 0 for a single value.
func aggregate(values []float64) Metrics {
	m := Metrics{Count: len(values)}
	if len(values) == 0 {
		return m
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	m.Mean = sum / float64(len(values))

	if len(values) < 2 {
		return m
	}

	sumSq := 0.0
	for _, v := range values {
		d := v - m.Mean
		sumSq += d * d
	}
	m.StdDev = math.Sqrt(sumSq / float64(len(values)-1))
	m.StdErr = m.StdDev / math.Sqrt(float64(len(values)))
	return m
}

// Distribution summarizes the spread of the satellite values.
type Distribution struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

const centi = 100

// distribution records the satellite values in an HDR histogram at
// centi-unit resolution and reads back the percentile summary. Values are
// shifted so the histogram only ever sees positive integers; percentiles
// carry the histogram's 3-significant-figure resolution.
func distribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	offset := int64(math.Floor(lo*centi)) - 1
	span := int64(math.Ceil(hi*centi)) - offset
	if span < 1 {
		span = 1
	}

	hist := hdrhistogram.New(1, span, 3)
	for _, v := range values {
		hist.RecordValue(int64(math.Round(v*centi)) - offset)
	}

	unshift := func(units int64) float64 {
		return float64(units+offset) / centi
	}
	return Distribution{
		Min: unshift(hist.Min()),
		Max: unshift(hist.Max()),
		P50: unshift(hist.ValueAtQuantile(50)),
		P90: unshift(hist.ValueAtQuantile(90)),
		P95: unshift(hist.ValueAtQuantile(95)),
		P99: unshift(hist.ValueAtQuantile(99)),
	}
}

// round2 rounds to two decimal places, the report's precision.
func round2(v float64) float64 {
	return math.Round(v*centi) / centi
}

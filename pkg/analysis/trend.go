// Package analysis computes derived statistics over an assembled gauge
// series: the long-term sea-level trend and the amplitude and phase of
// named tidal harmonic constituents. The numerical heavy lifting is done
// by gonum; this package only prepares the inputs and interprets the
// outputs.
package analysis

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/julian"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/coastwatch/tidegauge/pkg/gauge"
)

// Trend is the result of an ordinary least-squares fit of sea level
// against time. Slope is in sea-level units per day.
type Trend struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	PValue    float64
	N         int
}

// SeaLevelTrend regresses the valid readings of a series against a
// continuous day axis and returns the slope with its two-sided p-value.
// The axis is the Julian Day of each observation, so the unit is a whole
// day and the epoch is the same for every call; no per-dataset offset is
// ever applied to the result.
func SeaLevelTrend(s gauge.Series) (Trend, error) {
	valid := s.DropMissing()
	n := len(valid)
	if n < 3 {
		return Trend{}, fmt.Errorf("sea-level trend needs at least 3 valid readings, have %d: %w", n, gauge.ErrNoValidData)
	}

	x := make([]float64, n)
	y := make([]float64, n)
	for i, r := range valid {
		x[i] = julian.TimeToJD(r.Time.UTC())
		y[i] = r.SeaLevel
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return Trend{}, fmt.Errorf("sea-level trend regression is degenerate over %d readings", n)
	}

	r := stat.Correlation(x, y, nil)
	t := Trend{Slope: slope, Intercept: intercept, N: n}
	switch {
	case math.IsNaN(r):
		// Zero variance in y: a perfectly flat record. No evidence of
		// any trend.
		t.PValue = 1
	case r*r >= 1:
		t.RSquared = 1
	default:
		t.RSquared = r * r
		tstat := r * math.Sqrt(float64(n-2)/(1-r*r))
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
		t.PValue = 2 * dist.CDF(-math.Abs(tstat))
	}
	return t, nil
}

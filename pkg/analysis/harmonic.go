package analysis

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/coastwatch/tidegauge/pkg/gauge"
)

// constituentSpeeds holds the angular speed of the supported tidal
// constituents in degrees per hour.
var constituentSpeeds = map[string]float64{
	"M2": 28.9841042, // principal lunar semi-diurnal
	"S2": 30.0000000, // principal solar semi-diurnal
	"N2": 28.4397295, // larger lunar elliptic semi-diurnal
	"K2": 30.0821373, // lunisolar semi-diurnal
	"K1": 15.0410686, // lunisolar diurnal
	"O1": 13.9430356, // lunar diurnal
	"P1": 14.9589314, // solar diurnal
	"Q1": 13.3986609, // larger lunar elliptic diurnal
	"M4": 57.9682084, // shallow-water overtide of M2
}

// Constituent is one fitted tidal component. Phase is in degrees in
// [0, 360), relative to the reference start time of the fit.
type Constituent struct {
	Name      string
	Amplitude float64
	Phase     float64
}

// Harmonics fits the valid readings of a series to a sum of sinusoids at
// the named constituents' frequencies and returns one amplitude and phase
// per name, in the order requested. Elapsed time is measured from start,
// whose timezone is stripped first: the wall-clock fields are what count,
// matching the timezone-naive timestamps the parser produces.
//
// The fit is linear least squares on [1, cos ωt, sin ωt ...] columns,
// solved by QR decomposition.
func Harmonics(s gauge.Series, names []string, start time.Time) ([]Constituent, error) {
	omegas := make([]float64, len(names))
	for i, name := range names {
		speed, ok := constituentSpeeds[name]
		if !ok {
			return nil, fmt.Errorf("unknown tidal constituent %q", name)
		}
		omegas[i] = speed * math.Pi / 180 // radians per hour
	}

	valid := s.DropMissing()
	n := len(valid)
	cols := 2*len(names) + 1
	if n < cols {
		return nil, fmt.Errorf("harmonic fit of %d constituents needs at least %d valid readings, have %d: %w",
			len(names), cols, n, gauge.ErrNoValidData)
	}

	ref := stripZone(start)
	design := mat.NewDense(n, cols, nil)
	rhs := mat.NewVecDense(n, nil)
	for i, r := range valid {
		hours := r.Time.Sub(ref).Seconds() / 3600
		design.Set(i, 0, 1)
		for j, omega := range omegas {
			design.Set(i, 1+2*j, math.Cos(omega*hours))
			design.Set(i, 2+2*j, math.Sin(omega*hours))
		}
		rhs.SetVec(i, r.SeaLevel)
	}

	var qr mat.QR
	qr.Factorize(design)
	coef := mat.NewVecDense(cols, nil)
	if err := qr.SolveVecTo(coef, false, rhs); err != nil {
		return nil, fmt.Errorf("harmonic least-squares fit failed: %w", err)
	}

	out := make([]Constituent, len(names))
	for j, name := range names {
		a := coef.AtVec(1 + 2*j)
		b := coef.AtVec(2 + 2*j)
		phase := math.Atan2(b, a) * 180 / math.Pi
		if phase < 0 {
			phase += 360
		}
		out[j] = Constituent{Name: name, Amplitude: math.Hypot(a, b), Phase: phase}
	}
	return out, nil
}

// ConstituentNames reports whether every requested name has a known speed.
// The CLI uses it to reject a bad configuration before reading any files.
func ConstituentNames(names []string) error {
	for _, name := range names {
		if _, ok := constituentSpeeds[name]; !ok {
			return fmt.Errorf("unknown tidal constituent %q", name)
		}
	}
	return nil
}

// stripZone reinterprets the wall-clock fields of t as UTC, discarding any
// timezone the caller attached.
func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

package gauge

import "time"

// demean subtracts the mean of the valid sea-level values from every valid
// reading. Missing readings are excluded from the mean and left missing.
// An all-missing subset is returned unchanged; the caller decides whether
// that matters.
func demean(s Series) Series {
	out := make(Series, len(s))
	copy(out, s)
	mean, err := out.Mean()
	if err != nil {
		return out
	}
	for i := range out {
		if out[i].Valid {
			out[i].SeaLevel -= mean
		}
	}
	return out
}

// ExtractYear returns a new, demeaned series holding the readings whose
// timestamp falls in the given calendar year. Only the date component is
// consulted; no timezone conversion is performed.
func ExtractYear(s Series, year int) Series {
	var subset Series
	for _, r := range s {
		if r.Time.Year() == year {
			subset = append(subset, r)
		}
	}
	return demean(subset)
}

// ExtractRange returns a new, demeaned series holding the readings between
// the start of the start day and the end of the end day, both inclusive.
// The window closes at exactly 23:59:59 on the end date; an observation
// one second later, at midnight of the following day, is excluded.
func ExtractRange(s Series, start, end time.Time) Series {
	lo := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	hi := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())

	var subset Series
	for _, r := range s {
		if !r.Time.Before(lo) && !r.Time.After(hi) {
			subset = append(subset, r)
		}
	}
	return demean(subset)
}

// Package gauge reads UK tide-gauge text files and provides the core
// transformations over the assembled sea-level series: subset extraction
// with mean removal, merging, and contiguous-run detection. The numerical
// analysis of the assembled series lives in pkg/analysis.
package gauge

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrNoValidData indicates that an operation needed at least one
// non-missing sea-level reading and found none.
var ErrNoValidData = errors.New("no valid sea-level data")

// Reading is a single timestamped sea-level observation. A flagged or
// absent measurement is carried as Valid == false; the SeaLevel value is
// meaningless in that case and must never be substituted with zero.
type Reading struct {
	Time     time.Time
	SeaLevel float64
	Valid    bool
}

// Series is an ordered sequence of readings. After assembly with ReadDir
// the sequence is non-decreasing by timestamp; duplicate timestamps are
// retained. Transformations return new slices and never mutate their input.
type Series []Reading

// Len returns the number of readings, missing included.
func (s Series) Len() int { return len(s) }

// DropMissing returns a new series containing only the valid readings,
// in the same order.
func (s Series) DropMissing() Series {
	out := make(Series, 0, len(s))
	for _, r := range s {
		if r.Valid {
			out = append(out, r)
		}
	}
	return out
}

// Mean returns the arithmetic mean of the valid sea-level values.
// Missing readings are excluded, not treated as zero.
func (s Series) Mean() (float64, error) {
	var sum float64
	var n int
	for _, r := range s {
		if r.Valid {
			sum += r.SeaLevel
			n++
		}
	}
	if n == 0 {
		return 0, ErrNoValidData
	}
	return sum / float64(n), nil
}

// Head returns up to n readings from the start of the series.
func (s Series) Head(n int) Series {
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// Preview formats the first n readings for console output, one per line.
func (s Series) Preview(n int) string {
	var b strings.Builder
	for _, r := range s.Head(n) {
		if r.Valid {
			fmt.Fprintf(&b, "  %s  %8.4f\n", r.Time.Format("2006-01-02 15:04:05"), r.SeaLevel)
		} else {
			fmt.Fprintf(&b, "  %s  %8s\n", r.Time.Format("2006-01-02 15:04:05"), "missing")
		}
	}
	return b.String()
}

// sortByTime stable-sorts the series in place by timestamp. Readings with
// equal timestamps keep their relative order.
func sortByTime(s Series) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Time.Before(s[j].Time)
	})
}

// Merge returns the union of two series sorted by timestamp. Identical
// timestamps are not deduplicated; on ties, readings from a precede
// readings from b. Neither input is modified.
func Merge(a, b Series) Series {
	out := make(Series, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sortByTime(out)
	return out
}

package gauge

import "time"

// Run identifies a maximal stretch of consecutive valid readings within a
// series. Start and End are positions in the series, both inclusive; gaps
// are judged by position, not by wall-clock spacing.
type Run struct {
	Start  int
	End    int
	From   time.Time
	To     time.Time
	Length int
}

// LongestContiguous partitions the series by position into maximal runs of
// readings sharing the same validity and returns the longest valid run.
// When several valid runs tie for longest, the earliest one wins. A series
// with no valid readings at all returns ErrNoValidData.
func LongestContiguous(s Series) (Run, error) {
	var best, cur Run
	for i, r := range s {
		if !r.Valid {
			cur = Run{}
			continue
		}
		if cur.Length == 0 {
			cur = Run{Start: i, From: r.Time}
		}
		cur.End = i
		cur.To = r.Time
		cur.Length++
		if cur.Length > best.Length {
			best = cur
		}
	}
	if best.Length == 0 {
		return Run{}, ErrNoValidData
	}
	return best, nil
}

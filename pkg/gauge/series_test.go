package gauge

import (
	"errors"
	"testing"
	"time"
)

func hourly(start time.Time, values []float64, valid []bool) Series {
	s := make(Series, len(values))
	for i := range values {
		s[i] = Reading{
			Time:     start.Add(time.Duration(i) * time.Hour),
			SeaLevel: values[i],
			Valid:    valid == nil || valid[i],
		}
	}
	return s
}

func TestDropMissing(t *testing.T) {
	start := time.Date(1946, 1, 1, 0, 0, 0, 0, time.UTC)
	s := hourly(start, []float64{1, 0, 3}, []bool{true, false, true})

	valid := s.DropMissing()
	if len(valid) != 2 {
		t.Fatalf("got %d valid readings, expected 2", len(valid))
	}
	if valid[0].SeaLevel != 1 || valid[1].SeaLevel != 3 {
		t.Errorf("unexpected valid readings: %v", valid)
	}
	if len(s) != 3 {
		t.Error("DropMissing mutated its input")
	}
}

func TestMeanExcludesMissing(t *testing.T) {
	start := time.Date(1946, 1, 1, 0, 0, 0, 0, time.UTC)
	s := hourly(start, []float64{2, 100, 4}, []bool{true, false, true})

	mean, err := s.Mean()
	if err != nil {
		t.Fatalf("Mean: %v", err)
	}
	if mean != 3 {
		t.Errorf("Mean = %v, expected 3 (missing excluded, not zeroed)", mean)
	}
}

func TestMeanNoValidData(t *testing.T) {
	start := time.Date(1946, 1, 1, 0, 0, 0, 0, time.UTC)
	s := hourly(start, []float64{0, 0}, []bool{false, false})

	if _, err := s.Mean(); !errors.Is(err, ErrNoValidData) {
		t.Errorf("expected ErrNoValidData, got: %v", err)
	}
}

func TestMergeDisjoint(t *testing.T) {
	a := hourly(time.Date(1946, 1, 1, 0, 0, 0, 0, time.UTC), []float64{1, 2, 3}, nil)
	b := hourly(time.Date(1947, 1, 1, 0, 0, 0, 0, time.UTC), []float64{4, 5}, nil)

	merged := Merge(b, a)
	if len(merged) != len(a)+len(b) {
		t.Fatalf("merged length = %d, expected %d", len(merged), len(a)+len(b))
	}
	if merged[0].SeaLevel != 1 || merged[4].SeaLevel != 5 {
		t.Errorf("merge not time-sorted: first %v, last %v", merged[0].SeaLevel, merged[4].SeaLevel)
	}
}

func TestMergeKeepsDuplicateTimestamps(t *testing.T) {
	ts := time.Date(1946, 6, 1, 12, 0, 0, 0, time.UTC)
	a := Series{{Time: ts, SeaLevel: 1, Valid: true}}
	b := Series{{Time: ts, SeaLevel: 2, Valid: true}}

	merged := Merge(a, b)
	if len(merged) != 2 {
		t.Fatalf("merged length = %d, expected duplicates retained", len(merged))
	}
	if merged[0].SeaLevel != 1 || merged[1].SeaLevel != 2 {
		t.Errorf("tie order not stable: %v then %v", merged[0].SeaLevel, merged[1].SeaLevel)
	}
}

func TestMergeCarriesMissing(t *testing.T) {
	a := hourly(time.Date(1946, 1, 1, 0, 0, 0, 0, time.UTC), []float64{1, 0}, []bool{true, false})
	b := hourly(time.Date(1947, 1, 1, 0, 0, 0, 0, time.UTC), []float64{2}, nil)

	merged := Merge(a, b)
	if merged[1].Valid {
		t.Error("missing marker lost across a merge")
	}
}

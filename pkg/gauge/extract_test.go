package gauge

import (
	"math"
	"testing"
	"time"
)

func TestExtractYearZeroMean(t *testing.T) {
	s := hourly(time.Date(1946, 12, 31, 22, 0, 0, 0, time.UTC),
		[]float64{3.1, 2.7, 4.0, 3.3, 2.9}, nil) // last three fall in 1947

	subset := ExtractYear(s, 1947)
	if len(subset) != 3 {
		t.Fatalf("got %d readings for 1947, expected 3", len(subset))
	}

	var sum float64
	for _, r := range subset {
		sum += r.SeaLevel
	}
	if math.Abs(sum/3) > 1e-9 {
		t.Errorf("demeaned subset mean = %v, expected 0", sum/3)
	}
	// Input untouched.
	if s[2].SeaLevel != 4.0 {
		t.Error("ExtractYear mutated its input")
	}
}

func TestExtractYearMissingStaysMissing(t *testing.T) {
	s := hourly(time.Date(1947, 1, 1, 0, 0, 0, 0, time.UTC),
		[]float64{2, 0, 4}, []bool{true, false, true})

	subset := ExtractYear(s, 1947)
	if subset[1].Valid {
		t.Error("missing reading became valid after demeaning")
	}
	// Mean over valid values is 3, so the valid readings demean to -1 and 1.
	if subset[0].SeaLevel != -1 || subset[2].SeaLevel != 1 {
		t.Errorf("mean not computed over valid values only: %v, %v", subset[0].SeaLevel, subset[2].SeaLevel)
	}
}

func TestExtractRangeBoundary(t *testing.T) {
	boundary := time.Date(1947, 3, 31, 23, 59, 59, 0, time.UTC)
	s := Series{
		{Time: time.Date(1947, 3, 1, 0, 0, 0, 0, time.UTC), SeaLevel: 1, Valid: true},
		{Time: boundary, SeaLevel: 2, Valid: true},
		{Time: boundary.Add(time.Second), SeaLevel: 3, Valid: true}, // 00:00:00 next day
	}

	subset := ExtractRange(s,
		time.Date(1947, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1947, 3, 31, 0, 0, 0, 0, time.UTC))
	if len(subset) != 2 {
		t.Fatalf("got %d readings, expected 2: 23:59:59 included, next midnight excluded", len(subset))
	}
	if !subset[1].Time.Equal(boundary) {
		t.Errorf("last included reading at %v, expected %v", subset[1].Time, boundary)
	}
}

func TestExtractRangeZeroMean(t *testing.T) {
	s := hourly(time.Date(1947, 5, 10, 0, 0, 0, 0, time.UTC),
		[]float64{1.5, 2.5, 3.5, 4.5}, nil)

	subset := ExtractRange(s,
		time.Date(1947, 5, 10, 0, 0, 0, 0, time.UTC),
		time.Date(1947, 5, 10, 0, 0, 0, 0, time.UTC))
	if len(subset) != 4 {
		t.Fatalf("got %d readings, expected all 4 within the single day", len(subset))
	}
	var sum float64
	for _, r := range subset {
		sum += r.SeaLevel
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("demeaned subset sum = %v, expected 0", sum)
	}
}

func TestExtractRangeAllMissing(t *testing.T) {
	s := hourly(time.Date(1947, 5, 10, 0, 0, 0, 0, time.UTC),
		[]float64{0, 0}, []bool{false, false})

	subset := ExtractRange(s,
		time.Date(1947, 5, 10, 0, 0, 0, 0, time.UTC),
		time.Date(1947, 5, 10, 0, 0, 0, 0, time.UTC))
	if len(subset) != 2 {
		t.Fatalf("got %d readings, expected the missing rows retained", len(subset))
	}
	for i, r := range subset {
		if r.Valid {
			t.Errorf("reading %d became valid with no mean to subtract", i)
		}
	}
}

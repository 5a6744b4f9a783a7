package game

import (
	"math"
	"testing"
)

func TestStatistics(t *testing.T) {
	data := []float64{4, 2, 8, 6}

	if m := Mean(data); m != 5 {
		t.Fatalf("expected mean 5, got %v", m)
	}
	if sd := StandardDeviation(data); math.Abs(sd-math.Sqrt(5)) > 1e-9 {
		t.Fatalf("expected standard deviation %v, got %v", math.Sqrt(5), sd)
	}
	if p := Percentile(data, 50); p != 4 {
		t.Fatalf("expected median rank 4, got %v", p)
	}
	if p := Percentile(data, 100); p != 8 {
		t.Fatalf("expected max 8, got %v", p)
	}
	if p := Percentile(data, 0); p != 2 {
		t.Fatalf("expected min 2, got %v", p)
	}
	if data[0] != 4 {
		t.Fatalf("expected samples to stay unsorted, got %v", data)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	if Mean(nil) != 0 || StandardDeviation(nil) != 0 || Percentile(nil, 99) != 0 {
		t.Fatalf("expected zero for no samples")
	}
}

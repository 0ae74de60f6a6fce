package descriptive

import (
	"math"
	"reflect"
	"testing"

	"github.com/mondragon-developer/statools/domain/sample"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestComputeMedian(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"odd length", []float64{3, 1, 2}, 2},
		{"even length", []float64{4, 1, 3, 2}, 2.5},
		{"single value", []float64{7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := Compute(sample.Sample(tt.data))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !almostEqual(summary.Median, tt.expected) {
				t.Errorf("Expected median %v, got %v", tt.expected, summary.Median)
			}
		})
	}
}

func TestComputeQuartilesSmallSample(t *testing.T) {
	// With n=5 the interpolation indexes p·(n−1) land exactly on the
	// order statistics at positions 1 and 3.
	summary, err := Compute(sample.Sample{10, 20, 30, 40, 50})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !almostEqual(summary.Q1, 20) {
		t.Errorf("Expected Q1=20, got %v", summary.Q1)
	}
	if !almostEqual(summary.Q3, 40) {
		t.Errorf("Expected Q3=40, got %v", summary.Q3)
	}
	if !almostEqual(summary.IQR, 20) {
		t.Errorf("Expected IQR=20, got %v", summary.IQR)
	}
}

func TestComputeSummary(t *testing.T) {
	summary, err := Compute(sample.Sample{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if summary.N != 8 {
		t.Errorf("Expected N=8, got %d", summary.N)
	}
	if !almostEqual(summary.Min, 2) || !almostEqual(summary.Max, 9) || !almostEqual(summary.Range, 7) {
		t.Errorf("Unexpected extremes: min=%v max=%v range=%v", summary.Min, summary.Max, summary.Range)
	}
	if !almostEqual(summary.Mean, 5) {
		t.Errorf("Expected mean=5, got %v", summary.Mean)
	}
	// Sample variance with n−1 denominator: Σ(x−5)² = 32, 32/7.
	if !almostEqual(summary.Variance, 32.0/7.0) {
		t.Errorf("Expected variance %v, got %v", 32.0/7.0, summary.Variance)
	}
	if !almostEqual(summary.StdDev, math.Sqrt(32.0/7.0)) {
		t.Errorf("Expected stddev %v, got %v", math.Sqrt(32.0/7.0), summary.StdDev)
	}
}

func TestComputeOutliers(t *testing.T) {
	data := sample.Sample{1, 1, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 5, 5, 6, 6, 7, 8, 9, 15, 20, 25, 30}

	summary, err := Compute(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if summary.Q3 <= summary.Q1 {
		t.Fatalf("Expected Q3 > Q1, got Q1=%v Q3=%v", summary.Q1, summary.Q3)
	}

	flagged := map[float64]bool{}
	for _, v := range summary.Outliers {
		flagged[v] = true
		if v >= summary.LowerFence && v <= summary.UpperFence {
			t.Errorf("Value %v flagged but lies within fences [%v, %v]", v, summary.LowerFence, summary.UpperFence)
		}
	}
	if !flagged[25] || !flagged[30] {
		t.Errorf("Expected 25 and 30 flagged as outliers, flagged set: %v", summary.Outliers)
	}
}

func TestComputeIdempotent(t *testing.T) {
	data := sample.Sample{5, 3, 8, 1, 9, 2, 2}

	first, err := Compute(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := Compute(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated computation diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestPercentileBounds(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	if got := Percentile(sorted, 0); got != 1 {
		t.Errorf("Expected p=0 to return first value, got %v", got)
	}
	if got := Percentile(sorted, 1); got != 4 {
		t.Errorf("Expected p=1 to return last value, got %v", got)
	}
	if got := Percentile([]float64{42}, 0.75); got != 42 {
		t.Errorf("Expected single-value sample to return it, got %v", got)
	}
	// Interpolated: 0.5·3 = 1.5 → halfway between 2 and 3.
	if got := Percentile(sorted, 0.5); !almostEqual(got, 2.5) {
		t.Errorf("Expected interpolated 2.5, got %v", got)
	}
}

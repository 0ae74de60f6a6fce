package descriptive

import (
	"testing"

	"github.com/mondragon-developer/statools/domain/sample"
)

func TestHistogram(t *testing.T) {
	data := sample.Sample{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	table, err := Histogram(data, 0, 2.5, 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(table.Bins) != 4 {
		t.Fatalf("Expected 4 bins, got %d", len(table.Bins))
	}

	// [0,2.5): 1,2  [2.5,5): 3,4  [5,7.5): 5,6,7  [7.5,10]: 8,9,10 plus 10 clipped
	expectedCounts := []int{2, 2, 3, 3}
	total := 0
	for i, bin := range table.Bins {
		if bin.Count != expectedCounts[i] {
			t.Errorf("Bin %d: expected count %d, got %d", i, expectedCounts[i], bin.Count)
		}
		total += bin.Count
	}
	if total != len(data) {
		t.Errorf("Expected every value counted once, got %d of %d", total, len(data))
	}

	last := table.Bins[len(table.Bins)-1]
	if !almostEqual(last.CumFreq, 1.0) {
		t.Errorf("Expected cumulative frequency of last bin to be 1, got %v", last.CumFreq)
	}
}

func TestHistogramClipping(t *testing.T) {
	data := sample.Sample{-5, 0, 5, 100}

	table, err := Histogram(data, 0, 10, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// -5 clips into the first bin, 100 into the last.
	if table.Bins[0].Count != 3 {
		t.Errorf("Expected first bin count 3 (including below-range clip), got %d", table.Bins[0].Count)
	}
	if table.Bins[1].Count != 1 {
		t.Errorf("Expected last bin count 1 (above-range clip), got %d", table.Bins[1].Count)
	}
}

func TestHistogramValidation(t *testing.T) {
	data := sample.Sample{1, 2, 3}

	if _, err := Histogram(data, 0, 0, 5); err == nil {
		t.Error("Expected error for zero class width")
	}
	if _, err := Histogram(data, 0, 1, 0); err == nil {
		t.Error("Expected error for zero bin count")
	}
	if _, err := Histogram(data, 0, 1, MaxBins+1); err == nil {
		t.Error("Expected error for bin count over the limit")
	}
	if _, err := Histogram(sample.Sample{}, 0, 1, 5); err == nil {
		t.Error("Expected error for empty sample")
	}
}

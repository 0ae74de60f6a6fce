package descriptive

import (
	"fmt"

	"github.com/mondragon-developer/statools/domain/sample"
	"github.com/mondragon-developer/statools/internal/errors"
)

// MaxBins bounds the frequency-table resolution, matching the chart
// resolution limit.
const MaxBins = 30

// Bin is a single class interval of a frequency table. The interval is
// [Lower, Upper) except for the last bin, which also absorbs values at or
// above its upper boundary.
type Bin struct {
	Lower        float64 `json:"lower"`
	Upper        float64 `json:"upper"`
	Label        string  `json:"label"`
	Count        int     `json:"count"`
	RelativeFreq float64 `json:"relative_freq"`
	CumFreq      float64 `json:"cumulative_freq"`
}

// FrequencyTable is the binned view of a sample.
type FrequencyTable struct {
	LowerBoundary float64 `json:"lower_boundary"`
	ClassWidth    float64 `json:"class_width"`
	Bins          []Bin   `json:"bins"`
}

// Histogram bins a sample into count classes of width classWidth starting
// at lowerBoundary. Values below the range clip into the first bin and
// values above it clip into the last, so every value is counted exactly
// once.
func Histogram(s sample.Sample, lowerBoundary, classWidth float64, count int) (*FrequencyTable, error) {
	if len(s) == 0 {
		return nil, errors.InvalidInput("sample is empty")
	}
	if classWidth <= 0 {
		return nil, errors.InvalidInput("class width must be positive")
	}
	if count < 1 || count > MaxBins {
		return nil, errors.InvalidInputf("bin count must be between 1 and %d", MaxBins)
	}

	bins := make([]Bin, count)
	for i := range bins {
		lower := lowerBoundary + float64(i)*classWidth
		upper := lower + classWidth
		bins[i] = Bin{
			Lower: lower,
			Upper: upper,
			Label: fmt.Sprintf("%.6g – %.6g", lower, upper),
		}
	}

	for _, x := range s {
		idx := int((x - lowerBoundary) / classWidth)
		if x < lowerBoundary {
			idx = 0
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= count {
			idx = count - 1
		}
		bins[idx].Count++
	}

	total := float64(len(s))
	cumulative := 0.0
	for i := range bins {
		bins[i].RelativeFreq = float64(bins[i].Count) / total
		cumulative += bins[i].RelativeFreq
		bins[i].CumFreq = cumulative
	}

	return &FrequencyTable{
		LowerBoundary: lowerBoundary,
		ClassWidth:    classWidth,
		Bins:          bins,
	}, nil
}

// Package descriptive computes summary statistics and frequency tables
// for a single numeric sample.
package descriptive

import (
	"math"
	"sort"

	"github.com/mondragon-developer/statools/domain/sample"
	"github.com/mondragon-developer/statools/internal/errors"

	"github.com/montanaflynn/stats"
)

// Summary holds the full descriptive-statistics result set for a sample.
type Summary struct {
	N           int       `json:"n"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	Range       float64   `json:"range"`
	Mean        float64   `json:"mean"`
	Median      float64   `json:"median"`
	Variance    float64   `json:"variance"` // Sample variance, n−1 denominator
	StdDev      float64   `json:"std_dev"`
	Q1          float64   `json:"q1"`
	Q3          float64   `json:"q3"`
	IQR         float64   `json:"iqr"`
	LowerFence  float64   `json:"lower_fence"` // Q1 − 1.5·IQR
	UpperFence  float64   `json:"upper_fence"` // Q3 + 1.5·IQR
	Outliers    []float64 `json:"outliers"`
	OutlierIdxs []int     `json:"outlier_indexes"`
}

// Compute produces the summary for a sample. The sample must be non-empty.
func Compute(s sample.Sample) (*Summary, error) {
	if len(s) == 0 {
		return nil, errors.InvalidInput("sample is empty")
	}

	data := []float64(s)
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	minV, _ := stats.Min(data)
	maxV, _ := stats.Max(data)

	variance := 0.0
	stdDev := 0.0
	if len(data) > 1 {
		variance, _ = stats.SampleVariance(data)
		stdDev, _ = stats.StandardDeviationSample(data)
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	q1 := Percentile(sorted, 0.25)
	q3 := Percentile(sorted, 0.75)
	iqr := q3 - q1
	lowerFence := q1 - 1.5*iqr
	upperFence := q3 + 1.5*iqr

	summary := &Summary{
		N:          len(data),
		Min:        minV,
		Max:        maxV,
		Range:      maxV - minV,
		Mean:       mean,
		Median:     median,
		Variance:   variance,
		StdDev:     stdDev,
		Q1:         q1,
		Q3:         q3,
		IQR:        iqr,
		LowerFence: lowerFence,
		UpperFence: upperFence,
		Outliers:   []float64{},
	}

	for i, x := range data {
		if x < lowerFence || x > upperFence {
			summary.Outliers = append(summary.Outliers, x)
			summary.OutlierIdxs = append(summary.OutlierIdxs, i)
		}
	}

	return summary, nil
}

// Percentile interpolates the p-quantile (p in [0,1]) over sorted data at
// fractional index p·(n−1). When the upper rank falls past the end of the
// data the lower value is returned as-is.
//
// montanaflynn's Percentile uses the exclusive nearest-rank method, which
// disagrees with the results this calculator publishes, so the inclusive
// method is implemented here.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}

	index := p * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[lower]
	}

	frac := index - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// Package chart projects calculator results into the flat dataset shape
// the client charting library consumes: labels, one numeric series and a
// per-point color. Datasets are derived views, recomputed fresh on every
// request, never a source of truth.
package chart

import (
	"fmt"
	"math"

	"github.com/mondragon-developer/statools/domain/descriptive"
	"github.com/mondragon-developer/statools/domain/distribution"

	"gonum.org/v1/gonum/stat/distuv"
)

// MaxPoints bounds curve resolution.
const MaxPoints = 30

// Default series colors; the highlight color marks emphasized points
// (the queried outcome, outlier bins).
const (
	colorPrimary   = "#4e79a7"
	colorHighlight = "#e15759"
)

// Dataset is the presentational projection the charting library renders.
type Dataset struct {
	Labels []string  `json:"labels"`
	Series []float64 `json:"series"`
	Colors []string  `json:"colors"`
}

// FromFrequencyTable projects a frequency table as histogram bars. Bins
// whose interval lies entirely outside the outlier fences are
// highlighted.
func FromFrequencyTable(table *descriptive.FrequencyTable, summary *descriptive.Summary) Dataset {
	ds := Dataset{
		Labels: make([]string, len(table.Bins)),
		Series: make([]float64, len(table.Bins)),
		Colors: make([]string, len(table.Bins)),
	}
	for i, bin := range table.Bins {
		ds.Labels[i] = bin.Label
		ds.Series[i] = float64(bin.Count)
		ds.Colors[i] = colorPrimary
		if summary != nil && (bin.Upper <= summary.LowerFence || bin.Lower >= summary.UpperFence) {
			ds.Colors[i] = colorHighlight
		}
	}
	return ds
}

// BinomialPMF projects the full outcome range 0..n as bars, highlighting
// the queried outcome x.
func BinomialPMF(n int, p float64, x int) Dataset {
	if n < 0 {
		return Dataset{}
	}
	ds := Dataset{
		Labels: make([]string, n+1),
		Series: make([]float64, n+1),
		Colors: make([]string, n+1),
	}
	for k := 0; k <= n; k++ {
		ds.Labels[k] = fmt.Sprintf("%d", k)
		ds.Series[k] = distribution.Binomial(n, p, k, distribution.QueryExact).Probability
		ds.Colors[k] = colorPrimary
		if k == x {
			ds.Colors[k] = colorHighlight
		}
	}
	return ds
}

// PoissonPMF projects outcomes 0..limit as bars, highlighting x. The
// limit follows the usual UI choice of λ plus four standard deviations,
// capped at MaxPoints.
func PoissonPMF(lambda float64, x int) Dataset {
	if lambda <= 0 {
		return Dataset{}
	}
	limit := int(lambda + 4*math.Sqrt(lambda))
	if limit < x {
		limit = x
	}
	if limit > MaxPoints {
		limit = MaxPoints
	}

	ds := Dataset{
		Labels: make([]string, limit+1),
		Series: make([]float64, limit+1),
		Colors: make([]string, limit+1),
	}
	for k := 0; k <= limit; k++ {
		ds.Labels[k] = fmt.Sprintf("%d", k)
		ds.Series[k] = distribution.Poisson(lambda, k, distribution.QueryExact).Probability
		ds.Colors[k] = colorPrimary
		if k == x {
			ds.Colors[k] = colorHighlight
		}
	}
	return ds
}

// NormalCurve samples the N(μ, σ) density across μ ± 4σ at MaxPoints
// resolution.
func NormalCurve(mu, sigma float64) Dataset {
	if sigma <= 0 {
		sigma = 1e-9
	}
	dist := distuv.Normal{Mu: mu, Sigma: sigma}

	ds := Dataset{
		Labels: make([]string, MaxPoints),
		Series: make([]float64, MaxPoints),
		Colors: make([]string, MaxPoints),
	}
	lo := mu - 4*sigma
	step := 8 * sigma / float64(MaxPoints-1)
	for i := 0; i < MaxPoints; i++ {
		x := lo + float64(i)*step
		ds.Labels[i] = fmt.Sprintf("%.3g", x)
		ds.Series[i] = dist.Prob(x)
		ds.Colors[i] = colorPrimary
	}
	return ds
}

// BoxPlot projects the five-number summary as an ordered series. The
// charting library draws the box from the values in this fixed order.
func BoxPlot(summary *descriptive.Summary) Dataset {
	return Dataset{
		Labels: []string{"min", "q1", "median", "q3", "max"},
		Series: []float64{summary.Min, summary.Q1, summary.Median, summary.Q3, summary.Max},
		Colors: []string{colorPrimary, colorPrimary, colorHighlight, colorPrimary, colorPrimary},
	}
}

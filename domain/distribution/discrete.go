// Package distribution wraps the gonum distribution primitives behind the
// probability-query modes the calculators expose. All functions are pure;
// degenerate parameters resolve to defined zero-probability results rather
// than errors.
package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// QueryMode selects how a discrete probability query is interpreted.
type QueryMode string

const (
	QueryExact   QueryMode = "exact"    // P(X = x)
	QueryAtMost  QueryMode = "at_most"  // P(X ≤ x)
	QueryAtLeast QueryMode = "at_least" // P(X ≥ x) = 1 − CDF(x−1)
)

// MaxTrials bounds the binomial trial count, matching the slider limit.
const MaxTrials = 50

// DiscreteResult carries the requested probability together with the
// distribution's closed-form moments.
type DiscreteResult struct {
	Probability float64 `json:"probability"`
	Mean        float64 `json:"mean"`
	Variance    float64 `json:"variance"`
	StdDev      float64 `json:"std_dev"`
}

// Binomial answers a probability query over Binomial(n, p). A degenerate
// parameter set (n < 0 or p outside [0,1]) yields the zero result.
func Binomial(n int, p float64, x int, mode QueryMode) DiscreteResult {
	if n < 0 || p < 0 || p > 1 {
		return DiscreteResult{}
	}

	dist := distuv.Binomial{N: float64(n), P: p}
	mean := float64(n) * p
	variance := float64(n) * p * (1 - p)

	return DiscreteResult{
		Probability: discreteQuery(dist, n, x, mode),
		Mean:        mean,
		Variance:    variance,
		StdDev:      math.Sqrt(variance),
	}
}

// Poisson answers a probability query over Poisson(λ). λ ≤ 0 yields the
// zero result.
func Poisson(lambda float64, x int, mode QueryMode) DiscreteResult {
	if lambda <= 0 {
		return DiscreteResult{}
	}

	dist := distuv.Poisson{Lambda: lambda}

	return DiscreteResult{
		Probability: discreteQuery(dist, -1, x, mode),
		Mean:        lambda,
		Variance:    lambda,
		StdDev:      math.Sqrt(lambda),
	}
}

// discreteDist is the subset of distuv behavior the queries need.
// distuv.Binomial and distuv.Poisson both satisfy it.
type discreteDist interface {
	Prob(x float64) float64
	CDF(x float64) float64
}

// discreteQuery evaluates a mode over a discrete distribution. support is
// the largest attainable outcome, or -1 when unbounded (Poisson); x is
// clamped into the valid outcome range before evaluation.
func discreteQuery(dist discreteDist, support, x int, mode QueryMode) float64 {
	if x < 0 {
		x = 0
	}
	if support >= 0 && x > support {
		x = support
	}

	switch mode {
	case QueryAtMost:
		return dist.CDF(float64(x))
	case QueryAtLeast:
		if x == 0 {
			return 1
		}
		return 1 - dist.CDF(float64(x-1))
	default:
		return dist.Prob(float64(x))
	}
}

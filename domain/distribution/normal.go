package distribution

import (
	"github.com/mondragon-developer/statools/internal/errors"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalMode selects the probability region a normal query computes.
type NormalMode string

const (
	NormalLeftTail  NormalMode = "left_tail"  // P(X ≤ x)
	NormalRightTail NormalMode = "right_tail" // P(X ≥ x)
	NormalBetween   NormalMode = "between"    // P(a ≤ X ≤ b)
	NormalOutside   NormalMode = "outside"    // 1 − P(a ≤ X ≤ b)
	NormalInverse   NormalMode = "inverse"    // value at cumulative probability p
)

// sigmaFloor keeps σ strictly positive so z-score conversion never
// divides by zero.
const sigmaFloor = 1e-9

// NormalResult carries the probability (or inverse value) for a normal
// query along with the standardized z-scores of the query bounds.
type NormalResult struct {
	Probability float64   `json:"probability"`
	Values      []float64 `json:"values"`   // Inverse mode: the value(s) at the cumulative probability
	ZScores     []float64 `json:"z_scores"` // z of each query bound (or inverse value)
}

// ZScore standardizes x against N(μ, σ). σ is floored to a small positive
// epsilon.
func ZScore(x, mu, sigma float64) float64 {
	return (x - mu) / floorSigma(sigma)
}

// FromZScore maps a z-score back to the raw scale: x = μ + zσ.
func FromZScore(z, mu, sigma float64) float64 {
	return mu + z*floorSigma(sigma)
}

// Normal answers a query over N(μ, σ). The a argument is the single bound
// for the tail modes and the lower bound for between/outside; b is the
// upper bound for between/outside and the cumulative probability for the
// inverse mode.
func Normal(mu, sigma float64, mode NormalMode, a, b float64) (*NormalResult, error) {
	sigma = floorSigma(sigma)
	dist := distuv.Normal{Mu: mu, Sigma: sigma}

	switch mode {
	case NormalLeftTail:
		return &NormalResult{
			Probability: dist.CDF(a),
			ZScores:     []float64{ZScore(a, mu, sigma)},
		}, nil

	case NormalRightTail:
		return &NormalResult{
			Probability: 1 - dist.CDF(a),
			ZScores:     []float64{ZScore(a, mu, sigma)},
		}, nil

	case NormalBetween, NormalOutside:
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		p := dist.CDF(hi) - dist.CDF(lo)
		if mode == NormalOutside {
			p = 1 - p
		}
		return &NormalResult{
			Probability: p,
			ZScores:     []float64{ZScore(lo, mu, sigma), ZScore(hi, mu, sigma)},
		}, nil

	case NormalInverse:
		p := b
		if p <= 0 || p >= 1 {
			return nil, errors.InvalidInput("cumulative probability must lie strictly between 0 and 1")
		}
		value := dist.Quantile(p)
		return &NormalResult{
			Probability: p,
			Values:      []float64{value},
			ZScores:     []float64{ZScore(value, mu, sigma)},
		}, nil

	default:
		return nil, errors.InvalidInputf("unknown normal mode %q", mode)
	}
}

func floorSigma(sigma float64) float64 {
	if sigma < sigmaFloor {
		return sigmaFloor
	}
	return sigma
}

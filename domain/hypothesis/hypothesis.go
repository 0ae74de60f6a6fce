// Package hypothesis implements one-sample z and t tests for proportions
// and means: test statistic, critical value, p-value, reject decision and
// optional confidence interval.
package hypothesis

import (
	"math"

	"github.com/mondragon-developer/statools/internal/errors"

	"gonum.org/v1/gonum/stat/distuv"
)

// Family selects the tested parameter.
type Family string

const (
	FamilyProportion Family = "proportion"
	FamilyMean       Family = "mean"
)

// Tail selects the rejection region.
type Tail string

const (
	TailTwo   Tail = "two"
	TailLeft  Tail = "left"
	TailRight Tail = "right"
)

// Config holds everything a single test run needs.
type Config struct {
	Family Family  `json:"family"`
	Tail   Tail    `json:"tail"`
	Alpha  float64 `json:"alpha"`

	// Hypothesized is p0 for proportion tests and μ0 for mean tests.
	Hypothesized float64 `json:"hypothesized"`
	SampleSize   int     `json:"sample_size"`

	// Proportion tests
	SampleProportion float64 `json:"sample_proportion,omitempty"`

	// Mean tests. SigmaKnown selects the z distribution with population
	// Sigma; otherwise the t distribution with SampleStdDev and df = n−1.
	SampleMean   float64 `json:"sample_mean,omitempty"`
	SigmaKnown   bool    `json:"sigma_known,omitempty"`
	Sigma        float64 `json:"sigma,omitempty"`
	SampleStdDev float64 `json:"sample_std_dev,omitempty"`

	// WithInterval adds the two-tailed confidence interval to the result.
	WithInterval bool `json:"with_interval,omitempty"`
}

// Interval is a two-sided confidence interval.
type Interval struct {
	Level float64 `json:"level"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Result is the outcome of a single hypothesis test.
type Result struct {
	Statistic     float64   `json:"statistic"`
	CriticalValue float64   `json:"critical_value"`
	PValue        float64   `json:"p_value"`
	StandardError float64   `json:"standard_error"`
	Distribution  string    `json:"distribution"` // "z" or "t"
	DegreesOfFree int       `json:"degrees_of_freedom,omitempty"`
	Reject        bool      `json:"reject"`
	Interval      *Interval `json:"interval,omitempty"`
}

// Run executes the configured test.
func Run(cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	var estimate, se float64
	switch cfg.Family {
	case FamilyProportion:
		estimate = cfg.SampleProportion
		se = math.Sqrt(cfg.Hypothesized * (1 - cfg.Hypothesized) / float64(cfg.SampleSize))
	case FamilyMean:
		estimate = cfg.SampleMean
		if cfg.SigmaKnown {
			se = cfg.Sigma / math.Sqrt(float64(cfg.SampleSize))
		} else {
			se = cfg.SampleStdDev / math.Sqrt(float64(cfg.SampleSize))
		}
	}

	statistic := (estimate - cfg.Hypothesized) / se

	dist, name, df := referenceDistribution(cfg)
	critical := criticalValue(dist, cfg.Tail, cfg.Alpha)
	pValue := pValue(dist, cfg.Tail, statistic)

	result := &Result{
		Statistic:     statistic,
		CriticalValue: critical,
		PValue:        pValue,
		StandardError: se,
		Distribution:  name,
		DegreesOfFree: df,
		Reject:        reject(cfg.Tail, statistic, critical),
	}

	if cfg.WithInterval {
		// The interval always uses the two-tailed critical magnitude.
		margin := math.Abs(dist.Quantile(cfg.Alpha/2)) * se
		result.Interval = &Interval{
			Level: 1 - cfg.Alpha,
			Lower: estimate - margin,
			Upper: estimate + margin,
		}
	}

	return result, nil
}

// quantiler is the slice of distuv behavior the test needs; distuv.Normal
// and distuv.StudentsT both satisfy it.
type quantiler interface {
	CDF(x float64) float64
	Quantile(p float64) float64
}

func referenceDistribution(cfg Config) (dist quantiler, name string, df int) {
	if cfg.Family == FamilyMean && !cfg.SigmaKnown {
		df = cfg.SampleSize - 1
		return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}, "t", df
	}
	return distuv.Normal{Mu: 0, Sigma: 1}, "z", 0
}

// criticalValue returns the rejection boundary: the quantile at α for a
// one-tailed test, or at α/2 (negative-magnitude branch) for two-tailed.
func criticalValue(dist quantiler, tail Tail, alpha float64) float64 {
	switch tail {
	case TailLeft:
		return dist.Quantile(alpha)
	case TailRight:
		return dist.Quantile(1 - alpha)
	default:
		return dist.Quantile(alpha / 2)
	}
}

func pValue(dist quantiler, tail Tail, statistic float64) float64 {
	switch tail {
	case TailLeft:
		return dist.CDF(statistic)
	case TailRight:
		return 1 - dist.CDF(statistic)
	default:
		return 2 * (1 - dist.CDF(math.Abs(statistic)))
	}
}

func reject(tail Tail, statistic, critical float64) bool {
	switch tail {
	case TailLeft:
		return statistic < critical
	case TailRight:
		return statistic > critical
	default:
		return math.Abs(statistic) > math.Abs(critical)
	}
}

func validate(cfg Config) error {
	if cfg.Family != FamilyProportion && cfg.Family != FamilyMean {
		return errors.InvalidInputf("unknown test family %q", cfg.Family)
	}
	if cfg.Tail != TailTwo && cfg.Tail != TailLeft && cfg.Tail != TailRight {
		return errors.InvalidInputf("unknown tail type %q", cfg.Tail)
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		return errors.InvalidInput("significance level must lie strictly between 0 and 1")
	}
	if cfg.SampleSize < 1 {
		return errors.InvalidInput("sample size must be at least 1")
	}

	switch cfg.Family {
	case FamilyProportion:
		if cfg.Hypothesized <= 0 || cfg.Hypothesized >= 1 {
			return errors.InvalidInput("hypothesized proportion must lie strictly between 0 and 1")
		}
		if cfg.SampleProportion < 0 || cfg.SampleProportion > 1 {
			return errors.InvalidInput("sample proportion must lie between 0 and 1")
		}
	case FamilyMean:
		if cfg.SigmaKnown {
			if cfg.Sigma <= 0 {
				return errors.InvalidInput("population standard deviation must be positive")
			}
		} else {
			if cfg.SampleStdDev <= 0 {
				return errors.InvalidInput("sample standard deviation must be positive")
			}
			if cfg.SampleSize < 2 {
				return errors.InvalidInput("t test requires a sample size of at least 2")
			}
		}
	}

	return nil
}

// Package probability implements the counting and two-event probability
// rules the probability calculator exposes.
package probability

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// combin.Binomial works on int64 internally and overflows past n ≈ 66;
// above that the counts are evaluated in float64 via log-gamma, which is
// what the calculator displays anyway.
const exactCountLimit = 62

// Factorial returns n! as a float64. Negative n counts nothing and
// returns 0; n > 170 overflows float64 and returns +Inf.
func Factorial(n int) float64 {
	if n < 0 {
		return 0
	}
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// Combinations returns C(n, r), the number of ways to choose r of n items
// without regard to order. Out-of-domain arguments count nothing.
func Combinations(n, r int) float64 {
	if n < 0 || r < 0 || r > n {
		return 0
	}
	if n <= exactCountLimit {
		return float64(combin.Binomial(n, r))
	}
	return math.Round(combin.GeneralizedBinomial(float64(n), float64(r)))
}

// Permutations returns P(n, r) = n!/(n−r)!, the number of ordered
// arrangements of r of n items.
func Permutations(n, r int) float64 {
	if n < 0 || r < 0 || r > n {
		return 0
	}
	result := 1.0
	for i := 0; i < r; i++ {
		result *= float64(n - i)
	}
	return result
}

// CombinationsWithReplacement returns C(n+r−1, r), the number of
// multisets of size r drawn from n items.
func CombinationsWithReplacement(n, r int) float64 {
	if n <= 0 || r < 0 {
		if n > 0 && r == 0 {
			return 1
		}
		return 0
	}
	return Combinations(n+r-1, r)
}

// PermutationsWithReplacement returns n^r, the number of ordered
// selections of r of n items when items may repeat.
func PermutationsWithReplacement(n, r int) float64 {
	if n < 0 || r < 0 {
		return 0
	}
	return math.Pow(float64(n), float64(r))
}

package probability

import (
	"github.com/mondragon-developer/statools/internal/errors"
)

// TwoEventInput describes two events A and B by their probabilities.
// When MutuallyExclusive is set the intersection is taken as zero and
// Intersection is ignored.
type TwoEventInput struct {
	ProbA             float64 `json:"p_a"`
	ProbB             float64 `json:"p_b"`
	Intersection      float64 `json:"p_a_and_b"`
	MutuallyExclusive bool    `json:"mutually_exclusive"`
}

// TwoEventResult holds the derived set-relation probabilities.
type TwoEventResult struct {
	NotA         float64 `json:"p_not_a"`
	NotB         float64 `json:"p_not_b"`
	Union        float64 `json:"p_a_or_b"`
	Intersection float64 `json:"p_a_and_b"`
	AGivenB      float64 `json:"p_a_given_b"`
	BGivenA      float64 `json:"p_b_given_a"`
}

// TwoEvents derives complement, union and conditional probabilities from
// the standard identities. Union uses the simple sum under mutual
// exclusivity and inclusion-exclusion otherwise. A conditional with a
// zero-probability condition is reported as 0.
func TwoEvents(in TwoEventInput) (*TwoEventResult, error) {
	if in.ProbA < 0 || in.ProbA > 1 || in.ProbB < 0 || in.ProbB > 1 {
		return nil, errors.InvalidInput("event probabilities must lie between 0 and 1")
	}

	intersection := in.Intersection
	if in.MutuallyExclusive {
		intersection = 0
	}
	if intersection < 0 || intersection > in.ProbA || intersection > in.ProbB {
		return nil, errors.InvalidInput("P(A∩B) must lie between 0 and min(P(A), P(B))")
	}

	union := in.ProbA + in.ProbB - intersection
	if union > 1 {
		return nil, errors.InvalidInput("P(A) + P(B) − P(A∩B) exceeds 1")
	}

	result := &TwoEventResult{
		NotA:         1 - in.ProbA,
		NotB:         1 - in.ProbB,
		Union:        union,
		Intersection: intersection,
	}
	if in.ProbB > 0 {
		result.AGivenB = intersection / in.ProbB
	}
	if in.ProbA > 0 {
		result.BGivenA = intersection / in.ProbA
	}

	return result, nil
}

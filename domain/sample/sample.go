// Package sample parses and validates the numeric samples the calculators
// operate on. A sample is an ordered sequence of finite real numbers,
// bounded in size, created fresh for each calculation.
package sample

import (
	"math"
	"strconv"
	"strings"

	"github.com/mondragon-developer/statools/internal/errors"
)

// MaxSize bounds the number of values a single sample may carry.
// The descriptive-statistics widget enforces the same limit client-side.
const MaxSize = 100

// Sample is an ordered sequence of finite real numbers.
type Sample []float64

// Parse extracts a sample from whitespace-delimited text. Tokens that do
// not parse as finite numbers are skipped; commas are tolerated as
// separators since users paste spreadsheet rows. Parsing fails when no
// valid value remains or the sample exceeds MaxSize.
func Parse(text string) (Sample, error) {
	cleaned := strings.ReplaceAll(text, ",", " ")
	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 {
		return nil, errors.InvalidInput("sample is empty")
	}

	values := make(Sample, 0, len(tokens))
	for _, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, errors.InvalidInput("sample contains no numeric values")
	}
	if len(values) > MaxSize {
		return nil, errors.InvalidInputf("sample has %d values, maximum is %d", len(values), MaxSize)
	}

	return values, nil
}

// Validate checks an already-assembled sample against the same rules
// Parse enforces. Used by the Excel import path.
func Validate(values []float64) (Sample, error) {
	if len(values) == 0 {
		return nil, errors.InvalidInput("sample is empty")
	}
	if len(values) > MaxSize {
		return nil, errors.InvalidInputf("sample has %d values, maximum is %d", len(values), MaxSize)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.InvalidInput("sample contains non-finite values")
		}
	}
	return Sample(values), nil
}

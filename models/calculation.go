package models

import (
	"encoding/json"
	"time"

	"github.com/mondragon-developer/statools/internal/errors"

	"github.com/google/uuid"
)

// CalculationKind identifies which calculator produced a record.
type CalculationKind string

const (
	KindDescriptive CalculationKind = "descriptive"
	KindBinomial    CalculationKind = "binomial"
	KindPoisson     CalculationKind = "poisson"
	KindNormal      CalculationKind = "normal"
	KindHypothesis  CalculationKind = "hypothesis"
	KindProbability CalculationKind = "probability"
	KindDice        CalculationKind = "dice"
)

// ValidKind reports whether kind names a known calculator.
func ValidKind(kind CalculationKind) bool {
	switch kind {
	case KindDescriptive, KindBinomial, KindPoisson, KindNormal,
		KindHypothesis, KindProbability, KindDice:
		return true
	}
	return false
}

// CalculationRecord is one completed calculation: the inputs the user
// supplied and the results the formula layer produced, both as JSON.
type CalculationRecord struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	Kind      CalculationKind `db:"kind" json:"kind"`
	Inputs    json.RawMessage `db:"inputs" json:"inputs"`
	Results   json.RawMessage `db:"results" json:"results"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// NewCalculationRecord marshals the given inputs and results into a
// record ready for the store.
func NewCalculationRecord(kind CalculationKind, inputs, results interface{}) (*CalculationRecord, error) {
	if !ValidKind(kind) {
		return nil, errors.InvalidInputf("unknown calculation kind %q", kind)
	}

	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal calculation inputs")
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal calculation results")
	}

	return &CalculationRecord{
		ID:        uuid.New(),
		Kind:      kind,
		Inputs:    inputsJSON,
		Results:   resultsJSON,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Package memory provides the in-memory calculation store used when no
// database is configured. Records live only for the process lifetime,
// preserving the stateless behavior of the calculators by default.
package memory

import (
	"context"
	"sync"

	"github.com/mondragon-developer/statools/models"
	"github.com/mondragon-developer/statools/ports"
)

// CalculationStoreImpl is a capped in-memory CalculationStore.
type CalculationStoreImpl struct {
	mu      sync.RWMutex
	records []*models.CalculationRecord
	cap     int
}

// NewCalculationStore creates an in-memory store keeping at most cap
// records; older records are evicted first.
func NewCalculationStore(cap int) ports.CalculationStore {
	if cap <= 0 {
		cap = 100
	}
	return &CalculationStoreImpl{cap: cap}
}

// Save records a completed calculation, evicting the oldest entry when
// the window is full.
func (s *CalculationStoreImpl) Save(ctx context.Context, record *models.CalculationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	if len(s.records) > s.cap {
		s.records = s.records[len(s.records)-s.cap:]
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *CalculationStoreImpl) Recent(ctx context.Context, kind models.CalculationKind, limit int) ([]*models.CalculationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	out := make([]*models.CalculationRecord, 0, limit)
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		if kind != "" && s.records[i].Kind != kind {
			continue
		}
		out = append(out, s.records[i])
	}
	return out, nil
}

// Clear removes every stored record.
func (s *CalculationStoreImpl) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}

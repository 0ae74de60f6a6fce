package postgres

import (
	"context"

	"github.com/mondragon-developer/statools/internal/errors"
	"github.com/mondragon-developer/statools/models"
	"github.com/mondragon-developer/statools/ports"

	"github.com/jmoiron/sqlx"
)

// CalculationStoreImpl implements CalculationStore for PostgreSQL
type CalculationStoreImpl struct {
	db *sqlx.DB
}

// NewCalculationStore creates a new PostgreSQL calculation store
func NewCalculationStore(db *sqlx.DB) ports.CalculationStore {
	return &CalculationStoreImpl{db: db}
}

// Save records a completed calculation
func (s *CalculationStoreImpl) Save(ctx context.Context, record *models.CalculationRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations (id, kind, inputs, results, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		record.ID, record.Kind, record.Inputs, record.Results, record.CreatedAt)
	if err != nil {
		return errors.Wrap(err, "failed to save calculation")
	}
	return nil
}

// Recent returns up to limit records, newest first
func (s *CalculationStoreImpl) Recent(ctx context.Context, kind models.CalculationKind, limit int) ([]*models.CalculationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	records := []*models.CalculationRecord{}
	var err error
	if kind == "" {
		err = s.db.SelectContext(ctx, &records, `
			SELECT id, kind, inputs, results, created_at
			FROM calculations
			ORDER BY created_at DESC
			LIMIT $1`, limit)
	} else {
		err = s.db.SelectContext(ctx, &records, `
			SELECT id, kind, inputs, results, created_at
			FROM calculations
			WHERE kind = $1
			ORDER BY created_at DESC
			LIMIT $2`, kind, limit)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list calculations")
	}
	return records, nil
}

// Clear removes every stored record
func (s *CalculationStoreImpl) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM calculations`); err != nil {
		return errors.Wrap(err, "failed to clear calculations")
	}
	return nil
}

package ports

import (
	"context"

	"github.com/mondragon-developer/statools/models"
)

// CalculationStore persists completed calculations for the history view.
// The application runs fully without a database; the in-memory adapter
// backs this port when no DATABASE_URL is configured.
type CalculationStore interface {
	// Save records a completed calculation.
	Save(ctx context.Context, record *models.CalculationRecord) error

	// Recent returns up to limit records, newest first, optionally
	// filtered by kind (empty kind means all calculators).
	Recent(ctx context.Context, kind models.CalculationKind, limit int) ([]*models.CalculationRecord, error)

	// Clear removes every stored record.
	Clear(ctx context.Context) error
}

package app

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/mondragon-developer/statools/adapters/excel"
	"github.com/mondragon-developer/statools/domain/descriptive"
	"github.com/mondragon-developer/statools/domain/sample"

	"golang.org/x/sync/semaphore"
)

// ColumnProfile is the descriptive overview of one imported column.
type ColumnProfile struct {
	Name    string               `json:"name"`
	Summary *descriptive.Summary `json:"summary,omitempty"`
	Skipped int                  `json:"skipped_cells"`
	Err     string               `json:"error,omitempty"`
}

// ProfileService computes descriptive overviews for imported workbooks,
// profiling columns concurrently under a weighted semaphore so a wide
// sheet cannot monopolize the process.
type ProfileService struct {
	sem *semaphore.Weighted
}

// NewProfileService creates a service allowing maxConcurrent column
// profiles at a time.
func NewProfileService(maxConcurrent int64) *ProfileService {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &ProfileService{sem: semaphore.NewWeighted(maxConcurrent)}
}

// ProfileWorkbook profiles every numeric column of the workbook. Columns
// that fail validation (too long, non-finite) carry their error instead
// of a summary; the rest of the workbook still profiles.
func (s *ProfileService) ProfileWorkbook(ctx context.Context, wb *excel.Workbook) ([]ColumnProfile, error) {
	profiles := make([]ColumnProfile, len(wb.Columns))

	var wg sync.WaitGroup
	for i, column := range wb.Columns {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}

		wg.Add(1)
		go func(i int, column excel.Column) {
			defer wg.Done()
			defer s.sem.Release(1)
			profiles[i] = profileColumn(column)
		}(i, column)
	}
	wg.Wait()

	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	log.Printf("[ProfileService] Profiled %d columns from %s", len(profiles), wb.Source)
	return profiles, nil
}

func profileColumn(column excel.Column) ColumnProfile {
	profile := ColumnProfile{Name: column.Name, Skipped: column.Skipped}

	s, err := sample.Validate(column.Values)
	if err != nil {
		profile.Err = err.Error()
		return profile
	}

	summary, err := descriptive.Compute(s)
	if err != nil {
		profile.Err = err.Error()
		return profile
	}

	profile.Summary = summary
	return profile
}

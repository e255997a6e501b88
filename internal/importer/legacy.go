package importer

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/alexanderramin/effortcal/internal/domain"
)

// legacyNamespace seeds deterministic IDs for legacy rows so importing the
// same database twice collides instead of double counting.
var legacyNamespace = uuid.MustParse("6f1c7a52-3d0e-4b8e-9a57-2f0f3e1c9b14")

// LegacyResult reports what ReadLegacy took from the source.
type LegacyResult struct {
	Records []*domain.TimeRecord
	// Skipped counts rows whose project matches no category range.
	Skipped int
}

// ReadLegacy reads every zTimeSpent row (DateDashed, TimeHr, ProjectID) from
// a legacy tracking database and classifies it with rules.
func ReadLegacy(ctx context.Context, src *sql.DB, rules domain.CategoryRules) (*LegacyResult, error) {
	rows, err := src.QueryContext(ctx,
		`SELECT rowid, DateDashed, COALESCE(TimeHr, 0), COALESCE(ProjectID, 0)
		 FROM zTimeSpent ORDER BY DateDashed, rowid`)
	if err != nil {
		return nil, fmt.Errorf("reading zTimeSpent: %w", err)
	}
	defer rows.Close()

	res := &LegacyResult{}
	for rows.Next() {
		var (
			rowID   int64
			dateStr string
			hours   float64
			project int
		)
		if err := rows.Scan(&rowID, &dateStr, &hours, &project); err != nil {
			return nil, fmt.Errorf("scanning zTimeSpent row: %w", err)
		}
		category, ok := rules.Classify(project)
		if !ok {
			res.Skipped++
			continue
		}
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("zTimeSpent row %d: %w", rowID, err)
		}
		res.Records = append(res.Records, &domain.TimeRecord{
			ID:        uuid.NewSHA1(legacyNamespace, []byte(strconv.FormatInt(rowID, 10))).String(),
			Date:      date,
			ProjectID: project,
			Category:  category,
			Hours:     hours,
			Note:      "legacy import",
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating zTimeSpent: %w", err)
	}
	return res, nil
}

package importer

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/effortcal/internal/domain"
)

// Convert transforms a validated ImportFile into records ready for
// RecordService.Import. IDs and creation times are left for the service.
func Convert(f *ImportFile, rules domain.CategoryRules) ([]*domain.TimeRecord, error) {
	if errs := ValidateImportFile(f, rules); len(errs) > 0 {
		return nil, fmt.Errorf("invalid import file: %w", errors.Join(errs...))
	}

	out := make([]*domain.TimeRecord, 0, len(f.Records))
	for _, r := range f.Records {
		date, err := domain.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		rec := &domain.TimeRecord{
			Date:      date,
			ProjectID: r.ProjectID,
			Hours:     r.Hours,
			Note:      r.Note,
		}
		if r.Category != "" {
			if rec.Category, err = domain.ParseCategory(r.Category); err != nil {
				return nil, err
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

package importer

import (
	"fmt"
	"math"

	"github.com/alexanderramin/effortcal/internal/domain"
)

// ValidateImportFile checks every record before conversion and returns all
// problems found, not just the first.
func ValidateImportFile(f *ImportFile, rules domain.CategoryRules) []error {
	var errs []error
	if len(f.Records) == 0 {
		errs = append(errs, fmt.Errorf("records: at least one record is required"))
	}
	for i, r := range f.Records {
		errs = append(errs, validateRecord(fmt.Sprintf("records[%d]", i), r, rules)...)
	}
	return errs
}

func validateRecord(prefix string, r RecordImport, rules domain.CategoryRules) []error {
	var errs []error

	if r.Date == "" {
		errs = append(errs, fmt.Errorf("%s.date is required", prefix))
	} else if _, err := domain.ParseDate(r.Date); err != nil {
		errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, r.Date))
	}
	if math.IsNaN(r.Hours) || math.IsInf(r.Hours, 0) {
		errs = append(errs, fmt.Errorf("%s.hours: %w", prefix, domain.ErrNonFiniteHours))
	} else if r.Hours < 0 {
		errs = append(errs, fmt.Errorf("%s.hours: %w", prefix, domain.ErrNegativeHours))
	}
	if r.ProjectID < 0 {
		errs = append(errs, fmt.Errorf("%s.project_id must not be negative", prefix))
	}

	switch {
	case r.Category != "":
		if _, err := domain.ParseCategory(r.Category); err != nil {
			errs = append(errs, fmt.Errorf("%s.category: %w", prefix, err))
		}
	case r.ProjectID == 0:
		errs = append(errs, fmt.Errorf("%s: category or project_id is required", prefix))
	default:
		if _, ok := rules.Classify(r.ProjectID); !ok {
			errs = append(errs, fmt.Errorf("%s.project_id %d: %w", prefix, r.ProjectID, domain.ErrUnclassifiedProject))
		}
	}

	return errs
}

package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value holding a civil date in YYYY-MM-DD form.
type dateValue struct {
	t *time.Time
}

func (d dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(domain.DateLayout)
}

func (d dateValue) Set(s string) error {
	t, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	*d.t = t
	return nil
}

func (dateValue) Type() string { return "date" }

// categoryValue is a pflag.Value accepting a|b|manuscript|grant.
type categoryValue struct {
	c *domain.Category
}

func (v categoryValue) String() string {
	if v.c == nil {
		return ""
	}
	return string(*v.c)
}

func (v categoryValue) Set(s string) error {
	c, err := domain.ParseCategory(s)
	if err != nil {
		return err
	}
	*v.c = c
	return nil
}

func (categoryValue) Type() string { return "category" }

func addYearsFlag(fs *pflag.FlagSet, years *[]int) {
	fs.IntSliceVarP(years, "year", "y", nil, "Year to render; repeat or comma-separate for several (default: current or latest year with data)")
}

func addYearFlag(fs *pflag.FlagSet, year *int) {
	fs.IntVarP(year, "year", "y", 0, "Year (default: current or latest year with data)")
}

func validateYear(year int) error {
	if year < 0 || year > 9999 {
		return fmt.Errorf("year %d out of range", year)
	}
	return nil
}

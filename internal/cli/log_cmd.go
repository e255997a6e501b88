package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/effortcal/internal/cli/formatter"
	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/spf13/cobra"
)

var errMissingLogInput = errors.New("--date, --hours and one of --category or --project are required")

// logInput is what the log command collects from flags or the form.
type logInput struct {
	Date      time.Time
	Hours     float64
	HasHours  bool
	Category  domain.Category
	ProjectID int
	Note      string
}

func (in logInput) complete() bool {
	return !in.Date.IsZero() && in.HasHours && (in.Category != "" || in.ProjectID > 0)
}

func (in logInput) record() *domain.TimeRecord {
	return &domain.TimeRecord{
		Date:      in.Date,
		ProjectID: in.ProjectID,
		Category:  in.Category,
		Hours:     in.Hours,
		Note:      in.Note,
	}
}

func newLogCmd(app *App) *cobra.Command {
	var in logInput

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record hours spent on a day",
		Example: `  effortcal log --date 2024-03-15 --hours 4 --category manuscript
  effortcal log --date 2024-03-15 --hours 1.5 --project 1003 --note "budget"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.HasHours = cmd.Flags().Changed("hours")
			if !in.complete() {
				if !app.interactive() {
					return errMissingLogInput
				}
				if err := runLogForm(&in, app.Rules); err != nil {
					return err
				}
			}

			rec := in.record()
			if err := app.Records.Log(cmd.Context(), rec); err != nil {
				return err
			}

			label := app.Rules.Rule(rec.Category).Label
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s of %s on %s %s\n",
				formatter.FormatHours(rec.Hours),
				formatter.CategoryBadge(rec.Category, label),
				rec.Date.Format(domain.DateLayout),
				formatter.Dim("("+rec.ID+")"))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.Var(dateValue{&in.Date}, "date", "Day worked (YYYY-MM-DD)")
	fs.Float64Var(&in.Hours, "hours", 0, "Hours worked")
	fs.Var(categoryValue{&in.Category}, "category", "Category: a|manuscript or b|grant")
	fs.IntVar(&in.ProjectID, "project", 0, "Project ID; classifies the record when --category is omitted")
	fs.StringVar(&in.Note, "note", "", "Free-form note")

	return cmd
}

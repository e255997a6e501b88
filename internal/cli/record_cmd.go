package cli

import (
	"fmt"

	"github.com/alexanderramin/effortcal/internal/cli/formatter"
	"github.com/alexanderramin/effortcal/internal/db"
	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/alexanderramin/effortcal/internal/importer"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the records of a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateYear(year); err != nil {
				return err
			}
			resolved, err := app.Calendar.ResolveYear(cmd.Context(), year)
			if err != nil {
				return err
			}
			records, err := app.Records.ListByYear(cmd.Context(), resolved)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox(
				fmt.Sprintf("Records %d", resolved),
				formatter.FormatRecords(records, app.Rules)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	addYearFlag(cmd.Flags(), &year)
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Records.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDeleted(args[0]))
			return nil
		},
	}
}

func newSummaryCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show per-month totals for a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateYear(year); err != nil {
				return err
			}
			sum, err := app.Calendar.Summary(cmd.Context(), year)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(sum))
			return nil
		},
	}

	addYearFlag(cmd.Flags(), &year)
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import records from a JSON file or a legacy zTimeSpent database",
		Example: `  effortcal import records.json
  effortcal import --legacy ~/TimeTracking/mytime.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				records []*domain.TimeRecord
				skipped int
			)
			if legacy {
				src, err := db.OpenReadOnly(args[0])
				if err != nil {
					return err
				}
				defer src.Close()
				res, err := importer.ReadLegacy(cmd.Context(), src, app.Rules)
				if err != nil {
					return err
				}
				records, skipped = res.Records, res.Skipped
			} else {
				f, err := importer.LoadImportFile(args[0])
				if err != nil {
					return err
				}
				if records, err = importer.Convert(f, app.Rules); err != nil {
					return err
				}
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing to import."))
				return nil
			}
			n, err := app.Records.Import(cmd.Context(), records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s", formatter.Plural(n, "record"))
			if skipped > 0 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf(" (skipped %d outside category ranges)", skipped)))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&legacy, "legacy", false, "Read FILE as a legacy SQLite database with a zTimeSpent table")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/effortcal/internal/cli/formatter"
	"github.com/alexanderramin/effortcal/internal/service"
	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var years []int
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the effort calendar PNG for one or more years",
		Example: `  effortcal render
  effortcal render --year 2024 --out effort.png
  effortcal render -y 2022,2023,2024 --out "effort-{year}.png"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(years) == 0 {
				years = []int{0}
			}
			reqs := make([]service.RenderRequest, 0, len(years))
			for _, y := range years {
				if err := validateYear(y); err != nil {
					return err
				}
				reqs = append(reqs, service.RenderRequest{Year: y, OutPath: out})
			}

			var results []*service.RenderResult
			if len(reqs) == 1 {
				res, err := app.Calendar.Render(cmd.Context(), reqs[0])
				if err != nil {
					return err
				}
				results = append(results, res)
			} else {
				var err error
				if results, err = app.Calendar.RenderMany(cmd.Context(), reqs); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			for _, res := range results {
				fmt.Fprint(w, formatter.FormatRenderResult(res, app.Rules))
			}
			return nil
		},
	}

	addYearsFlag(cmd.Flags(), &years)
	cmd.Flags().StringVarP(&out, "out", "o", app.OutTemplate, "Output PNG path; {year} is replaced by the year")

	return cmd
}

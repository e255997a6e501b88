package cli

import (
	"os"

	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/alexanderramin/effortcal/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Records  service.RecordService
	Calendar service.CalendarService
	Rules    domain.CategoryRules
	// OutTemplate is the default output path; {year} is substituted.
	OutTemplate string
	// Interactive reports whether missing input may be prompted for.
	Interactive func() bool
}

func (a *App) interactive() bool {
	if a.Interactive == nil {
		return false
	}
	return a.Interactive()
}

// StdinIsTerminal is the default App.Interactive.
func StdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewRootCmd creates the top-level "effortcal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "effortcal",
		Short:         "Daily effort calendar for two kinds of work",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRenderCmd(app),
		newLogCmd(app),
		newListCmd(app),
		newImportCmd(app),
		newSummaryCmd(app),
		newDeleteCmd(app),
	)

	return root
}

package cli

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/effortcal/internal/cli/formatter"
	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func effortHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// logFormFields holds the raw strings edited by the log form.
type logFormFields struct {
	date     string
	hours    string
	category domain.Category
	project  string
	note     string
}

func newLogFormFields(in logInput) *logFormFields {
	f := &logFormFields{
		date:     time.Now().Format(domain.DateLayout),
		category: in.Category,
		note:     in.Note,
	}
	if !in.Date.IsZero() {
		f.date = in.Date.Format(domain.DateLayout)
	}
	if in.HasHours {
		f.hours = strconv.FormatFloat(in.Hours, 'f', -1, 64)
	}
	if in.ProjectID > 0 {
		f.project = strconv.Itoa(in.ProjectID)
	}
	if f.category == "" {
		f.category = domain.CategoryA
	}
	return f
}

func (f *logFormFields) form(rules domain.CategoryRules) *huh.Form {
	options := make([]huh.Option[domain.Category], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		options = append(options, huh.NewOption(rules.Rule(c).Label, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder(domain.DateLayout).
				Value(&f.date).
				Validate(validateDate),
			huh.NewInput().
				Title("Hours").
				Placeholder("1.5").
				Value(&f.hours).
				Validate(validateHours),
			huh.NewSelect[domain.Category]().
				Title("Category").
				Options(options...).
				Value(&f.category),
			huh.NewInput().
				Title("Project ID (optional)").
				Value(&f.project).
				Validate(validateOptionalProject),
			huh.NewInput().
				Title("Note (optional)").
				Value(&f.note),
		),
	).WithTheme(effortHuhTheme()).WithShowHelp(false)
}

// apply copies validated form values into in.
func (f *logFormFields) apply(in *logInput) error {
	date, err := domain.ParseDate(strings.TrimSpace(f.date))
	if err != nil {
		return err
	}
	hours, err := parseHours(f.hours)
	if err != nil {
		return err
	}
	in.Date = date
	in.Hours = hours
	in.HasHours = true
	in.Category = f.category
	in.Note = strings.TrimSpace(f.note)
	in.ProjectID = 0
	if p := strings.TrimSpace(f.project); p != "" {
		in.ProjectID, _ = strconv.Atoi(p)
	}
	return nil
}

func runLogForm(in *logInput, rules domain.CategoryRules) error {
	fields := newLogFormFields(*in)
	if err := fields.form(rules).Run(); err != nil {
		return err
	}
	return fields.apply(in)
}

func validateDate(s string) error {
	_, err := domain.ParseDate(strings.TrimSpace(s))
	return err
}

func parseHours(s string) (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("hours must be a number")
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, domain.ErrNonFiniteHours
	}
	if h < 0 {
		return 0, domain.ErrNegativeHours
	}
	return h, nil
}

func validateHours(s string) error {
	_, err := parseHours(s)
	return err
}

func validateOptionalProject(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err != nil || n <= 0 {
		return errors.New("project ID must be a positive integer")
	}
	return nil
}

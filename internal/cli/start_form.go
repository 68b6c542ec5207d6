package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/harborworks/tidelog/internal/cli/formatter"
)

// tidelogHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func tidelogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// startFormProjectKey names the select field so the chosen project can be
// read back from the completed form with GetString.
const startFormProjectKey = "project"

// newStartForm creates the project-selection form shown before a session
// starts. The start action is only reachable through this form, so a session
// can never begin without a project. The selection is read via the field key
// rather than a bound pointer: the dashboard model is copied on every Update,
// so a pointer into it would go stale.
func newStartForm(app *App) *huh.Form {
	projects := app.Directory.Projects()
	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		options = append(options, huh.NewOption(p.Name, p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key(startFormProjectKey).
				Title("Track time on which project?").
				Description("The activity label is taken from the active tab.").
				Options(options...),
		),
	).WithTheme(tidelogHuhTheme()).WithShowHelp(true)
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/harborworks/tidelog/internal/cli/formatter"
	"github.com/harborworks/tidelog/internal/domain"
	"github.com/harborworks/tidelog/internal/report"
)

// keyMap defines the dashboard key bindings.
type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Start   key.Binding
	Stop    key.Binding
	Report  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("shift+tab", "prev tab")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Stop:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		Report:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "report")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// tickMsg drives the live elapsed-time display.
type tickMsg time.Time

// appModel is the root bubbletea Model for the dashboard. All tracker and
// store calls happen inside Update, on the event loop goroutine, preserving
// the single-actor model.
type appModel struct {
	app  *App
	keys keyMap

	tabs     []domain.Tab
	tabIndex int

	// Modal project-selection form; nil when closed.
	startForm *huh.Form

	// Transient status line shown under the header.
	status string

	users []*domain.User

	width    int
	quitting bool
}

func newAppModel(app *App) appModel {
	m := appModel{
		app:  app,
		keys: defaultKeyMap(),
		tabs: domain.AllTabs(),
	}
	// Users are display-only on the admin tab; load once.
	if users, err := app.Users.List(context.Background()); err == nil {
		m.users = users
	}
	return m
}

// runDashboard starts the interactive dashboard and blocks until it exits.
func runDashboard(app *App) error {
	_, err := tea.NewProgram(newAppModel(app), tea.WithAltScreen()).Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m appModel) Init() tea.Cmd {
	return tick()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		if m.startForm != nil {
			return m.updateStartForm(msg)
		}
		return m.handleKey(msg)
	}

	if m.startForm != nil {
		return m.updateStartForm(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab((m.tabIndex + 1) % len(m.tabs)), nil

	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab((m.tabIndex - 1 + len(m.tabs)) % len(m.tabs)), nil

	case key.Matches(msg, m.keys.Start):
		m.startForm = newStartForm(m.app)
		return m, m.startForm.Init()

	case key.Matches(msg, m.keys.Stop):
		m.app.Tracker.Stop()
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Report):
		return m.generateReport(), nil
	}
	return m, nil
}

// switchTab routes the tab change through the tracker so an active session
// is always stopped before the context changes.
func (m appModel) switchTab(index int) appModel {
	m.app.Tracker.SwitchTab(m.tabs[index])
	m.tabIndex = index
	m.status = ""
	return m
}

func (m appModel) updateStartForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.startForm = nil
		return m, nil
	}

	form, cmd := m.startForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.startForm = f
	}

	if m.startForm.State == huh.StateCompleted {
		projectID := m.startForm.GetString(startFormProjectKey)
		m.startForm = nil
		tab := m.app.Tracker.ActiveTab()
		m.app.Tracker.Start(projectID, string(tab), m.app.UserID)
		m.status = ""
	}
	return m, cmd
}

func (m appModel) generateReport() appModel {
	now := m.app.Clock.Now()
	content := report.Compile(m.app.Directory, m.app.reportEntries(), report.Options{
		Date:   now,
		UserID: m.app.UserID,
		Now:    now,
	})
	path, err := report.WriteArtifact(".", now, content)
	if err != nil {
		m.status = formatter.StyleRed.Render(fmt.Sprintf("Report failed: %v", err))
		return m
	}
	m.status = formatter.StyleGreen.Render(fmt.Sprintf("Report written to %s", path))
	return m
}

// ── rendering ────────────────────────────────────────────────────────────────

var (
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(formatter.ColorHeader).
			Bold(true).
			Padding(0, 1)
	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(formatter.ColorDim).
				Padding(0, 1)
)

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.startForm != nil {
		b.WriteString(m.startForm.View())
	} else {
		b.WriteString(m.renderContent())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m appModel) renderTabBar() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		style := tabInactiveStyle
		if i == m.tabIndex {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(tab.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}

func (m appModel) renderHeader() string {
	state := m.app.Tracker.State()
	line := formatter.TrackingPill(state)
	if open := m.app.Tracker.Current(); open != nil {
		name := open.ProjectID
		if p, ok := m.app.Directory.ByID(open.ProjectID); ok {
			name = p.Name
		}
		line += "  " + formatter.Bold(name) +
			"  " + formatter.StyleYellow.Render(formatter.Elapsed(m.app.Tracker.Elapsed()))
	}
	return line
}

func (m appModel) renderContent() string {
	now := m.app.Clock.Now()
	active := m.tabs[m.tabIndex]

	if active == domain.TabAdmin {
		return formatter.RenderBox("Time Entries",
			formatter.EntriesTable(m.app.Directory, m.app.reportEntries(), now)) +
			"\n" +
			formatter.RenderBox("Users", formatter.UsersTable(m.users))
	}

	// Activity tabs show today's totals for their own activity label.
	var tabEntries []domain.TimeEntry
	for _, e := range m.app.reportEntries() {
		if e.Activity == string(active) {
			tabEntries = append(tabEntries, e)
		}
	}
	totals := report.Totals(m.app.Directory, tabEntries, report.Options{Date: now, Now: now})
	return formatter.RenderBox(active.Label(), formatter.DayTotals(m.app.Directory, totals))
}

func (m appModel) renderHelp() string {
	bindings := []key.Binding{
		m.keys.NextTab, m.keys.Start, m.keys.Stop, m.keys.Report, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, formatter.StyleFg.Render(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim("  •  "))
}

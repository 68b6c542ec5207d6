package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harborworks/tidelog/internal/repository"
	"github.com/harborworks/tidelog/internal/store"
	"github.com/harborworks/tidelog/internal/testutil"
	"github.com/harborworks/tidelog/internal/tracker"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *clockwork.FakeClock) {
	t.Helper()
	db := testutil.NewTestDB(t)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local))
	entryStore := store.NewEntryStore(db, nil)

	return &App{
		Directory:     testutil.NewTestDirectory(),
		Store:         entryStore,
		Tracker:       tracker.New(entryStore, clock),
		Users:         repository.NewSQLiteUserRepo(db),
		Clock:         clock,
		UserID:        "admin",
		IsInteractive: func() bool { return false },
	}, clock
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestProjectsCmd_ListsDirectory(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := execute(t, app, "projects")
	require.NoError(t, err)
	assert.Contains(t, out, "Deck")
	assert.Contains(t, out, "Marina")
}

func TestEntriesCmd_ListAndRemove(t *testing.T) {
	app, _ := newTestApp(t)
	e := testutil.NewTestEntry("1", testutil.WithUser("jane"))
	app.Store.Append(e)
	app.Store.Append(testutil.NewTestEntry("2", testutil.WithUser("bob")))

	out, err := execute(t, app, "entries", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Deck")
	assert.Contains(t, out, "Marina")

	out, err = execute(t, app, "entries", "list", "--user", "jane")
	require.NoError(t, err)
	assert.Contains(t, out, "Deck")
	assert.NotContains(t, out, "Marina")

	out, err = execute(t, app, "entries", "remove", e.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed entry")
	assert.Equal(t, 1, app.Store.Len())

	_, err = execute(t, app, "entries", "remove", e.ID)
	assert.Error(t, err, "removing a missing entry fails")
}

func TestReportCmd_Print(t *testing.T) {
	app, clock := newTestApp(t)
	start := clock.Now()
	app.Store.Append(testutil.NewTestEntry("1",
		testutil.WithStart(start), testutil.WithEnd(start.Add(90*time.Minute))))

	out, err := execute(t, app, "report", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily Time Tracking Report - Mon Mar 09 2026")
	assert.Contains(t, out, "Deck: 1h 30m")
	assert.Contains(t, out, "Approved by Site Manager: ____________________")
}

func TestReportCmd_WritesArtifact(t *testing.T) {
	app, _ := newTestApp(t)
	outDir := t.TempDir()

	out, err := execute(t, app, "report", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	path := filepath.Join(outDir, "daily_report_2026-03-09.txt")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Daily Time Tracking Report")
}

func TestReportCmd_ExplicitDateAndUser(t *testing.T) {
	app, _ := newTestApp(t)
	day := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	app.Store.Append(testutil.NewTestEntry("1", testutil.WithUser("jane"),
		testutil.WithStart(day), testutil.WithEnd(day.Add(time.Hour))))
	app.Store.Append(testutil.NewTestEntry("2", testutil.WithUser("bob"),
		testutil.WithStart(day), testutil.WithEnd(day.Add(30*time.Minute))))

	out, err := execute(t, app, "report", "--print", "--date", "2026-03-01", "--user", "jane")
	require.NoError(t, err)
	assert.Contains(t, out, "Deck: 1h 0m")
	assert.NotContains(t, out, "Marina")

	_, err = execute(t, app, "report", "--date", "3/1/2026")
	assert.Error(t, err, "malformed date must be rejected")
}

func TestReportCmd_IncludesOpenSession(t *testing.T) {
	app, clock := newTestApp(t)

	app.Tracker.Start("2", "production", "admin")
	clock.Advance(20 * time.Minute)

	out, err := execute(t, app, "report", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "Marina: 0h 20m")
}

func TestUsersCmd_CRUD(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := execute(t, app, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "John Doe")

	out, err = execute(t, app, "users", "add",
		"--name", "Mary Major", "--email", "mary@example.com", "--role", "Engineer")
	require.NoError(t, err)
	assert.Contains(t, out, "Added user Mary Major")

	_, err = execute(t, app, "users", "add",
		"--name", "Bad Role", "--email", "bad@example.com", "--role", "Captain")
	assert.Error(t, err)

	out, err = execute(t, app, "users", "update", "2", "--role", "Manager")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated user 2")

	out, err = execute(t, app, "users", "remove", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed user 3")

	out, err = execute(t, app, "users", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Bob Johnson")
}

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harborworks/tidelog/internal/domain"
	"github.com/harborworks/tidelog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 9, hour, min, 0, 0, time.Local)
}

func TestCompile_EndToEnd(t *testing.T) {
	dir := testutil.NewTestDirectory()
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("1", testutil.WithStart(at(9, 0)), testutil.WithEnd(at(10, 30))),
		testutil.NewTestEntry("2", testutil.WithStart(at(11, 0)), testutil.StillOpen()),
	}

	got := Compile(dir, entries, Options{Date: testDay, Now: at(11, 20)})

	want := "Daily Time Tracking Report - Mon Mar 09 2026\n\n" +
		"Deck: 1h 30m\n" +
		"Marina: 0h 20m\n" +
		"\nApproved by Site Manager: ____________________"
	assert.Equal(t, want, got)
}

func TestCompile_EmptyDayHasHeaderAndFooterOnly(t *testing.T) {
	dir := testutil.NewTestDirectory()

	got := Compile(dir, nil, Options{Date: testDay, Now: at(12, 0)})

	assert.Equal(t,
		"Daily Time Tracking Report - Mon Mar 09 2026\n\n"+
			"\nApproved by Site Manager: ____________________",
		got)
	assert.NotContains(t, got, "Deck")
	assert.NotContains(t, got, "Marina")
}

func TestCompile_DirectoryOrderNotEntryOrder(t *testing.T) {
	dir := testutil.NewTestDirectory() // order: Deck (1), Marina (2)
	entries := []domain.TimeEntry{
		// Entries arrive Marina first.
		testutil.NewTestEntry("2", testutil.WithStart(at(8, 0)), testutil.WithEnd(at(9, 0))),
		testutil.NewTestEntry("1", testutil.WithStart(at(10, 0)), testutil.WithEnd(at(11, 0))),
	}

	got := Compile(dir, entries, Options{Date: testDay, Now: at(12, 0)})

	deck := strings.Index(got, "Deck:")
	marina := strings.Index(got, "Marina:")
	require.GreaterOrEqual(t, deck, 0)
	require.GreaterOrEqual(t, marina, 0)
	assert.Less(t, deck, marina, "report must follow directory order")
}

func TestCompile_MidnightSpanBelongsToStartDay(t *testing.T) {
	dir := testutil.NewTestDirectory()
	start := time.Date(2026, 3, 9, 23, 59, 0, 0, time.Local)
	end := start.Add(11 * time.Minute) // 00:10 next day
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("1", testutil.WithStart(start), testutil.WithEnd(end)),
	}

	dayD := Compile(dir, entries, Options{Date: testDay, Now: end})
	assert.Contains(t, dayD, "Deck: 0h 11m", "full duration counts on the start day")

	dayAfter := Compile(dir, entries, Options{Date: testDay.AddDate(0, 0, 1), Now: end})
	assert.NotContains(t, dayAfter, "Deck:", "the entry must not appear on the end day")
}

func TestCompile_OpenEntryGrowsOnResample(t *testing.T) {
	dir := testutil.NewTestDirectory()
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("1", testutil.WithStart(at(9, 0)), testutil.StillOpen()),
	}

	first := Compile(dir, entries, Options{Date: testDay, Now: at(9, 45)})
	assert.Contains(t, first, "Deck: 0h 45m")

	later := Compile(dir, entries, Options{Date: testDay, Now: at(11, 15)})
	assert.Contains(t, later, "Deck: 2h 15m")
}

func TestCompile_UserFilter(t *testing.T) {
	dir := testutil.NewTestDirectory()
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("1", testutil.WithUser("jane"),
			testutil.WithStart(at(9, 0)), testutil.WithEnd(at(10, 0))),
		testutil.NewTestEntry("2", testutil.WithUser("bob"),
			testutil.WithStart(at(9, 0)), testutil.WithEnd(at(9, 30))),
	}

	got := Compile(dir, entries, Options{Date: testDay, UserID: "jane", Now: at(12, 0)})
	assert.Contains(t, got, "Deck: 1h 0m")
	assert.NotContains(t, got, "Marina:")

	all := Compile(dir, entries, Options{Date: testDay, Now: at(12, 0)})
	assert.Contains(t, all, "Marina: 0h 30m")
}

func TestCompile_UnknownProjectEntriesAreSkipped(t *testing.T) {
	dir := testutil.NewTestDirectory()
	entries := []domain.TimeEntry{
		testutil.NewTestEntry("99", testutil.WithStart(at(9, 0)), testutil.WithEnd(at(10, 0))),
	}

	got := Compile(dir, entries, Options{Date: testDay, Now: at(12, 0)})
	assert.NotContains(t, got, "99")
	assert.NotContains(t, got, "Deck:")
}

func TestFormatDuration_Floors(t *testing.T) {
	assert.Equal(t, "1h 30m", FormatDuration(90*time.Minute))
	assert.Equal(t, "0h 45m", FormatDuration(45*time.Minute))
	assert.Equal(t, "0h 0m", FormatDuration(59*time.Second))
	assert.Equal(t, "2h 0m", FormatDuration(2*time.Hour+59*time.Second))
	assert.Equal(t, "0h 0m", FormatDuration(-time.Minute))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "daily_report_2026-03-09.txt", Filename(testDay))
}

func TestWriteArtifact(t *testing.T) {
	tmp := t.TempDir()
	out := filepath.Join(tmp, "reports")

	path, err := WriteArtifact(out, testDay, "report body")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "daily_report_2026-03-09.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report body", string(data))
}

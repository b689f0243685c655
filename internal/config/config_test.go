package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/daypick"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	opts, warnings, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, warnings)

	cfg := daypick.Resolve(opts)
	require.Equal(t, daypick.ModeSingle, cfg.SelectionMode)
	require.Equal(t, daypick.View2Month, cfg.View)
	require.Equal(t, "Select a Date...", cfg.Placeholder)
}

func TestLoadReadsAllRecognizedKeys(t *testing.T) {
	path := writeConfig(t, `
selection_mode = "range"
date_format = "long"
placeholder = "Pick travel dates"
confirmation = true
dim_weekends = true
view = "1-month"
week_starts_on = "Monday"
range_increment = 7
min_date = "2024-01-01"
max_date = "2024-12-31"
blocked_dates = ["2024-07-04", "2024-12-25"]
`)

	opts, warnings, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, warnings)

	cfg := daypick.Resolve(opts)
	require.Equal(t, daypick.ModeRange, cfg.SelectionMode)
	require.Equal(t, daypick.FormatLong, cfg.DateFormat)
	require.Equal(t, "Pick travel dates", cfg.Placeholder)
	require.True(t, cfg.Confirmation)
	require.True(t, cfg.DimWeekends)
	require.Equal(t, daypick.View1Month, cfg.View)
	require.Equal(t, time.Monday, cfg.WeekStartsOn)
	require.Equal(t, 7, cfg.RangeIncrement)
	require.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), cfg.MinDate)
	require.True(t, cfg.Blocked(time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)))
	require.True(t, cfg.Blocked(time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)))
	require.False(t, cfg.Blocked(time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC)))
}

func TestLoadWarnsOnUnknownKeyWithSuggestion(t *testing.T) {
	path := writeConfig(t, `
selection_mode = "multi"
selektion_mode = "range"
`)

	opts, warnings, err := Load(path)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], `"selektion_mode"`)
	require.Contains(t, warnings[0], `did you mean "selection_mode"`)

	require.Equal(t, daypick.ModeMulti, daypick.Resolve(opts).SelectionMode)
}

func TestLoadWarnsOnBadDateAndKeepsGoing(t *testing.T) {
	path := writeConfig(t, `
min_date = "first of March"
blocked_dates = ["2024-03-05", "not-a-date"]
`)

	opts, warnings, err := Load(path)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	require.Contains(t, warnings[0], "min_date")
	require.Contains(t, warnings[1], `"not-a-date"`)

	cfg := daypick.Resolve(opts)
	require.True(t, cfg.MinDate.IsZero())
	require.True(t, cfg.Blocked(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, `selection_mode = [broken`)

	_, _, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	err := Save(path, daypick.Options{
		SelectionMode: daypick.ModeRange,
		DateFormat:    daypick.FormatLong,
		WeekStartsOn:  "Monday",
		BlockedDates:  []time.Time{time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	opts, warnings, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, warnings)

	cfg := daypick.Resolve(opts)
	require.Equal(t, daypick.ModeRange, cfg.SelectionMode)
	require.Equal(t, daypick.FormatLong, cfg.DateFormat)
	require.Equal(t, time.Monday, cfg.WeekStartsOn)
	require.True(t, cfg.Blocked(time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)))
}

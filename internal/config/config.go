// Package config loads daypick options from a TOML file and environment,
// including blocked dates sourced from an ICS holiday calendar.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"

	"github.com/jask/daypick"
)

const (
	envPrefix = "DAYPICK"
	dayLayout = "2006-01-02"

	// defaultHorizonDays bounds recurring-holiday expansion around today.
	defaultHorizonDays = 365
)

// recognizedKeys is the fixed table of option keys the loader accepts.
// Anything else in the file is reported with a nearest-key suggestion.
var recognizedKeys = []string{
	"anchor_variant",
	"blocked_dates",
	"confirmation",
	"contiguous_selection",
	"date_format",
	"dim_weekends",
	"holidays_ics",
	"horizon_days",
	"max_date",
	"min_date",
	"placeholder",
	"range_increment",
	"selection_mode",
	"view",
	"week_starts_on",
}

// Dir returns the directory for daypick config files.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "daypick"), nil
}

// Path returns the config file location: $DAYPICK_CONFIG when set,
// otherwise the default under the user config directory.
func Path() (string, error) {
	if p := os.Getenv("DAYPICK_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads options from the TOML file at path (resolved via Path when
// empty) and DAYPICK_* environment overrides. A missing file is not an
// error: defaults apply. The returned warnings describe recoverable
// problems, such as unknown keys, unparseable dates, or an unreadable
// ICS feed, that degrade to defaults rather than failing the picker.
func Load(path string) (daypick.Options, []string, error) {
	var warnings []string

	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return daypick.Options{}, nil, err
		}
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return daypick.Options{}, nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	warnings = append(warnings, unknownKeyWarnings(v.AllKeys())...)

	opts := daypick.Options{
		AnchorVariant:       v.GetString("anchor_variant"),
		Confirmation:        v.GetBool("confirmation"),
		ContiguousSelection: v.GetBool("contiguous_selection"),
		DateFormat:          v.GetString("date_format"),
		DimWeekends:         v.GetBool("dim_weekends"),
		Placeholder:         v.GetString("placeholder"),
		RangeIncrement:      v.GetInt("range_increment"),
		SelectionMode:       daypick.Mode(v.GetString("selection_mode")),
		View:                daypick.View(v.GetString("view")),
		WeekStartsOn:        v.GetString("week_starts_on"),
	}

	if raw := v.GetString("min_date"); raw != "" {
		if t, err := time.Parse(dayLayout, raw); err == nil {
			opts.MinDate = t
		} else {
			warnings = append(warnings, fmt.Sprintf("min_date %q is not a YYYY-MM-DD date, ignored", raw))
		}
	}
	if raw := v.GetString("max_date"); raw != "" {
		if t, err := time.Parse(dayLayout, raw); err == nil {
			opts.MaxDate = t
		} else {
			warnings = append(warnings, fmt.Sprintf("max_date %q is not a YYYY-MM-DD date, ignored", raw))
		}
	}

	for _, raw := range v.GetStringSlice("blocked_dates") {
		t, err := time.Parse(dayLayout, strings.TrimSpace(raw))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("blocked_dates entry %q is not a YYYY-MM-DD date, ignored", raw))
			continue
		}
		opts.BlockedDates = append(opts.BlockedDates, t)
	}

	if icsPath := v.GetString("holidays_ics"); icsPath != "" {
		horizon := v.GetInt("horizon_days")
		if horizon <= 0 {
			horizon = defaultHorizonDays
		}
		today := daypick.Day(time.Now())
		days, err := BlockedDaysFromICS(icsPath, today.AddDate(0, 0, -horizon), today.AddDate(0, 0, horizon))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("holidays_ics %s: %v", icsPath, err))
		} else {
			opts.BlockedDates = append(opts.BlockedDates, days...)
		}
	}

	return opts, warnings, nil
}

// unknownKeyWarnings flags file keys outside the recognized table, with a
// did-you-mean suggestion when a recognized key is within edit distance 3.
func unknownKeyWarnings(keys []string) []string {
	var out []string
	sort.Strings(keys)
	for _, k := range keys {
		if isRecognized(k) {
			continue
		}
		msg := fmt.Sprintf("unknown option %q, ignored", k)
		if s := nearestKey(k); s != "" {
			msg = fmt.Sprintf("unknown option %q, ignored (did you mean %q?)", k, s)
		}
		out = append(out, msg)
	}
	return out
}

func isRecognized(key string) bool {
	for _, k := range recognizedKeys {
		if k == key {
			return true
		}
	}
	return false
}

func nearestKey(key string) string {
	best, bestDist := "", 4
	for _, k := range recognizedKeys {
		if d := levenshtein.ComputeDistance(key, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// ---------------------------------------------------------------------------
// Bootstrap / save
// ---------------------------------------------------------------------------

// fileConfig is the on-disk TOML shape written by Save.
type fileConfig struct {
	SelectionMode       string   `toml:"selection_mode"`
	DateFormat          string   `toml:"date_format"`
	Placeholder         string   `toml:"placeholder"`
	Confirmation        bool     `toml:"confirmation"`
	ContiguousSelection bool     `toml:"contiguous_selection"`
	DimWeekends         bool     `toml:"dim_weekends"`
	View                string   `toml:"view"`
	WeekStartsOn        string   `toml:"week_starts_on"`
	AnchorVariant       string   `toml:"anchor_variant"`
	RangeIncrement      int      `toml:"range_increment"`
	MinDate             string   `toml:"min_date,omitempty"`
	MaxDate             string   `toml:"max_date,omitempty"`
	BlockedDates        []string `toml:"blocked_dates,omitempty"`
}

// Save writes opts to path as TOML, creating parent directories. Used by
// `daypick init` to bootstrap an editable config file.
func Save(path string, opts daypick.Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	resolved := daypick.Resolve(opts)
	fc := fileConfig{
		SelectionMode:       string(resolved.SelectionMode),
		DateFormat:          resolved.DateFormat,
		Placeholder:         resolved.Placeholder,
		Confirmation:        resolved.Confirmation,
		ContiguousSelection: resolved.ContiguousSelection,
		DimWeekends:         resolved.DimWeekends,
		View:                string(resolved.View),
		WeekStartsOn:        resolved.WeekStartsOn.String(),
		AnchorVariant:       resolved.AnchorVariant,
		RangeIncrement:      resolved.RangeIncrement,
	}
	if !resolved.MinDate.IsZero() {
		fc.MinDate = resolved.MinDate.Format(dayLayout)
	}
	if !resolved.MaxDate.IsZero() {
		fc.MaxDate = resolved.MaxDate.Format(dayLayout)
	}
	for _, d := range resolved.BlockedDates {
		fc.BlockedDates = append(fc.BlockedDates, d.Format(dayLayout))
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fc); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

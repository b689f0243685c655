// Command daypick is an interactive calendar date picker for the
// terminal. It prints the committed selection on exit so it can be used
// from scripts and shell pipelines.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/daypick"
	"github.com/jask/daypick/internal/config"
	"github.com/jask/daypick/internal/tui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

type rootFlags struct {
	configPath  string
	mode        string
	format      string
	view        string
	placeholder string
	weekStart   string
	minDate     string
	maxDate     string
	value       string
	confirm     bool
	dimWeekends bool
}

func newRootCommand() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "daypick",
		Short: "Pick a date, several dates, or a date range in the terminal.",
		Example: `
daypick
daypick --mode range --value 2024-03-05..2024-03-10
daypick --mode multi --value 2024-03-05,2024-03-12 --confirm
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default $DAYPICK_CONFIG or the user config dir)")
	cmd.Flags().StringVar(&f.mode, "mode", "", "selection mode: single, multi, or range")
	cmd.Flags().StringVar(&f.format, "format", "", "display format: short, long, or a Go time layout")
	cmd.Flags().StringVar(&f.view, "view", "", "calendar view: 1-month or 2-month")
	cmd.Flags().StringVar(&f.placeholder, "placeholder", "", "text shown while nothing is selected")
	cmd.Flags().StringVar(&f.weekStart, "week-start", "", "first day of the week: Sunday or Monday")
	cmd.Flags().StringVar(&f.minDate, "min", "", "earliest selectable day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.maxDate, "max", "", "latest selectable day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.value, "value", "", "initial selection: a date, a comma list, or FROM..TO")
	cmd.Flags().BoolVar(&f.confirm, "confirm", false, "hold changes until explicitly saved")
	cmd.Flags().BoolVar(&f.dimWeekends, "dim-weekends", false, "render weekends dimmed")

	cmd.AddCommand(newInitCommand())
	return cmd
}

func runPicker(cmd *cobra.Command, f *rootFlags) error {
	opts, warnings, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, f, &opts)

	sel, err := tui.Run(opts, parseValueFlag(f.value), warnings)
	if err != nil {
		return err
	}
	fmt.Println(daypick.Format(sel, daypick.Resolve(opts)))
	return nil
}

// applyFlagOverrides layers explicitly set flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, f *rootFlags, opts *daypick.Options) {
	set := cmd.Flags().Changed
	if set("mode") {
		opts.SelectionMode = daypick.Mode(f.mode)
	}
	if set("format") {
		opts.DateFormat = f.format
	}
	if set("view") {
		opts.View = daypick.View(f.view)
	}
	if set("placeholder") {
		opts.Placeholder = f.placeholder
	}
	if set("week-start") {
		opts.WeekStartsOn = f.weekStart
	}
	if set("confirm") {
		opts.Confirmation = f.confirm
	}
	if set("dim-weekends") {
		opts.DimWeekends = f.dimWeekends
	}
	if set("min") {
		if t, err := time.Parse("2006-01-02", f.minDate); err == nil {
			opts.MinDate = t
		} else {
			fmt.Fprintf(os.Stderr, "warning: --min %q is not a YYYY-MM-DD date, ignored\n", f.minDate)
		}
	}
	if set("max") {
		if t, err := time.Parse("2006-01-02", f.maxDate); err == nil {
			opts.MaxDate = t
		} else {
			fmt.Fprintf(os.Stderr, "warning: --max %q is not a YYYY-MM-DD date, ignored\n", f.maxDate)
		}
	}
}

// parseValueFlag turns the --value string into a shape the engine's
// parser accepts: FROM..TO becomes a date pair, a comma list becomes a
// string slice, anything else passes through as a single string.
func parseValueFlag(raw string) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if from, to, ok := strings.Cut(raw, ".."); ok {
		pair := daypick.DateRange{}
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(from)); err == nil {
			pair.From = t
		}
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(to)); err == nil {
			pair.To = t
		}
		return pair
	}
	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return raw
}

func newInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file to edit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := config.Save(path, daypick.Options{}); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libexercises/activity"
	"github.com/sgostarter/libexercises/activity/impls/fmstorage"
	"github.com/sgostarter/libexercises/statistic/calendar"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	dataRoot   string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "activityreport",
		Short:        "Reports over an activity log",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "analyzer yaml config")
	root.PersistentFlags().StringVar(&opts.dataRoot, "data", "", "keep the activity log under this directory")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline steps")

	root.AddCommand(
		newImportCmd(opts),
		newReportCmd(opts, "weekday", "Mean cycling hours per weekday", printWeekday),
		newReportCmd(opts, "longest", "Longest run per year", printLongest),
		newReportCmd(opts, "gaps", "Longest pauses between activities", printGaps),
		newReportCmd(opts, "window", "Largest rolling-window training totals", printWindow),
		newCalendarCmd(opts),
	)

	return root
}

func (opts *options) logger() l.Wrapper {
	if opts.verbose {
		return l.NewConsoleLoggerWrapper()
	}

	return l.NewNopLoggerWrapper()
}

func (opts *options) storage(logger l.Wrapper) activity.Storage {
	if opts.dataRoot == "" {
		return activity.NewMemStorage()
	}

	return fmstorage.NewFMStorage(opts.dataRoot, nil, logger)
}

func (opts *options) analyzer(ctx context.Context, csvFiles []string) (*activity.Analyzer, error) {
	logger := opts.logger()

	var cfg *activity.Config

	if opts.configFile != "" {
		var err error

		cfg, err = activity.LoadConfig(opts.configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	analyzer := activity.NewAnalyzer(opts.storage(logger), cfg, logger)

	for _, file := range csvFiles {
		f, err := readCSVFile(file)
		if err != nil {
			return nil, err
		}

		if _, err = analyzer.Add(ctx, f...); err != nil {
			return nil, fmt.Errorf("import %s: %w", file, err)
		}
	}

	return analyzer, nil
}

func readCSVFile(file string) (activity.Frame, error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = fh.Close()
	}()

	f, err := activity.ReadCSV(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return f, nil
}

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv>...",
		Short: "Add csv exports to the activity log under --data",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dataRoot == "" {
				return fmt.Errorf("import needs --data")
			}

			_, err := opts.analyzer(cmd.Context(), args)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d file(s)\n", len(args))

			return nil
		},
	}
}

type printer func(ctx context.Context, w io.Writer, analyzer *activity.Analyzer) error

func newReportCmd(opts *options, use, short string, fn printer) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [csv]...",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := opts.analyzer(cmd.Context(), args)
			if err != nil {
				return err
			}

			return fn(cmd.Context(), cmd.OutOrStdout(), analyzer)
		},
	}
}

func printWeekday(ctx context.Context, w io.Writer, analyzer *activity.Analyzer) error {
	rows, err := analyzer.HoursCyclingByWeekday(ctx)
	if err != nil {
		return err
	}

	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%-10s %8.0fs %6.2fh\n", r.Weekday, r.ElapsedTime.Seconds(), r.Hours)
	}

	return nil
}

func printLongest(ctx context.Context, w io.Writer, analyzer *activity.Analyzer) error {
	rows, err := analyzer.LongestRunPerYear(ctx)
	if err != nil {
		return err
	}

	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%d %10.1f\n", r.Year, r.Distance)
	}

	return nil
}

func printGaps(ctx context.Context, w io.Writer, analyzer *activity.Analyzer) error {
	rows, err := analyzer.LongestTimeGaps(ctx)
	if err != nil {
		return err
	}

	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%s %-8s %s\n", r.Activity.StartDateLocal.Format(time.DateTime), r.Activity.Type, r.Gap)
	}

	return nil
}

func printWindow(ctx context.Context, w io.Writer, analyzer *activity.Analyzer) error {
	rows, err := analyzer.TotalTimeWindow(ctx)
	if err != nil {
		return err
	}

	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%s %-8s %6.2fh\n", r.Activity.StartDateLocal.Format(time.DateTime), r.Activity.Type, r.Hours)
	}

	return nil
}

func newCalendarCmd(opts *options) *cobra.Command {
	var (
		at           string
		activityType string
	)

	cmd := &cobra.Command{
		Use:   "calendar [csv]...",
		Short: "Totals of the year, quarter, month, week and day around a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now()

			if at != "" {
				var err error

				t, err = cast.ToTimeE(at)
				if err != nil {
					return fmt.Errorf("bad --at: %w", err)
				}
			}

			logger := opts.logger()

			f, err := opts.storage(logger).All(cmd.Context())
			if err != nil {
				return err
			}

			for _, file := range args {
				ff, err := readCSVFile(file)
				if err != nil {
					return err
				}

				f = append(f, ff...)
			}

			c := calendar.NewCalendar(t.Location(), "", nil, logger)
			if err = c.AddFrame(f); err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			for _, bucket := range []struct {
				name string
				fn   func(key string, at time.Time) (calendar.Totals, bool)
			}{
				{"year", c.Year},
				{"quarter", c.Quarter},
				{"month", c.Month},
				{"week", c.Week},
				{"day", c.Day},
			} {
				totals, _ := bucket.fn(activityType, t)

				_, _ = fmt.Fprintf(w, "%-8s %4d %10s %10.1f\n", bucket.name, totals.Count, totals.ElapsedTime, totals.Distance)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "date inside the buckets, defaults to now")
	cmd.Flags().StringVarP(&activityType, "type", "t", activity.DefaultRunningType, "activity type")

	return cmd
}

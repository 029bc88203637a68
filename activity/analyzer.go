package activity

import (
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libexercises/pipeline"
)

const (
	reportWeekday = "hoursCyclingByWeekday"
	reportLongest = "longestRunPerYear"
	reportGaps    = "longestTimeGaps"
	reportWindow  = "totalTimeWindow"
)

// Analyzer answers the activity reports from a Storage. Results are cached until
// the cache entry expires or activities are added through the Analyzer.
type Analyzer struct {
	logger  l.Wrapper
	storage Storage
	cfg     Config

	results *cache.Cache
}

func NewAnalyzer(storage Storage, cfg *Config, logger l.Wrapper) *Analyzer {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "activityAnalyzer"))

	if storage == nil {
		logger.Error("no storage")

		return nil
	}

	var c Config
	if cfg != nil {
		c = *cfg
	}

	c.fix()

	return &Analyzer{
		logger:  logger,
		storage: storage,
		cfg:     c,
		results: cache.New(c.CacheExpiration, c.CacheExpiration*2),
	}
}

func (a *Analyzer) Config() Config {
	return a.cfg
}

func (a *Analyzer) Add(ctx context.Context, activities ...Activity) (ids []uint64, err error) {
	ids, err = a.storage.Add(ctx, activities...)
	if err != nil {
		a.logger.WithFields(l.ErrorField(err), l.IntField("count", len(activities))).Error("add activities failed")

		return
	}

	a.results.Flush()

	return
}

func (a *Analyzer) Remove(ctx context.Context, id uint64) (err error) {
	err = a.storage.Remove(ctx, id)
	if err != nil {
		return
	}

	a.results.Flush()

	return
}

func (a *Analyzer) HoursCyclingByWeekday(ctx context.Context) ([]WeekdayHours, error) {
	return report[WeekdayHours](ctx, a, reportWeekday, func(f Frame) ([]WeekdayHours, error) {
		return HoursByWeekday(f, a.cfg.CyclingType), nil
	})
}

func (a *Analyzer) LongestRunPerYear(ctx context.Context) ([]YearDistance, error) {
	return report[YearDistance](ctx, a, reportLongest, func(f Frame) ([]YearDistance, error) {
		return LongestPerYear(f, a.cfg.RunningType), nil
	})
}

func (a *Analyzer) LongestTimeGaps(ctx context.Context) ([]Gap, error) {
	return report[Gap](ctx, a, reportGaps, func(f Frame) ([]Gap, error) {
		return LongestTimeGaps(f, a.cfg.TopN), nil
	})
}

func (a *Analyzer) TotalTimeWindow(ctx context.Context) ([]WindowTotal, error) {
	return report[WindowTotal](ctx, a, reportWindow, func(f Frame) ([]WindowTotal, error) {
		return WindowTotals(f, a.cfg.Window, a.cfg.TopN), nil
	})
}

func report[E any](ctx context.Context, a *Analyzer, name string, step pipeline.Step[Frame, []E]) (r []E, err error) {
	if v, ok := a.results.Get(name); ok {
		if cached, ok := v.([]E); ok {
			return clone(cached), nil
		}
	}

	f, err := a.storage.All(ctx)
	if err != nil {
		err = fmt.Errorf("load activities: %w", err)

		return
	}

	r, err = pipeline.Logged(name, step, a.logger)(f)
	if err != nil {
		return
	}

	a.results.SetDefault(name, clone(r))

	return
}

// clone keeps cached rows apart from the ones handed to callers. Rows hold no
// references, so a shallow copy is enough.
func clone[E any](vs []E) []E {
	if vs == nil {
		return nil
	}

	return append(make([]E, 0, len(vs)), vs...)
}

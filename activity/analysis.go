package activity

import (
	"sort"
	"time"
)

type WeekdayHours struct {
	Weekday     time.Weekday  `json:"weekday" yaml:"weekday"`
	ElapsedTime time.Duration `json:"elapsed_time" yaml:"elapsed_time"`
	Hours       float64       `json:"hours" yaml:"hours"`
}

type YearDistance struct {
	Year     int     `json:"year" yaml:"year"`
	Distance float64 `json:"distance" yaml:"distance"`
}

type Gap struct {
	Activity Activity      `json:"activity" yaml:"activity"`
	Gap      time.Duration `json:"gap" yaml:"gap"`
}

type WindowTotal struct {
	Activity Activity `json:"activity" yaml:"activity"`
	Hours    float64  `json:"hours" yaml:"hours"`
}

// mondayFirst maps time.Weekday onto 0 (Monday) .. 6 (Sunday).
func mondayFirst(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// HoursByWeekday averages the elapsed time of activities of the given type per
// day of week. Only weekdays that have activities are reported, Monday first.
func HoursByWeekday(f Frame, activityType string) []WeekdayHours {
	var (
		sums   [7]time.Duration
		counts [7]int
	)

	for _, a := range f.OfType(activityType) {
		idx := mondayFirst(a.StartDateLocal.Weekday())
		sums[idx] += a.ElapsedTime
		counts[idx]++
	}

	var r []WeekdayHours

	for idx := 0; idx < 7; idx++ {
		if counts[idx] == 0 {
			continue
		}

		mean := sums[idx] / time.Duration(counts[idx])

		r = append(r, WeekdayHours{
			Weekday:     time.Weekday((idx + 1) % 7),
			ElapsedTime: mean,
			Hours:       mean.Hours(),
		})
	}

	return r
}

// LongestPerYear returns the largest distance per calendar year for the given
// activity type, years ascending.
func LongestPerYear(f Frame, activityType string) []YearDistance {
	longest := make(map[int]float64)

	for _, a := range f.OfType(activityType) {
		year := a.StartDateLocal.Year()

		if d, ok := longest[year]; !ok || a.Distance > d {
			longest[year] = a.Distance
		}
	}

	r := make([]YearDistance, 0, len(longest))
	for year, d := range longest {
		r = append(r, YearDistance{Year: year, Distance: d})
	}

	sort.Slice(r, func(i, j int) bool {
		return r[i].Year < r[j].Year
	})

	return r
}

// LongestTimeGaps orders activities by start time and returns the n largest
// pauses before an activity, largest first. The first activity has no gap and is
// never reported. n <= 0 returns every gap.
func LongestTimeGaps(f Frame, n int) []Gap {
	sorted := f.SortedByStart()
	if len(sorted) < 2 {
		return nil
	}

	gaps := make([]Gap, 0, len(sorted)-1)

	for idx := 1; idx < len(sorted); idx++ {
		gaps = append(gaps, Gap{
			Activity: sorted[idx],
			Gap:      sorted[idx].StartDateLocal.Sub(sorted[idx-1].StartDateLocal),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Gap > gaps[j].Gap
	})

	return head(gaps, n)
}

// WindowTotals computes, for every activity, the total elapsed hours of all
// activities that started in (start-window, start], and returns the n largest
// totals. n <= 0 returns every activity.
func WindowTotals(f Frame, window time.Duration, n int) []WindowTotal {
	sorted := f.SortedByStart()
	if len(sorted) == 0 {
		return nil
	}

	totals := make([]WindowTotal, 0, len(sorted))

	var (
		lo  int
		sum time.Duration
	)

	for hi, a := range sorted {
		sum += a.ElapsedTime

		for lo <= hi && !sorted[lo].StartDateLocal.After(a.StartDateLocal.Add(-window)) {
			sum -= sorted[lo].ElapsedTime
			lo++
		}

		totals = append(totals, WindowTotal{
			Activity: sorted[hi],
			Hours:    sum.Hours(),
		})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Hours > totals[j].Hours
	})

	return head(totals, n)
}

func head[T any](vs []T, n int) []T {
	if n <= 0 || n >= len(vs) {
		return vs
	}

	return vs[:n]
}

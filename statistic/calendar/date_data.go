package calendar

import (
	"time"

	"github.com/jinzhu/now"
)

type Sample struct {
	At          time.Time
	ElapsedTime time.Duration
	Distance    float64
}

type Totals struct {
	Count       int           `json:"count,omitempty"`
	ElapsedTime time.Duration `json:"elapsedTime,omitempty"`
	Distance    float64       `json:"distance,omitempty"`
}

func (t Totals) Combine(s Sample) Totals {
	return Totals{
		Count:       t.Count + 1,
		ElapsedTime: t.ElapsedTime + s.ElapsedTime,
		Distance:    t.Distance + s.Distance,
	}
}

type MonthData struct {
	Totals Totals          `json:"totals"`
	Day    map[int]*Totals `json:"day,omitempty"`
}

type QuarterData struct {
	Totals Totals             `json:"totals"`
	Month  map[int]*MonthData `json:"month,omitempty"`
}

type YearData struct {
	Totals  Totals               `json:"totals"`
	Quarter map[int]*QuarterData `json:"quarter,omitempty"`
}

// Book is every bucket of one key. Weeks are keyed by the date their Monday
// falls on, so a week spanning two years is kept once.
type Book struct {
	Year map[int]*YearData  `json:"year,omitempty"`
	Week map[string]*Totals `json:"week,omitempty"`
}

func newBook() *Book {
	return &Book{
		Year: make(map[int]*YearData),
		Week: make(map[string]*Totals),
	}
}

type keys struct {
	year    int
	quarter int
	month   int
	day     int
	week    string
}

func keysAt(cfg *now.Config, t time.Time) keys {
	n := cfg.With(t.In(cfg.TimeLocation))

	return keys{
		year:    n.Year(),
		quarter: int(n.Quarter()),
		month:   int(n.Month()),
		day:     n.Day(),
		week:    n.BeginningOfWeek().Format("2006-01-02"),
	}
}

func (b *Book) add(k keys, s Sample) {
	yd, ok := b.Year[k.year]
	if !ok {
		yd = &YearData{Quarter: make(map[int]*QuarterData)}
		b.Year[k.year] = yd
	}

	qd, ok := yd.Quarter[k.quarter]
	if !ok {
		qd = &QuarterData{Month: make(map[int]*MonthData)}
		yd.Quarter[k.quarter] = qd
	}

	md, ok := qd.Month[k.month]
	if !ok {
		md = &MonthData{Day: make(map[int]*Totals)}
		qd.Month[k.month] = md
	}

	dd, ok := md.Day[k.day]
	if !ok {
		dd = &Totals{}
		md.Day[k.day] = dd
	}

	wd, ok := b.Week[k.week]
	if !ok {
		wd = &Totals{}
		b.Week[k.week] = wd
	}

	*dd = dd.Combine(s)
	*wd = wd.Combine(s)
	md.Totals = md.Totals.Combine(s)
	qd.Totals = qd.Totals.Combine(s)
	yd.Totals = yd.Totals.Combine(s)
}

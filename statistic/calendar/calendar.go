// Package calendar accumulates activity totals per key into year, quarter,
// month, week and day buckets.
package calendar

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/jinzhu/now"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libexercises/activity"
)

type books = map[string]*Book

type Calendar struct {
	logger l.Wrapper
	cfg    *now.Config

	d *mwf.MemWithFile[books, mwf.Serial, mwf.Lock]
}

// NewCalendar keeps the books in memory, and in fileName too when it is set.
// Weeks start on Monday in loc; nil loc means time.Local.
func NewCalendar(loc *time.Location, fileName string, storage stg.FileStorage, logger l.Wrapper) *Calendar {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if loc == nil {
		loc = time.Local
	}

	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &Calendar{
		logger: logger.WithFields(l.StringField(l.ClsKey, "calendar")),
		cfg: &now.Config{
			WeekStartDay: time.Monday,
			TimeLocation: loc,
		},
		d: mwf.NewMemWithFile[books, mwf.Serial, mwf.Lock](make(books), &mwf.JSONSerial{}, &sync.RWMutex{}, fileName, storage),
	}
}

func (c *Calendar) Add(key string, samples ...Sample) error {
	if len(samples) == 0 {
		return nil
	}

	err := c.d.Change(func(oldM books) (newM books, err error) {
		newM = oldM
		if newM == nil {
			newM = make(books)
		}

		b, ok := newM[key]
		if !ok {
			b = newBook()
			newM[key] = b
		}

		for _, s := range samples {
			b.add(keysAt(c.cfg, s.At), s)
		}

		return
	})
	if err != nil {
		c.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("add samples failed")
	}

	return err
}

// AddFrame books every activity under its type.
func (c *Calendar) AddFrame(f activity.Frame) error {
	byType := make(map[string][]Sample)

	for _, a := range f {
		byType[a.Type] = append(byType[a.Type], Sample{
			At:          a.StartDateLocal,
			ElapsedTime: a.ElapsedTime,
			Distance:    a.Distance,
		})
	}

	for t, samples := range byType {
		if err := c.Add(t, samples...); err != nil {
			return err
		}
	}

	return nil
}

func (c *Calendar) lookup(key string, at time.Time, fn func(b *Book, k keys) *Totals) (totals Totals, exists bool) {
	k := keysAt(c.cfg, at)

	c.d.Read(func(m books) {
		b, ok := m[key]
		if !ok {
			return
		}

		if t := fn(b, k); t != nil {
			totals = *t
			exists = true
		}
	})

	return
}

func (c *Calendar) Year(key string, at time.Time) (Totals, bool) {
	return c.lookup(key, at, func(b *Book, k keys) *Totals {
		if yd, ok := b.Year[k.year]; ok {
			return &yd.Totals
		}

		return nil
	})
}

func (c *Calendar) Quarter(key string, at time.Time) (Totals, bool) {
	return c.lookup(key, at, func(b *Book, k keys) *Totals {
		if qd := b.quarter(k); qd != nil {
			return &qd.Totals
		}

		return nil
	})
}

func (c *Calendar) Month(key string, at time.Time) (Totals, bool) {
	return c.lookup(key, at, func(b *Book, k keys) *Totals {
		if md := b.month(k); md != nil {
			return &md.Totals
		}

		return nil
	})
}

func (c *Calendar) Week(key string, at time.Time) (Totals, bool) {
	return c.lookup(key, at, func(b *Book, k keys) *Totals {
		return b.Week[k.week]
	})
}

func (c *Calendar) Day(key string, at time.Time) (Totals, bool) {
	return c.lookup(key, at, func(b *Book, k keys) *Totals {
		if md := b.month(k); md != nil {
			return md.Day[k.day]
		}

		return nil
	})
}

// Export returns a deep copy of the book of key.
func (c *Calendar) Export(key string) (b *Book, err error) {
	var d []byte

	c.d.Read(func(m books) {
		if src, ok := m[key]; ok {
			d, err = json.Marshal(src)
		} else {
			err = commerr.ErrNotFound
		}
	})

	if err != nil {
		return
	}

	b = newBook()
	err = json.Unmarshal(d, b)

	return
}

func (b *Book) quarter(k keys) *QuarterData {
	yd, ok := b.Year[k.year]
	if !ok {
		return nil
	}

	return yd.Quarter[k.quarter]
}

func (b *Book) month(k keys) *MonthData {
	qd := b.quarter(k)
	if qd == nil {
		return nil
	}

	return qd.Month[k.month]
}

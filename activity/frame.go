package activity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sgostarter/i/commerr"
)

const (
	ColumnID             = "id"
	ColumnType           = "type"
	ColumnStartDateLocal = "start_date_local"
	ColumnElapsedTime    = "elapsed_time"
	ColumnDistance       = "distance"
)

// Frame is an ordered table of activities.
type Frame []Activity

func (f Frame) Len() int {
	return len(f)
}

// Describe reports the row count and, per column, how many rows hold a zero value.
// A zero is counted as missing even when it was recorded, e.g. the distance of an
// indoor ride.
func (f Frame) Describe() string {
	var missingID, missingType, missingStart, missingElapsed, missingDistance int

	for _, a := range f {
		if a.ID == 0 {
			missingID++
		}

		if a.Type == "" {
			missingType++
		}

		if a.StartDateLocal.IsZero() {
			missingStart++
		}

		if a.ElapsedTime == 0 {
			missingElapsed++
		}

		if a.Distance == 0 {
			missingDistance++
		}
	}

	columns := []string{
		fmt.Sprintf("%s (%d missing)", ColumnID, missingID),
		fmt.Sprintf("%s (%d missing)", ColumnType, missingType),
		fmt.Sprintf("%s (%d missing)", ColumnStartDateLocal, missingStart),
		fmt.Sprintf("%s (%d missing)", ColumnElapsedTime, missingElapsed),
		fmt.Sprintf("%s (%d missing)", ColumnDistance, missingDistance),
	}

	return fmt.Sprintf("rows: %d, columns: %s", len(f), strings.Join(columns, ","))
}

func (f Frame) OfType(activityType string) Frame {
	r := make(Frame, 0, len(f))

	for _, a := range f {
		if a.Type == activityType {
			r = append(r, a)
		}
	}

	return r
}

// SortedByStart returns a copy ordered by start time, ties kept in input order.
func (f Frame) SortedByStart() Frame {
	r := append(Frame(nil), f...)

	sort.SliceStable(r, func(i, j int) bool {
		return r[i].StartDateLocal.Before(r[j].StartDateLocal)
	})

	return r
}

// CheckIDs rejects a batch that repeats a non-zero ID or holds one that exists
// already. exists may be nil.
func CheckIDs(activities []Activity, exists func(id uint64) bool) error {
	seen := make(map[uint64]struct{}, len(activities))

	for _, a := range activities {
		if a.ID == 0 {
			continue
		}

		if _, ok := seen[a.ID]; ok {
			return fmt.Errorf("%w: id %d repeated in batch", commerr.ErrAlreadyExists, a.ID)
		}

		seen[a.ID] = struct{}{}

		if exists != nil && exists(a.ID) {
			return fmt.Errorf("%w: id %d", commerr.ErrAlreadyExists, a.ID)
		}
	}

	return nil
}

// SortFrame orders f in place by start time, then by ID, and returns it.
func SortFrame(f Frame) Frame {
	sort.Slice(f, func(i, j int) bool {
		if !f[i].StartDateLocal.Equal(f[j].StartDateLocal) {
			return f[i].StartDateLocal.Before(f[j].StartDateLocal)
		}

		return f[i].ID < f[j].ID
	})

	return f
}

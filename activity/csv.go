package activity

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ReadCSV reads a header-led activity export. Unknown columns are ignored and
// empty cells leave the field at its zero value. elapsed_time is in seconds.
func ReadCSV(r io.Reader) (Frame, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
		}

		return nil, err
	}

	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}

	if _, ok := columns[ColumnStartDateLocal]; !ok {
		return nil, fmt.Errorf("%w: no %s column", ErrBadHeader, ColumnStartDateLocal)
	}

	var f Frame

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		a, err := parseRecord(columns, record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		f = append(f, a)
	}

	return f, nil
}

func parseRecord(columns map[string]int, record []string) (a Activity, err error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[idx])
	}

	if s := cell(ColumnID); s != "" {
		a.ID, err = cast.ToUint64E(s)
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrBadRecord, ColumnID, err)

			return
		}
	}

	a.Type = cell(ColumnType)

	if s := cell(ColumnStartDateLocal); s != "" {
		a.StartDateLocal, err = cast.ToTimeE(s)
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrBadRecord, ColumnStartDateLocal, err)

			return
		}
	}

	if s := cell(ColumnElapsedTime); s != "" {
		var seconds float64

		seconds, err = cast.ToFloat64E(s)
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrBadRecord, ColumnElapsedTime, err)

			return
		}

		a.ElapsedTime = time.Duration(seconds * float64(time.Second))
	}

	if s := cell(ColumnDistance); s != "" {
		a.Distance, err = cast.ToFloat64E(s)
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrBadRecord, ColumnDistance, err)

			return
		}
	}

	return
}

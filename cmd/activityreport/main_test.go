package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const utCSV = `type,start_date_local,elapsed_time,distance
Ride,2021-03-01 08:00:00,7200,50
Run,2021-03-02 08:00:00,3600,10
Ride,2021-03-08 08:00:00,3600,30
`

func writeCSV(t *testing.T) string {
	file := filepath.Join(t.TempDir(), "activities.csv")
	require.Nil(t, os.WriteFile(file, []byte(utCSV), 0600))

	return file
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestReports(t *testing.T) {
	file := writeCSV(t)

	out, err := run(t, "weekday", file)
	require.Nil(t, err)
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "1.50h")

	out, err = run(t, "longest", file)
	require.Nil(t, err)
	assert.Contains(t, out, "2021")
	assert.Contains(t, out, "10.0")

	out, err = run(t, "gaps", file)
	require.Nil(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	out, err = run(t, "window", file)
	require.Nil(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestImport(t *testing.T) {
	file := writeCSV(t)
	dataRoot := t.TempDir()

	_, err := run(t, "import", file)
	assert.NotNil(t, err)

	out, err := run(t, "--data", dataRoot, "import", file)
	require.Nil(t, err)
	assert.Contains(t, out, "imported 1 file(s)")

	out, err = run(t, "--data", dataRoot, "longest")
	require.Nil(t, err)
	assert.Contains(t, out, "2021")
}

func TestCalendar(t *testing.T) {
	file := writeCSV(t)

	out, err := run(t, "calendar", "--at", "2021-03-03", "--type", "Ride", file)
	require.Nil(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "year"))
	assert.Contains(t, lines[0], "80.0")
	assert.Contains(t, lines[3], "50.0")
	assert.Contains(t, lines[4], "0.0")
}

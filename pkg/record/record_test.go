package record

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2009, time.July, 6, 1, 13, 39, 0, time.UTC)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := FilePath(dir, "read_weight", "csv")
	require.Equal(t, filepath.Join(dir, "read_weight.csv"), path)

	w := New(WithClock(func() time.Time { return testTime }))
	rec, err := w.Write(path, 24)
	require.NoError(t, err)
	require.Equal(t, Record{Time: testTime, Weight: 24}, rec)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Date, Time, Weight\n06-07-2009, 01:13:39, 24\n", string(data))

	// No temporary files must be left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteReplacesExisting(t *testing.T) {
	path := FilePath(t.TempDir(), "out", "txt")
	require.NoError(t, os.WriteFile(path, []byte("previous content\nwith several\nlines\n"), 0600))

	_, err := New(WithClock(func() time.Time { return testTime })).Write(path, 0)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Date, Time, Weight\n06-07-2009, 01:13:39, 0\n", string(data))
}

func TestWriteMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	_, err := New().Write(FilePath(dir, "read_weight", "csv"), 423)
	require.Error(t, err)

	_, err = os.Stat(dir)
	require.True(t, os.IsNotExist(err))
}

func TestDefaultClock(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	rec, err := New().Write(FilePath(t.TempDir(), "read_weight", "csv"), 1)
	require.NoError(t, err)
	require.Equal(t, time.UTC, rec.Time.Location())
	require.True(t, rec.Time.After(before))
}

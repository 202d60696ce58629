package record

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	header     = "Date, Time, Weight\n"
	dateLayout = "02-01-2006"
	timeLayout = "15:04:05"

	filePerm = 0644
)

// Record denotes a single weight written to an output file
type Record struct {
	Time   time.Time
	Weight uint32
}

// String returns the record in its serialized form (without header)
func (r Record) String() string {
	return fmt.Sprintf("%s, %s, %d\n", r.Time.Format(dateLayout), r.Time.Format(timeLayout), r.Weight)
}

// Writer denotes a writer of weight records
type Writer struct {
	clock func() time.Time
}

// WithClock sets the source of the time stamp of written records
func WithClock(clock func() time.Time) func(*Writer) {
	return func(w *Writer) {
		w.clock = clock
	}
}

// New instantiates a new Writer, executing functional options, if any
func New(options ...func(*Writer)) *Writer {
	w := &Writer{
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}

	for _, option := range options {
		option(w)
	}

	return w
}

// FilePath returns the path of an output file named name.ext in dir
func FilePath(dir, name, ext string) string {
	return filepath.Join(dir, name+"."+ext)
}

// Write writes a header and a single record for weight to path, replacing any
// existing file. The file either appears complete or not at all
func (w *Writer) Write(path string, weight uint32) (rec Record, err error) {

	rec = Record{
		Time:   w.clock(),
		Weight: weight,
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return rec, fmt.Errorf("failed to create output file for `%s`: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(header + rec.String()); err != nil {
		return rec, fmt.Errorf("failed to write `%s`: %w", path, err)
	}
	if err = tmp.Chmod(filePerm); err != nil {
		return rec, fmt.Errorf("failed to set permissions of `%s`: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return rec, fmt.Errorf("failed to write `%s`: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return rec, fmt.Errorf("failed to move output file to `%s`: %w", path, err)
	}

	return rec, nil
}

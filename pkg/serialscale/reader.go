package serialscale

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/fako1024/serialscale/pkg/scale"
)

// LineReader denotes a line-oriented source of scale output
type LineReader interface {

	// ReadLine returns the next line without its line terminator
	ReadLine() (string, error)
}

type lineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps a byte stream (usually a serial port) into a LineReader.
// A read returning no data and no error (which is how a serial port signals an
// expired read timeout) is reported as ErrReadTimeout
func NewLineReader(r io.Reader) LineReader {
	return &lineReader{
		r: bufio.NewReader(&timeoutReader{r: r}),
	}
}

// ReadLine returns the next line, stripped of "\n" or "\r\n"
func (l *lineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {

		// Deliver a final unterminated line before reporting the end of the stream
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

type timeoutReader struct {
	r io.Reader
}

func (t *timeoutReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n == 0 && err == nil && len(p) > 0 {
		return 0, ErrReadTimeout
	}
	return n, err
}

////////////////////////////////////////////////////////////////////////////////

// ReadWeight reads lines from src until a complete scale frame has been received
// and returns its gross weight. Reading stops at the first recognized frame. If
// the stream ends or fails before that, a *DeviceReadError naming device is returned
func ReadWeight(src LineReader, device string, logger scale.Logger) (uint32, error) {
	if logger == nil {
		logger = &scale.NullLogger{}
	}

	var buf strings.Builder
	for {
		line, err := src.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrFrameNotFound
			}
			logger.Debugf("aborting read from device `%s` after %d bytes: %s", device, buf.Len(), err)
			return 0, &DeviceReadError{Device: device, Err: err}
		}
		logger.Debugf("received line from device `%s`: %q", device, line)

		buf.WriteString(line)
		buf.WriteByte('\n')

		weight, err := ParseFrame(buf.String())
		if err == nil {
			logger.Infof("found weight: %dkg", weight)
			return weight, nil
		}
		if !errors.Is(err, ErrIncompleteFrame) {
			return 0, &DeviceReadError{Device: device, Err: err}
		}
	}
}

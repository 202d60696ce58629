package serialscale

import (
	"io"
	"time"

	"github.com/fako1024/serialscale/pkg/scale"
)

// WithDeviceName sets the serial device to open, e.g. COM4 or /dev/ttyUSB0
func WithDeviceName(deviceName string) func(*SerialScale) {
	return func(s *SerialScale) {
		s.deviceName = deviceName
	}
}

// WithBaudRate overrides the default baud rate of the serial connection
func WithBaudRate(baudRate int) func(*SerialScale) {
	return func(s *SerialScale) {
		s.baudRate = baudRate
	}
}

// WithReadTimeout sets the maximum time a single read may block
func WithReadTimeout(timeout time.Duration) func(*SerialScale) {
	return func(s *SerialScale) {
		s.readTimeout = timeout
	}
}

// WithPort sets an already opened port to read from instead of opening the device
func WithPort(port io.ReadCloser) func(*SerialScale) {
	return func(s *SerialScale) {
		s.port = port
	}
}

// WithLogger sets a logger
func WithLogger(logger scale.Logger) func(*SerialScale) {
	return func(s *SerialScale) {
		s.logger = logger
	}
}

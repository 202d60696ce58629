package serialscale

import (
	"errors"
	"fmt"
)

var (

	// ErrIncompleteFrame denotes that no complete scale frame is present (yet)
	ErrIncompleteFrame = errors.New("no complete scale frame")

	// ErrFrameNotFound denotes that the stream ended before a complete frame was received
	ErrFrameNotFound = errors.New("stream ended before a complete scale frame was received")

	// ErrWeightOverflow denotes a gross weight exceeding the supported integer range
	ErrWeightOverflow = errors.New("gross weight exceeds supported range")

	// ErrReadTimeout denotes that the device did not provide any data within the read timeout
	ErrReadTimeout = errors.New("read timeout")

	// ErrNoDevice denotes that neither a device name nor an open port was provided
	ErrNoDevice = errors.New("no scale device specified")
)

// DeviceReadError denotes a failure to obtain a weight from a specific device
type DeviceReadError struct {
	Device string
	Err    error
}

// Error returns the error message, naming the device
func (e *DeviceReadError) Error() string {
	return fmt.Sprintf("unable to read from device %s: %s", e.Device, e.Err)
}

// Unwrap returns the underlying cause
func (e *DeviceReadError) Unwrap() error {
	return e.Err
}

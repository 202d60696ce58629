package scale

import "time"

// Basic denotes a basic weighing scale that provides a single reading per session
type Basic interface {

	// ConnectionStatus returns the current connection status of the scale device
	ConnectionStatus() ConnectionStatus

	// ReadWeight blocks until the scale reports a complete measurement or the
	// session fails
	ReadWeight() (DataPoint, error)

	// SetStateChangeHandler defines a handler function that is called upon state change
	SetStateChangeHandler(fn func(status ConnectionStatus))

	// Close terminates the connection to the device
	Close() error
}

// Timer denotes session timing functionality
type Timer interface {

	// ElapsedTime returns the duration of the last read session
	ElapsedTime() time.Duration
}

// Scale denotes the "default" scale containing all functionality
type Scale interface {
	Basic
	Timer
}

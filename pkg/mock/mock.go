package mock

import (
	"sync"
	"time"

	"github.com/fako1024/serialscale/pkg/scale"
	"github.com/fatih/stopwatch"
)

const (

	// DefaultWeight denotes the placeholder weight reported by the mock scale
	DefaultWeight = 423
)

// Mock denotes a mock scale that reports a fixed weight without any device interaction
type Mock struct {
	connectionStatus scale.ConnectionStatus
	statusMu         sync.Mutex

	weight  uint32
	readErr error

	timer *stopwatch.Stopwatch

	stateChangeHandler func(status scale.ConnectionStatus)
}

// WithWeight overrides the reported weight
func WithWeight(weight uint32) func(*Mock) {
	return func(m *Mock) {
		m.weight = weight
	}
}

// WithError causes every read to fail with the provided error
func WithError(err error) func(*Mock) {
	return func(m *Mock) {
		m.readErr = err
	}
}

// New instantiates a new Mock struct, executing functional options, if any
func New(options ...func(*Mock)) (*Mock, error) {

	// Initialize a new instance of a Mock scale
	m := &Mock{
		weight: DefaultWeight,
	}

	for _, option := range options {
		option(m)
	}

	m.setStatus(scale.StateConnected, nil)

	return m, nil
}

// ConnectionStatus returns the current status of the mock device
func (m *Mock) ConnectionStatus() scale.ConnectionStatus {
	m.statusMu.Lock()
	defer m.statusMu.Unlock()

	return m.connectionStatus
}

// SetStateChangeHandler defines a handler function that is called upon state change
func (m *Mock) SetStateChangeHandler(fn func(status scale.ConnectionStatus)) {
	m.statusMu.Lock()
	defer m.statusMu.Unlock()

	m.stateChangeHandler = fn
}

// ReadWeight returns the configured weight (or error)
func (m *Mock) ReadWeight() (scale.DataPoint, error) {
	m.timer = stopwatch.Start(0)
	defer m.timer.Stop()

	if m.readErr != nil {
		m.setStatus(scale.StateConnected, m.readErr)
		return scale.DataPoint{}, m.readErr
	}

	return scale.DataPoint{
		TimeStamp: time.Now(),
		Unit:      scale.UnitKilograms,
		Weight:    m.weight,
	}, nil
}

// ElapsedTime returns the duration of the last read
func (m *Mock) ElapsedTime() time.Duration {
	if m.timer != nil {
		return m.timer.ElapsedTime()
	}

	return 0
}

// Close terminates the connection to the mock device
func (m *Mock) Close() error {
	m.setStatus(scale.StateDisconnected, nil)

	return nil
}

////////////////////////////////////////////////////////////////////////////////

func (m *Mock) setStatus(state scale.State, err error) {
	status := scale.ConnectionStatus{
		State: state,
		Error: err,
	}

	m.statusMu.Lock()
	m.connectionStatus = status
	handler := m.stateChangeHandler
	m.statusMu.Unlock()

	// Call handler function, if any
	if handler != nil {
		handler(status)
	}
}

package serialscale

import (
	"io"
	"sync"
	"time"

	"github.com/fako1024/serialscale/pkg/scale"
	"github.com/fatih/stopwatch"
	"go.bug.st/serial"
)

const (
	defaultBaudRate    = 9600
	defaultReadTimeout = 1000 * time.Millisecond

	dataBits = 8
)

type readTimeoutSetter interface {
	SetReadTimeout(t time.Duration) error
}

// SerialScale denotes a scale connected via a serial line that prints a
// Date / Time / Gross block per measurement
type SerialScale struct {
	connectionStatus scale.ConnectionStatus
	statusMu         sync.Mutex

	deviceName  string
	baudRate    int
	readTimeout time.Duration

	port  io.ReadCloser
	lines LineReader

	timer *stopwatch.Stopwatch

	stateChangeHandler func(status scale.ConnectionStatus)

	logger scale.Logger
}

// New instantiates a new SerialScale struct, executing functional options, if any,
// and opens the serial device (unless a port was provided as option)
func New(options ...func(*SerialScale)) (*SerialScale, error) {

	// Initialize a new instance of a serial scale
	s := &SerialScale{
		baudRate:    defaultBaudRate,
		readTimeout: defaultReadTimeout,
		logger:      &scale.NullLogger{},
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(s)
	}

	// Open the serial device (if no port was provided as option)
	if s.port == nil {
		if s.deviceName == "" {
			return nil, ErrNoDevice
		}

		s.logger.Debugf("opening device `%s` (%d baud, 8N1)", s.deviceName, s.baudRate)
		port, err := serial.Open(s.deviceName, &serial.Mode{
			BaudRate: s.baudRate,
			DataBits: dataBits,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		})
		if err != nil {
			return nil, &DeviceReadError{Device: s.deviceName, Err: err}
		}
		s.port = port
	}

	if err := s.configureTimeout(); err != nil {
		_ = s.port.Close()
		return nil, &DeviceReadError{Device: s.deviceName, Err: err}
	}

	s.lines = NewLineReader(s.port)
	s.setStatus(scale.StateConnected, nil)

	return s, nil
}

// ConnectionStatus returns the current status of the serial device
func (s *SerialScale) ConnectionStatus() scale.ConnectionStatus {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	return s.connectionStatus
}

// SetStateChangeHandler defines a handler function that is called upon state change
func (s *SerialScale) SetStateChangeHandler(fn func(status scale.ConnectionStatus)) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	s.stateChangeHandler = fn
}

// ReadWeight reads from the device until a complete frame has been received
func (s *SerialScale) ReadWeight() (scale.DataPoint, error) {

	s.timer = stopwatch.Start(0)
	s.setStatus(scale.StateReading, nil)
	weight, err := ReadWeight(s.lines, s.deviceName, s.logger)
	s.timer.Stop()
	if err != nil {
		s.setStatus(scale.StateConnected, err)
		return scale.DataPoint{}, err
	}
	s.setStatus(scale.StateConnected, nil)

	s.logger.Debugf("read session on device `%s` took %v", s.deviceName, s.timer.ElapsedTime())

	return scale.DataPoint{
		TimeStamp: time.Now(),
		Unit:      scale.UnitKilograms,
		Weight:    weight,
	}, nil
}

// ElapsedTime returns the duration of the last read session
func (s *SerialScale) ElapsedTime() time.Duration {
	if s.timer != nil {
		return s.timer.ElapsedTime()
	}

	return 0
}

// Close terminates the connection to the device, unblocking any pending read
func (s *SerialScale) Close() error {
	err := s.port.Close()
	s.setStatus(scale.StateDisconnected, err)

	return err
}

// ListPorts returns the names of the serial ports available on this system
func ListPorts() ([]string, error) {
	return serial.GetPortsList()
}

////////////////////////////////////////////////////////////////////////////////

func (s *SerialScale) configureTimeout() error {
	setter, ok := s.port.(readTimeoutSetter)
	if !ok {
		s.logger.Debugf("port for device `%s` does not support read timeouts", s.deviceName)
		return nil
	}

	return setter.SetReadTimeout(s.readTimeout)
}

func (s *SerialScale) setStatus(state scale.State, err error) {
	status := scale.ConnectionStatus{
		State: state,
		Error: err,
	}

	s.statusMu.Lock()
	s.connectionStatus = status
	handler := s.stateChangeHandler
	s.statusMu.Unlock()

	// Call handler function, if any
	if handler != nil {
		handler(status)
	}
}

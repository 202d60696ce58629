package scale

import "time"

// Unit denotes the unit of the weight measurement
type Unit string

const (

	// UnitUnknown denotes an unknown / invalid unit
	UnitUnknown = "--"

	// UnitKilograms denotes metric units as reported by the scale firmware
	UnitKilograms = "kg"
)

// State denotes a connection state
type State int

const (

	// StateDisconnected is active before opening and after closing the scale device
	StateDisconnected State = iota

	// StateConnected is active while the scale device is open
	StateConnected

	// StateReading is active while a read session waits for a complete frame
	StateReading
)

// String returns a human-readable representation of the state
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateReading:
		return "reading"
	default:
		return "unknown"
	}
}

// ConnectionStatus denotes the current status of the scale device
type ConnectionStatus struct {
	Error error
	State
}

// DataPoint denotes a weight measurement at a certain point in time
type DataPoint struct {
	TimeStamp time.Time
	Unit      Unit
	Weight    uint32
}

// Value provides a method to retrieve the current value (for interface use)
func (d DataPoint) Value() uint32 {
	return d.Weight
}

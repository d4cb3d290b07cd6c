// Package device implements the serial-attached hardware the rover daemon
// talks to: the NMEA GPS receiver, the thruster ESC bridge board and the
// orientation sensor. It also defines the consumed contracts so the control
// loop never depends on a concrete device.
package device

import (
	"time"

	"AquaRover/internal/model"
)

// Device defines an abstract interface for line-oriented communication
// devices (GPS, ESC board, IMU, RC link).
type Device interface {
	// ReadLine reads a single line terminated by '\n'.
	// If timeout > 0, it must return after timeout even if no data available.
	ReadLine(timeout time.Duration) (string, error)

	// WriteLine writes s followed by '\n' to the device.
	WriteLine(s string) error

	// Close closes the device and releases underlying resources.
	Close() error
}

// PositionSource yields the rover's current GPS fix.
type PositionSource interface {
	ReadLocation() (model.Position, error)
}

// Channel identifies one thruster position on the frame.
type Channel string

const (
	Front Channel = "f"
	Back  Channel = "b"
	Left  Channel = "l"
	Right Channel = "r"
)

// Channels lists every thruster channel in wire order.
var Channels = []Channel{Front, Back, Left, Right}

// ThrusterSink accepts signed power commands for each thruster channel.
// The real board and the log-only debug variant both implement it; the
// control loop cannot tell them apart.
type ThrusterSink interface {
	// SetPower commands one channel to the given signed power.
	SetPower(ch Channel, power float64) error

	// StopAll commands zero power on every channel.
	StopAll() error
}

// Package device implements the thruster ESC bridge board driver. The board
// accepts one CSV line per channel power command and drives the four ESCs.
package device

import (
	"fmt"

	"AquaRover/internal/parser"
)

// ThrusterBoard implements ThrusterSink over a serial ESC bridge board.
type ThrusterBoard struct {
	serial *SerialDevice
}

// NewThrusterBoard opens the board's serial port. A construction failure
// here is what degrades the whole daemon to no-hardware debug mode; the
// caller substitutes a DebugSink and carries on.
func NewThrusterBoard(dev string, baud int) (*ThrusterBoard, error) {
	sd, err := NewSerialDevice(dev, baud)
	if err != nil {
		return nil, fmt.Errorf("open thruster board failed: %w", err)
	}
	return &ThrusterBoard{serial: sd}, nil
}

// SetPower commands one channel to the given signed power.
func (b *ThrusterBoard) SetPower(ch Channel, power float64) error {
	if err := b.serial.WriteLine(parser.ThrusterToCSV(string(ch), power)); err != nil {
		return fmt.Errorf("thruster %s write: %w", ch, err)
	}
	return nil
}

// StartPower is accepted by the board as an equivalent commanding call to
// SetPower; both emit the same wire line.
func (b *ThrusterBoard) StartPower(ch Channel, power float64) error {
	return b.SetPower(ch, power)
}

// StopAll commands zero power on every channel. The first write error is
// returned but the remaining channels are still attempted.
func (b *ThrusterBoard) StopAll() error {
	var first error
	for _, ch := range Channels {
		if err := b.SetPower(ch, 0); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Close closes the board's serial port.
func (b *ThrusterBoard) Close() error {
	return b.serial.Close()
}

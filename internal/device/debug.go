package device

import (
	"log"
	"sync"
)

// DebugSink is the no-hardware ThrusterSink: it logs every power command
// instead of driving motors. Selected at startup when the real board fails
// to construct, and used by tests to observe loop output.
type DebugSink struct {
	mu   sync.Mutex
	last map[Channel]float64
}

// NewDebugSink creates a DebugSink with all channels at zero.
func NewDebugSink() *DebugSink {
	last := make(map[Channel]float64, len(Channels))
	for _, ch := range Channels {
		last[ch] = 0
	}
	return &DebugSink{last: last}
}

// SetPower records and logs the power command.
func (d *DebugSink) SetPower(ch Channel, power float64) error {
	d.mu.Lock()
	d.last[ch] = power
	d.mu.Unlock()
	log.Printf("thrusters: DEBUG - power %s=%.2f", ch, power)
	return nil
}

// StopAll records zero power on every channel.
func (d *DebugSink) StopAll() error {
	d.mu.Lock()
	for _, ch := range Channels {
		d.last[ch] = 0
	}
	d.mu.Unlock()
	log.Println("thrusters: DEBUG - stop all")
	return nil
}

// Last returns a snapshot of the most recent power command per channel.
func (d *DebugSink) Last() map[Channel]float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[Channel]float64, len(d.last))
	for ch, p := range d.last {
		out[ch] = p
	}
	return out
}

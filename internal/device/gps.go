// Package device implements a GPS receiver reader using the NMEA protocol.
// It supports single-fix reads for the control loop and simulated output
// generation for bench testing.
package device

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"AquaRover/internal/model"
	"AquaRover/internal/parser"
)

// ErrNoFix is returned when no parseable NMEA fix arrives within the read
// deadline. The control loop treats it as transient: full stop this tick,
// retry next tick.
var ErrNoFix = errors.New("no gps fix")

// DefaultReadDeadline bounds a single ReadLocation call so a quiet receiver
// cannot stall the control tick indefinitely.
const DefaultReadDeadline = 1500 * time.Millisecond

// GPSDevice reads NMEA sentences from a serial GPS receiver.
type GPSDevice struct {
	Device       string
	Baud         int
	ReadDeadline time.Duration

	serial *SerialDevice
}

// NewGPSDevice creates a GPS device handler for the given serial path.
func NewGPSDevice(dev string, baud int) *GPSDevice {
	return &GPSDevice{Device: dev, Baud: baud, ReadDeadline: DefaultReadDeadline}
}

// Open opens the GPS serial port.
func (g *GPSDevice) Open() error {
	if g.serial != nil {
		return nil
	}
	sd, err := NewSerialDevice(g.Device, g.Baud)
	if err != nil {
		return fmt.Errorf("open gps serial failed: %w", err)
	}
	g.serial = sd
	return nil
}

// Close closes the GPS serial port safely.
func (g *GPSDevice) Close() error {
	if g.serial == nil {
		return nil
	}
	err := g.serial.Close()
	g.serial = nil
	return err
}

// ReadLocation reads NMEA sentences until a valid $GPGGA/$GNRMC fix is
// parsed or the read deadline expires. Implements PositionSource.
func (g *GPSDevice) ReadLocation() (model.Position, error) {
	if err := g.Open(); err != nil {
		return model.Position{}, err
	}

	deadline := time.Now().Add(g.ReadDeadline)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return model.Position{}, ErrNoFix
		}
		line, err := g.serial.ReadLine(remaining)
		if err != nil {
			continue
		}
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "$GPGGA") && !strings.HasPrefix(line, "$GNRMC") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 6 {
			continue
		}
		lat, err1 := parser.ParseNMEACoord(parts[2], parts[3])
		lon, err2 := parser.ParseNMEACoord(parts[4], parts[5])
		if err1 != nil || err2 != nil {
			continue
		}
		return model.Position{Lat: lat, Lon: lon}, nil
	}
}

// Simulate continuously writes fake GPS NMEA sentences around center to the
// port until stop is closed. Used by cmd/gpssim against a virtual serial
// pair.
func (g *GPSDevice) Simulate(stop <-chan struct{}, center model.Position, interval time.Duration) error {
	if err := g.Open(); err != nil {
		return err
	}
	defer func() {
		if err := g.Close(); err != nil {
			log.Printf("warning: failed to close gps device: %v", err)
		}
	}()

	log.Printf("gps simulator started on %s (baud %d)", g.Device, g.Baud)

	for {
		select {
		case <-stop:
			log.Println("gps simulation stopped")
			return nil
		default:
		}

		lat := center.Lat + (rand.Float64()-0.5)*0.001
		lon := center.Lon + (rand.Float64()-0.5)*0.001
		latStr, latDir := parser.ToNMEACoord(lat, true)
		lonStr, lonDir := parser.ToNMEACoord(lon, false)
		timeUTC := time.Now().UTC().Format("150405.00")

		nmea := fmt.Sprintf("$GPGGA,%s,%s,%s,%s,%s,1,08,0.9,10.0,M,0.0,M,,*47",
			timeUTC, latStr, latDir, lonStr, lonDir)

		if err := g.serial.WriteLine(nmea); err != nil {
			log.Printf("gps simulate write error: %v", err)
		}
		time.Sleep(interval)
	}
}

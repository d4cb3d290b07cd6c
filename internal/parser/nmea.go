// Package parser converts device wire formats to structured values and
// vice-versa: NMEA coordinates from the GPS receiver, CSV command lines from
// the manual control link and CSV power lines for the thruster board.
package parser

import (
	"fmt"
	"strconv"
)

// ParseNMEACoord converts an NMEA ddmm.mmmm coordinate to decimal degrees.
// For example, 4144.1030,N -> 41.735050.
func ParseNMEACoord(value string, dir string) (float64, error) {
	if len(value) < 4 {
		return 0, fmt.Errorf("invalid nmea coord %q", value)
	}
	var degPart, minPart string
	// latitude carries 2 degree digits, longitude 3; detect by direction
	switch dir {
	case "N", "S":
		degPart = value[:2]
		minPart = value[2:]
	case "E", "W":
		degPart = value[:3]
		minPart = value[3:]
	default:
		return 0, fmt.Errorf("invalid nmea direction %q", dir)
	}
	deg, err := strconv.ParseFloat(degPart, 64)
	if err != nil {
		return 0, err
	}
	min, err := strconv.ParseFloat(minPart, 64)
	if err != nil {
		return 0, err
	}
	dec := deg + min/60.0
	if dir == "S" || dir == "W" {
		dec = -dec
	}
	return dec, nil
}

// ToNMEACoord converts decimal degrees to the ddmm.mmmm wire format plus a
// direction letter. Used by the GPS simulator.
func ToNMEACoord(dec float64, isLat bool) (string, string) {
	dir := "N"
	if !isLat {
		dir = "E"
	}
	if dec < 0 {
		dec = -dec
		if isLat {
			dir = "S"
		} else {
			dir = "W"
		}
	}
	deg := int(dec)
	min := (dec - float64(deg)) * 60
	if isLat {
		return fmt.Sprintf("%02d%06.3f", deg, min), dir
	}
	return fmt.Sprintf("%03d%06.3f", deg, min), dir
}

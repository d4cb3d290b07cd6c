// Package model defines shared data structures for the rover daemon.
package model

import "time"

// Position is a GPS fix in decimal degrees.
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Waypoint is a target coordinate for autonomous navigation.
// Immutable once created.
type Waypoint struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lon float64 `yaml:"lon" json:"lon"`
}

// Command holds the most recent manual control gains, each in [-1,1].
// A zero Stamp means no command has ever arrived.
type Command struct {
	Surge   float64   `json:"surge"`
	Lateral float64   `json:"lateral"`
	Yaw     float64   `json:"yaw"`
	Stamp   time.Time `json:"-"`
}

// Neutral reports whether every gain is centered, ignoring the stamp.
func (c Command) Neutral() bool {
	return c.Surge == 0 && c.Lateral == 0 && c.Yaw == 0
}

// Powers holds the signed power command for each thruster channel,
// already scaled to the board's full output range.
type Powers struct {
	Front float64 `json:"front"`
	Back  float64 `json:"back"`
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// Mode is the control mode reported in status broadcasts.
type Mode string

const (
	ModeManual     Mode = "manual"
	ModeAutonomous Mode = "autonomous"
	ModeFailsafe   Mode = "failsafe"
)

// Status is one per-tick snapshot of the control loop, published to the
// status server and broadcast to websocket clients.
type Status struct {
	RoverID   string    `json:"rover_id"`
	Mode      Mode      `json:"mode"`
	Command   Command   `json:"command"`
	Target    *Waypoint `json:"target,omitempty"`
	Powers    Powers    `json:"powers"`
	Remaining int       `json:"remaining_waypoints"`
}

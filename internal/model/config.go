// Package model defines shared configuration structures used to initialize
// the rover daemon. It includes loop tuning, device paths and the initial
// waypoint list.
package model

// Config represents the root structure loaded from configs/rover.yml.
type Config struct {
	Rover      RoverConfig  `yaml:"rover"`
	GPS        SerialConfig `yaml:"gps"`
	Thrusters  SerialConfig `yaml:"thrusters"`
	IMU        SerialConfig `yaml:"imu"`
	Control    SerialConfig `yaml:"control"`     // manual-command RC link
	StatusAddr string       `yaml:"status_addr"` // status server address (e.g. ":8080"); empty disables it
	Waypoints  []Waypoint   `yaml:"waypoints"`   // initial autonomous target list, consumed front to back
}

// RoverConfig defines identity and control loop tuning.
type RoverConfig struct {
	ID          string  `yaml:"id"`
	TickMs      int     `yaml:"tick_ms"`      // control loop period, default 200
	FallbackLat float64 `yaml:"fallback_lat"` // debug-mode fix used when the GPS read fails
	FallbackLon float64 `yaml:"fallback_lon"`
}

// SerialConfig identifies one serial-attached device.
type SerialConfig struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

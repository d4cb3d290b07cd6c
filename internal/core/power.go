// Package core contains the control loop, mode arbitration and thruster
// mixing logic for the rover. It converts manual gains or waypoint distance
// errors into per-thruster power commands and enforces the staleness
// failsafe.
package core

import "math"

const (
	distanceDeadband  = 0.1  // meters; inside it the output is forced to zero
	fullPowerDistance = 10.0 // meters; at this distance output magnitude is 1
	minPower          = 0.05 // output magnitude floor just outside the deadband
)

// MaxMotorPower is the full-scale power command accepted by the thruster
// board. Mixer output is clamped to [-1,1] before scaling by it.
const MaxMotorPower = 20.0

// ScaleDistance maps a signed distance error in meters to a signed power
// gain. Inside the deadband it returns 0 to prevent motor chatter near the
// target. Outside, magnitude runs from minPower near zero up to 1 at
// fullPowerDistance, sign following the input. Beyond fullPowerDistance the
// result exceeds magnitude 1 and relies on the mixer's clamp.
func ScaleDistance(m float64) float64 {
	if math.Abs(m) < distanceDeadband {
		return 0
	}
	// offset chosen so that m=fullPowerDistance => 1 and m->0 => minPower
	x := (-1 * fullPowerDistance * minPower) / (minPower - 1)
	return math.Copysign(math.Abs(m)/(fullPowerDistance+x)+minPower, m)
}

package core

import (
	"fmt"
	"math"

	"AquaRover/internal/device"
	"AquaRover/internal/model"
)

// clampGain limits a raw channel gain to [-1,1].
func clampGain(g float64) float64 {
	return math.Max(-1, math.Min(1, g))
}

// Mix converts surge/lateral/yaw gains into the four per-thruster power
// commands. Each raw channel gain is clamped to [-1,1] before scaling to
// the board's full range.
func Mix(surge, lateral, yaw float64) model.Powers {
	return model.Powers{
		Front: MaxMotorPower * clampGain(surge+yaw),
		Back:  MaxMotorPower * clampGain(surge-yaw),
		Left:  MaxMotorPower * clampGain(lateral+yaw),
		Right: MaxMotorPower * clampGain(lateral-yaw),
	}
}

// applyPowers pushes a mixed power set to the sink, one channel at a time.
func applyPowers(sink device.ThrusterSink, p model.Powers) error {
	for _, c := range []struct {
		ch  device.Channel
		pwr float64
	}{
		{device.Front, p.Front},
		{device.Back, p.Back},
		{device.Left, p.Left},
		{device.Right, p.Right},
	} {
		if err := sink.SetPower(c.ch, c.pwr); err != nil {
			return fmt.Errorf("channel %s: %w", c.ch, err)
		}
	}
	return nil
}

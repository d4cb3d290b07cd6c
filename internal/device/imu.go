// Package device implements the orientation sensor driver. The sensor sits
// behind a serial bridge speaking a small CSV protocol:
//
//	-> CAL?          <- CAL,SYS,GYRO,ACCEL,MAG   (each 0..3)
//	-> XTAL,0|1      <- ACK,XTAL
//
// The sensor is consumed only during startup calibration; the control
// decision never reads it (heading hold is not implemented).
package device

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Calibration is fully calibrated when every field reads 3.
type Calibration struct {
	Sys, Gyro, Accel, Mag int
}

// Complete reports whether every subsystem reads fully calibrated.
func (c Calibration) Complete() bool {
	return c.Sys == 3 && c.Gyro == 3 && c.Accel == 3 && c.Mag == 3
}

// IMU talks to the serial-bridged orientation sensor.
type IMU struct {
	serial *SerialDevice
}

// NewIMU opens the sensor's serial port.
func NewIMU(dev string, baud int) (*IMU, error) {
	sd, err := NewSerialDevice(dev, baud)
	if err != nil {
		return nil, fmt.Errorf("open imu serial failed: %w", err)
	}
	return &IMU{serial: sd}, nil
}

// CalibrationStatus queries the four calibration levels.
func (m *IMU) CalibrationStatus() (Calibration, error) {
	if err := m.serial.WriteLine("CAL?"); err != nil {
		return Calibration{}, err
	}
	line, err := m.serial.ReadLine(time.Second)
	if err != nil {
		return Calibration{}, err
	}
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 5 || fields[0] != "CAL" {
		return Calibration{}, fmt.Errorf("unexpected calibration reply %q", line)
	}
	var vals [4]int
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Calibration{}, fmt.Errorf("invalid calibration field %q", f)
		}
		vals[i] = v
	}
	return Calibration{Sys: vals[0], Gyro: vals[1], Accel: vals[2], Mag: vals[3]}, nil
}

// SetExternalCrystal switches the sensor clock source.
func (m *IMU) SetExternalCrystal(on bool) error {
	v := "0"
	if on {
		v = "1"
	}
	return m.serial.WriteLine("XTAL," + v)
}

// WaitCalibrated polls the sensor until it reports full calibration or the
// timeout elapses. The sensor needs to be moved around during this window.
func (m *IMU) WaitCalibrated(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		cal, err := m.CalibrationStatus()
		if err == nil && cal.Complete() {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return errors.New("imu calibration timed out")
}

// Close closes the sensor's serial port.
func (m *IMU) Close() error {
	return m.serial.Close()
}

package core

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"AquaRover/internal/device"
	"AquaRover/internal/model"
	"AquaRover/internal/util"
)

// System wires the configured devices and the Rover together and manages
// their lifecycle. Device bring-up is best effort: a missing thruster board
// degrades the daemon to log-only debug mode, a missing GPS only disables
// autonomous navigation, a missing IMU is ignored entirely.
type System struct {
	cfg *model.Config

	Rover *Rover
	GPS   *device.GPSDevice     // nil when the receiver failed to connect
	Board *device.ThrusterBoard // nil in debug mode
	IMU   *device.IMU           // nil when absent or failed

	started   bool
	startLock sync.Mutex
}

// NewSystem reads the YAML configuration at cfgPath and constructs the
// rover with whatever hardware can actually be opened.
func NewSystem(cfgPath string) (*System, error) {
	b, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}
	var cfg model.Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return NewSystemFromConfig(&cfg), nil
}

// NewSystemFromConfig constructs a System from an already-loaded config.
func NewSystemFromConfig(cfg *model.Config) *System {
	s := &System{cfg: cfg}

	// Thruster board: construction failure degrades to log-only debug mode.
	debug := false
	var sink device.ThrusterSink
	board, err := device.NewThrusterBoard(cfg.Thrusters.Device, cfg.Thrusters.Baud)
	if err != nil {
		util.Error("thruster board setup: %v -- disabling thrusters, DEBUG MODE", err)
		debug = true
		sink = device.NewDebugSink()
	} else {
		s.Board = board
		sink = board
	}

	// GPS: a failed open leaves autonomous mode unavailable, not the daemon.
	var src device.PositionSource
	gps := device.NewGPSDevice(cfg.GPS.Device, cfg.GPS.Baud)
	if err := gps.Open(); err != nil {
		util.Error("gps connect: %v", err)
	} else {
		util.Info("gps connected on %s", cfg.GPS.Device)
		s.GPS = gps
		src = gps
	}

	rover := NewRover(cfg.Rover.ID, src, sink)
	rover.Debug = debug
	if cfg.Rover.FallbackLat != 0 || cfg.Rover.FallbackLon != 0 {
		rover.FallbackFix = model.Position{Lat: cfg.Rover.FallbackLat, Lon: cfg.Rover.FallbackLon}
	}
	if cfg.Rover.TickMs > 0 {
		rover.interval = time.Duration(cfg.Rover.TickMs) * time.Millisecond
	}
	for _, w := range cfg.Waypoints {
		rover.EnqueueWaypoint(w.Lat, w.Lon)
	}
	s.Rover = rover
	return s
}

// Config returns the loaded configuration.
func (s *System) Config() *model.Config {
	return s.cfg
}

// Start brings up the IMU (blocking on its calibration wait) and launches
// the control loop. Idempotent.
func (s *System) Start() {
	s.startLock.Lock()
	defer s.startLock.Unlock()
	if s.started {
		return
	}

	if s.cfg.IMU.Device != "" {
		imu, err := device.NewIMU(s.cfg.IMU.Device, s.cfg.IMU.Baud)
		if err != nil {
			util.Error("imu setup: %v -- disabling imu", err)
		} else {
			s.IMU = imu
			if err := imu.SetExternalCrystal(true); err != nil {
				util.Warn("imu external crystal: %v", err)
			}
			util.Info("waiting for imu calibration [move it around]...")
			if err := imu.WaitCalibrated(30 * time.Second); err != nil {
				util.Warn("imu calibration: %v -- continuing uncalibrated", err)
			} else {
				util.Info("imu calibration finished")
			}
		}
	}

	s.Rover.Start()
	s.started = true
}

// Stop halts the control loop (the zero-power command is guaranteed to be
// the loop's last action) and then closes every open device.
func (s *System) Stop() {
	s.startLock.Lock()
	defer s.startLock.Unlock()
	if !s.started {
		return
	}

	s.Rover.Stop()
	if s.GPS != nil {
		if err := s.GPS.Close(); err != nil {
			util.Warn("close gps: %v", err)
		}
	}
	if s.Board != nil {
		if err := s.Board.Close(); err != nil {
			util.Warn("close thruster board: %v", err)
		}
	}
	if s.IMU != nil {
		if err := s.IMU.Close(); err != nil {
			util.Warn("close imu: %v", err)
		}
	}
	s.started = false
}

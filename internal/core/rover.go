package core

import (
	"sync"
	"time"

	"AquaRover/internal/device"
	"AquaRover/internal/geo"
	"AquaRover/internal/model"
	"AquaRover/internal/util"
)

const (
	// ControlTimeout is the manual-command staleness limit. A command link
	// quiet for longer than this halts all propulsion.
	ControlTimeout = 2 * time.Second

	// TickInterval is the control loop period.
	TickInterval = 200 * time.Millisecond
)

// Rover owns the control state and drives the thrusters once per tick.
// External callers mutate state only through the exported entry points; the
// loop takes one locked snapshot per tick and never exposes internals.
type Rover struct {
	ID        string
	GPS       device.PositionSource // nil when the receiver failed to connect
	Thrusters device.ThrusterSink

	// Debug marks no-hardware mode: a failed GPS read in autonomous mode
	// substitutes FallbackFix instead of stopping.
	Debug       bool
	FallbackFix model.Position

	mu           sync.Mutex
	cmd          model.Command
	autoTarget   *model.Waypoint
	forceDisable bool

	queue    WaypointQueue
	onStatus func(model.Status)

	interval time.Duration
	now      func() time.Time
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewRover constructs a Rover around the given position source and thruster
// sink. The loop is not started until Start is called.
func NewRover(id string, gps device.PositionSource, thrusters device.ThrusterSink) *Rover {
	return &Rover{
		ID:          id,
		GPS:         gps,
		Thrusters:   thrusters,
		FallbackFix: model.Position{Lat: 41.735, Lon: -71.319},
		interval:    TickInterval,
		now:         time.Now,
		stop:        make(chan struct{}),
	}
}

// OnStatus registers a callback invoked after every tick with a state
// snapshot. Must be set before Start.
func (r *Rover) OnStatus(fn func(model.Status)) {
	r.onStatus = fn
}

// SubmitManualCommand records the latest joystick gains and stamps them.
// Any non-zero gain also knocks the loop out of autonomous on its next tick.
func (r *Rover) SubmitManualCommand(surge, lateral, yaw float64) {
	r.mu.Lock()
	r.cmd = model.Command{Surge: surge, Lateral: lateral, Yaw: yaw, Stamp: r.now()}
	r.mu.Unlock()
}

// EnqueueWaypoint appends a target to the back of the waypoint queue.
func (r *Rover) EnqueueWaypoint(lat, lon float64) {
	r.queue.Push(model.Waypoint{Lat: lat, Lon: lon})
}

// SetAutoTarget makes the given coordinate the active autonomous target,
// bypassing the queue.
func (r *Rover) SetAutoTarget(lat, lon float64) {
	r.mu.Lock()
	r.autoTarget = &model.Waypoint{Lat: lat, Lon: lon}
	r.mu.Unlock()
}

// AdvanceToNextWaypoint pops the queue head into the active target, or
// clears the target when the queue is empty. The loop never calls this
// itself: deciding that a waypoint has been reached is the caller's job.
func (r *Rover) AdvanceToNextWaypoint() {
	w, ok := r.queue.PopFront()
	r.mu.Lock()
	if ok {
		r.autoTarget = &w
	} else {
		r.autoTarget = nil
	}
	r.mu.Unlock()
}

// DisableAuto unconditionally clears the active autonomous target.
func (r *Rover) DisableAuto() {
	util.Info("rover %s: auto disable", r.ID)
	r.clearAutoTarget()
}

// ForceDisableAuto sets the external override that forbids autonomous mode
// regardless of any other condition.
func (r *Rover) ForceDisableAuto(disable bool) {
	r.mu.Lock()
	r.forceDisable = disable
	r.mu.Unlock()
}

// RemainingWaypointCount returns the number of queued targets not yet
// advanced into the active slot.
func (r *Rover) RemainingWaypointCount() int {
	return r.queue.Len()
}

// Start launches the control loop goroutine. The loop idles in failsafe
// until the first manual command arrives.
func (r *Rover) Start() {
	r.wg.Add(1)
	go r.run()
}

// Stop halts the loop and blocks until it has exited. The loop's last
// action before exit is always a zero-power command on every channel.
// Safe to call more than once.
func (r *Rover) Stop() {
	select {
	case <-r.stop:
		// already stopping
	default:
		close(r.stop)
	}
	r.wg.Wait()
}

func (r *Rover) run() {
	defer r.wg.Done()
	defer r.stopThrusters()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.tick()
		}
	}
}

// tick runs one arbitration pass: staleness failsafe, autonomous
// eligibility, then either waypoint navigation or manual passthrough.
func (r *Rover) tick() {
	r.mu.Lock()
	cmd := r.cmd
	target := r.autoTarget
	force := r.forceDisable
	r.mu.Unlock()

	// Staleness failsafe: a command link quiet for ControlTimeout always
	// halts propulsion, whatever mode the rover was in.
	if cmd.Stamp.IsZero() || r.now().Sub(cmd.Stamp) > ControlTimeout {
		r.clearAutoTarget()
		r.stopThrusters()
		r.publish(model.ModeFailsafe, cmd, nil, model.Powers{})
		return
	}

	// Autonomous only while a target is set, the stick is centered and no
	// external override is in force.
	if target != nil && (!cmd.Neutral() || force) {
		r.clearAutoTarget()
		target = nil
	}

	if target != nil {
		r.tickAutonomous(cmd, *target)
		return
	}

	powers := r.drive(cmd.Surge, cmd.Lateral, cmd.Yaw)
	r.publish(model.ModeManual, cmd, nil, powers)
}

// tickAutonomous navigates one tick toward target. Yaw is fixed at zero:
// heading hold is not implemented.
func (r *Rover) tickAutonomous(cmd model.Command, target model.Waypoint) {
	loc, err := r.readLocation()
	if err != nil {
		if !r.Debug {
			// A GPS fault during autonomous operation is always a full
			// stop, never a silent degrade to manual driving.
			util.Error("rover %s: autonomous gps read: %v -- stopping thrusters", r.ID, err)
			r.stopThrusters()
			r.publish(model.ModeFailsafe, cmd, &target, model.Powers{})
			return
		}
		loc = r.FallbackFix
	}

	east, north := geo.OffsetMeters(loc, model.Position{Lat: target.Lat, Lon: target.Lon})
	powers := r.drive(ScaleDistance(east), ScaleDistance(north), 0)
	r.publish(model.ModeAutonomous, cmd, &target, powers)
}

func (r *Rover) readLocation() (model.Position, error) {
	if r.GPS == nil {
		return model.Position{}, device.ErrNoFix
	}
	return r.GPS.ReadLocation()
}

// drive mixes the gains and pushes the result to the thruster sink. Write
// errors are logged, never propagated: the next tick re-commands anyway.
func (r *Rover) drive(surge, lateral, yaw float64) model.Powers {
	p := Mix(surge, lateral, yaw)
	if err := applyPowers(r.Thrusters, p); err != nil {
		util.Error("rover %s: thruster write: %v", r.ID, err)
	}
	return p
}

// stopThrusters commands zero power on every channel. This is the one
// command that may not fail quietly: a failure is retried once and logged
// loudly either way.
func (r *Rover) stopThrusters() {
	if err := r.Thrusters.StopAll(); err != nil {
		util.Error("rover %s: zero-power command failed: %v -- retrying", r.ID, err)
		if err := r.Thrusters.StopAll(); err != nil {
			util.Error("rover %s: zero-power retry failed: %v -- thrusters may still be live", r.ID, err)
		}
	}
}

func (r *Rover) clearAutoTarget() {
	r.mu.Lock()
	r.autoTarget = nil
	r.mu.Unlock()
}

func (r *Rover) publish(mode model.Mode, cmd model.Command, target *model.Waypoint, p model.Powers) {
	if r.onStatus == nil {
		return
	}
	r.onStatus(model.Status{
		RoverID:   r.ID,
		Mode:      mode,
		Command:   cmd,
		Target:    target,
		Powers:    p,
		Remaining: r.queue.Len(),
	})
}

package gel

import "fmt"

// Phase is the run state of a simulation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "RUNNING"
	case PhasePaused:
		return "PAUSED"
	default:
		return "IDLE"
	}
}

// Params bound a controller's voltage range and gel geometry.
type Params struct {
	TravelLimit float64
	Voltage     int
	MinVoltage  int
	MaxVoltage  int
}

// DefaultParams returns the geometry and voltage range used when no config
// is supplied: a 400-unit gel with a 10-unit bottom margin, 50-300 V.
func DefaultParams() Params {
	return Params{TravelLimit: 390, Voltage: 100, MinVoltage: 50, MaxVoltage: 300}
}

// Controller is the run state machine. It owns phase, elapsed time and
// voltage, and gates every mutation of the registry. The event loop drives
// it with Advance (per frame, measured delta) and TickSecond (once per
// second); both are no-ops outside PhaseRunning, so stopping the loops on a
// phase transition is sufficient to freeze the simulation.
type Controller struct {
	registry *Registry
	params   Params
	phase    Phase
	elapsed  int
	voltage  int
}

func NewController(reg *Registry, p Params) *Controller {
	c := &Controller{registry: reg, params: p}
	c.SetVoltage(p.Voltage)
	return c
}

func (c *Controller) Phase() Phase   { return c.phase }
func (c *Controller) Elapsed() int   { return c.elapsed }
func (c *Controller) Voltage() int   { return c.voltage }
func (c *Controller) Loaded() bool   { return c.registry.Loaded() }
func (c *Controller) Params() Params { return c.params }

func (c *Controller) Fragments() []*Fragment { return c.registry.Fragments() }

// SetVoltage clamps v to the configured range. Allowed in any phase; the
// slider stays live while the gel runs.
func (c *Controller) SetVoltage(v int) {
	if v < c.params.MinVoltage {
		v = c.params.MinVoltage
	}
	if v > c.params.MaxVoltage {
		v = c.params.MaxVoltage
	}
	c.voltage = v
}

// LoadLanes loads samples into the registry. A silent no-op while the gel
// is running.
func (c *Controller) LoadLanes(lanes []LaneDef) {
	if c.phase == PhaseRunning {
		return
	}
	c.registry.Load(lanes)
}

// Start moves Idle or Paused to Running. It returns ErrNoSamples, with no
// state change, when nothing is loaded; the caller surfaces that to the
// user rather than treating it as a fault.
func (c *Controller) Start() error {
	if c.phase == PhaseRunning {
		return nil
	}
	if !c.registry.Loaded() {
		return ErrNoSamples
	}
	c.phase = PhaseRunning
	return nil
}

// Pause stops time and motion. Only meaningful from Running.
func (c *Controller) Pause() {
	if c.phase == PhaseRunning {
		c.phase = PhasePaused
	}
}

// Reset returns to Idle from any phase: elapsed time zeroed, fragments
// cleared, loaded flag dropped.
func (c *Controller) Reset() {
	c.phase = PhaseIdle
	c.elapsed = 0
	c.registry.Clear()
}

// Advance applies the motion update for one frame. dt is the measured time
// since the previous frame in seconds.
func (c *Controller) Advance(dt float64) {
	if c.phase != PhaseRunning {
		return
	}
	Step(c.registry.Fragments(), dt, c.voltage, c.params.TravelLimit)
}

// TickSecond increments the elapsed-seconds counter. Driven by its own
// once-per-second loop, independent of the frame loop.
func (c *Controller) TickSecond() {
	if c.phase != PhaseRunning {
		return
	}
	c.elapsed++
}

// Done reports whether every loaded fragment has reached the travel limit.
func (c *Controller) Done() bool {
	frags := c.registry.Fragments()
	if len(frags) == 0 {
		return false
	}
	for _, f := range frags {
		if !f.Finished {
			return false
		}
	}
	return true
}

// Clock formats the elapsed time as zero-padded MM:SS.
func (c *Controller) Clock() string { return FormatClock(c.elapsed) }

// FormatClock renders whole seconds as MM:SS.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

package player

import (
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/assert"
	"github.com/oomph-ac/traverse/physics"
	"github.com/sirupsen/logrus"
)

// Controller owns a character's movement modes and decides which one of them is active. Ticks, input and
// mode switches must all happen on the same goroutine.
type Controller struct {
	log    *logrus.Logger
	body   physics.Body
	probe  *physics.Probe
	camera Camera

	// Dbg logs diagnostics for the modes while debugging is enabled.
	Dbg *Debugger

	modes    [modeCount]Mode
	mode     MovementMode
	inputMap InputMap

	lastMove mgl32.Vec2

	switching  bool
	hasPending bool
	pending    MovementMode

	hMutex sync.RWMutex
	h      Handler
}

// New creates a controller for the body. Casts go to w, and debug geometry to drawer, which may be nil.
// The controller starts in ModeNone; register modes and switch to one before ticking.
func New(log *logrus.Logger, body physics.Body, w physics.World, camera Camera, drawer physics.Drawer) *Controller {
	if log == nil {
		log = logrus.New()
	}
	c := &Controller{
		log:    log,
		body:   body,
		camera: camera,
		Dbg:    &Debugger{log: log},
		h:      NopHandler{},
	}
	c.probe = physics.NewProbe(w, drawer, c.Dbg.Enabled)
	return c
}

// Log returns the logger of the controller.
func (c *Controller) Log() *logrus.Logger {
	return c.log
}

// Body returns the body the controller moves.
func (c *Controller) Body() physics.Body {
	return c.body
}

// Probe returns the probe the modes issue their queries through.
func (c *Controller) Probe() *physics.Probe {
	return c.probe
}

// Camera returns the camera input is relative to.
func (c *Controller) Camera() Camera {
	return c.camera
}

// SetDebug turns diagnostics on or off. It is safe to call from any goroutine.
func (c *Controller) SetDebug(enabled bool) {
	c.Dbg.enabled.Store(enabled)
}

// ToggleDebug flips diagnostics and returns the new state. It is safe to call from any goroutine.
func (c *Controller) ToggleDebug() bool {
	return !c.Dbg.enabled.Toggle()
}

// Handle sets the handler of the controller. A nil handler resets it to a NopHandler.
func (c *Controller) Handle(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	c.hMutex.Lock()
	c.h = h
	c.hMutex.Unlock()
}

func (c *Controller) handler() Handler {
	c.hMutex.RLock()
	defer c.hMutex.RUnlock()
	return c.h
}

// Register sets the implementation of a mode. Registering over the active mode does not re-enter it.
func (c *Controller) Register(m MovementMode, impl Mode) {
	assert.IsTrue(m != ModeNone && m < modeCount, "cannot register movement mode %v", m)
	c.modes[m] = impl
}

// Mode returns the active mode.
func (c *Controller) Mode() MovementMode {
	return c.mode
}

// InputMap returns the input map currently bound.
func (c *Controller) InputMap() InputMap {
	return c.inputMap
}

func (c *Controller) active() Mode {
	return c.modes[c.mode]
}

// SwitchMode makes m the active mode. Nothing happens if m is already active. Otherwise the current mode
// exits completely before m enters. A switch requested while another switch is in progress, for example
// by a mode that cannot enter, runs right after it.
func (c *Controller) SwitchMode(m MovementMode) {
	if c.switching {
		c.pending, c.hasPending = m, true
		return
	}
	if m == c.mode {
		return
	}

	c.switching = true
	defer func() { c.switching = false }()
	for {
		from := c.mode
		if impl := c.active(); impl != nil {
			impl.Exit()
		}

		c.mode = m
		c.inputMap = m.InputMap()
		if impl := c.active(); impl != nil {
			impl.Enter()
			impl.OnMove(c.lastMove)
		}
		c.log.Debugf("movement: switched from %v to %v (input map %v)", from, m, c.inputMap)
		c.handler().HandleModeSwitch(from, m)

		if !c.hasPending {
			return
		}
		m, c.hasPending = c.pending, false
		if m == c.mode {
			return
		}
	}
}

// TickUpdate forwards a rendered frame of dt seconds to the active mode.
func (c *Controller) TickUpdate(dt float32) {
	defer c.recoverTick("update")
	if impl := c.active(); impl != nil {
		impl.Update(dt)
	}
}

// TickFixedUpdate forwards a physics step of dt seconds to the active mode and returns the status it
// reported. The inert ModeNone reports StatusNotWalkable.
func (c *Controller) TickFixedUpdate(dt float32) (status MoveStatus) {
	status = StatusNotWalkable
	defer c.recoverTick("fixed update")

	mode := c.mode
	if impl := c.active(); impl != nil {
		status = impl.FixedUpdate(dt)
	}
	c.handler().HandleFixedTick(mode, status, c.body.Position())
	return status
}

// recoverTick stops a panicking mode from taking the host down with it. The panic is reported to sentry
// and the character stays in whatever mode it is in.
func (c *Controller) recoverTick(stage string) {
	r := recover()
	if r == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("movement.mode", c.mode.String())
		scope.SetTag("movement.stage", stage)
	})
	hub.Recover(r)
	c.log.Errorf("movement: recovered from panic during %s in mode %v: %v", stage, c.mode, r)
}

// OnWalkMove delivers directional input from the walking input map.
func (c *Controller) OnWalkMove(dir mgl32.Vec2) {
	if impl := c.active(); impl != nil && c.mode == ModeWalk {
		c.lastMove = dir
		impl.OnMove(dir)
	}
}

// OnWalkJump delivers jump input from the walking input map.
func (c *Controller) OnWalkJump(pressed bool) {
	if impl := c.active(); impl != nil && c.mode == ModeWalk {
		impl.OnJump(pressed)
	}
}

// OnClimbMove delivers directional input from the climbing input map.
func (c *Controller) OnClimbMove(dir mgl32.Vec2) {
	if impl := c.active(); impl != nil && c.mode.Climbing() {
		c.lastMove = dir
		impl.OnMove(dir)
	}
}

// OnClimbJump delivers jump input from the climbing input map.
func (c *Controller) OnClimbJump(pressed bool) {
	if impl := c.active(); impl != nil && c.mode.Climbing() {
		impl.OnJump(pressed)
	}
}

// OnMoveDirection delivers directional input to whichever input map is bound. With no map bound the input
// is kept for the first mode that is entered.
func (c *Controller) OnMoveDirection(dir mgl32.Vec2) {
	switch c.inputMap {
	case InputMapWalking:
		c.OnWalkMove(dir)
	case InputMapClimbing:
		c.OnClimbMove(dir)
	default:
		c.lastMove = dir
	}
}

// OnJumpAction delivers jump input to whichever input map is bound.
func (c *Controller) OnJumpAction(pressed bool) {
	switch c.inputMap {
	case InputMapWalking:
		c.OnWalkJump(pressed)
	case InputMapClimbing:
		c.OnClimbJump(pressed)
	}
}

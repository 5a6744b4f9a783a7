package movement

import (
	"math"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/physics"
	"github.com/oomph-ac/traverse/player"
	"github.com/oomph-ac/traverse/settings"
)

func TestClassifyGround(t *testing.T) {
	s := settings.DefaultSettings().Walk
	s.Movement.WalkableDot, s.SlopeDot = 0.75, 0.65

	tests := []struct {
		dot               float32
		grounded, onSlope bool
	}{
		{dot: 1, grounded: true},
		{dot: 0.75, grounded: true},
		{dot: 0.7, grounded: true, onSlope: true},
		{dot: 0.65, grounded: true, onSlope: true},
		{dot: 0.6},
		{dot: 0},
	}
	for _, tt := range tests {
		grounded, onSlope := classifyGround(tt.dot, s)
		if grounded != tt.grounded || onSlope != tt.onSlope {
			t.Fatalf("dot %v: expected grounded=%v slope=%v, got grounded=%v slope=%v", tt.dot, tt.grounded, tt.onSlope, grounded, onSlope)
		}
	}
}

func TestSlopeMovementScalesBySteepness(t *testing.T) {
	s := settings.DefaultSettings().Walk
	s.SlopeUpMultiplier, s.SlopeDownMultiplier = 0.6, 1.2

	// The slope rises towards +Z.
	normal := mgl32.Vec3{0, 0.7, -float32(math.Sqrt(1 - 0.49))}

	up := slopeMovement(mgl32.Vec3{0, 0, 10}, normal, s)
	if !game.Vec3ApproxEq(up, mgl32.Vec3{0, 0, 4.2}, 1e-4) {
		t.Fatalf("expected uphill movement (0, 0, 4.2), got %v", up)
	}
	down := slopeMovement(mgl32.Vec3{0, 0, -10}, normal, s)
	if !game.Vec3ApproxEq(down, mgl32.Vec3{0, 0, -8.4}, 1e-4) {
		t.Fatalf("expected downhill movement (0, 0, -8.4), got %v", down)
	}
}

func groundedWalker(t *testing.T) *harness {
	return landed(t, newHarness(t, settings.DefaultSettings(), mgl32.Vec3{0, 1.5, 0}))
}

// landed adds a floor below the walking body of h and waits for the body to settle on it.
func landed(t *testing.T, h *harness) *harness {
	h.addFloor()
	h.c.SwitchMode(player.ModeWalk)
	if !h.until(100, h.modes.Walk.Grounded) {
		t.Fatalf("expected the body to land on the floor, it is at %v", h.body.Position())
	}
	h.tick(10)
	return h
}

func TestWalkLandsOnFloor(t *testing.T) {
	h := groundedWalker(t)
	if y := h.body.Position().Y(); math.Abs(float64(y-1)) > 1e-3 {
		t.Fatalf("expected the body to rest at y=1, got %v", y)
	}
	if h.modes.Walk.OnSlope() {
		t.Fatalf("expected flat floor not to count as a slope")
	}
}

func TestWalkMovesWithCamera(t *testing.T) {
	h := groundedWalker(t)
	// Looking towards +X.
	h.camera.SetRotation(game.LookRotation(game.WorldRight, game.WorldUp))

	h.c.OnMoveDirection(mgl32.Vec2{0, 1})
	h.tick(20)

	pos := h.body.Position()
	if pos.X() < 0.5 || math.Abs(float64(pos.Z())) > 1e-3 {
		t.Fatalf("expected the body to move along +X, it is at %v", pos)
	}
	if fwd := game.Forward(h.body.Rotation()); fwd.Dot(game.WorldRight) < 0.99 {
		t.Fatalf("expected the body to face +X, it faces %v", fwd)
	}
}

func TestHighJumpReducesGravityWhileHeld(t *testing.T) {
	h := groundedWalker(t)
	w := h.modes.Walk

	h.c.OnJumpAction(true)
	if !w.HighJumping() {
		t.Fatalf("expected the jump buffer to run")
	}
	if h.body.Velocity().Y() <= 0 {
		t.Fatalf("expected an upwards impulse, got velocity %v", h.body.Velocity())
	}

	if !h.until(20, func() bool { return !w.HighJumping() }) {
		t.Fatalf("expected the jump buffer to run out")
	}
	if scale := h.body.GravityScale(); scale != settings.DefaultSettings().Walk.HighJumpMultiplier {
		t.Fatalf("expected reduced gravity while jump is held, got scale %v", scale)
	}

	h.c.OnJumpAction(false)
	if scale := h.body.GravityScale(); scale != 1 {
		t.Fatalf("expected normal gravity after release, got scale %v", scale)
	}
	if !h.until(200, w.Grounded) {
		t.Fatalf("expected to land again")
	}
}

func TestHighJumpBufferOnlyRunsInTheAir(t *testing.T) {
	s := settings.DefaultSettings().Walk
	s.HighJumpBufferTime = 0.2
	w := &Walk{s: s, grounded: true}
	task := &highJumpTask{w: w, buffer: s.HighJumpBufferTime}

	for i := 0; i < 5; i++ {
		if task.Step(tickRate) {
			t.Fatalf("expected the task to wait for take off")
		}
	}
	if task.buffer != s.HighJumpBufferTime {
		t.Fatalf("expected the buffer to stay at %v on the ground, got %v", s.HighJumpBufferTime, task.buffer)
	}

	w.grounded = false
	var steps int
	for !task.Step(tickRate) {
		steps++
	}
	if steps < 9 || steps > 10 {
		t.Fatalf("expected the buffer to last %v seconds in the air, it lasted %d steps", s.HighJumpBufferTime, steps+1)
	}
}

func TestHighJumpEndsIfBodyNeverLeavesGround(t *testing.T) {
	s := settings.DefaultSettings().Walk
	s.HighJumpBufferTime = 0.1
	task := &highJumpTask{w: &Walk{s: s, grounded: true}, buffer: s.HighJumpBufferTime}

	var steps int
	for !task.Step(tickRate) {
		if steps++; steps > 10 {
			t.Fatalf("expected a jump that never took off to end")
		}
	}
	if task.buffer != s.HighJumpBufferTime {
		t.Fatalf("expected the buffer to be untouched, got %v", task.buffer)
	}
}

func TestReleasingJumpEarlyCancelsBuffer(t *testing.T) {
	h := groundedWalker(t)
	w := h.modes.Walk

	h.c.OnJumpAction(true)
	h.tick(2)
	h.c.OnJumpAction(false)
	if w.HighJumping() {
		t.Fatalf("expected release to cancel the jump buffer")
	}
	h.tick(20)
	if scale := h.body.GravityScale(); scale != 1 {
		t.Fatalf("expected normal gravity, got scale %v", scale)
	}
}

func TestCoyoteJumpAfterWalkingOffEdge(t *testing.T) {
	h := groundedWalker(t)
	w := h.modes.Walk

	// Falling off a ledge.
	h.body.SetPosition(mgl32.Vec3{0, 5, 0})
	h.body.SetVelocity(mgl32.Vec3{0, -1, 0})
	h.c.TickFixedUpdate(tickRate)
	if w.Grounded() || !w.CoyoteActive() {
		t.Fatalf("expected coyote time to start when falling off the ground")
	}

	h.c.OnJumpAction(true)
	if w.CoyoteActive() || !w.HighJumping() {
		t.Fatalf("expected the coyote jump to start the jump buffer and end coyote time")
	}
	if h.body.Velocity().Y() <= 0 {
		t.Fatalf("expected the jump to push the body up, got velocity %v", h.body.Velocity())
	}
}

func TestNoCoyoteAfterJumpingOff(t *testing.T) {
	h := groundedWalker(t)
	w := h.modes.Walk

	h.body.SetPosition(mgl32.Vec3{0, 5, 0})
	h.body.SetVelocity(mgl32.Vec3{0, 3, 0})
	h.c.TickFixedUpdate(tickRate)

	h.body.SetVelocity(mgl32.Vec3{0, -1, 0})
	h.c.TickFixedUpdate(tickRate)
	if w.CoyoteActive() {
		t.Fatalf("expected no coyote time after leaving the ground upwards")
	}
	h.c.OnJumpAction(true)
	if w.HighJumping() {
		t.Fatalf("expected no jump in mid air")
	}
}

func TestCoyoteTimeRunsOut(t *testing.T) {
	h := groundedWalker(t)
	w := h.modes.Walk

	h.body.SetPosition(mgl32.Vec3{0, 50, 0})
	h.body.SetVelocity(mgl32.Vec3{0, -1, 0})
	h.c.TickFixedUpdate(tickRate)
	if !w.CoyoteActive() {
		t.Fatalf("expected coyote time to start")
	}
	if !h.until(20, func() bool { return !w.CoyoteActive() }) {
		t.Fatalf("expected coyote time to run out")
	}
	h.c.OnJumpAction(true)
	if w.HighJumping() {
		t.Fatalf("expected no jump after coyote time ran out")
	}
}

func TestJumpTimersAreExclusive(t *testing.T) {
	h := groundedWalker(t)
	w := h.modes.Walk

	w.startHighJump()
	w.startCoyote()
	if w.HighJumping() || !w.CoyoteActive() {
		t.Fatalf("expected coyote time to cancel the jump buffer")
	}
	w.startHighJump()
	if !w.HighJumping() || w.CoyoteActive() {
		t.Fatalf("expected the jump buffer to cancel coyote time")
	}
}

func TestSwitchingToWalkKeepsTimers(t *testing.T) {
	h := groundedWalker(t)
	h.c.OnJumpAction(true)

	h.c.SwitchMode(player.ModeWalk)
	if !h.modes.Walk.HighJumping() {
		t.Fatalf("expected switching to the active mode to leave the jump buffer running")
	}
}

func TestWalkIntoClimbSurfaceStartsClimbing(t *testing.T) {
	h := groundedWalker(t)
	h.addBox("wall", cube.Box(-10, 0, 2, 10, 10, 3), physics.TagClimbSurface)

	h.c.OnMoveDirection(mgl32.Vec2{0, 1})
	if !h.until(100, func() bool { return h.c.Mode() == player.ModeSurfaceClimb }) {
		t.Fatalf("expected to start climbing the wall, body is at %v", h.body.Position())
	}
	if !h.body.Kinematic() || h.body.UsesGravity() {
		t.Fatalf("expected a kinematic body without gravity while climbing")
	}
	if !h.camera.OnWall() {
		t.Fatalf("expected the camera to be told the character is on a wall")
	}
	if h.c.InputMap() != player.InputMapClimbing {
		t.Fatalf("expected climbing input map, got %v", h.c.InputMap())
	}
}

func TestWalkIntoUntaggedWallKeepsWalking(t *testing.T) {
	h := groundedWalker(t)
	h.addBox("wall", cube.Box(-10, 0, 2, 10, 10, 3), physics.TagUntagged)

	h.c.OnMoveDirection(mgl32.Vec2{0, 1})
	h.tick(60)
	h.expectMode(player.ModeWalk)
	if z := h.body.Position().Z(); z > 1.6+1e-3 {
		t.Fatalf("expected the wall to block the body, it is at z=%v", z)
	}
}

func TestWalkIntoClimbPointAttaches(t *testing.T) {
	h := groundedWalker(t)
	p := h.addPoint("ledge", mgl32.Vec3{0, 1.5, 2})

	h.c.OnMoveDirection(mgl32.Vec2{0, 1})
	if !h.until(100, func() bool { return h.c.Mode() == player.ModePointClimb }) {
		t.Fatalf("expected to grab the climb point, body is at %v", h.body.Position())
	}
	if !game.Vec3ApproxEq(h.body.Position(), p.AttachPosition(), 1e-4) {
		t.Fatalf("expected the body at %v, got %v", p.AttachPosition(), h.body.Position())
	}
	if current, ok := h.modes.Point.Current(); !ok || current != p {
		t.Fatalf("expected to hang from %q", p.ID())
	}
}

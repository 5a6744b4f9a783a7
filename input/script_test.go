package input

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/player"
	"github.com/oomph-ac/traverse/world"
)

const walkThenJump = `
move_x = 0.0
move_y = 0.0
jump = false
if mode == "Walk" {
	move_y = 1.0
}
if tick >= 10 && tick < 12 {
	jump = true
}
if pos[1] > 5 {
	move_x = -1
}
`

func TestScriptReadsGlobals(t *testing.T) {
	s, err := NewScript([]byte(walkThenJump))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := s.Next(0, player.ModeWalk, mgl32.Vec3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Move != (mgl32.Vec2{0, 1}) || f.Jump {
		t.Fatalf("expected to walk forward without jumping, got %+v", f)
	}

	f, err = s.Next(10, player.ModeSurfaceClimb, mgl32.Vec3{0, 6, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Move != (mgl32.Vec2{-1, 0}) || !f.Jump {
		t.Fatalf("expected to move left and jump, got %+v", f)
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := NewScript([]byte("move_x = ")); err == nil {
		t.Fatalf("expected a syntax error")
	}
}

func TestScriptRuntimeError(t *testing.T) {
	s, err := NewScript([]byte(`move_x = tick / 0`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Next(0, player.ModeWalk, mgl32.Vec3{}); err == nil {
		t.Fatalf("expected a division by zero at run time")
	}
}

func TestDriveReturnsRuntimeError(t *testing.T) {
	s, err := NewScript([]byte(`
move_y = 1.0
if tick == 3 {
	move_x = tick / (tick - 3)
}
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := world.New(nil)
	c := player.New(nil, w.NewBody(mgl32.Vec3{}, mgl32.Vec3{0.4, 1, 0.4}), w, player.NewFixedCamera(mgl32.QuatIdent()), nil)
	j := &jumpCounter{}
	c.Register(player.ModeWalk, j)
	c.SwitchMode(player.ModeWalk)

	for tick := int64(0); tick < 3; tick++ {
		if err := s.Drive(c, tick); err != nil {
			t.Fatalf("unexpected error at tick %d: %v", tick, err)
		}
	}
	err = s.Drive(c, 3)
	if err == nil {
		t.Fatalf("expected the division at tick 3 to fail")
	}
	if !strings.Contains(err.Error(), "tick 3") {
		t.Fatalf("expected the error to name the tick, got %v", err)
	}
}

// jumpCounter is a walking mode that counts the input it receives.
type jumpCounter struct {
	moves   []mgl32.Vec2
	presses int
	release int
}

func (*jumpCounter) Enter()                                {}
func (*jumpCounter) Exit()                                 {}
func (*jumpCounter) Update(float32)                        {}
func (*jumpCounter) FixedUpdate(float32) player.MoveStatus { return player.StatusWalkable }
func (j *jumpCounter) OnMove(dir mgl32.Vec2)               { j.moves = append(j.moves, dir) }
func (j *jumpCounter) OnJump(pressed bool) {
	if pressed {
		j.presses++
		return
	}
	j.release++
}

func TestDriveSendsEdgesOnly(t *testing.T) {
	s, err := NewScript([]byte(walkThenJump))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := world.New(nil)
	c := player.New(nil, w.NewBody(mgl32.Vec3{}, mgl32.Vec3{0.4, 1, 0.4}), w, player.NewFixedCamera(mgl32.QuatIdent()), nil)
	j := &jumpCounter{}
	c.Register(player.ModeWalk, j)
	c.SwitchMode(player.ModeWalk)
	j.moves = nil

	for tick := int64(0); tick < 20; tick++ {
		if err := s.Drive(c, tick); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if j.presses != 1 || j.release != 1 {
		t.Fatalf("expected one press and one release, got %d and %d", j.presses, j.release)
	}
	if len(j.moves) != 1 || j.moves[0] != (mgl32.Vec2{0, 1}) {
		t.Fatalf("expected a single forward move, got %v", j.moves)
	}
}

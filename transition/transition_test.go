package transition

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/physics"
)

type stubBody struct {
	pos    mgl32.Vec3
	rot    mgl32.Quat
	writes int
}

func newStubBody(pos mgl32.Vec3) *stubBody {
	return &stubBody{pos: pos, rot: mgl32.QuatIdent()}
}

func (b *stubBody) Position() mgl32.Vec3                   { return b.pos }
func (b *stubBody) SetPosition(pos mgl32.Vec3)             { b.pos = pos; b.writes++ }
func (b *stubBody) Rotation() mgl32.Quat                   { return b.rot }
func (b *stubBody) SetRotation(rot mgl32.Quat)             { b.rot = rot }
func (b *stubBody) Velocity() mgl32.Vec3                   { return mgl32.Vec3{} }
func (b *stubBody) SetVelocity(mgl32.Vec3)                 {}
func (b *stubBody) SetAngularVelocity(mgl32.Vec3)          {}
func (b *stubBody) Kinematic() bool                        { return true }
func (b *stubBody) SetKinematic(bool)                      {}
func (b *stubBody) SetUseGravity(bool)                     {}
func (b *stubBody) GravityScale() float32                  { return 1 }
func (b *stubBody) SetGravityScale(float32)                {}
func (b *stubBody) SetRotationLocks(physics.RotationLock)  {}
func (b *stubBody) AddForce(mgl32.Vec3, physics.ForceMode) {}

func TestCurveEndpointsAreExact(t *testing.T) {
	curves := []Curve{
		NewCurve(mgl32.Vec3{0.1, 0.2, 0.3}, mgl32.Vec3{7.7, -3.3, 1e3}, game.WorldUp, 3),
		NewCurve(mgl32.Vec3{-12.345, 6.789, 0.001}, mgl32.Vec3{0.3, 0.7, 0.9}, mgl32.Vec3{0.2, -0.4, 1}, 0.1),
		{Start: mgl32.Vec3{1, 1, 1}, Control: mgl32.Vec3{1, 1, 1}, End: mgl32.Vec3{1, 1, 1}},
	}
	for _, c := range curves {
		if got := c.Eval(0); got != c.Start {
			t.Fatalf("expected Eval(0) == %v, got %v", c.Start, got)
		}
		if got := c.Eval(1); got != c.End {
			t.Fatalf("expected Eval(1) == %v, got %v", c.End, got)
		}
	}
}

func TestCurveBulgesAlongNormal(t *testing.T) {
	c := NewCurve(mgl32.Vec3{}, mgl32.Vec3{2, 0, 0}, game.WorldUp, 2)
	if c.Control != (mgl32.Vec3{1, 2, 0}) {
		t.Fatalf("expected control point (1, 2, 0), got %v", c.Control)
	}
	// the midpoint of a quadratic curve is halfway between the chord midpoint and the control point
	if got := c.Eval(0.5); !game.Vec3ApproxEq(got, mgl32.Vec3{1, 1, 0}, 1e-5) {
		t.Fatalf("expected (1, 1, 0) at t=0.5, got %v", got)
	}
}

func TestBezierReachesEndPose(t *testing.T) {
	body := newStubBody(mgl32.Vec3{})
	b := NewBezier(body)

	completed := 0
	h := b.Begin(Params{
		End:         mgl32.Vec3{0, 0, 4},
		CurveNormal: game.WorldUp,
		Duration:    1,
		Height:      1,
		Rotate:      true,
		EndForward:  mgl32.Vec3{1, 0, 0},
	}, func() { completed++ })

	for i := 0; i < 9; i++ {
		b.Step(0.1)
		if !h.Active() {
			t.Fatalf("expected transition to still run after %v steps", i+1)
		}
	}
	b.Step(0.15)

	if h.State() != StateCompleted || completed != 1 {
		t.Fatalf("expected completed transition with one callback, got %v with %v callbacks", h.State(), completed)
	}
	if body.pos != (mgl32.Vec3{0, 0, 4}) {
		t.Fatalf("expected body at the end position, got %v", body.pos)
	}
	if fwd := game.Forward(body.rot); !game.Vec3ApproxEq(fwd, mgl32.Vec3{1, 0, 0}, 1e-4) {
		t.Fatalf("expected body to face +X, got %v", fwd)
	}

	b.Step(0.1)
	if completed != 1 {
		t.Fatalf("expected no further callbacks, got %v", completed)
	}
}

func TestSecondTransitionCancelsFirst(t *testing.T) {
	body := newStubBody(mgl32.Vec3{})
	b := NewBezier(body)

	firstDone, secondDone := false, false
	first := b.Begin(Params{End: mgl32.Vec3{10, 0, 0}, Duration: 1}, func() { firstDone = true })
	b.Step(0.5)

	second := b.Begin(Params{End: mgl32.Vec3{0, 10, 0}, Duration: 1}, func() { secondDone = true })
	if first.State() != StateCancelled {
		t.Fatalf("expected first transition to be cancelled, got %v", first.State())
	}
	if b.Current() != second {
		t.Fatalf("expected second transition to be the only one in flight")
	}

	writes := body.writes
	b.Step(1)
	if body.writes != writes+1 {
		t.Fatalf("expected exactly one position write per step, got %v", body.writes-writes)
	}
	if firstDone || !secondDone {
		t.Fatalf("expected only the second callback to run, got first=%v second=%v", firstDone, secondDone)
	}
}

func TestCancelSkipsCompletion(t *testing.T) {
	body := newStubBody(mgl32.Vec3{})
	b := NewBezier(body)

	done := false
	h := b.Begin(Params{End: mgl32.Vec3{1, 0, 0}, Duration: 1}, func() { done = true })
	b.Cancel()
	b.Step(2)

	if done || h.State() != StateCancelled || b.Active() {
		t.Fatalf("expected cancelled transition without callback, got state %v done=%v", h.State(), done)
	}
	if body.writes != 0 {
		t.Fatalf("expected cancelled transition to never move the body, got %v writes", body.writes)
	}
}

func TestCompletionMayStartAnotherTask(t *testing.T) {
	body := newStubBody(mgl32.Vec3{})
	b := NewBezier(body)

	var chained *Handle
	b.Begin(Params{End: mgl32.Vec3{1, 0, 0}}, func() {
		chained = b.Begin(Params{End: mgl32.Vec3{2, 0, 0}, Duration: 1}, nil)
	})
	b.Step(0.1)

	if chained == nil || !chained.Active() || b.Current() != chained {
		t.Fatalf("expected the chained transition to be in flight")
	}
}

func TestNilHandleIsIdle(t *testing.T) {
	var h *Handle
	if h.State() != StateIdle || h.Active() {
		t.Fatalf("expected nil handle to be idle")
	}
}

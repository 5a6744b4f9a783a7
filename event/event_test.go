package event

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/player"
)

func TestRecorderRoundTrip(t *testing.T) {
	r := NewRecorder()
	r.HandleModeSwitch(player.ModeNone, player.ModeWalk)
	r.HandleFixedTick(player.ModeWalk, player.StatusWalkable, mgl32.Vec3{1, 2, 3})
	r.HandleFixedTick(player.ModeWalk, player.StatusWalkable, mgl32.Vec3{1, 2, 4})
	r.HandleModeSwitch(player.ModeWalk, player.ModeSurfaceClimb)

	events, err := DecodeEvents(r.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 4 || r.Len() != 4 {
		t.Fatalf("expected 4 events, got %d (recorded %d)", len(events), r.Len())
	}

	sw, ok := events[3].(ModeSwitchEvent)
	if !ok {
		t.Fatalf("expected a ModeSwitchEvent, got %T", events[3])
	}
	if sw.From != player.ModeWalk || sw.To != player.ModeSurfaceClimb || sw.Time() != 2 {
		t.Fatalf("expected walk -> surface switch after 2 ticks, got %+v", sw)
	}
	tick, ok := events[2].(FixedTickEvent)
	if !ok {
		t.Fatalf("expected a FixedTickEvent, got %T", events[2])
	}
	if tick.Position != (mgl32.Vec3{1, 2, 4}) || tick.Time() != 1 {
		t.Fatalf("expected second tick at (1, 2, 4), got %+v", tick)
	}
}

func TestDigestIsDeterministic(t *testing.T) {
	record := func(y float32) *Recorder {
		r := NewRecorder()
		r.HandleModeSwitch(player.ModeNone, player.ModeWalk)
		r.HandleFixedTick(player.ModeWalk, player.StatusWalkable, mgl32.Vec3{0, y, 0})
		return r
	}
	if record(1).Digest() != record(1).Digest() {
		t.Fatalf("expected the same events to produce the same digest")
	}
	if record(1).Digest() == record(2).Digest() {
		t.Fatalf("expected different events to produce different digests")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvents([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected a truncated header to fail")
	}

	ev := ModeSwitchEvent{From: player.ModeWalk, To: player.ModePointClimb}
	dat := ev.Encode()
	dat[0] = 0xff
	if _, err := DecodeEvents(dat); err == nil {
		t.Fatalf("expected an unknown event id to fail")
	}
}

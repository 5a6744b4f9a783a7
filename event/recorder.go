package event

import (
	"bytes"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/player"
	"github.com/zeebo/xxh3"
)

// Recorder is a player.Handler that records the mode switches and physics steps of a character. Events
// are timed by the number of physics steps recorded before them, so two runs of the same simulation
// produce the same recording.
type Recorder struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	tick int64
	n    int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) HandleModeSwitch(from, to player.MovementMode) {
	r.record(func(t int64) Event {
		ev := ModeSwitchEvent{From: from, To: to}
		ev.EvTime = t
		return ev
	})
}

func (r *Recorder) HandleFixedTick(mode player.MovementMode, status player.MoveStatus, pos mgl32.Vec3) {
	r.record(func(t int64) Event {
		ev := FixedTickEvent{Mode: mode, Status: status, Position: pos}
		ev.EvTime = t
		return ev
	})
	r.mu.Lock()
	r.tick++
	r.mu.Unlock()
}

func (r *Recorder) record(f func(t int64) Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.Write(f(r.tick).Encode())
	r.n++
}

// Len returns the number of events recorded.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// Bytes returns a copy of the encoded events. DecodeEvents turns them back into events.
func (r *Recorder) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return bytes.Clone(r.buf.Bytes())
}

// Digest returns a hash of everything recorded so far.
func (r *Recorder) Digest() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return xxh3.Hash(r.buf.Bytes())
}

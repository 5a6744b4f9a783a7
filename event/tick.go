package event

import (
	"bytes"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/player"
)

// FixedTickEvent is recorded after every physics step of a character.
type FixedTickEvent struct {
	NopEvent

	Mode     player.MovementMode
	Status   player.MoveStatus
	Position mgl32.Vec3
}

func (FixedTickEvent) ID() byte {
	return EventIDFixedTick
}

func (ev FixedTickEvent) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		buf.WriteByte(byte(ev.Mode))
		buf.WriteByte(byte(ev.Status))
		writeVec3(buf, ev.Position)
	})
}

package event

import (
	"bytes"

	"github.com/oomph-ac/traverse/player"
)

// ModeSwitchEvent is recorded whenever a character changes movement mode.
type ModeSwitchEvent struct {
	NopEvent

	From, To player.MovementMode
}

func (ModeSwitchEvent) ID() byte {
	return EventIDModeSwitch
}

func (ev ModeSwitchEvent) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		buf.WriteByte(byte(ev.From))
		buf.WriteByte(byte(ev.To))
	})
}

package event

import (
	"bytes"
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/internal"
	"github.com/oomph-ac/traverse/oerror"
	"github.com/oomph-ac/traverse/player"
)

const EventsVersion = "1"

// Event is something that happened to a character, in the order it happened.
type Event interface {
	ID() byte
	Encode() []byte

	// Time returns the physics step the event happened during.
	Time() int64
}

type NopEvent struct {
	EvTime int64
}

func (n NopEvent) Time() int64 {
	return n.EvTime
}

func WriteEventHeader(ev Event, buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, uint64(ev.ID()))
	binary.Write(buf, binary.LittleEndian, uint64(ev.Time()))
}

// encode runs write on a pooled buffer and returns a copy of what it wrote.
func encode(ev Event, write func(buf *bytes.Buffer)) []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	write(buf)
	return bytes.Clone(buf.Bytes())
}

func DecodeEvents(dat []byte) ([]Event, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	buf.Write(dat)
	defer internal.BufferPool.Put(buf)

	events := []Event{}
	for buf.Len() > 0 {
		ev, err := DecodeEvent(buf)
		if err != nil {
			return events, oerror.New("error decoding event: %w", err)
		}

		events = append(events, ev)
	}

	return events, nil
}

func DecodeEvent(buf *bytes.Buffer) (Event, error) {
	if buf.Len() < 16 {
		return nil, oerror.New("event header needs 16 bytes, got %d", buf.Len())
	}
	id := byte(binary.LittleEndian.Uint64(buf.Next(8)))
	t := int64(binary.LittleEndian.Uint64(buf.Next(8)))

	switch id {
	case EventIDModeSwitch:
		if buf.Len() < 2 {
			return nil, oerror.New("ModeSwitchEvent needs 2 bytes, got %d", buf.Len())
		}
		ev := ModeSwitchEvent{}
		ev.EvTime = t
		ev.From = player.MovementMode(buf.Next(1)[0])
		ev.To = player.MovementMode(buf.Next(1)[0])
		return ev, nil
	case EventIDFixedTick:
		if buf.Len() < 14 {
			return nil, oerror.New("FixedTickEvent needs 14 bytes, got %d", buf.Len())
		}
		ev := FixedTickEvent{}
		ev.EvTime = t
		ev.Mode = player.MovementMode(buf.Next(1)[0])
		ev.Status = player.MoveStatus(buf.Next(1)[0])
		ev.Position = readVec3(buf)
		return ev, nil
	default:
		return nil, oerror.New("unknown event: %d", id)
	}
}

func writeVec3(buf *bytes.Buffer, v mgl32.Vec3) {
	binary.Write(buf, binary.LittleEndian, v)
}

func readVec3(buf *bytes.Buffer) (v mgl32.Vec3) {
	binary.Read(buf, binary.LittleEndian, &v)
	return v
}

const (
	_ = iota
	EventIDModeSwitch
	EventIDFixedTick
)

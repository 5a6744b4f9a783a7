package input

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/oerror"
	"github.com/oomph-ac/traverse/player"
)

// Frame is the input a script produced for one tick.
type Frame struct {
	Move mgl32.Vec2
	Jump bool
}

// Script produces a character's input from a tengo script. Before every run the script can read the
// globals tick, mode and pos, the last being an array of three floats. It answers by assigning move_x,
// move_y and jump.
type Script struct {
	compiled *tengo.Compiled
	last     Frame
}

// NewScript compiles src. The math, text and fmt modules may be imported by it.
func NewScript(src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	for name, value := range map[string]any{
		"tick":   int64(0),
		"mode":   "",
		"pos":    []any{0.0, 0.0, 0.0},
		"move_x": 0.0,
		"move_y": 0.0,
		"jump":   false,
	} {
		if err := script.Add(name, value); err != nil {
			return nil, oerror.New("error declaring %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math", "text", "fmt"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, oerror.New("error compiling input script: %w", err)
	}
	return &Script{compiled: compiled}, nil
}

// LoadScript reads and compiles the script at path.
func LoadScript(path string) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, oerror.New("error reading input script: %w", err)
	}
	return NewScript(src)
}

// Next runs the script for the given tick and returns the input it produced. A fault raised by the
// virtual machine, such as an integer division by zero, is returned as an error.
func (s *Script) Next(tick int64, mode player.MovementMode, pos mgl32.Vec3) (f Frame, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, err = Frame{}, oerror.New("input script failed at tick %d: %s", tick, fmt.Sprint(r))
		}
	}()
	for name, value := range map[string]any{
		"tick": tick,
		"mode": mode.String(),
		"pos":  []any{float64(pos[0]), float64(pos[1]), float64(pos[2])},
	} {
		if err := s.compiled.Set(name, value); err != nil {
			return Frame{}, oerror.New("error setting %s: %w", name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return Frame{}, oerror.New("error running input script at tick %d: %w", tick, err)
	}

	return Frame{
		Move: mgl32.Vec2{float32(s.compiled.Get("move_x").Float()), float32(s.compiled.Get("move_y").Float())},
		Jump: s.compiled.Get("jump").Bool(),
	}, nil
}

// Drive runs the script for the tick and delivers its input to the controller. Jump actions are only
// delivered when the jump value changes, so holding jump is a single press.
func (s *Script) Drive(c *player.Controller, tick int64) error {
	f, err := s.Next(tick, c.Mode(), c.Body().Position())
	if err != nil {
		return err
	}
	if f.Move != s.last.Move {
		c.OnMoveDirection(f.Move)
	}
	if f.Jump != s.last.Jump {
		c.OnJumpAction(f.Jump)
	}
	s.last = f
	return nil
}

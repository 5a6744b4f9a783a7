package settings

import (
	"errors"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/oerror"
	"github.com/pelletier/go-toml"
)

// Settings contains every tunable value of the movement modes.
type Settings struct {
	Debug struct {
		// Enabled turns on diagnostic logging and debug drawing from the start.
		Enabled bool
		// LogLevel is any level logrus can parse.
		LogLevel string
	}
	Walk    Walk
	Climb   Climb
	Surface Surface
	Point   Point
}

// Vec3 is a vector as written in the settings file.
type Vec3 struct {
	X, Y, Z float32
}

// V returns a Vec3 with the given components.
func V(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec returns the vector as an mgl32.Vec3.
func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Cast configures a box cast relative to the body. Offset is in the body's local space.
type Cast struct {
	Offset   Vec3
	HalfSize Vec3
	Distance float32
}

// Curve configures a bezier transition.
type Curve struct {
	// Duration is in seconds.
	Duration float32
	Height   float32
}

// Movement are the settings every mode has.
type Movement struct {
	MoveSpeed    float32
	JumpStrength float32
	// WalkableDot is the smallest dot product between a surface normal and world up for the surface to be
	// stood on.
	WalkableDot float32
	// Mask is the set of collision layers the mode's casts consider.
	Mask uint32
	// Ground is the cast that looks for the floor below the body.
	Ground Cast
	// Direction is the cast along the direction the body is moving in.
	Direction Cast
}

// Walk configures grounded movement.
type Walk struct {
	Movement Movement

	// JumpMoveControlFactor scales movement while airborne.
	JumpMoveControlFactor float32
	// HighJumpMultiplier scales gravity while the jump button is held after the buffer ran out.
	HighJumpMultiplier float32
	HighJumpBufferTime float32
	CoyoteBufferTime   float32
	// SlopeDot is the smallest normal dot product that still counts as a slope. It should be lower than
	// Movement.WalkableDot.
	SlopeDot            float32
	SlopeUpMultiplier   float32
	SlopeDownMultiplier float32
	LookRotationSpeed   float32
}

// Climb configures the behaviour shared by both climbing modes.
type Climb struct {
	// FacingOffset is where the lower of the two facing casts starts, relative to the body.
	FacingOffset Vec3
	// FacingHalfHeight is half the vertical distance between the two facing casts.
	FacingHalfHeight float32
	FacingRadius     float32
	FacingDistance   float32
	// JumpDownThreshold is the vertical input below which a jump lets go of the wall.
	JumpDownThreshold float32
	JumpDown          Curve
	// CrossMode is used when switching between surface and point climbing.
	CrossMode Curve
}

// Surface configures surface climbing.
type Surface struct {
	Movement Movement

	// TransitionMaxAngleDot is the largest dot product between a wrap-around surface normal and the
	// direction the body is facing for the body to move onto it.
	TransitionMaxAngleDot float32
	Transition            Cast
	MinGapDistance        float32
	// MinSphericalNormalDot is the dot product above which two normals are considered part of the same
	// curved surface.
	MinSphericalNormalDot float32
	ScanStep              float32
	WrapForwardOffset     float32
	// LedgeHeight is how far above a ledge the body's position ends up when it climbs onto it.
	LedgeHeight float32

	Corner Curve
	Wrap   Curve
	Hop    Curve
}

// Point configures point climbing.
type Point struct {
	Movement Movement

	DetectRadius   float32
	MinNeighborDot float32
	Hop            Curve
}

// DefaultSettings returns the default settings for a character whose body is 0.8 wide and 2 high.
func DefaultSettings() Settings {
	s := Settings{}
	s.Debug.LogLevel = "info"

	s.Walk.Movement = Movement{
		MoveSpeed:    40,
		JumpStrength: 6,
		WalkableDot:  0.75,
		Mask:         ^uint32(0),
		Ground:       Cast{Offset: V(0, -0.9, 0), HalfSize: V(0.35, 0.05, 0.35), Distance: 0.2},
		Direction:    Cast{Offset: V(0, 0, 0), HalfSize: V(0.3, 0.6, 0.1), Distance: 0.6},
	}
	s.Walk.JumpMoveControlFactor = 0.5
	s.Walk.HighJumpMultiplier = 0.3
	s.Walk.HighJumpBufferTime = 0.2
	s.Walk.CoyoteBufferTime = 0.15
	s.Walk.SlopeDot = 0.65
	s.Walk.SlopeUpMultiplier = 0.6
	s.Walk.SlopeDownMultiplier = 1.2
	s.Walk.LookRotationSpeed = 0.7

	s.Climb.FacingOffset = V(0, -0.6, 0)
	s.Climb.FacingHalfHeight = 0.6
	s.Climb.FacingRadius = 0.15
	s.Climb.FacingDistance = 1.5
	s.Climb.JumpDownThreshold = -0.5
	s.Climb.JumpDown = Curve{Duration: 0.5, Height: 0.1}
	s.Climb.CrossMode = Curve{Duration: 3, Height: 2}

	climbing := Movement{
		MoveSpeed:    2,
		JumpStrength: 1.5,
		WalkableDot:  0.75,
		Mask:         ^uint32(0),
		Ground:       Cast{Offset: V(0, -0.8, 0), HalfSize: V(0.3, 0.1, 0.3), Distance: 0.4},
		Direction:    Cast{Offset: V(0, 0, 0), HalfSize: V(0.2, 0.2, 0.2), Distance: 1.2},
	}
	s.Surface.Movement = climbing
	s.Surface.TransitionMaxAngleDot = 0.5
	s.Surface.Transition = Cast{Offset: V(0, 0, 0), HalfSize: V(0.2, 0.2, 0.2), Distance: 1.5}
	s.Surface.MinGapDistance = 0.5
	s.Surface.MinSphericalNormalDot = 0.9
	s.Surface.ScanStep = 0.5
	s.Surface.WrapForwardOffset = 1.25
	s.Surface.LedgeHeight = 1
	s.Surface.Corner = Curve{Duration: 3, Height: 1}
	s.Surface.Wrap = Curve{Duration: 3, Height: 2}
	s.Surface.Hop = Curve{Duration: 3, Height: 0.5}

	s.Point.Movement = climbing
	s.Point.Movement.MoveSpeed = 1
	s.Point.DetectRadius = 2
	s.Point.MinNeighborDot = 0.15
	s.Point.Hop = Curve{Duration: 3, Height: 1}
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return oerror.New("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return oerror.New("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, oerror.New("error reading settings: %w", err)
	}

	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, oerror.New("error decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadOrCreate loads the settings file, writing the defaults to it first if it does not exist yet.
func LoadOrCreate(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
	}
	return Load(path)
}

// Validate checks for values the movement modes cannot work with.
func (s Settings) Validate() error {
	casts := []struct {
		name string
		c    Cast
	}{
		{"Walk.Movement.Ground", s.Walk.Movement.Ground},
		{"Walk.Movement.Direction", s.Walk.Movement.Direction},
		{"Surface.Movement.Ground", s.Surface.Movement.Ground},
		{"Surface.Movement.Direction", s.Surface.Movement.Direction},
		{"Surface.Transition", s.Surface.Transition},
		{"Point.Movement.Ground", s.Point.Movement.Ground},
		{"Point.Movement.Direction", s.Point.Movement.Direction},
	}
	for _, cast := range casts {
		name, c := cast.name, cast.c
		if c.Distance <= 0 {
			return oerror.New("%s.Distance must be positive, got %v", name, c.Distance)
		}
		if c.HalfSize.X < 0 || c.HalfSize.Y < 0 || c.HalfSize.Z < 0 {
			return oerror.New("%s.HalfSize must not be negative, got %v", name, c.HalfSize)
		}
	}
	if s.Surface.ScanStep <= 0 {
		return oerror.New("Surface.ScanStep must be positive, got %v", s.Surface.ScanStep)
	}
	if s.Surface.LedgeHeight < 0 {
		return oerror.New("Surface.LedgeHeight must not be negative, got %v", s.Surface.LedgeHeight)
	}
	if s.Point.DetectRadius <= 0 {
		return oerror.New("Point.DetectRadius must be positive, got %v", s.Point.DetectRadius)
	}
	if s.Walk.SlopeDot > s.Walk.Movement.WalkableDot {
		return oerror.New("Walk.SlopeDot (%v) must not exceed Walk.Movement.WalkableDot (%v)", s.Walk.SlopeDot, s.Walk.Movement.WalkableDot)
	}
	return nil
}

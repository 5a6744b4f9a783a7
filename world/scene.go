package world

import (
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/climb"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/oerror"
	"github.com/oomph-ac/traverse/physics"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Scene is the authored description of a world: its static boxes, its climb points and where characters
// spawn.
type Scene struct {
	Gravity []float32     `yaml:"gravity"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Boxes   []BoxConfig   `yaml:"boxes"`
	Points  []PointConfig `yaml:"points"`
}

// SpawnConfig is where characters start.
type SpawnConfig struct {
	Position []float32 `yaml:"position"`
	// Facing is the direction characters look at when they spawn.
	Facing []float32 `yaml:"facing"`
}

// BoxConfig is a static box collider.
type BoxConfig struct {
	ID    string    `yaml:"id"`
	Tag   string    `yaml:"tag"`
	Min   []float32 `yaml:"min"`
	Max   []float32 `yaml:"max"`
	Layer uint32    `yaml:"layer"`
}

// PointConfig is a climb point.
type PointConfig struct {
	ID       string    `yaml:"id"`
	Position []float32 `yaml:"position"`
	// Normal is the direction pointing out of the wall.
	Normal    []float32 `yaml:"normal"`
	Offset    []float32 `yaml:"offset"`
	HalfRange float32   `yaml:"half_range"`
	// Size is the half extents of the collider the point is found with.
	Size      []float32 `yaml:"size"`
	Layer     uint32    `yaml:"layer"`
	Neighbors []string  `yaml:"neighbors"`
}

// LoadScene reads a YAML scene from disk.
func LoadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, oerror.New("failed to read scene %s: %w", path, err)
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene.
func ParseScene(data []byte) (Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, oerror.New("failed to parse scene: %w", err)
	}
	return s, nil
}

// SpawnPosition returns where characters spawn.
func (s Scene) SpawnPosition() mgl32.Vec3 {
	v, _ := vec3(s.Spawn.Position, mgl32.Vec3{})
	return v
}

// SpawnRotation returns the rotation characters spawn with.
func (s Scene) SpawnRotation() mgl32.Quat {
	v, _ := vec3(s.Spawn.Facing, game.WorldForward)
	return game.LookRotation(v, game.WorldUp)
}

// Build validates the scene and creates the world and climb graph it describes.
func (s Scene) Build(log *logrus.Logger) (*World, *climb.Graph, error) {
	w := New(log)
	if len(s.Gravity) != 0 {
		g, err := vec3(s.Gravity, mgl32.Vec3{})
		if err != nil {
			return nil, nil, oerror.New("scene gravity: %w", err)
		}
		w.SetGravity(g)
	}
	if _, err := vec3(s.Spawn.Position, mgl32.Vec3{}); err != nil {
		return nil, nil, oerror.New("scene spawn: %w", err)
	}

	for _, c := range s.Boxes {
		min, err := vec3(c.Min, mgl32.Vec3{})
		if err != nil {
			return nil, nil, oerror.New("box %q min: %w", c.ID, err)
		}
		max, err := vec3(c.Max, mgl32.Vec3{})
		if err != nil {
			return nil, nil, oerror.New("box %q max: %w", c.ID, err)
		}
		if min[0] >= max[0] || min[1] >= max[1] || min[2] >= max[2] {
			return nil, nil, oerror.New("box %q has no volume: %v -> %v", c.ID, min, max)
		}
		bb := cube.Box(min[0], min[1], min[2], max[0], max[1], max[2])
		if _, err := w.AddBox(c.ID, bb, physics.Tag(c.Tag), physics.Mask(c.Layer)); err != nil {
			return nil, nil, err
		}
	}

	g := climb.NewGraph()
	for _, c := range s.Points {
		p, size, err := c.point()
		if err != nil {
			return nil, nil, err
		}
		if err := g.Add(p); err != nil {
			return nil, nil, err
		}
		if err := w.AddPoint(p, size, physics.Mask(c.Layer)); err != nil {
			return nil, nil, err
		}
	}
	for _, c := range s.Points {
		for _, n := range c.Neighbors {
			if err := g.Link(c.ID, n); err != nil {
				return nil, nil, err
			}
		}
	}
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}

	w.log.Infof("world: built scene with %d colliders and %d climb points", w.Len(), g.Len())
	return w, g, nil
}

func (c PointConfig) point() (*climb.Point, mgl32.Vec3, error) {
	pos, err := vec3(c.Position, mgl32.Vec3{})
	if err != nil {
		return nil, mgl32.Vec3{}, oerror.New("climb point %q position: %w", c.ID, err)
	}
	normal, err := vec3(c.Normal, mgl32.Vec3{})
	if err != nil || game.IsZero(normal) {
		return nil, mgl32.Vec3{}, oerror.New("climb point %q needs a non-zero normal", c.ID)
	}
	offset, err := vec3(c.Offset, mgl32.Vec3{})
	if err != nil {
		return nil, mgl32.Vec3{}, oerror.New("climb point %q offset: %w", c.ID, err)
	}
	size, err := vec3(c.Size, mgl32.Vec3{0.25, 0.25, 0.25})
	if err != nil || size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
		return nil, mgl32.Vec3{}, oerror.New("climb point %q needs a positive size", c.ID)
	}
	rot := game.LookRotation(normal, game.WorldUp)
	return climb.NewPoint(c.ID, pos, rot, offset, c.HalfRange), size, nil
}

// vec3 converts a YAML sequence into a vector. An empty sequence yields def.
func vec3(v []float32, def mgl32.Vec3) (mgl32.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl32.Vec3{v[0], v[1], v[2]}, nil
	}
	return mgl32.Vec3{}, oerror.New("expected 3 components, got %d", len(v))
}

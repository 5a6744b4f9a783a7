package world

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/climb"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/oerror"
	"github.com/oomph-ac/traverse/physics"
	"github.com/sirupsen/logrus"
)

// LayerDefault is the layer colliders are placed on when none is given.
const LayerDefault = physics.Mask(1)

// World is an in-memory physics world made of axis aligned boxes. It answers the queries the movement
// modes issue and steps the bodies created from it.
type World struct {
	log *logrus.Logger

	colliders *orderedmap.OrderedMap[string, *entry]
	gravity   mgl32.Vec3

	sync.RWMutex
}

// entry is a collider as stored in the world. bounds is evaluated on every query so colliders that
// follow a moving object stay in sync with it.
type entry struct {
	owner  physics.Collider
	layer  physics.Mask
	bounds func() cube.BBox
}

// New returns an empty world with default gravity.
func New(log *logrus.Logger) *World {
	if log == nil {
		log = logrus.New()
	}
	return &World{
		log:       log,
		colliders: orderedmap.NewOrderedMap[string, *entry](),
		gravity:   mgl32.Vec3{0, game.DefaultGravity, 0},
	}
}

// Gravity returns the acceleration applied to bodies that use gravity.
func (w *World) Gravity() mgl32.Vec3 {
	w.RLock()
	defer w.RUnlock()
	return w.gravity
}

// SetGravity changes the acceleration applied to bodies that use gravity.
func (w *World) SetGravity(g mgl32.Vec3) {
	w.Lock()
	w.gravity = g
	w.Unlock()
}

// Box is a static box collider.
type Box struct {
	id  string
	bb  cube.BBox
	tag physics.Tag
}

// ID returns the id the box was added with.
func (b *Box) ID() string {
	return b.id
}

// Tag returns the tag of the box.
func (b *Box) Tag() physics.Tag {
	return b.tag
}

// Position returns the center of the box.
func (b *Box) Position() mgl32.Vec3 {
	return game.AABBCenter(b.bb)
}

// BBox returns the bounds of the box.
func (b *Box) BBox() cube.BBox {
	return b.bb
}

// AddBox adds a static box to the world on the given layer.
func (w *World) AddBox(id string, bb cube.BBox, tag physics.Tag, layer physics.Mask) (*Box, error) {
	if layer == 0 {
		layer = LayerDefault
	}
	b := &Box{id: id, bb: bb, tag: tag}
	if err := w.add(id, &entry{owner: b, layer: layer, bounds: b.BBox}); err != nil {
		return nil, err
	}
	w.log.Debugf("world: added %q box %v -> %v", tag, bb.Min(), bb.Max())
	return b, nil
}

// AddPoint adds a climb point as a box of the given half extents centered on the point. The box follows
// the point when it moves. Hits against it carry the *climb.Point itself.
func (w *World) AddPoint(p *climb.Point, half mgl32.Vec3, layer physics.Mask) error {
	if layer == 0 {
		layer = LayerDefault
	}
	bounds := func() cube.BBox {
		return game.AABBFromCenter(p.Position(), half)
	}
	if err := w.add(p.ID(), &entry{owner: p, layer: layer, bounds: bounds}); err != nil {
		return err
	}
	w.log.Debugf("world: added climb point %q at %v", p.ID(), p.Position())
	return nil
}

// Remove removes the collider with the given id. It returns false if there was none.
func (w *World) Remove(id string) bool {
	w.Lock()
	defer w.Unlock()
	return w.colliders.Delete(id)
}

// Len returns the number of colliders in the world.
func (w *World) Len() int {
	w.RLock()
	defer w.RUnlock()
	return w.colliders.Len()
}

func (w *World) add(id string, e *entry) error {
	w.Lock()
	defer w.Unlock()

	if _, ok := w.colliders.Get(id); ok {
		return oerror.New("duplicate collider %q", id)
	}
	w.colliders.Set(id, e)
	return nil
}

// each calls f for every collider on a layer matched by mask. The world must be read locked.
func (w *World) each(mask physics.Mask, f func(e *entry)) {
	for el := w.colliders.Front(); el != nil; el = el.Next() {
		if mask.Matches(el.Value.layer) {
			f(el.Value)
		}
	}
}

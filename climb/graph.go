package climb

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/oerror"
)

// Graph is the set of climb points in a scene, kept in the order they were added.
type Graph struct {
	points *orderedmap.OrderedMap[string, *Point]
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{points: orderedmap.NewOrderedMap[string, *Point]()}
}

// Add registers a point. Ids must be unique.
func (g *Graph) Add(p *Point) error {
	if p == nil {
		return oerror.New("cannot add nil climb point")
	}
	if _, ok := g.points.Get(p.id); ok {
		return oerror.New("duplicate climb point %q", p.id)
	}
	g.points.Set(p.id, p)
	return nil
}

// Point returns the point with the given id.
func (g *Graph) Point(id string) (*Point, bool) {
	return g.points.Get(id)
}

// Len returns the number of points in the graph.
func (g *Graph) Len() int {
	return g.points.Len()
}

// Points returns every point in insertion order.
func (g *Graph) Points() []*Point {
	points := make([]*Point, 0, g.points.Len())
	for el := g.points.Front(); el != nil; el = el.Next() {
		points = append(points, el.Value)
	}
	return points
}

// Link makes the point "to" reachable from the point "from".
func (g *Graph) Link(from, to string) error {
	a, ok := g.points.Get(from)
	if !ok {
		return oerror.New("link from unknown climb point %q", from)
	}
	b, ok := g.points.Get(to)
	if !ok {
		return oerror.New("link from %q to unknown climb point %q", from, to)
	}
	a.AddNeighbor(b)
	return nil
}

// Validate checks the graph for authoring mistakes the runtime would otherwise silently ignore: points
// without a usable lateral range or wall normal, and neighbor references that are missing, self
// referencing or have no length.
func (g *Graph) Validate() error {
	for el := g.points.Front(); el != nil; el = el.Next() {
		p := el.Value
		if p.halfRange < 0 {
			return oerror.New("climb point %q has negative lateral range %v", p.id, p.halfRange)
		}
		if game.IsZero(p.WallNormal()) {
			return oerror.New("climb point %q has no wall normal", p.id)
		}
		for i, n := range p.neighbors {
			switch {
			case n == nil:
				return oerror.New("climb point %q has nil neighbor at index %d", p.id, i)
			case n == p:
				return oerror.New("climb point %q lists itself as a neighbor", p.id)
			case game.IsZero(n.pos.Sub(p.pos)):
				return oerror.New("climb point %q has zero-length neighbor reference to %q", p.id, n.id)
			}
			if known, ok := g.points.Get(n.id); !ok || known != n {
				return oerror.New("climb point %q references %q which is not part of the graph", p.id, n.id)
			}
		}
	}
	return nil
}

// Nearest returns the closest point of the graph to the given position.
func (g *Graph) Nearest(from mgl32.Vec3) (*Point, bool) {
	return Nearest(g.Points(), from)
}

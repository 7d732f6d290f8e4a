// Package graph is the host graph that the acyc engine operates on: a
// directed multigraph of weighted, optionally cuttable edges. It plays the
// role of the "original graph" in the acyclicity engine's contract (see
// package acyc), and doubles as the reference implementation used by the
// engine's own tests, since no external compiler front end is part of this
// module.
package graph

// EdgeFunc decides whether an edge is "live" for a given pass. Implementations
// typically combine a weight check with a caller-supplied predicate.
type EdgeFunc func(*Edge) bool

// Vertex is a node in the graph. A zero Color means the vertex does not
// participate in any non-trivial strongly connected component.
type Vertex struct {
	// Label is a human-readable name, used only for logging and dot dumps.
	Label string

	color uint32
	out   []*Edge
	in    []*Edge

	// rank is the topological depth assigned by Graph.Rank (or set
	// directly via SetRank). Exported via Rank()/SetRank() for use by
	// acyc's Ranker and Placer.
	rank uint32

	// DotColor, if set, overrides the color ToDOT gives this vertex (see
	// dot.go); it also becomes the color of the vertex's outgoing edges
	// that are neither cut nor cutable and have no DotColor of their own.
	DotColor string
}

// Color returns the vertex's current SCC coloring; zero means the vertex is
// in a trivial (acyclic) component.
func (v *Vertex) Color() uint32 { return v.color }

// SetColor sets the vertex's SCC coloring.
func (v *Vertex) SetColor(c uint32) { v.color = c }

// Rank returns the vertex's current topological rank.
func (v *Vertex) Rank() uint32 { return v.rank }

// SetRank sets the vertex's topological rank.
func (v *Vertex) SetRank(r uint32) { v.rank = r }

// OutEdges returns the vertex's outgoing edges in stable (insertion) order.
func (v *Vertex) OutEdges() []*Edge { return v.out }

// InEdges returns the vertex's incoming edges in stable (insertion) order.
func (v *Vertex) InEdges() []*Edge { return v.in }

func (v *Vertex) String() string {
	if v.Label != "" {
		return v.Label
	}
	return "<vertex>"
}

// Edge is a directed, weighted edge between two vertices. Parallel edges
// between the same pair of vertices are allowed (this is a multigraph).
type Edge struct {
	from, to *Vertex
	weight   int
	cutable  bool
	cut      bool

	// DotColor overrides the default dot-export color for this edge; see
	// dot.go and DotColorer.
	DotColor string
}

// From returns the edge's source vertex.
func (e *Edge) From() *Vertex { return e.from }

// To returns the edge's destination vertex.
func (e *Edge) To() *Vertex { return e.to }

// Weight returns the edge's weight.
func (e *Edge) Weight() int { return e.weight }

// SetWeight updates the edge's weight (used by the Reducer's Dup rule to
// combine parallel cutable edges).
func (e *Edge) SetWeight(w int) { e.weight = w }

// Cutable reports whether this edge is permitted to be broken.
func (e *Edge) Cutable() bool { return e.cutable }

// SetCutable marks the edge cutable or uncutable.
func (e *Edge) SetCutable(c bool) { e.cutable = c }

// Cut reports whether this edge has been broken by the engine.
func (e *Edge) Cut() bool { return e.cut }

// SetCut marks the edge as broken.
func (e *Edge) SetCut(c bool) { e.cut = c }

// Graph is a directed multigraph of Vertex/Edge. The zero value is an
// empty graph; New returns one.
type Graph struct {
	vertices []*Vertex // stable order: insertion order
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddVertex creates and adds a new vertex to the graph, returning it.
func (g *Graph) AddVertex(label string) *Vertex {
	v := &Vertex{Label: label}
	g.vertices = append(g.vertices, v)
	return v
}

// AddEdge adds a new directed edge from -> to with the given weight and
// cutable flag. Both vertices must already belong to g. Multiple parallel
// edges between the same pair are permitted.
func (g *Graph) AddEdge(from, to *Vertex, weight int, cutable bool) *Edge {
	e := &Edge{from: from, to: to, weight: weight, cutable: cutable}
	from.out = append(from.out, e)
	to.in = append(to.in, e)
	return e
}

// Vertices returns all vertices in stable (insertion) order. Callers must
// not mutate the returned slice.
func (g *Graph) Vertices() []*Vertex { return g.vertices }

// RemoveEdge unlinks e from both its endpoints and from the graph. It is
// the caller's responsibility to drop any other references to e (e.g. an
// origin-edge list entry) beforehand.
func (g *Graph) RemoveEdge(e *Edge) {
	e.from.out = removeEdge(e.from.out, e)
	e.to.in = removeEdge(e.to.in, e)
}

func removeEdge(edges []*Edge, target *Edge) []*Edge {
	for i, e := range edges {
		if e == target {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}

// RemoveVertex removes v and every edge incident to it from the graph. v
// must belong to g.
func (g *Graph) RemoveVertex(v *Vertex) {
	for _, e := range append([]*Edge(nil), v.out...) {
		g.RemoveEdge(e)
	}
	for _, e := range append([]*Edge(nil), v.in...) {
		g.RemoveEdge(e)
	}
	for i, w := range g.vertices {
		if w == v {
			g.vertices = append(g.vertices[:i], g.vertices[i+1:]...)
			break
		}
	}
}

// ClearScratch resets Color and Rank on every vertex and Cut on no edge
// (cut marks persist across calls; color/rank do not, matching spec.md §5:
// "the caller must not rely on the values of those slots across the call").
func (g *Graph) ClearScratch() {
	for _, v := range g.vertices {
		v.color = 0
		v.rank = 0
	}
}

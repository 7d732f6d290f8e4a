package acyc

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-acyc/graph"
)

// place collects every remaining cutable, positive-weight edge, sorts them
// by descending weight (stable, so ties group by source vertex the way
// iteration order naturally does), and tries each in turn via placeTryEdge.
func (e *Engine) place() {
	var edges []*graph.Edge
	for _, v := range e.bg.Vertices() {
		for _, be := range v.OutEdges() {
			if be.Weight() > 0 && be.Cutable() {
				edges = append(edges, be)
			}
		}
	}

	slices.SortStableFunc(edges, func(a, b *graph.Edge) int {
		switch {
		case a.Weight() > b.Weight():
			return -1
		case a.Weight() < b.Weight():
			return 1
		default:
			return 0
		}
	})

	e.logger.Debugf("placer: %d cutable edges to try", len(edges))
	for _, be := range edges {
		e.placeTryEdge(be)
	}
}

// placeTryEdge tentatively makes be uncutable and propagates ranks forward
// from its destination. If that would introduce a cycle, be is cut instead
// and every rank change this attempt made is rolled back.
func (e *Engine) placeTryEdge(be *graph.Edge) {
	e.placeStep++
	be.SetCutable(false)

	loop := e.placeIterate(be.To(), be.From().Rank()+1)
	if !loop {
		for {
			if _, ok := e.pop(); !ok {
				break
			}
		}
		return
	}

	be.SetCutable(true)
	e.cutOrigEdges(be, "CutLoop", "placement")
	e.bg.RemoveEdge(be)
	delete(e.origins, be)
	for {
		v, ok := e.pop()
		if !ok {
			break
		}
		v.SetRank(e.storedRank[v])
	}
}

// placeIterate propagates rank = target to v and every vertex reachable
// through non-cutable, weighted edges, reporting whether doing so closes a
// loop back onto the current path.
//
// This is an explicit-stack rewrite of the original's recursive DFS (see
// SPEC_FULL.md §4.4): the original can overflow the call stack on a long
// dependency chain, which is exactly the shape this engine is built to
// handle. e.placeMark plays the role of the original's per-placeStep "user"
// sentinel (gray-while-on-path, cleared to 0 on a clean return); e.queue /
// e.queued double as the rollback work list, reused from the Reducer's FIFO
// since the two never overlap in time.
func (e *Engine) placeIterate(start *graph.Vertex, startRank uint32) bool {
	loop, descend := e.placeEnter(start, startRank)
	if !descend {
		return loop
	}

	type frame struct {
		v     *graph.Vertex
		edges []*graph.Edge
		idx   int
	}
	stack := []frame{{v: start, edges: start.OutEdges()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		descended := false

		for top.idx < len(top.edges) {
			oe := top.edges[top.idx]
			top.idx++
			if oe.Weight() == 0 || oe.Cutable() {
				continue
			}

			childLoop, childDescend := e.placeEnter(oe.To(), top.v.Rank()+1)
			if childLoop {
				return true
			}
			if childDescend {
				stack = append(stack, frame{v: oe.To(), edges: oe.To().OutEdges()})
				descended = true
				break
			}
		}
		if descended {
			continue
		}

		e.placeMark[top.v] = 0
		stack = stack[:len(stack)-1]
	}
	return false
}

// placeEnter implements the two early-return guards and entry bookkeeping
// that precede the recursive call in the original placeIterate: already at
// or past the target rank (nothing to do), already on the current DFS path
// at this placeStep (loop), or genuinely new (snapshot, enqueue for
// rollback, bump rank, and signal the caller to descend into its edges).
func (e *Engine) placeEnter(v *graph.Vertex, target uint32) (loop, descend bool) {
	if v.Rank() >= target {
		return false, false
	}
	if e.placeMark[v] == e.placeStep {
		return true, false
	}
	e.placeMark[v] = e.placeStep
	if !e.queued[v] {
		e.storedRank[v] = v.Rank()
		e.push(v)
	}
	v.SetRank(target)
	return false, true
}

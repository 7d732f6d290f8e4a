package acyc

import "github.com/t14raptor/go-acyc/graph"

// buildBreakGraph materializes the break graph from e.orig's SCC-colored
// vertices. Only colored vertices (participants in a non-trivial SCC) get
// break vertices; only live edges between two colored vertices (weight > 0
// and e.filter(edge)) get break edges, each starting life with an
// origin-edge list containing exactly the one original edge it was built
// from. Parallel original edges produce parallel break edges — the Reducer
// (Rule D) coalesces them later.
func (e *Engine) buildBreakGraph() {
	e.bg = graph.New()

	for _, v := range e.orig.Vertices() {
		if v.Color() == 0 {
			continue
		}
		bv := e.bg.AddVertex(v.String())
		e.origin[bv] = v
		e.origToBreak[v] = bv
	}

	for _, v := range e.orig.Vertices() {
		if v.Color() == 0 {
			continue
		}
		bu := e.origToBreak[v]
		for _, oe := range v.OutEdges() {
			if oe.Weight() <= 0 || !e.filter(oe) {
				continue
			}
			w := oe.To()
			if w.Color() == 0 {
				continue
			}
			bv := e.origToBreak[w]
			be := e.bg.AddEdge(bu, bv, oe.Weight(), oe.Cutable())
			e.origins[be] = []*graph.Edge{oe}
		}
	}
}

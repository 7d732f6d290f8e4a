package acyc

import "github.com/t14raptor/go-acyc/graph"

// cutBasic handles Rule CutBasic: a cutable self-loop certainly lies on a
// cycle (itself), so it can always be cut outright.
func (e *Engine) cutBasic(v *graph.Vertex) {
	for _, be := range append([]*graph.Edge(nil), v.OutEdges()...) {
		if be.Cutable() && be.To() == v {
			e.cutOrigEdges(be, "CutBasic", "basic")
			e.bg.RemoveEdge(be)
			delete(e.origins, be)
			e.push(v)
		}
	}
}

// cutBackward handles Rule CutBackward: if v has a cutable edge to q and q
// has a non-cutable edge back to v, the cutable edge is certainly on a
// cycle (the non-cutable return path is forced), so it is cut.
func (e *Engine) cutBackward(v *graph.Vertex) {
	for _, be := range v.OutEdges() {
		delete(e.cutBackwardFlag, be.To())
	}
	for _, be := range v.InEdges() {
		if !be.Cutable() {
			e.cutBackwardFlag[be.From()] = true
		}
	}
	for _, be := range append([]*graph.Edge(nil), v.OutEdges()...) {
		if be.Cutable() && e.cutBackwardFlag[be.To()] {
			e.cutOrigEdges(be, "CutBackward", "backward")
			e.bg.RemoveEdge(be)
			delete(e.origins, be)
			e.push(v)
		}
	}
}

// cutOrigEdges marks every original edge represented by be's origin-edge
// list as cut. rule is the firing rule's name (tags acyc_rule_fired_total);
// cause is the broader cut category (tags acyc_edges_cut_total). A break
// edge with an empty origin-edge list at this point is an internal
// invariant violation (spec.md §7 error kind 2): every break edge reaching
// cutBasic/cutBackward/the Placer must still carry at least one origin
// edge.
func (e *Engine) cutOrigEdges(be *graph.Edge, rule, cause string) {
	origins, ok := e.origins[be]
	if !ok || len(origins) == 0 {
		invariantf("%s: break edge has no origin-edge list", rule)
	}
	for _, oe := range origins {
		oe.SetCut(true)
	}
	edgesCutByCause.WithLabelValues(cause).Add(float64(len(origins)))
	ruleFiredTotal.WithLabelValues(rule).Inc()
	e.logger.Debugf("%s: cut %d origin edge(s)", rule, len(origins))
}

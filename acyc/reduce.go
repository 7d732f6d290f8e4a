package acyc

import "github.com/t14raptor/go-acyc/graph"

// push enqueues v if it is not already queued. Pushing an already-queued
// vertex is a no-op, matching spec.md §4.2's "each vertex appears at most
// once" FIFO discipline. A deleted vertex may still be pushed; rules test
// deleted on entry and skip it.
func (e *Engine) push(v *graph.Vertex) {
	if e.queued[v] {
		return
	}
	e.queue = append(e.queue, v)
	e.queued[v] = true
}

func (e *Engine) pop() (*graph.Vertex, bool) {
	if len(e.queue) == 0 {
		return nil, false
	}
	v := e.queue[0]
	e.queue = e.queue[1:]
	e.queued[v] = false
	return v, true
}

// queueAll pushes every vertex currently in the break graph, used both to
// seed the Reducer's first pass and to re-seed it before the second
// (cut-enabled) pass.
func (e *Engine) queueAll() {
	for _, v := range e.bg.Vertices() {
		e.push(v)
	}
}

// sweepDeleted removes every vertex marked deleted from the break graph,
// once the work queue has fully drained. The rules that mark a vertex
// deleted (N, O, T) unlink its incident edges at that moment; this sweep
// removes the vertices themselves.
func (e *Engine) sweepDeleted() {
	for _, v := range append([]*graph.Vertex(nil), e.bg.Vertices()...) {
		if e.deleted[v] {
			e.bg.RemoveVertex(v)
			delete(e.deleted, v)
		}
	}
}

// simplify drains the work queue, applying the four rewrite rules in fixed
// order (None, One, Out, Dup) to each popped vertex, and — when allowCut is
// true and the engine's cut heuristics are enabled — also CutBasic and
// CutBackward. A rule that deletes the vertex short-circuits the remaining
// rules for that pop.
//
// Cut heuristics can be disabled entirely via Option.WithCutHeuristics(false),
// mirroring the original's fAcycSimp escape hatch: with them off, the
// Reducer still converges (None/One/Out/Dup alone are enough to guarantee
// termination), it just leaves more work for the Placer to cut later.
func (e *Engine) simplify(allowCut bool) {
	for {
		v, ok := e.pop()
		if !ok {
			break
		}
		if e.deleted[v] {
			continue
		}
		if e.simplifyNone(v) {
			continue
		}
		if e.simplifyOne(v) {
			continue
		}
		e.simplifyOut(v)
		if e.deleted[v] {
			continue
		}
		e.simplifyDup(v)
		if !allowCut || !e.cfg.CutHeuristics {
			continue
		}
		e.cutBasic(v)
		e.cutBackward(v)
	}
}

// simplifyNone implements Rule N: a vertex with no incoming or no outgoing
// edges contributes nothing to any cycle, so it is unlinked and deleted.
func (e *Engine) simplifyNone(v *graph.Vertex) bool {
	out, in := v.OutEdges(), v.InEdges()
	if len(out) != 0 && len(in) != 0 {
		return false
	}
	for _, be := range append([]*graph.Edge(nil), out...) {
		e.dropEdge(be)
	}
	for _, be := range append([]*graph.Edge(nil), in...) {
		e.dropEdge(be)
	}
	e.deleted[v] = true
	ruleFiredTotal.WithLabelValues("SimplifyNoneRemove").Inc()
	return true
}

// simplifyOne implements Rule O: a vertex with exactly one in-edge and one
// out-edge (and no self-loop) is a pass-through and can be spliced out,
// replaced by a single edge from its predecessor to its successor.
func (e *Engine) simplifyOne(v *graph.Vertex) bool {
	in, out := v.InEdges(), v.OutEdges()
	if len(in) != 1 || len(out) != 1 {
		return false
	}
	eIn, eOut := in[0], out[0]
	p, q := eIn.From(), eOut.To()
	if p == v || v == q {
		return false
	}

	template, other := eOut, eIn
	switch {
	case eIn.Cutable() && eOut.Cutable():
		if eIn.Weight() < eOut.Weight() {
			template, other = eIn, eOut
		}
	case eIn.Cutable():
		template, other = eIn, eOut
	case eOut.Cutable():
		template, other = eOut, eIn
	}

	newEdge := e.bg.AddEdge(p, q, template.Weight(), template.Cutable())
	e.origins[newEdge] = e.origins[template]
	delete(e.origins, template)
	delete(e.origins, other)

	e.bg.RemoveEdge(eIn)
	e.bg.RemoveEdge(eOut)
	e.deleted[v] = true
	e.push(p)
	e.push(q)
	ruleFiredTotal.WithLabelValues("SimplifyOneRemove").Inc()
	return true
}

// simplifyOut implements Rule T: a vertex whose single outgoing edge is
// non-cutable can have every incoming edge redirected past it, since
// reaching v forces reaching q anyway.
//
// If redirection would touch a self-loop (v appears as the source of one
// of its own incoming edges), the non-cutable loop is a contradiction.
// This is reachable in practice: e.g. a forced two-vertex non-cutable cycle
// collapses under Rule O into exactly this self-loop shape. We report the
// offending cycle via the host graph's ReportLoop (spec.md §6/§7, SPEC_FULL
// §7 error kind 1), force that edge cutable, and cut it immediately under
// cause "forced" rather than deferring to CutBasic — nothing re-queues v
// otherwise, so CutBasic would never see it again. v is left undeleted,
// matching spec.md's explicit text over the original's literal (and here
// accidental) unconditional setDelete.
func (e *Engine) simplifyOut(v *graph.Vertex) {
	out := v.OutEdges()
	if len(out) != 1 || out[0].Cutable() {
		return
	}
	eOut := out[0]
	q := eOut.To()

	for _, eIn := range append([]*graph.Edge(nil), v.InEdges()...) {
		if eIn.From() == v {
			notCutable := func(oe *graph.Edge) bool { return !oe.Cutable() }
			loop := e.orig.ReportLoop(notCutable, e.origin[v])
			e.logger.Warnf("%v: circular non-cutable logic through self-loop, forcing cutable: %s", ErrCircularNonCutable, loop)
			forcedCutableTotal.Inc()
			eIn.SetCutable(true)
			e.cutOrigEdges(eIn, "ForcedCutableRecovery", "forced")
			e.bg.RemoveEdge(eIn)
			delete(e.origins, eIn)
			e.push(v)
			return
		}
	}

	for _, eIn := range append([]*graph.Edge(nil), v.InEdges()...) {
		p := eIn.From()
		newEdge := e.bg.AddEdge(p, q, eIn.Weight(), eIn.Cutable())
		e.origins[newEdge] = e.origins[eIn]
		delete(e.origins, eIn)
		e.bg.RemoveEdge(eIn)
		e.push(p)
	}
	e.bg.RemoveEdge(eOut)
	delete(e.origins, eOut)
	e.deleted[v] = true
	e.push(q)
	ruleFiredTotal.WithLabelValues("SimplifyOutRemove").Inc()
}

// simplifyDup implements Rule D: collapse parallel outgoing edges from v
// down to at most one edge per distinct destination.
func (e *Engine) simplifyDup(v *graph.Vertex) {
	for k := range e.dedupSlot {
		delete(e.dedupSlot, k)
	}

	for _, be := range append([]*graph.Edge(nil), v.OutEdges()...) {
		q := be.To()
		first, seen := e.dedupSlot[q]
		if !seen {
			e.dedupSlot[q] = be
			continue
		}

		switch {
		case !first.Cutable():
			// first already forces this edge uncutable (or be adds
			// nothing new); either way be is redundant.
			e.discardDupEdge(be)
			ruleFiredTotal.WithLabelValues("DelDupEdge").Inc()
		case !be.Cutable():
			// be is the new forcing edge; first is subsumed.
			e.discardDupEdge(first)
			e.dedupSlot[q] = be
			ruleFiredTotal.WithLabelValues("DelDupPrev").Inc()
		default:
			first.SetWeight(first.Weight() + be.Weight())
			e.origins[first] = append(e.origins[first], e.origins[be]...)
			e.discardDupEdge(be)
			ruleFiredTotal.WithLabelValues("DelDupComb").Inc()
		}
		e.push(v)
		e.push(q)
	}
}

func (e *Engine) discardDupEdge(be *graph.Edge) {
	e.bg.RemoveEdge(be)
	delete(e.origins, be)
}

// dropEdge removes a break edge entirely, discarding its origin-edge list.
// Used only by Rule N, where the vertex being deleted makes every incident
// edge moot (it cannot lie on any cycle).
func (e *Engine) dropEdge(be *graph.Edge) {
	e.bg.RemoveEdge(be)
	delete(e.origins, be)
}

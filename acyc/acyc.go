// Package acyc implements the acyclicity engine: given a host graph (see
// package graph) that may contain cycles, it removes the minimum-weight set
// of cutable edges sufficient to make the graph acyclic under a caller
// supplied edge filter. Topological ranks are assigned to the engine's
// private break graph; the caller's graph only keeps the cut marks.
//
// This is a heuristic, not an exact minimum-feedback-arc-set solver (that
// problem is NP-hard); see the Placer's greedy weight-descending commit
// order in placer.go.
package acyc

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/t14raptor/go-acyc/graph"
)

// Engine owns every piece of per-invocation state: the break graph, its
// side tables, and the work queue. It is constructed fresh by Acyclify and
// discarded on return; nothing about it is safe to reuse or share across
// invocations (see spec §5, concurrency/resource model).
type Engine struct {
	cfg    Config
	orig   *graph.Graph
	filter graph.EdgeFunc
	bg     *graph.Graph

	origToBreak map[*graph.Vertex]*graph.Vertex // original vertex -> break vertex
	origin      map[*graph.Vertex]*graph.Vertex // break vertex -> original vertex
	origins     map[*graph.Edge][]*graph.Edge   // break edge -> origin edges it represents

	storedRank map[*graph.Vertex]uint32 // Placer rollback snapshot
	deleted    map[*graph.Vertex]bool

	queue  []*graph.Vertex
	queued map[*graph.Vertex]bool

	dedupSlot       map[*graph.Vertex]*graph.Edge // Rule D: dest -> first-seen edge from the vertex being reduced
	cutBackwardFlag map[*graph.Vertex]bool        // Rule CutBackward: has a non-cutable in-edge

	placeStep uint32
	placeMark map[*graph.Vertex]uint32

	runID  uuid.UUID
	logger *log.Logger
}

// Acyclify breaks cycles in g under filter by cutting a heuristically
// chosen minimum-weight set of cutable edges.
//
// Side effects land entirely on g: the cut flag of selected edges is set
// true. ClearScratch is called before returning, so every vertex of g has
// color 0 and rank 0 on return; the ranks computed during the run belong
// to the discarded break graph.
func Acyclify(g *graph.Graph, filter graph.EdgeFunc, opts ...Option) (err error) {
	cfg := newConfig(opts...)
	start := time.Now()
	runsTotal.Inc()
	defer func() { runDuration.Observe(time.Since(start).Seconds()) }()

	e := &Engine{
		cfg:             cfg,
		orig:            g,
		filter:          filter,
		origToBreak:     make(map[*graph.Vertex]*graph.Vertex),
		origin:          make(map[*graph.Vertex]*graph.Vertex),
		origins:         make(map[*graph.Edge][]*graph.Edge),
		storedRank:      make(map[*graph.Vertex]uint32),
		deleted:         make(map[*graph.Vertex]bool),
		queued:          make(map[*graph.Vertex]bool),
		dedupSlot:       make(map[*graph.Vertex]*graph.Edge),
		cutBackwardFlag: make(map[*graph.Vertex]bool),
		placeMark:       make(map[*graph.Vertex]uint32),
		placeStep:       10,
		runID:           uuid.New(),
		logger:          cfg.Logger,
	}

	defer func() {
		g.ClearScratch()
		if r := recover(); r != nil {
			ie, ok := r.(*invariantError)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%w: %s", ErrInvariantViolation, ie.msg)
		}
	}()

	e.logger.Debugf("acyclify starting run=%s", e.runID)

	g.StronglyConnected(filter)

	e.buildBreakGraph()
	breakGraphSize.Observe(float64(len(e.bg.Vertices())))
	e.dump(DumpPre)

	e.queueAll()
	e.simplify(false)
	e.sweepDeleted()
	e.dump(DumpSimp)

	e.queueAll()
	e.simplify(true)
	e.sweepDeleted()
	e.dump(DumpMid)

	nonCutable := func(be *graph.Edge) bool { return !be.Cutable() }
	if err := e.bg.Rank(nonCutable); err != nil {
		invariantf("non-cutable break graph skeleton still cyclic after reduction: %v", err)
	}
	e.dump(DumpRank)

	e.place()
	e.dump(DumpPlace)

	allLive := func(*graph.Edge) bool { return true }
	if err := e.bg.Rank(allLive); err != nil {
		return fmt.Errorf("%w: %v", ErrNotAcyclic, err)
	}
	e.dump(DumpDone)

	e.logger.Infof("acyclify done run=%s vertices=%d", e.runID, len(e.bg.Vertices()))
	return nil
}

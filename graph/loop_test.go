package graph_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/go-acyc/graph"
)

func TestReportLoopFindsCycle(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	g.AddEdge(a, b, 1, false)
	g.AddEdge(b, c, 1, false)
	g.AddEdge(c, a, 1, false)

	report := g.ReportLoop(allEdges, a)
	if report == "" {
		t.Fatal("ReportLoop() = \"\"; want a non-empty cycle report")
	}
	for _, want := range []string{"a", "b", "c"} {
		if !strings.Contains(report, want) {
			t.Errorf("report %q missing vertex %q", report, want)
		}
	}
}

func TestReportLoopEmptyWhenAcyclic(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	g.AddEdge(a, b, 1, false)

	if report := g.ReportLoop(allEdges, a); report != "" {
		t.Fatalf("ReportLoop() = %q; want \"\" for an acyclic graph", report)
	}
}

func TestReportLoopRespectsFilter(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	g.AddEdge(a, b, 1, false)
	back := g.AddEdge(b, a, 1, true)

	notCutable := func(e *graph.Edge) bool { return !e.Cutable() }
	_ = back
	if report := g.ReportLoop(notCutable, a); report != "" {
		t.Fatalf("ReportLoop() = %q; want \"\" when the back edge is filtered out", report)
	}
}

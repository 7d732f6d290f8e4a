package graph_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/go-acyc/graph"
)

func TestToDOTContainsVerticesAndEdges(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	g.AddEdge(a, b, 1, false)

	dot := g.ToDOT("G")

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `"a"`) || !strings.Contains(dot, `"b"`) {
		t.Error("ToDOT() output missing vertex labels")
	}
	if !strings.Contains(dot, "n0 -> n1") {
		t.Error("ToDOT() output missing edge")
	}
}

func TestToDOTColorsCutEdgesDashed(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	e := g.AddEdge(a, b, 1, true)
	e.SetCut(true)

	dot := g.ToDOT("G")

	if !strings.Contains(dot, `style="dashed"`) {
		t.Errorf("expected a cut edge to render dashed, got: %s", dot)
	}
}

func TestToDOTColorsCutableYellow(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	g.AddEdge(a, b, 1, true)

	dot := g.ToDOT("G")

	if !strings.Contains(dot, `color="yellow"`) {
		t.Errorf("expected an uncut cutable edge to render yellow, got: %s", dot)
	}
}

func TestRenderSVGProducesSVGTag(t *testing.T) {
	g := graph.New()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	g.AddEdge(a, b, 1, false)

	svg, err := g.RenderSVG("G")
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

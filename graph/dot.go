package graph

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// DotColorer describes a type that supplies its own dot-export color.
// ToDOT does not consult it, and graph.Vertex and graph.Edge do not
// implement it: their color override is the DotColor field, which ToDOT
// uses when it is non-empty.
type DotColorer interface {
	DotColor() string
}

func (v *Vertex) dotColor() string {
	if v.DotColor != "" {
		return v.DotColor
	}
	if v.color != 0 {
		return "red"
	}
	return "black"
}

func (e *Edge) dotColor() string {
	if e.DotColor != "" {
		return e.DotColor
	}
	if e.cut {
		return "gray"
	}
	if e.cutable {
		return "yellow"
	}
	return e.from.dotColor()
}

// ToDOT renders the graph as a Graphviz DOT digraph. Cut edges are drawn
// dashed and gray; cutable-but-uncut edges yellow; edges within a non-trivial
// SCC the vertex's assigned color; everything else black. This mirrors the
// coloring convention in the original V3GraphAcyc.cpp dumps (dotColor:
// yellow for cutable, else the edge's origin vertex's color).
func (g *Graph) ToDOT(name string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", name)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [fontname=\"monospace\", fontsize=10, shape=box];\n\n")

	index := make(map[*Vertex]int, len(g.vertices))
	for i, v := range g.vertices {
		index[v] = i
		fmt.Fprintf(&buf, "  n%d [label=%q, color=%q, rank=%d];\n", i, v.String(), v.dotColor(), v.rank)
	}
	buf.WriteString("\n")
	for i, v := range g.vertices {
		for _, e := range v.out {
			style := "solid"
			if e.cut {
				style = "dashed"
			}
			fmt.Fprintf(&buf, "  n%d -> n%d [label=%q, color=%q, style=%q];\n",
				i, index[e.to], fmt.Sprintf("%d", e.weight), e.dotColor(), style)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the graph's current state to SVG via Graphviz. Used by
// acyc's diagnostic dumps (acyc_pre, acyc_simp, acyc_mid, acyc_rank,
// acyc_place, acyc_done) when dump tracing is enabled.
func (g *Graph) RenderSVG(name string) ([]byte, error) {
	dot := g.ToDOT(name)

	gv := graphviz.New()
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("graph: parse dot: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("graph: render svg: %w", err)
	}
	return buf.Bytes(), nil
}

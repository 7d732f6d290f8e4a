package graph

import "strings"

// ReportLoop renders one cycle reachable from start via edges matching
// follow, as a arrow-joined chain of vertex labels suitable for a
// diagnostic message. It returns an empty string if no cycle is found.
//
// This is a diagnostic helper only — used on error paths (see acyc's
// recoverable "circular non-cutable logic" handling) — not a general
// elementary-cycle enumerator. It performs a single DFS from start and
// reports the first back edge encountered, mirroring the original
// V3GraphAcyc.cpp's reliance on OrderGraph::loopsVertexCb for a
// representative cycle rather than an exhaustive cycle listing.
func (g *Graph) ReportLoop(follow EdgeFunc, start *Vertex) string {
	var path []*Vertex
	onPath := make(map[*Vertex]bool)
	visited := make(map[*Vertex]bool)

	var dfs func(v *Vertex) []*Vertex
	dfs = func(v *Vertex) []*Vertex {
		visited[v] = true
		onPath[v] = true
		path = append(path, v)

		for _, e := range v.out {
			if follow != nil && !follow(e) {
				continue
			}
			w := e.to
			if onPath[w] {
				// Found the back edge; slice path from w's occurrence.
				for i, p := range path {
					if p == w {
						cycle := make([]*Vertex, len(path)-i)
						copy(cycle, path[i:])
						return append(cycle, w)
					}
				}
			}
			if !visited[w] {
				if cyc := dfs(w); cyc != nil {
					return cyc
				}
			}
		}

		path = path[:len(path)-1]
		onPath[v] = false
		return nil
	}

	cycle := dfs(start)
	if cycle == nil {
		return ""
	}
	names := make([]string, len(cycle))
	for i, v := range cycle {
		names[i] = v.String()
	}
	return strings.Join(names, " -> ")
}

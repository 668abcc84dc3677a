package datastructure

import (
	"github.com/lintang-b-s/campnav/pkg/util"
)

// RunKosaraju. runs kosaraju's algorithm to find strongly connected components (SCCs) of the road network.
// returns the component id of every vertex and the vertices of every component.
// with one-way roads a campsite network can split into several components, every route that has to leave
// a sink component fails with no path found.
func (g *Graph) RunKosaraju() ([]Index, [][]Index) {
	n := Index(g.NumberOfVertices())
	components := make([][]Index, 0, 10)

	order := make([]Index, 0, n)
	visited := make([]bool, n)
	for v := Index(0); v < n; v++ {
		if !visited[v] {
			g.dfs(v, &order, visited, false)
		}
	}

	order = util.ReverseG[Index](order)

	// reset visited
	visited = make([]bool, n)
	for _, v := range order {
		if !visited[v] {
			component := make([]Index, 0, 10)
			g.dfs(v, &component, visited, true)
			components = append(components, component)
		}
	}

	sccs := make([]Index, n)
	for i, component := range components {
		for _, v := range component {
			sccs[v] = Index(i)
		}
	}

	return sccs, components
}

// CondensationAdj. adjacency of the condensation DAG of the components returned by RunKosaraju.
func (g *Graph) CondensationAdj(sccs []Index, numComponents int) [][]Index {
	condAdj := make([][]Index, numComponents)
	seen := make(map[[2]Index]struct{})
	for u := Index(0); u < Index(g.NumberOfVertices()); u++ {
		g.ForOutEdgesOf(u, func(e *OutEdge) {
			from, to := sccs[u], sccs[e.GetHead()]
			if from == to {
				return
			}
			if _, ok := seen[[2]Index{from, to}]; ok {
				return
			}
			seen[[2]Index{from, to}] = struct{}{}
			condAdj[from] = append(condAdj[from], to)
		})
	}
	return condAdj
}

func (g *Graph) dfs(v Index, output *[]Index, visited []bool,
	reversed bool) {

	visited[v] = true

	if !reversed {
		g.ForOutEdgesOf(v, func(e *OutEdge) {
			if !visited[e.GetHead()] {
				g.dfs(e.GetHead(), output, visited, reversed)
			}
		})
	} else {
		g.ForInEdgesOf(v, func(e *InEdge) {
			if !visited[e.GetTail()] {
				g.dfs(e.GetTail(), output, visited, reversed)
			}
		})
	}

	*output = append(*output, v)
}

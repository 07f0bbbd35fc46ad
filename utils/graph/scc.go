package graph

import "golang.org/x/tools/container/intsets"

// SCCDecomposition is a DAG decomposition of a graph based on strongly
// connected components. The nodes in component i are guaranteed to only
// have edges to nodes in components with index j <= i.
type SCCDecomposition[T comparable] struct {
	Components [][]T
	Original   Graph[T]

	comp map[T]int
}

// ComponentOf returns the index of the component the node is a part of,
// or -1 if the node was not reached by the decomposition.
func (scc SCCDecomposition[T]) ComponentOf(node T) int {
	if comp, hasComp := scc.comp[node]; hasComp {
		return comp
	}
	return -1
}

// Cyclic checks whether the component at the given index contains a
// cycle, i.e. has more than one member or a self edge.
func (scc SCCDecomposition[T]) Cyclic(idx int) bool {
	component := scc.Components[idx]
	if len(component) > 1 {
		return true
	}
	node := component[0]
	for _, next := range scc.Original.Edges(node) {
		if next == node {
			return true
		}
	}
	return false
}

// SCC computes the strongly connected components of the subgraph
// reachable from the provided start nodes.
func (G Graph[T]) SCC(startNodes []T) SCCDecomposition[T] {
	// Nodes are assigned dense indices on discovery so that the
	// visited/assigned bookkeeping can live in sparse integer sets.
	index := make(map[T]int)
	var nodes []T
	idOf := func(n T) int {
		i, found := index[n]
		if !found {
			i = len(nodes)
			index[n] = i
			nodes = append(nodes, n)
		}
		return i
	}

	time := 0
	val := make(map[int]int)
	var visited, assigned intsets.Sparse
	var z []int
	comp := make(map[T]int)
	var components [][]T

	var rec func(int)
	rec = func(v int) {
		time++
		low := time
		val[v] = low
		visited.Insert(v)
		stackH := len(z)
		z = append(z, v)

		for _, next := range G.Edges(nodes[v]) {
			e := idOf(next)
			if assigned.Has(e) {
				continue
			}
			if !visited.Has(e) {
				rec(e)
			}
			if val[e] < low {
				low = val[e]
			}
		}

		if low == val[v] {
			var cont []T
			for len(z) > stackH {
				x := z[len(z)-1]
				z = z[:len(z)-1]
				assigned.Insert(x)
				comp[nodes[x]] = len(components)
				cont = append(cont, nodes[x])
			}

			components = append(components, cont)
		}

		val[v] = low
	}

	for _, node := range startNodes {
		if v := idOf(node); !visited.Has(v) {
			rec(v)
		}
	}

	return SCCDecomposition[T]{
		Components: components,
		Original:   G,
		comp:       comp,
	}
}

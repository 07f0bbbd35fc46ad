package graph

import (
	uf "github.com/spakin/disjoint"
)

// Components partitions the given nodes into weakly connected
// components: nodes joined by an edge land in the same component
// regardless of edge direction. Edges leading outside the given node set
// are ignored. Components are returned in order of first appearance in
// nodes, and each component preserves that order internally.
func (G Graph[T]) Components(nodes []T) [][]T {
	elements := make(map[T]*uf.Element, len(nodes))
	for _, n := range nodes {
		el := uf.NewElement()
		el.Data = n
		elements[n] = el
	}

	for _, n := range nodes {
		for _, next := range G.Edges(n) {
			if el, found := elements[next]; found {
				uf.Union(elements[n], el)
			}
		}
	}

	groups := make(map[*uf.Element][]T, len(nodes))
	var reps []*uf.Element
	for _, n := range nodes {
		rep := elements[n].Find()
		if _, found := groups[rep]; !found {
			reps = append(reps, rep)
		}
		groups[rep] = append(groups[rep], n)
	}

	components := make([][]T, 0, len(reps))
	for _, rep := range reps {
		components = append(components, groups[rep])
	}
	return components
}

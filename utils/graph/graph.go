package graph

/*
	This package exposes utilities for working with graph structures.

	The fixpoint machinery never owns a concrete graph representation; a
	graph is described to it by a function computing the edge relation
	(typically the successor or predecessor function of a control-flow
	graph). This package wraps such a function with caching and provides
	the standard graph algorithms on top of it.
*/

import (
	"log"

	lru "github.com/hashicorp/golang-lru"
)

// EdgesOf describes the edge relation of a graph as a function from a
// node to its (ordered) neighbors. The relation must be deterministic
// and consistent for the lifetime of the computations using it.
type EdgesOf[T comparable] func(node T) []T

// edgeCacheSize bounds the number of cached neighbor lists.
const edgeCacheSize = 1 << 14

type Graph[T comparable] struct {
	edgesOf     EdgesOf[T]
	cachedEdges *lru.Cache
}

func Of[T comparable](edgesOf EdgesOf[T]) Graph[T] {
	cache, err := lru.New(edgeCacheSize)
	if err != nil {
		log.Fatal(err)
	}
	return Graph[T]{
		edgesOf,
		cache,
	}
}

// Edges returns the neighbors of the given node, consulting the edge
// cache first.
func (G Graph[T]) Edges(node T) []T {
	if cached, found := G.cachedEdges.Get(node); found {
		return cached.([]T)
	}

	es := G.edgesOf(node)
	G.cachedEdges.Add(node, es)
	return es
}

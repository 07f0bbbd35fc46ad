package graph

import "testing"

func graphOfMap(edges map[int][]int) Graph[int] {
	return Of(func(n int) []int { return edges[n] })
}

func TestReachable(t *testing.T) {
	G := graphOfMap(map[int][]int{
		0: {1, 2},
		1: {3},
		2: {3},
		3: {},
		9: {0},
	})

	reach := G.Reachable(0)
	expected := []int{0, 1, 2, 3}
	if len(reach) != len(expected) {
		t.Fatalf("Reachable(0) = %v, expected %v", reach, expected)
	}
	for i, n := range expected {
		if reach[i] != n {
			t.Errorf("Reachable(0) = %v, expected %v", reach, expected)
			break
		}
	}
}

func TestBFSEarlyStop(t *testing.T) {
	G := graphOfMap(map[int][]int{0: {1}, 1: {2}, 2: {}})

	visited := []int{}
	stopped := G.BFS(0, func(n int) bool {
		visited = append(visited, n)
		return n == 1
	})

	if !stopped {
		t.Error("expected the search to stop early")
	}
	if len(visited) != 2 || visited[0] != 0 || visited[1] != 1 {
		t.Errorf("visited %v, expected [0 1]", visited)
	}
}

func TestEdgesCached(t *testing.T) {
	calls := 0
	G := Of(func(n int) []int {
		calls++
		return []int{n + 1}
	})

	G.Edges(5)
	G.Edges(5)
	if calls != 1 {
		t.Errorf("edge function called %d times for one node, expected memoization", calls)
	}
}

func TestSCC(t *testing.T) {
	// 0 → 1 ⇄ 2, 1 → 3, 3 → 3
	G := graphOfMap(map[int][]int{
		0: {1},
		1: {2, 3},
		2: {1},
		3: {3},
	})

	scc := G.SCC([]int{0})

	if len(scc.Components) != 3 {
		t.Fatalf("got %d components, expected 3: %v", len(scc.Components), scc.Components)
	}

	if c1, c2 := scc.ComponentOf(1), scc.ComponentOf(2); c1 != c2 {
		t.Errorf("1 and 2 are in components %d and %d, expected the same", c1, c2)
	}
	if c0, c1 := scc.ComponentOf(0), scc.ComponentOf(1); c0 == c1 {
		t.Errorf("0 and 1 ended up in the same component %d", c0)
	}
	if scc.ComponentOf(42) != -1 {
		t.Errorf("ComponentOf on an unknown node should be -1")
	}

	// Components come out in reverse topological order.
	if scc.ComponentOf(0) <= scc.ComponentOf(1) {
		t.Errorf("expected 0's component after 1's, got %d and %d",
			scc.ComponentOf(0), scc.ComponentOf(1))
	}
	if scc.ComponentOf(1) <= scc.ComponentOf(3) {
		t.Errorf("expected 1's component after 3's, got %d and %d",
			scc.ComponentOf(1), scc.ComponentOf(3))
	}

	if !scc.Cyclic(scc.ComponentOf(1)) {
		t.Error("the {1, 2} component should be cyclic")
	}
	if !scc.Cyclic(scc.ComponentOf(3)) {
		t.Error("the self-looping {3} component should be cyclic")
	}
	if scc.Cyclic(scc.ComponentOf(0)) {
		t.Error("the {0} component should not be cyclic")
	}
}

func TestComponents(t *testing.T) {
	G := graphOfMap(map[int][]int{
		0: {1},
		1: {},
		2: {3},
		3: {},
		4: {},
	})

	components := G.Components([]int{0, 1, 2, 3, 4})
	if len(components) != 3 {
		t.Fatalf("got %d weak components, expected 3: %v", len(components), components)
	}

	index := map[int]int{}
	for i, component := range components {
		for _, n := range component {
			index[n] = i
		}
	}
	if index[0] != index[1] || index[2] != index[3] {
		t.Errorf("unexpected grouping: %v", components)
	}
	if index[0] == index[2] || index[0] == index[4] || index[2] == index[4] {
		t.Errorf("distinct components merged: %v", components)
	}
}

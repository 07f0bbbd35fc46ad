package fixpoint

import (
	"log"

	"github.com/absint-go/absint/lattice"
	"github.com/absint-go/absint/utils/graph"
	"github.com/absint-go/absint/utils/pq"
)

// DefaultWidenAfter is the number of times a node's entry state may be
// revised through plain joins before the solver switches to widening.
// Lower values converge faster on domains with infinite ascending chains
// at the cost of precision; higher values unroll more of each cycle
// before giving up precision.
const DefaultWidenAfter = 4

// Params configures a fixpoint computation over a directed graph given
// by a root node and a pair of edge functions. The iterator is
// direction-agnostic: a backward analysis is obtained by swapping the
// two edge functions and rooting the computation at the analysis's
// natural exit point.
type Params[N comparable, D any] struct {
	// Root is the node at which the computation is seeded.
	Root N

	// Predecessors and Successors describe the edge relation. Both must
	// be deterministic and consistent for the duration of one Run.
	Predecessors graph.EdgesOf[N]
	Successors   graph.EdgesOf[N]

	// AnalyzeNode transforms a node's entry state into its exit state in
	// place, applying the node's local semantic effect.
	AnalyzeNode func(node N, state *D)

	// AnalyzeEdge returns the abstract state to be merged into dst's
	// entry, given the exit state computed at src. When nil, edges have
	// no semantic transformers attached and the exit state propagates
	// unchanged.
	AnalyzeEdge func(src, dst N, exit *D) D

	// WidenAfter overrides DefaultWidenAfter when positive.
	WidenAfter int

	// WidenAt, when set, restricts widening to designated nodes
	// (typically cycle heads; see CycleHeads). All other nodes keep
	// joining past the revisit threshold, which only terminates on
	// domains with finite ascending chains.
	WidenAt func(node N) bool
}

// Iterator computes, for every node reachable from the root, a pair of
// abstract states forming a post-fixpoint of the dataflow equations
// induced by the transfer functions. It exclusively owns all per-node
// state; a single Iterator must not be shared across goroutines.
type Iterator[N comparable, D any, PD lattice.DomainPtr[D]] struct {
	params Params[N, D]
	fwd    graph.Graph[N]

	entry  map[N]D
	exit   map[N]D
	seen   map[N]bool
	visits map[N]int
}

// New validates the given parameters and prepares an iterator. The
// computation itself is performed by Run.
func New[N comparable, D any, PD lattice.DomainPtr[D]](params Params[N, D]) *Iterator[N, D, PD] {
	if params.Predecessors == nil || params.Successors == nil || params.AnalyzeNode == nil {
		log.Fatal("Fixpoint error - Predecessors, Successors and AnalyzeNode are required")
	}
	if params.WidenAfter <= 0 {
		params.WidenAfter = DefaultWidenAfter
	}

	return &Iterator[N, D, PD]{
		params: params,
		fwd:    graph.Of(params.Successors),
		entry:  make(map[N]D),
		exit:   make(map[N]D),
		seen:   make(map[N]bool),
		visits: make(map[N]int),
	}
}

// Run drives the worklist to a post-fixpoint: upon return, every
// reachable node's entry state is an upper bound of its predecessors'
// transformed exit states, and its exit state is exactly AnalyzeNode
// applied to its entry state.
//
// Termination rests on the caller's contract: transfer functions must be
// monotone, and on domains with infinite ascending chains the widening
// operator must be an upper-bound operator.
func (it *Iterator[N, D, PD]) Run(initial D) {
	root := it.params.Root

	// Nodes are prioritized by the SCC decomposition of the reachable
	// subgraph, so that acyclic regions are processed in topological
	// order and each cycle is iterated to stability before its
	// dependents are visited.
	scc := it.fwd.SCC([]N{root})
	priorities := make(map[N]int)
	for compIdx, component := range scc.Components {
		for _, node := range component {
			// Prioritize in topological order
			priorities[node] = len(scc.Components) - compIdx - 1
		}
	}
	worklist := pq.Empty(func(a, b N) bool {
		return priorities[a] < priorities[b]
	})

	it.entry[root] = clone[D, PD](&initial)
	worklist.Add(root)

	for !worklist.IsEmpty() {
		node := worklist.GetNext()

		// Recompute the entry state as the join over every predecessor
		// with a stored exit state; ⊥ predecessors contribute nothing.
		// The root additionally retains the initial state.
		newEntry := bottom[D, PD]()
		if node == root {
			PD(&newEntry).CopyFrom(&initial)
		}
		for _, pred := range it.params.Predecessors(node) {
			predExit, found := it.exit[pred]
			if !found {
				continue
			}
			contribution := it.edgeState(pred, node, &predExit)
			PD(&newEntry).JoinWith(&contribution)
		}

		dirty := !it.seen[node]
		if current, found := it.entry[node]; !found {
			it.entry[node] = newEntry
			dirty = true
		} else if !PD(&newEntry).Leq(&current) {
			it.visits[node]++
			if it.widenAt(node) {
				PD(&current).WidenWith(&newEntry)
			} else {
				PD(&current).JoinWith(&newEntry)
			}
			it.entry[node] = current
			dirty = true
		}

		if !dirty {
			continue
		}
		it.seen[node] = true

		// Apply the node's semantic effect to a copy of the entry state;
		// successors are requeued only if the exit state moved.
		entry := it.entry[node]
		exit := clone[D, PD](&entry)
		it.params.AnalyzeNode(node, &exit)
		if previous, found := it.exit[node]; !found || !PD(&exit).Eq(&previous) {
			it.exit[node] = exit
			for _, succ := range it.params.Successors(node) {
				worklist.Add(succ)
			}
		}
	}
}

// EntryStateAt returns the abstract state attributed to the node before
// its transfer function, or ⊥ if the analysis never reached it. Only
// meaningful once Run has completed.
func (it *Iterator[N, D, PD]) EntryStateAt(node N) D {
	if state, found := it.entry[node]; found {
		return clone[D, PD](&state)
	}
	return bottom[D, PD]()
}

// ExitStateAt returns the abstract state attributed to the node after
// its transfer function, or ⊥ if the analysis never reached it. Only
// meaningful once Run has completed.
func (it *Iterator[N, D, PD]) ExitStateAt(node N) D {
	if state, found := it.exit[node]; found {
		return clone[D, PD](&state)
	}
	return bottom[D, PD]()
}

// widenAt decides between join and widening for the node's next entry
// state revision.
func (it *Iterator[N, D, PD]) widenAt(node N) bool {
	if it.visits[node] <= it.params.WidenAfter {
		return false
	}
	return it.params.WidenAt == nil || it.params.WidenAt(node)
}

// edgeState applies the edge transformer, defaulting to propagating the
// exit state unchanged.
func (it *Iterator[N, D, PD]) edgeState(src, dst N, exit *D) D {
	if it.params.AnalyzeEdge != nil {
		return it.params.AnalyzeEdge(src, dst, exit)
	}
	return clone[D, PD](exit)
}

// CycleHeads computes the set of nodes participating in a cycle
// reachable from root. The result is usable as a WidenAt policy
// confining precision loss to the nodes where infinite ascending chains
// can actually arise.
func CycleHeads[N comparable](root N, successors graph.EdgesOf[N]) map[N]bool {
	G := graph.Of(successors)
	scc := G.SCC([]N{root})

	heads := make(map[N]bool)
	for idx, component := range scc.Components {
		if !scc.Cyclic(idx) {
			continue
		}
		for _, node := range component {
			heads[node] = true
		}
	}
	return heads
}

func bottom[D any, PD lattice.DomainPtr[D]]() D {
	var state D
	PD(&state).SetToBot()
	return state
}

func clone[D any, PD lattice.DomainPtr[D]](state *D) D {
	var out D
	PD(&out).CopyFrom(state)
	return out
}

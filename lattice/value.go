package lattice

// Value is the contract for the regular elements of an abstract domain:
// a constant, an interval, a set of registers, or any other
// representation of a poset member. An Element composes a Value with a
// Kind tag into a complete domain, so implementations never have to
// special-case ⊥ or ⊤ themselves: the four lattice operators below are
// invoked only when both operands are confirmed to be of KindValue.
//
// Implementations must be usable through their zero value, and the zero
// value must coincide with the representation produced by Clear.
type Value[V any] interface {
	// Kind classifies the representation. Even though the extremal case
	// analysis is factored out, a regular representation may still denote
	// ⊥ or ⊤ (for example [3, 2] and [-∞, ∞] in the interval domain), and
	// the scaffolding coalesces those into the canonical extremal forms.
	Kind() Kind

	// Clear resets the representation to its canonical empty form,
	// releasing whatever backs it. It is invoked whenever the owning
	// element becomes ⊥ or ⊤.
	Clear()

	// CopyFrom replaces the representation with a copy of other. The copy
	// must not share mutable state with other.
	CopyFrom(other *V)

	// Leq computes v ⊑ other restricted to two KindValue operands.
	Leq(other *V) bool
	// Eq computes v = other restricted to two KindValue operands.
	Eq(other *V) bool

	// The in-place lattice operators. Each returns the Kind of the
	// result, as the operation itself may discover that the result is ⊥
	// or ⊤ (e.g. a join covering the whole concrete domain).
	JoinWith(other *V) Kind
	WidenWith(other *V) Kind
	MeetWith(other *V) Kind
	NarrowWith(other *V) Kind

	String() string
}

// ValuePtr constrains a type parameter to the pointer form of a regular
// value representation V, so the scaffolding can invoke the mutating
// contract methods on elements it owns.
type ValuePtr[V any] interface {
	*V
	Value[V]
}

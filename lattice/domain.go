package lattice

// AbstractDomain is the operator set every abstract domain exposes. The
// constraint is satisfied by *Element instantiations out of the box;
// hand-rolled domains that bypass the scaffolding qualify by providing
// the same surface.
//
// Elements are mutable and the basic operators have side effects; the
// pure forms (Join, Widening, Meet, Narrowing) copy the receiver and
// apply the corresponding mutating operator to the copy. Side-effecting
// operators must only run on elements owned by a single goroutine; the
// algebra provides no internal locking.
//
// Eq must be semantically equivalent to Leq(other) ∧ other.Leq(this),
// and implementations are expected to special-case it rather than derive
// it from two order tests.
//
// Widening defaults to join and narrowing to meet in domains whose
// lattice has finite ascending/descending chains; domains needing a true
// widening override the value-level operators.
type AbstractDomain[D any] interface {
	IsBot() bool
	IsTop() bool
	Leq(other *D) bool
	Geq(other *D) bool
	Eq(other *D) bool

	SetToBot()
	SetToTop()
	CopyFrom(other *D)

	JoinWith(other *D)
	WidenWith(other *D)
	MeetWith(other *D)
	NarrowWith(other *D)

	Join(other *D) D
	Widening(other *D) D
	Meet(other *D) D
	Narrowing(other *D) D

	String() string
}

// DomainPtr constrains a type parameter to the pointer form of an
// abstract domain element D. Generic algorithms over domains (the
// fixpoint solver, chiefly) take D for storage and DomainPtr[D] for
// operator dispatch, preserving static dispatch without a self-referential
// base type.
type DomainPtr[D any] interface {
	*D
	AbstractDomain[D]
}

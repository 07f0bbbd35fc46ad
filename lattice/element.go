package lattice

import "log"

// Element composes a Kind tag with a regular value representation into a
// complete abstract domain, handling the ⊥/⊤ case analysis once so that
// concrete domains only ever implement the value-vs-value case.
//
// Two invariants are maintained at all times: when the Kind is extremal
// the contained value is cleared, and when the Kind is KindValue the
// value's own reported Kind is KindValue as well. Normalize restores the
// invariants for elements whose value was constructed or mutated
// directly.
//
// The zero Element is ⊥. Elements have value semantics; an element must
// not be mutated concurrently from two goroutines.
type Element[V any, PV ValuePtr[V]] struct {
	kind  Kind
	value V
}

// val exposes the contained value through its method set.
func (e *Element[V, PV]) val() PV {
	return PV(&e.value)
}

// New mirrors default construction of a domain element: the Kind is
// derived from the zero value representation. The choice of lattice
// point is arbitrary, but this is most often the element a fixpoint
// iteration is seeded with.
func New[V any, PV ValuePtr[V]]() Element[V, PV] {
	var e Element[V, PV]
	e.kind = e.val().Kind()
	return e
}

// Bot returns the ⊥ element of the domain.
func Bot[V any, PV ValuePtr[V]]() Element[V, PV] {
	return Element[V, PV]{kind: KindBot}
}

// Top returns the ⊤ element of the domain.
func Top[V any, PV ValuePtr[V]]() Element[V, PV] {
	return Element[V, PV]{kind: KindTop}
}

// Extremal is a convenience constructor for ⊥ and ⊤. Requesting a
// KindValue element without a representation is a contract violation.
func Extremal[V any, PV ValuePtr[V]](kind Kind) Element[V, PV] {
	if kind == KindValue {
		log.Fatal("Lattice error - Extremal element constructed with KindValue")
	}
	return Element[V, PV]{kind: kind}
}

// FromValue wraps a regular value representation in an element,
// coalescing a representation that denotes ⊥ or ⊤ into the canonical
// extremal form.
func FromValue[V any, PV ValuePtr[V]](value V) Element[V, PV] {
	e := Element[V, PV]{kind: KindValue, value: value}
	e.Normalize()
	return e
}

// Kind reports the element's classification.
func (e *Element[V, PV]) Kind() Kind {
	return e.kind
}

// IsBot checks whether the element is ⊥.
func (e *Element[V, PV]) IsBot() bool {
	return e.kind == KindBot
}

// IsTop checks whether the element is ⊤.
func (e *Element[V, PV]) IsTop() bool {
	return e.kind == KindTop
}

// IsValue checks whether the element is a regular lattice point.
func (e *Element[V, PV]) IsValue() bool {
	return e.kind == KindValue
}

// Value exposes the regular value representation. The result is only
// meaningful on KindValue elements, and mutations through it must be
// followed by Normalize; prefer Apply.
func (e *Element[V, PV]) Value() *V {
	return &e.value
}

// SetToBot forces the element to ⊥, discarding its representation.
func (e *Element[V, PV]) SetToBot() {
	e.kind = KindBot
	e.val().Clear()
}

// SetToTop forces the element to ⊤, discarding its representation.
func (e *Element[V, PV]) SetToTop() {
	e.kind = KindTop
	e.val().Clear()
}

// SetValue adopts the given representation and normalizes.
func (e *Element[V, PV]) SetValue(value V) {
	e.value = value
	e.Normalize()
}

// Normalize re-derives the element's Kind from the contained value's own
// reported kind, clearing the value if the result is extremal. Concrete
// domains use it after constructing or mutating a representation
// directly, so that no "hidden" extremal value escapes.
func (e *Element[V, PV]) Normalize() {
	e.kind = e.val().Kind()
	if e.kind != KindValue {
		e.val().Clear()
	}
}

// Apply mutates the regular value in place through f and re-normalizes.
// Extremal elements are left untouched.
func (e *Element[V, PV]) Apply(f func(value *V)) {
	if e.kind != KindValue {
		return
	}
	f(&e.value)
	e.Normalize()
}

// CopyFrom replaces the element with a copy of other.
func (e *Element[V, PV]) CopyFrom(other *Element[V, PV]) {
	e.kind = other.kind
	e.val().CopyFrom(&other.value)
}

// Copy returns a copy of the element sharing no mutable state with it.
func (e *Element[V, PV]) Copy() Element[V, PV] {
	var tmp Element[V, PV]
	tmp.CopyFrom(e)
	return tmp
}

// Leq computes e ⊑ other. ⊥ is below everything, everything is below ⊤;
// two regular values delegate to the value-level order.
func (e *Element[V, PV]) Leq(other *Element[V, PV]) bool {
	switch {
	case e.kind == KindBot:
		return true
	case other.kind == KindBot:
		return false
	case other.kind == KindTop:
		return true
	case e.kind == KindTop:
		return false
	}
	return e.val().Leq(&other.value)
}

// Geq computes e ⊒ other.
func (e *Element[V, PV]) Geq(other *Element[V, PV]) bool {
	return other.Leq(e)
}

// Eq computes e = other. Equivalent to Leq(other) ∧ other.Leq(e), but
// special-cased on the Kind tags.
func (e *Element[V, PV]) Eq(other *Element[V, PV]) bool {
	if e.kind != other.kind {
		return false
	}
	if e.kind != KindValue {
		return true
	}
	return e.val().Eq(&other.value)
}

// joinLikeWith implements the shared ⊥/⊤ case analysis of join and
// widening: ⊤ and a ⊥ right operand leave the receiver unchanged, a ⊤
// right operand absorbs, a ⊥ receiver adopts the right operand, and two
// regular values delegate to op.
func (e *Element[V, PV]) joinLikeWith(other *Element[V, PV], op func() Kind) {
	switch {
	case e.kind == KindTop || other.kind == KindBot:
		return
	case other.kind == KindTop:
		e.SetToTop()
	case e.kind == KindBot:
		e.CopyFrom(other)
	default:
		e.kind = op()
		if e.kind != KindValue {
			e.val().Clear()
		}
	}
}

// meetLikeWith is the dual case analysis for meet and narrowing, with
// the roles of ⊥ and ⊤ swapped.
func (e *Element[V, PV]) meetLikeWith(other *Element[V, PV], op func() Kind) {
	switch {
	case e.kind == KindBot || other.kind == KindTop:
		return
	case other.kind == KindBot:
		e.SetToBot()
	case e.kind == KindTop:
		e.CopyFrom(other)
	default:
		e.kind = op()
		if e.kind != KindValue {
			e.val().Clear()
		}
	}
}

// JoinWith computes e ⊔ other in place.
func (e *Element[V, PV]) JoinWith(other *Element[V, PV]) {
	e.joinLikeWith(other, func() Kind {
		return e.val().JoinWith(&other.value)
	})
}

// WidenWith computes e ∇ other in place.
func (e *Element[V, PV]) WidenWith(other *Element[V, PV]) {
	e.joinLikeWith(other, func() Kind {
		return e.val().WidenWith(&other.value)
	})
}

// MeetWith computes e ⊓ other in place.
func (e *Element[V, PV]) MeetWith(other *Element[V, PV]) {
	e.meetLikeWith(other, func() Kind {
		return e.val().MeetWith(&other.value)
	})
}

// NarrowWith computes e Δ other in place.
func (e *Element[V, PV]) NarrowWith(other *Element[V, PV]) {
	e.meetLikeWith(other, func() Kind {
		return e.val().NarrowWith(&other.value)
	})
}

// Join is the pure form of JoinWith.
func (e *Element[V, PV]) Join(other *Element[V, PV]) Element[V, PV] {
	tmp := e.Copy()
	tmp.JoinWith(other)
	return tmp
}

// Widening is the pure form of WidenWith.
func (e *Element[V, PV]) Widening(other *Element[V, PV]) Element[V, PV] {
	tmp := e.Copy()
	tmp.WidenWith(other)
	return tmp
}

// Meet is the pure form of MeetWith.
func (e *Element[V, PV]) Meet(other *Element[V, PV]) Element[V, PV] {
	tmp := e.Copy()
	tmp.MeetWith(other)
	return tmp
}

// Narrowing is the pure form of NarrowWith.
func (e *Element[V, PV]) Narrowing(other *Element[V, PV]) Element[V, PV] {
	tmp := e.Copy()
	tmp.NarrowWith(other)
	return tmp
}

func (e *Element[V, PV]) String() string {
	switch e.kind {
	case KindBot:
		return colorize.Element("⊥")
	case KindTop:
		return colorize.Element("⊤")
	}
	return e.val().String()
}

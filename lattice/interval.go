package lattice

import (
	"strconv"
)

// Itv is the regular value of the interval domain: a pair of integer
// bounds, either of which may be infinite. The representation can denote
// every lattice point, including the extremal ones:
//
//	[-∞, ∞]        = ⊤
//	[lo, hi], lo > hi = ⊥
//
// which the scaffolding coalesces through the reported Kind. The zero
// Itv is the singleton interval [0, 0].
type Itv struct {
	lo, hi       int64
	loInf, hiInf bool
}

// Interval is the scaffolded interval domain.
type Interval = Element[Itv, *Itv]

// NewInterval constructs an interval element with finite bounds. An
// empty interval (lo > hi) normalizes to ⊥.
func NewInterval(lo, hi int64) Interval {
	return FromValue[Itv, *Itv](Itv{lo: lo, hi: hi})
}

// IntervalFrom constructs the interval [lo, ∞].
func IntervalFrom(lo int64) Interval {
	return FromValue[Itv, *Itv](Itv{lo: lo, hiInf: true})
}

// IntervalTo constructs the interval [-∞, hi].
func IntervalTo(hi int64) Interval {
	return FromValue[Itv, *Itv](Itv{hi: hi, loInf: true})
}

// Kind derives the classification from the bounds.
func (v *Itv) Kind() Kind {
	switch {
	case v.loInf && v.hiInf:
		return KindTop
	case !v.loInf && !v.hiInf && v.lo > v.hi:
		return KindBot
	}
	return KindValue
}

// Clear resets the interval to [0, 0].
func (v *Itv) Clear() {
	*v = Itv{}
}

// CopyFrom adopts other's bounds.
func (v *Itv) CopyFrom(other *Itv) {
	*v = *other
}

// Low returns the lower bound; the second result is false for -∞.
func (v *Itv) Low() (int64, bool) {
	return v.lo, !v.loInf
}

// High returns the upper bound; the second result is false for ∞.
func (v *Itv) High() (int64, bool) {
	return v.hi, !v.hiInf
}

// lowLeq computes v.lo ≤ other.lo, with -∞ below every finite bound.
func (v *Itv) lowLeq(other *Itv) bool {
	switch {
	case v.loInf:
		return true
	case other.loInf:
		return false
	}
	return v.lo <= other.lo
}

// highLeq computes v.hi ≤ other.hi, with ∞ above every finite bound.
func (v *Itv) highLeq(other *Itv) bool {
	switch {
	case other.hiInf:
		return true
	case v.hiInf:
		return false
	}
	return v.hi <= other.hi
}

// Leq computes interval inclusion.
func (v *Itv) Leq(other *Itv) bool {
	return other.lowLeq(v) && v.highLeq(other)
}

// Eq computes interval equality.
func (v *Itv) Eq(other *Itv) bool {
	return v.Leq(other) && other.Leq(v)
}

// JoinWith takes the lowest of the lower bounds and the highest of the
// upper bounds.
func (v *Itv) JoinWith(other *Itv) Kind {
	if other.lowLeq(v) {
		v.lo, v.loInf = other.lo, other.loInf
	}
	if v.highLeq(other) {
		v.hi, v.hiInf = other.hi, other.hiInf
	}
	return v.Kind()
}

// WidenWith drops any bound that other is about to move past to the
// corresponding infinity, guaranteeing stabilization of ascending
// chains.
func (v *Itv) WidenWith(other *Itv) Kind {
	if other.lowLeq(v) && !v.lowLeq(other) {
		v.lo, v.loInf = 0, true
	}
	if v.highLeq(other) && !other.highLeq(v) {
		v.hi, v.hiInf = 0, true
	}
	return v.Kind()
}

// MeetWith takes the highest of the lower bounds and the lowest of the
// upper bounds. A disjoint meet reports ⊥.
func (v *Itv) MeetWith(other *Itv) Kind {
	if v.lowLeq(other) {
		v.lo, v.loInf = other.lo, other.loInf
	}
	if other.highLeq(v) {
		v.hi, v.hiInf = other.hi, other.hiInf
	}
	return v.Kind()
}

// NarrowWith refines the infinite bounds of v to the corresponding
// bounds of other, undoing precision lost to widening without endangering
// termination.
func (v *Itv) NarrowWith(other *Itv) Kind {
	if v.loInf && !other.loInf {
		v.lo, v.loInf = other.lo, false
	}
	if v.hiInf && !other.hiInf {
		v.hi, v.hiInf = other.hi, false
	}
	return v.Kind()
}

// AddConst shifts both bounds by the given constant; infinite bounds are
// unaffected.
func (v *Itv) AddConst(c int64) {
	if !v.loInf {
		v.lo += c
	}
	if !v.hiInf {
		v.hi += c
	}
}

func (v *Itv) String() string {
	low, high := "-∞", "∞"
	if !v.loInf {
		low = strconv.FormatInt(v.lo, 10)
	}
	if !v.hiInf {
		high = strconv.FormatInt(v.hi, 10)
	}
	return "[" + colorize.Element(low) + ", " + colorize.Element(high) + "]"
}

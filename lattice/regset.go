package lattice

import (
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
)

// RegSet is the regular value of the powerset-of-registers domain: a
// finite set of register names ordered by inclusion, with union as join
// and intersection as meet. The universe of registers is unbounded, so
// every representation is a regular lattice point (the ⊤ of the
// scaffolded domain is not denotable as a set).
//
// The zero RegSet is the empty set, which is a regular element and not
// ⊥: an empty set of live registers carries information.
type RegSet struct {
	regs *immutable.Map[string, bool]
}

// RegisterSet is the scaffolded powerset-of-registers domain.
type RegisterSet = Element[RegSet, *RegSet]

// NewRegisterSet constructs a regular register-set element containing
// the given names.
func NewRegisterSet(names ...string) RegisterSet {
	var v RegSet
	v.Add(names...)
	return FromValue[RegSet, *RegSet](v)
}

func (v *RegSet) mp() *immutable.Map[string, bool] {
	if v.regs == nil {
		return immutable.NewMap[string, bool](nil)
	}
	return v.regs
}

// Kind is always KindValue: no set representation denotes ⊥ or ⊤.
func (v *RegSet) Kind() Kind {
	return KindValue
}

// Clear resets the set to its canonical empty representation.
func (v *RegSet) Clear() {
	v.regs = nil
}

// CopyFrom adopts other's representation. The backing map is persistent,
// so sharing it is safe.
func (v *RegSet) CopyFrom(other *RegSet) {
	v.regs = other.regs
}

// Size returns the number of registers in the set.
func (v *RegSet) Size() int {
	if v.regs == nil {
		return 0
	}
	return v.regs.Len()
}

// Contains checks whether the named register is in the set.
func (v *RegSet) Contains(name string) bool {
	if v.regs == nil {
		return false
	}
	_, found := v.regs.Get(name)
	return found
}

// Add inserts the given registers.
func (v *RegSet) Add(names ...string) {
	for _, name := range names {
		v.regs = v.mp().Set(name, true)
	}
}

// Remove deletes the given registers.
func (v *RegSet) Remove(names ...string) {
	if v.regs == nil {
		return
	}
	for _, name := range names {
		v.regs = v.regs.Delete(name)
	}
}

// Names aggregates the members of the set in sorted order.
func (v *RegSet) Names() []string {
	names := make([]string, 0, v.Size())
	if v.regs != nil {
		for iter := v.regs.Iterator(); !iter.Done(); {
			name, _, _ := iter.Next()
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Leq computes set inclusion v ⊆ other.
func (v *RegSet) Leq(other *RegSet) bool {
	if v.regs == nil {
		return true
	}
	for iter := v.regs.Iterator(); !iter.Done(); {
		name, _, _ := iter.Next()
		if !other.Contains(name) {
			return false
		}
	}
	return true
}

// Eq computes set equality.
func (v *RegSet) Eq(other *RegSet) bool {
	return v.Size() == other.Size() && v.Leq(other)
}

// JoinWith computes set union in place.
func (v *RegSet) JoinWith(other *RegSet) Kind {
	if other.regs != nil {
		for iter := other.regs.Iterator(); !iter.Done(); {
			name, _, _ := iter.Next()
			if !v.Contains(name) {
				v.regs = v.mp().Set(name, true)
			}
		}
	}
	return KindValue
}

// WidenWith falls back to join: ascending chains are bounded by the
// number of registers in the analyzed code.
func (v *RegSet) WidenWith(other *RegSet) Kind {
	return v.JoinWith(other)
}

// MeetWith computes set intersection in place.
func (v *RegSet) MeetWith(other *RegSet) Kind {
	if v.regs == nil {
		return KindValue
	}
	for iter := v.regs.Iterator(); !iter.Done(); {
		name, _, _ := iter.Next()
		if !other.Contains(name) {
			v.regs = v.regs.Delete(name)
		}
	}
	return KindValue
}

// NarrowWith falls back to meet; descending chains are finite as well.
func (v *RegSet) NarrowWith(other *RegSet) Kind {
	return v.MeetWith(other)
}

func (v *RegSet) String() string {
	if v.Size() == 0 {
		return colorize.Element("∅")
	}
	return "{ " + strings.Join(v.Names(), ", ") + " }"
}

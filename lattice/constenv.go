package lattice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
)

// ConstEnv is the regular value of a constant-propagation environment:
// a finite map from register names to known integer constants. A
// register without a binding may hold anything, so the environment with
// no bindings carries no information and denotes ⊤. No environment
// representation denotes ⊥; an unsatisfiable environment only arises
// through a meet over conflicting bindings, which reports KindBot.
type ConstEnv struct {
	consts *immutable.Map[string, int64]
}

// Environment is the scaffolded constant-propagation domain.
type Environment = Element[ConstEnv, *ConstEnv]

// NewEnvironment constructs an environment element carrying the given
// bindings. With no bindings the result is ⊤.
func NewEnvironment(bindings map[string]int64) Environment {
	var v ConstEnv
	for name, c := range bindings {
		v.Bind(name, c)
	}
	return FromValue[ConstEnv, *ConstEnv](v)
}

func (v *ConstEnv) mp() *immutable.Map[string, int64] {
	if v.consts == nil {
		return immutable.NewMap[string, int64](nil)
	}
	return v.consts
}

// Kind reports ⊤ for the empty environment and KindValue otherwise.
func (v *ConstEnv) Kind() Kind {
	if v.Size() == 0 {
		return KindTop
	}
	return KindValue
}

// Clear drops all bindings.
func (v *ConstEnv) Clear() {
	v.consts = nil
}

// CopyFrom adopts other's bindings. The backing map is persistent, so
// sharing it is safe.
func (v *ConstEnv) CopyFrom(other *ConstEnv) {
	v.consts = other.consts
}

// Size returns the number of bindings.
func (v *ConstEnv) Size() int {
	if v.consts == nil {
		return 0
	}
	return v.consts.Len()
}

// Get looks up the constant bound to the named register.
func (v *ConstEnv) Get(name string) (int64, bool) {
	if v.consts == nil {
		return 0, false
	}
	return v.consts.Get(name)
}

// Bind records that the named register holds the constant c.
func (v *ConstEnv) Bind(name string, c int64) {
	v.consts = v.mp().Set(name, c)
}

// Unbind forgets everything about the named register.
func (v *ConstEnv) Unbind(name string) {
	if v.consts != nil {
		v.consts = v.consts.Delete(name)
	}
}

// Leq computes the pointwise order: an environment is lower the more
// bindings it pins down, so v ⊑ other iff every binding of other is
// present in v with the same constant.
func (v *ConstEnv) Leq(other *ConstEnv) bool {
	if other.consts == nil {
		return true
	}
	for iter := other.consts.Iterator(); !iter.Done(); {
		name, c, _ := iter.Next()
		if c2, found := v.Get(name); !found || c2 != c {
			return false
		}
	}
	return true
}

// Eq computes binding equality.
func (v *ConstEnv) Eq(other *ConstEnv) bool {
	return v.Size() == other.Size() && other.Leq(v)
}

// JoinWith keeps the bindings on which both environments agree. Joining
// away every binding yields ⊤.
func (v *ConstEnv) JoinWith(other *ConstEnv) Kind {
	if v.consts == nil {
		return v.Kind()
	}
	for iter := v.consts.Iterator(); !iter.Done(); {
		name, c, _ := iter.Next()
		if c2, found := other.Get(name); !found || c2 != c {
			v.consts = v.consts.Delete(name)
		}
	}
	return v.Kind()
}

// WidenWith falls back to join: chains are bounded by the number of
// registers in the analyzed code.
func (v *ConstEnv) WidenWith(other *ConstEnv) Kind {
	return v.JoinWith(other)
}

// MeetWith accumulates the bindings of both environments. Conflicting
// bindings make the environment unsatisfiable, reported as ⊥.
func (v *ConstEnv) MeetWith(other *ConstEnv) Kind {
	if other.consts == nil {
		return v.Kind()
	}
	for iter := other.consts.Iterator(); !iter.Done(); {
		name, c, _ := iter.Next()
		if c2, found := v.Get(name); found && c2 != c {
			return KindBot
		}
		v.Bind(name, c)
	}
	return v.Kind()
}

// NarrowWith falls back to meet.
func (v *ConstEnv) NarrowWith(other *ConstEnv) Kind {
	return v.MeetWith(other)
}

func (v *ConstEnv) String() string {
	if v.Size() == 0 {
		return colorize.Element("[]")
	}
	names := make([]string, 0, v.Size())
	for iter := v.consts.Iterator(); !iter.Done(); {
		name, _, _ := iter.Next()
		names = append(names, name)
	}
	sort.Strings(names)
	strs := make([]string, 0, len(names))
	for _, name := range names {
		c, _ := v.Get(name)
		strs = append(strs, fmt.Sprintf("%s ↦ %s", colorize.Key(name), colorize.Const(c)))
	}
	return "[" + strings.Join(strs, ", ") + "]"
}

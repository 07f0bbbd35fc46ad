package lattice

import (
	"errors"

	"github.com/fatih/color"
)

// Kind classifies a domain element as the extremal ⊥ or ⊤ element, or as
// a regular value of the underlying poset. The zero Kind is KindBot, so
// the zero Element of any domain is ⊥.
type Kind uint8

const (
	// KindBot tags the least element ⊥, absorbing for meets and neutral
	// for joins. It also denotes unreachability.
	KindBot Kind = iota
	// KindValue tags a regular (non-extremal) element.
	KindValue
	// KindTop tags the greatest element ⊤, carrying no information.
	KindTop
)

func (k Kind) String() string {
	switch k {
	case KindBot:
		return colorize.Element("⊥")
	case KindValue:
		return "value"
	case KindTop:
		return colorize.Element("⊤")
	}
	panic(errInternal)
}

var colorize = struct {
	Element func(...interface{}) string
	Const   func(...interface{}) string
	Key     func(...interface{}) string
}{
	Element: color.New(color.FgCyan).SprintFunc(),
	Const:   color.New(color.FgHiWhite).SprintFunc(),
	Key:     color.New(color.FgYellow).SprintFunc(),
}

var errInternal = errors.New("internal error")

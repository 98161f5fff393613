package periodic

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvloop/numbers"
)

// Set is an eventually periodic set of naturals.
//
// InitLen  – length of the non-repeating prefix.
// Init     – members below InitLen, ascending.
// CycleLen – period after the prefix; 0 for a finite set.
// Cycle    – member offsets within one period, ascending, each < CycleLen.
type Set struct {
	InitLen  uint64
	Init     []uint64
	CycleLen uint64
	Cycle    []uint64
}

// Universe returns the set of all naturals, the identity of Intersect.
func Universe() Set {
	return Set{CycleLen: 1, Cycle: []uint64{0}}
}

// FromLoop builds the Set of positions whose value satisfies pred in the
// sequence init, cycle, cycle, ... as returned by looping.Cache.LoopStructure.
// An empty cycle yields a finite Set.
func FromLoop[T any](init, cycle []T, pred func(T) bool) Set {
	s := Set{
		InitLen:  uint64(len(init)),
		CycleLen: uint64(len(cycle)),
	}
	for i, v := range init {
		if pred(v) {
			s.Init = append(s.Init, uint64(i))
		}
	}
	for i, v := range cycle {
		if pred(v) {
			s.Cycle = append(s.Cycle, uint64(i))
		}
	}
	return s
}

// Finite reports whether s has no periodic part.
func (s Set) Finite() bool { return s.CycleLen == 0 }

// Empty reports whether s has no members at all.
func (s Set) Empty() bool { return len(s.Init) == 0 && len(s.Cycle) == 0 }

// Contains reports whether n is a member of s.
func (s Set) Contains(n uint64) bool {
	if n < s.InitLen {
		_, found := slices.BinarySearch(s.Init, n)
		return found
	}
	if s.CycleLen == 0 {
		return false
	}
	_, found := slices.BinarySearch(s.Cycle, (n-s.InitLen)%s.CycleLen)
	return found
}

// Min returns the least member of s, or false if s is empty.
func (s Set) Min() (uint64, bool) {
	if len(s.Init) > 0 {
		return s.Init[0], true
	}
	if len(s.Cycle) > 0 {
		return s.InitLen + s.Cycle[0], true
	}
	return 0, false
}

// String renders s compactly, e.g. "{0 3 | 5+[1 2]/4}".
func (s Set) String() string {
	if s.Finite() {
		return fmt.Sprintf("{%v | %d}", s.Init, s.InitLen)
	}
	return fmt.Sprintf("{%v | %d+%v/%d}", s.Init, s.InitLen, s.Cycle, s.CycleLen)
}

// Intersect returns the members common to a and b.
//
// The result keeps the longer prefix. Each pair of cycle residues is merged
// with the Chinese remainder theorem; pairs that can never coincide are
// dropped. Cost: O(|Init| log + |a.Cycle|·|b.Cycle|·log(CycleLen)).
func Intersect(a, b Set) Set {
	if a.Finite() || b.Finite() {
		if !a.Finite() {
			a, b = b, a
		}
		return Set{InitLen: a.InitLen, Init: filter(a.Init, b)}
	}
	if a.InitLen < b.InitLen {
		a, b = b, a
	}

	out := Set{
		InitLen:  a.InitLen,
		Init:     filter(a.Init, b),
		CycleLen: numbers.Lcm(a.CycleLen, b.CycleLen),
	}
	// b's residues, shifted so they are measured from a.InitLen.
	shift := (a.InitLen - b.InitLen) % b.CycleLen
	for _, ra := range a.Cycle {
		for _, rb := range b.Cycle {
			rb = (rb + b.CycleLen - shift) % b.CycleLen
			if x, _, ok := numbers.CRT(ra, a.CycleLen, rb, b.CycleLen); ok {
				out.Cycle = append(out.Cycle, x)
			}
		}
	}
	slices.Sort(out.Cycle)
	out.Cycle = slices.Compact(out.Cycle)

	return out
}

// IntersectAll folds Intersect over sets, starting from Universe.
func IntersectAll(sets ...Set) Set {
	acc := Universe()
	for _, s := range sets {
		acc = Intersect(acc, s)
	}
	return acc
}

// filter keeps the members of init that also belong to s.
func filter(init []uint64, s Set) []uint64 {
	var out []uint64
	for _, n := range init {
		if s.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

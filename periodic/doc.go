// Package periodic represents eventually periodic sets of natural numbers
// and intersects them.
//
// A Set is what remains of a looping sequence once only the positions that
// satisfy some predicate are kept:
//
//	members = Init ∪ { InitLen + r + k·CycleLen : r ∈ Cycle, k ≥ 0 }
//
// Intersecting the Sets of several independent sequences answers "what is
// the first step at which every sequence satisfies its predicate" without
// walking the sequences in lockstep. Cycle residues are merged with the
// Chinese remainder theorem (lvloop/numbers), so the combined cycle length
// is the lcm of the inputs; it must fit in a uint64.
package periodic

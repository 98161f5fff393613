// Package looping memoizes a lazily produced sequence and detects, while it
// is being produced, whether the sequence becomes periodic.
//
// 🚀 What does it do?
//
//	A Cache owns a generator and records every value it yields. The first
//	time a value repeats, the sequence is known to be eventually periodic:
//
//	  position: 0  1  2  3  4  5  6 ...
//	  value:    1  2  3  2  3  2  3 ...
//	            └┘ └──┘
//	           init cycle
//
//	From then on the value at any position n is answered from memory:
//
//	  n <  len(init)  →  init[n]
//	  n >= len(init)  →  cycle[(n-len(init)) % len(cycle)]
//
//	so Get(1e18) costs the same as Get(3). A generator that ends before any
//	repeat leaves the cache Exhausted, holding the full finite sequence.
//
// ✨ Key features:
//   - each generator step runs at most once over the cache's lifetime
//   - independent Cursors share one cache (Clone copies the position only)
//   - LoopStructure exposes (init, cycle) for CRT-style composition
//     (see lvloop/periodic and lvloop/numbers)
//   - NewKeyed supports non-comparable values (slices, boards) via a key func
//
// ⚠️ Hazards:
//
//	LoopStructure, Count and large Get calls on an infinite generator that
//	never repeats do not return. Bound the generator with generator.Take.
//
// ⚙️ Usage:
//
//	c := looping.Iterate(1, func(x int) int { return x * 3 % 100 })
//	v, _, _ := c.Get(1_000_000_000)
//	init, cycle, _ := c.LoopStructure()
//
// Complexity:
//
//   - Get:           O(1) once settled; O(k) amortized for k newly pulled values.
//   - LoopStructure: O(len(init)+len(cycle)) the first time, copy cost after.
//   - Memory:        O(len(init)+len(cycle)) values plus one map entry per value while searching.
package looping

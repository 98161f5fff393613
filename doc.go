// Package lvloop finds the loops in sequences you can only walk forwards,
// and then answers questions about positions you could never walk to.
//
// 🚀 What is lvloop?
//
//	A small, dependency-light toolkit built around one data structure:
//		• looping   – a memoizing cache over a generator that detects the first
//		              repeated state and serves Get(n) in O(1) afterwards
//		• generator – the Generator contract plus adaptors (Iterate, FromSeq, Take…)
//		• numbers   – gcd, lcm, Bézout coefficients, Chinese remainder
//		• periodic  – eventually periodic index sets, intersected by CRT
//
// ✨ Why lvloop?
//
//   - Each generator step runs once, however many cursors read the cache
//   - Loop structure is exposed exactly, ready for modular arithmetic
//   - Pure Go generics, no cgo
//
// Quick ASCII example:
//
//	1 → 2 → 3
//	    ↑   │
//	    └───┘
//
//	init = [1], cycle = [2 3], so position 10⁹ holds cycle[(10⁹-1) % 2] = 3.
//
// The loopseq command (cmd/loopseq) exposes the same machinery for token
// streams and affine maps.
//
//	go get github.com/katalvlaran/lvloop
package lvloop

// Package generator defines the Generator contract consumed by lvloop/looping
// and a handful of adaptors for building generators from plain Go values.
//
// A Generator produces a deterministic, possibly unbounded series of values,
// one per call to Next. It is never rewound: once handed to a looping.Cache
// it must not be driven from anywhere else.
//
// Adaptors:
//
//	Func       — wrap a closure.
//	Iterate    — seed, step(seed), step(step(seed)), ... (never ends).
//	IterateErr — like Iterate, with a step that may fail.
//	FromSlice  — a finite generator over a copied slice.
//	FromSeq    — pull values from an iter.Seq (stoppable, see Stopper).
//	Take       — cap any generator to at most n values.
//
// Take is the only way to bound work: looping.Cache has no timeout, so an
// infinite generator that never repeats keeps it searching forever.
package generator

package looping

import (
	"iter"
	"math"
)

// Cursor is an independent read position over a shared Cache.
//
// Advancing a cursor never moves another one, but every cursor of a cache
// observes and extends the same memoized sequence. A Cursor itself is not
// safe for concurrent use; Clone it to hand a position to another goroutine.
type Cursor[T any, K comparable] struct {
	cache *Cache[T, K]
	pos   int
	err   error
}

// Pos returns the index of the value the next call to Next will return.
func (it *Cursor[T, K]) Pos() int { return it.pos }

// Cache returns the cache the cursor reads from.
func (it *Cursor[T, K]) Cache() *Cache[T, K] { return it.cache }

// Clone returns a cursor at the same position over the same cache.
func (it *Cursor[T, K]) Clone() *Cursor[T, K] {
	return &Cursor[T, K]{cache: it.cache, pos: it.pos}
}

// Next returns the value at the current position and advances by one.
// ok is false once the position runs past the end of a finite sequence.
// On a generator failure the position is left unchanged.
func (it *Cursor[T, K]) Next() (value T, ok bool, err error) {
	value, ok, err = it.cache.Get(it.pos)
	if err != nil {
		return value, false, err
	}
	it.pos++
	return value, ok, nil
}

// Nth skips k values and returns the one after them, leaving the cursor just
// past it; Nth(0) is Next. Skipped values are not materialized beyond what
// Get needs. ok is false for negative k or past the end of a finite sequence.
func (it *Cursor[T, K]) Nth(k int) (value T, ok bool, err error) {
	if k < 0 {
		return value, false, nil
	}
	value, ok, err = it.cache.Get(it.pos + k)
	if err != nil {
		return value, false, err
	}
	it.pos += k + 1
	return value, ok, nil
}

// SizeHint bounds the number of values left after the cursor without
// pulling from the generator. bounded is false while the length is unknown
// (Searching) or infinite (Looped); upper is only meaningful when bounded.
func (it *Cursor[T, K]) SizeHint() (lower, upper int, bounded bool) {
	c := it.cache
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case Exhausted:
		n := remaining(len(c.trace), it.pos)
		return n, n, true
	case Looped:
		return math.MaxInt, 0, false
	default:
		return remaining(len(c.trace), it.pos), 0, false
	}
}

// Count settles the sequence and returns how many values are left after
// the cursor. The cursor itself does not move.
//
// Count panics with ErrInfiniteCount if the sequence loops: an infinite
// sequence has no count, and asking for one is a programming error.
func (it *Cursor[T, K]) Count() (int, error) {
	c := it.cache
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.settle(); err != nil {
		return 0, err
	}
	if c.state == Looped {
		panic(ErrInfiniteCount.Error())
	}
	return remaining(len(c.trace), it.pos), nil
}

// Seq returns an iterator over (position, value) pairs from the cursor
// onwards, advancing the cursor as it goes. Iteration stops at the end of a
// finite sequence or on a generator failure, which Err then reports.
func (it *Cursor[T, K]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for {
			pos := it.pos
			v, ok, err := it.Next()
			if err != nil {
				it.err = err
				return
			}
			if !ok || !yield(pos, v) {
				return
			}
		}
	}
}

// Err returns the generator failure that ended the last Seq, if any.
func (it *Cursor[T, K]) Err() error { return it.err }

func remaining(n, pos int) int {
	if pos >= n {
		return 0
	}
	return n - pos
}

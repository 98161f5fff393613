package looping

import (
	"iter"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvloop/generator"
)

// Cache memoizes the values of a generator and discovers its loop structure.
//
// A Cache is safe for use by multiple goroutines; the generator is only
// driven while holding the cache lock. Values returned by Get and Next are
// shared with the cache and must be treated as read-only.
type Cache[T any, K comparable] struct {
	mu sync.Mutex

	state     State
	gen       generator.Generator[T]
	key       func(T) K
	trace     []T       // Searching, Exhausted: every value seen so far
	locations map[K]int // Searching: first position of each key
	init      []T       // Looped
	cycle     []T       // Looped, never empty
	steps     int
	err       error

	log zerolog.Logger
}

// New returns a Cache over g for values that are comparable themselves.
func New[T comparable](g generator.Generator[T], opts ...Option) *Cache[T, T] {
	return NewKeyed(g, func(v T) T { return v }, opts...)
}

// NewKeyed returns a Cache over g whose repeat detection compares key(v)
// instead of v. Two values with equal keys are treated as the same state,
// so key must be injective on the values g can produce.
func NewKeyed[T any, K comparable](g generator.Generator[T], key func(T) K, opts ...Option) *Cache[T, K] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache[T, K]{
		state:     Searching,
		gen:       g,
		key:       key,
		trace:     make([]T, 0, o.Capacity),
		locations: make(map[K]int, o.Capacity),
		log:       o.Logger,
	}
}

// Of returns a Cache pulling from seq. Close the cache if it may be dropped
// before seq is settled.
func Of[T comparable](seq iter.Seq[T], opts ...Option) *Cache[T, T] {
	return New(generator.FromSeq(seq), opts...)
}

// Iterate returns a Cache over seed, step(seed), step(step(seed)), ...
func Iterate[T comparable](seed T, step func(T) T, opts ...Option) *Cache[T, T] {
	return New(generator.Iterate(seed, step), opts...)
}

// Cursor returns a new cursor positioned at the start of the sequence.
func (c *Cache[T, K]) Cursor() *Cursor[T, K] {
	return &Cursor[T, K]{cache: c}
}

// Get returns the value at position n, pulling from the generator only as
// far as needed. ok is false when n is negative or lies past the end of a
// finite sequence. A generator failure is returned unchanged.
func (c *Cache[T, K]) Get(n int) (value T, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.get(n)
}

func (c *Cache[T, K]) get(n int) (T, bool, error) {
	var zero T
	if n < 0 {
		return zero, false, nil
	}
	if err := c.advance(func() bool { return len(c.trace) > n }); err != nil {
		return zero, false, err
	}

	switch c.state {
	case Looped:
		if n < len(c.init) {
			return c.init[n], true, nil
		}
		return c.cycle[(n-len(c.init))%len(c.cycle)], true, nil
	default:
		// Searching with a long enough trace, or Exhausted.
		if n < len(c.trace) {
			return c.trace[n], true, nil
		}
		return zero, false, nil
	}
}

// LoopStructure drives the generator until the sequence either repeats or
// ends and returns copies of the non-repeating prefix and the repeating
// suffix. An empty cycle means the sequence is finite and init holds all of
// it. Calling it again performs no further generator work.
//
// LoopStructure does not return for an infinite generator that never repeats.
func (c *Cache[T, K]) LoopStructure() (init, cycle []T, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err = c.settle(); err != nil {
		return nil, nil, err
	}
	if c.state == Exhausted {
		return slices.Clone(c.trace), nil, nil
	}
	return slices.Clone(c.init), slices.Clone(c.cycle), nil
}

// State reports the current phase without pulling any values.
func (c *Cache[T, K]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Steps reports how many values have been taken from the generator.
func (c *Cache[T, K]) Steps() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.steps
}

// Len reports the prefix and cycle lengths known so far: the trace length
// and 0 while searching or once exhausted, len(init) and len(cycle) once looped.
func (c *Cache[T, K]) Len() (init, cycle int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Looped {
		return len(c.init), len(c.cycle)
	}
	return len(c.trace), 0
}

// Close releases the generator. Reads that the memoized values can answer
// keep working; anything needing more values reports ErrClosed.
// Close is a no-op once the cache has settled.
func (c *Cache[T, K]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Searching && c.err == nil {
		c.release()
		c.err = ErrClosed
	}
}

// settle pulls until the cache leaves Searching.
func (c *Cache[T, K]) settle() error {
	return c.advance(func() bool { return false })
}

// advance pulls from the generator until done reports true or the cache
// reaches a terminal state. Caller holds c.mu.
func (c *Cache[T, K]) advance(done func() bool) error {
	for c.state == Searching && !done() {
		if c.err != nil {
			return c.err
		}
		v, ok, err := c.gen.Next()
		if err != nil {
			c.err = err
			c.release()
			c.log.Debug().Err(err).Int("steps", c.steps).Msg("generator failed")
			return err
		}
		if !ok {
			c.exhaust()
			return nil
		}
		c.steps++
		k := c.key(v)
		if p, seen := c.locations[k]; seen {
			c.loop(p)
			return nil
		}
		c.locations[k] = len(c.trace)
		c.trace = append(c.trace, v)
	}
	return nil
}

// loop switches to Looped with the repeat first seen at position p.
func (c *Cache[T, K]) loop(p int) {
	c.init = c.trace[:p:p]
	c.cycle = c.trace[p:]
	c.trace = nil
	c.locations = nil
	c.state = Looped
	c.release()
	c.log.Debug().
		Int("init", len(c.init)).
		Int("cycle", len(c.cycle)).
		Int("steps", c.steps).
		Msg("sequence looped")
}

// exhaust switches to Exhausted; the trace is the whole sequence.
func (c *Cache[T, K]) exhaust() {
	c.locations = nil
	c.state = Exhausted
	c.release()
	c.log.Debug().Int("len", len(c.trace)).Msg("sequence exhausted")
}

// release stops and drops the generator.
func (c *Cache[T, K]) release() {
	if s, ok := c.gen.(generator.Stopper); ok {
		s.Stop()
	}
	c.gen = nil
}

package generator

import (
	"errors"
	"iter"
)

// ErrNegativeLimit is the panic value used by Take for a negative limit.
var ErrNegativeLimit = errors.New("generator: limit must be non-negative")

// Generator produces the values of a sequence one at a time.
//
// Next returns the next value and true, or the zero value and false once the
// sequence has ended. A non-nil error reports a failure of the producer itself;
// callers must not assume the generator can be resumed after one.
type Generator[T any] interface {
	Next() (T, bool, error)
}

// Stopper is implemented by generators that hold resources which must be
// released when no more values are needed.
type Stopper interface {
	Stop()
}

// Func adapts an ordinary function to the Generator interface.
type Func[T any] func() (T, bool, error)

// Next calls f.
func (f Func[T]) Next() (T, bool, error) { return f() }

// iterate yields seed, step(seed), step(step(seed)), ...
type iterate[T any] struct {
	cur  T
	step func(T) (T, error)
	err  error
}

// Iterate returns an endless generator over the orbit of seed under step.
// The first value is seed itself.
func Iterate[T any](seed T, step func(T) T) Generator[T] {
	return IterateErr(seed, func(v T) (T, error) { return step(v), nil })
}

// IterateErr is Iterate with a fallible step. The value that failed to
// advance has already been yielded; the error is reported on the next call
// and on every call after it.
func IterateErr[T any](seed T, step func(T) (T, error)) Generator[T] {
	return &iterate[T]{cur: seed, step: step}
}

func (it *iterate[T]) Next() (T, bool, error) {
	var zero T
	if it.err != nil {
		return zero, false, it.err
	}
	if it.step == nil {
		return zero, false, nil
	}
	v := it.cur
	next, err := it.step(v)
	if err != nil {
		// v is still valid; the failure belongs to the value after it.
		it.err = err
		it.step = nil
		return v, true, nil
	}
	it.cur = next
	return v, true, nil
}

// slice yields the elements of a private copy, then ends.
type slice[T any] struct {
	values []T
	pos    int
}

// FromSlice returns a finite generator over a copy of values.
func FromSlice[T any](values []T) Generator[T] {
	cp := make([]T, len(values))
	copy(cp, values)
	return &slice[T]{values: cp}
}

func (s *slice[T]) Next() (T, bool, error) {
	if s.pos >= len(s.values) {
		var zero T
		return zero, false, nil
	}
	v := s.values[s.pos]
	s.pos++
	return v, true, nil
}

// seq pulls from an iter.Seq through iter.Pull.
type seq[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq returns a generator pulling from s. The returned generator
// implements Stopper; Stop must be called if the sequence is abandoned
// before it ends, otherwise the pull goroutine is leaked.
func FromSeq[T any](s iter.Seq[T]) Generator[T] {
	next, stop := iter.Pull(s)
	return &seq[T]{next: next, stop: stop}
}

func (s *seq[T]) Next() (T, bool, error) {
	v, ok := s.next()
	return v, ok, nil
}

// Stop releases the underlying pull iterator. It is safe to call more than once.
func (s *seq[T]) Stop() { s.stop() }

// take caps an inner generator.
type take[T any] struct {
	inner Generator[T]
	left  int
}

// Take returns a generator yielding at most n values of g. When the limit is
// reached, g is stopped if it implements Stopper. Take panics if n < 0.
func Take[T any](g Generator[T], n int) Generator[T] {
	if n < 0 {
		panic(ErrNegativeLimit.Error())
	}
	return &take[T]{inner: g, left: n}
}

func (t *take[T]) Next() (T, bool, error) {
	var zero T
	if t.left <= 0 {
		t.Stop()
		return zero, false, nil
	}
	v, ok, err := t.inner.Next()
	if err != nil || !ok {
		return zero, false, err
	}
	t.left--
	return v, true, nil
}

// Stop forwards to the inner generator.
func (t *take[T]) Stop() {
	if s, ok := t.inner.(Stopper); ok {
		s.Stop()
	}
}

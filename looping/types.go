// Package looping defines the states, options and sentinel errors of the
// periodic-sequence cache.
//
// Errors (sentinel):
//
//	– ErrInfiniteCount  panic value of Cursor.Count on a sequence that loops.
//	– ErrClosed         the cache was closed before its sequence was settled.
//	– ErrBadCapacity    WithCapacity received a negative size hint (panics).
package looping

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors for looping operations.
var (
	// ErrInfiniteCount indicates Count was asked for the length of a sequence
	// that repeats forever. It is a caller bug and is raised as a panic.
	ErrInfiniteCount = errors.New("looping: count of a looping sequence")

	// ErrClosed indicates the generator was released by Close while the cache
	// still needed more values from it.
	ErrClosed = errors.New("looping: cache closed")

	// ErrBadCapacity indicates a negative capacity hint.
	ErrBadCapacity = errors.New("looping: capacity must be non-negative")
)

// State is the phase of a Cache. It only ever moves forward:
// Searching → Exhausted or Searching → Looped.
type State int

const (
	// Searching pulls values from the generator looking for a repeat.
	Searching State = iota

	// Exhausted means the generator ended without repeating; the trace is
	// the complete sequence.
	Exhausted

	// Looped means a repeat was found; the sequence is init followed by
	// cycle repeated forever.
	Looped
)

// String returns the lower-case name of s.
func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case Exhausted:
		return "exhausted"
	case Looped:
		return "looped"
	default:
		return "unknown"
	}
}

// Options configures a Cache.
//
// Logger   – receives debug events on state transitions. Default: zerolog.Nop().
// Capacity – initial size hint for the trace and location index. Default: 0.
type Options struct {
	Logger   zerolog.Logger
	Capacity int
}

// Option represents a functional option for configuring a Cache.
type Option func(*Options)

// WithLogger routes transition events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithCapacity preallocates room for n distinct values.
// Panics with ErrBadCapacity if n < 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns the Options used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		Capacity: 0,
	}
}

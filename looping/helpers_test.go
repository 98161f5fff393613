package looping_test

import (
	"github.com/katalvlaran/lvloop/generator"
)

// counting wraps a generator and records how often Next was called.
type counting[T any] struct {
	inner generator.Generator[T]
	calls int
}

func (c *counting[T]) Next() (T, bool, error) {
	c.calls++
	return c.inner.Next()
}

// rho returns the state transition 0 → 1 → … → tail+period-1 → tail → …,
// i.e. a sequence with preperiod tail and period period whose value at
// position i is i for i < tail+period.
func rho(tail, period int) func(int) int {
	return func(x int) int {
		if x+1 == tail+period {
			return tail
		}
		return x + 1
	}
}

// repeatAfterOne yields 1, 2, 3, 2, 3, 2, 3, …
func repeatAfterOne() generator.Generator[int] {
	return generator.Iterate(1, func(x int) int {
		if x == 3 {
			return 2
		}
		return x + 1
	})
}

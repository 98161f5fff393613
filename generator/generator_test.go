package generator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/lvloop/generator"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// drain collects every value of g, failing the test on an error.
func drain[T any](t *testing.T, g generator.Generator[T]) []T {
	t.Helper()
	var out []T
	for {
		v, ok, err := g.Next()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestFromSliceCopies(t *testing.T) {
	src := []int{1, 2, 3}
	g := generator.FromSlice(src)
	src[0] = 42
	require.Equal(t, []int{1, 2, 3}, drain(t, g))

	_, ok, err := g.Next()
	require.NoError(t, err)
	require.False(t, ok, "exhausted generators stay exhausted")
}

func TestIterate(t *testing.T) {
	g := generator.Take(generator.Iterate(1, func(x int) int { return 2 * x }), 5)
	require.Equal(t, []int{1, 2, 4, 8, 16}, drain(t, g))
}

func TestIterateErr(t *testing.T) {
	boom := errors.New("boom")
	g := generator.IterateErr(0, func(x int) (int, error) {
		if x == 2 {
			return 0, boom
		}
		return x + 1, nil
	})
	for want := 0; want <= 2; want++ {
		v, ok, err := g.Next()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok, err := g.Next()
	require.ErrorIs(t, err, boom)
	require.False(t, ok)
	_, _, err = g.Next()
	require.ErrorIs(t, err, boom, "the failure is sticky")
}

func TestFunc(t *testing.T) {
	n := 0
	g := generator.Func[int](func() (int, bool, error) {
		n++
		return n, n <= 2, nil
	})
	require.Equal(t, []int{1, 2}, drain[int](t, g))
}

func TestFromSeqStop(t *testing.T) {
	g := generator.FromSeq(func(yield func(string) bool) {
		for {
			if !yield("tick") {
				return
			}
		}
	})
	v, ok, err := g.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tick", v)

	s, isStopper := g.(generator.Stopper)
	require.True(t, isStopper)
	s.Stop()
	s.Stop()
	_, ok, _ = g.Next()
	require.False(t, ok)
}

func TestFromSeqFinite(t *testing.T) {
	g := generator.FromSeq(func(yield func(int) bool) {
		for _, v := range []int{3, 1, 2} {
			if !yield(v) {
				return
			}
		}
	})
	require.Equal(t, []int{3, 1, 2}, drain(t, g))
}

func TestTakeStopsInner(t *testing.T) {
	g := generator.Take(generator.FromSeq(func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}), 3)
	require.Equal(t, []int{0, 1, 2}, drain(t, g))
}

func TestTakeZero(t *testing.T) {
	require.Empty(t, drain(t, generator.Take(generator.FromSlice([]int{1}), 0)))
}

func TestTakeNegativePanics(t *testing.T) {
	require.PanicsWithValue(t, generator.ErrNegativeLimit.Error(), func() {
		generator.Take(generator.FromSlice([]int{1}), -1)
	})
}

package numbers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvloop/numbers"
)

func TestGcdLcm(t *testing.T) {
	cases := []struct {
		a, b     int
		gcd, lcm int
	}{
		{12, 18, 6, 36},
		{7, 13, 1, 91},
		{0, 5, 5, 0},
		{5, 0, 5, 0},
		{0, 0, 0, 0},
		{21, 21, 21, 21},
	}
	for _, tc := range cases {
		require.Equal(t, tc.gcd, numbers.Gcd(tc.a, tc.b), "Gcd(%d,%d)", tc.a, tc.b)
		require.Equal(t, tc.lcm, numbers.Lcm(tc.a, tc.b), "Lcm(%d,%d)", tc.a, tc.b)
	}
	require.Equal(t, uint64(2520), numbers.LcmAll[uint64](1, 2, 3, 4, 5, 6, 7, 8, 9, 10))
	require.Equal(t, 1, numbers.LcmAll[int]())
}

// TestBezoutIdentity checks every documented relation of ExtendedGCD.
func TestBezoutIdentity(t *testing.T) {
	for a := uint32(0); a < 40; a++ {
		for b := uint32(0); b < 40; b++ {
			e := numbers.Bezout(a, b)
			require.Equal(t, numbers.Gcd(a, b), e.GCD, "gcd(%d,%d)", a, b)
			if e.Sign {
				require.Equal(t, e.GCD, b*e.KB-a*e.KA, "sign identity (%d,%d)", a, b)
			} else {
				require.Equal(t, e.GCD, a*e.KA-b*e.KB, "identity (%d,%d)", a, b)
			}
			require.Equal(t, a, e.FA*e.GCD)
			require.Equal(t, b, e.FB*e.GCD)
		}
	}
}

func TestBezoutKnown(t *testing.T) {
	e := numbers.Bezout(4, 6)
	require.Equal(t, numbers.ExtendedGCD[int]{KA: 1, KB: 1, FA: 2, FB: 3, GCD: 2, Sign: true}, e)
	require.Equal(t, 12, e.Lcm())
}

// TestChineseRemainder compares against a brute-force search.
func TestChineseRemainder(t *testing.T) {
	for ma := int64(1); ma <= 12; ma++ {
		for mb := int64(1); mb <= 12; mb++ {
			e := numbers.Bezout(ma, mb)
			for ra := int64(0); ra < ma; ra++ {
				for rb := int64(0); rb < mb; rb++ {
					want, found := int64(-1), false
					for x := int64(0); x < ma*mb; x++ {
						if x%ma == ra && x%mb == rb {
							want, found = x, true
							break
						}
					}
					x, l, ok := numbers.CRT(ra, ma, rb, mb)
					require.Equal(t, found, ok, "CRT(%d,%d,%d,%d)", ra, ma, rb, mb)
					if !found {
						continue
					}
					require.Equal(t, want, x)
					require.Equal(t, numbers.Lcm(ma, mb), l)
					require.Equal(t, want, numbers.ChineseRemainder(e, ra, rb))
				}
			}
		}
	}
}

func TestCRTReducesAndRejects(t *testing.T) {
	x, l, ok := numbers.CRT(-1, 4, 9, 6)
	require.True(t, ok)
	require.Equal(t, 3, x) // 3 ≡ -1 (mod 4), 3 ≡ 9 (mod 6)
	require.Equal(t, 12, l)

	_, _, ok = numbers.CRT(0, 4, 1, 6)
	require.False(t, ok, "parities disagree")
	_, _, ok = numbers.CRT(1, 0, 1, 6)
	require.False(t, ok, "zero modulus")
}

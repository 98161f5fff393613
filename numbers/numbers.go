package numbers

import (
	"golang.org/x/exp/constraints"
)

// Gcd returns the greatest common divisor of a and b. Gcd(0, 0) == 0.
func Gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lcm returns the least common multiple of a and b. Lcm(x, 0) == 0.
func Lcm[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return b * (a / Gcd(a, b))
}

// LcmAll folds Lcm over xs, starting from 1.
func LcmAll[T constraints.Integer](xs ...T) T {
	acc := T(1)
	for _, x := range xs {
		acc = Lcm(acc, x)
	}
	return acc
}

// ExtendedGCD is the result of Bezout(a, b). It satisfies
//
//	GCD == gcd(a, b)
//	GCD == b*KB - a*KA   if Sign
//	GCD == a*KA - b*KB   otherwise
//	FA*GCD == a
//	FB*GCD == b
//
// The sign flag replaces negative coefficients.
type ExtendedGCD[T constraints.Integer] struct {
	KA, KB T
	FA, FB T
	GCD    T
	Sign   bool
}

// Bezout runs the extended Euclidean algorithm on a and b.
func Bezout[T constraints.Integer](a, b T) ExtendedGCD[T] {
	ka, kb, fb, fa := T(1), T(0), T(0), T(1)
	sign := false
	for b != 0 {
		q := a / b
		ka += fb * q
		ka, fb = fb, ka
		kb += fa * q
		kb, fa = fa, kb
		a -= b * q
		a, b = b, a
		sign = !sign
	}
	return ExtendedGCD[T]{KA: ka, KB: kb, FA: fa, FB: fb, GCD: a, Sign: sign}
}

// Lcm returns the least common multiple of the pair e was computed for.
func (e ExtendedGCD[T]) Lcm() T {
	return e.GCD * e.FA * e.FB
}

// ChineseRemainder returns the least x in [0, lcm(a, b)) with x ≡ remA (mod a)
// and x ≡ remB (mod b), where e = Bezout(a, b), 0 ≤ remA < a and 0 ≤ remB < b.
// The result is only meaningful when remA ≡ remB (mod gcd(a, b)); use CRT
// for a checked version.
func ChineseRemainder[T constraints.Integer](e ExtendedGCD[T], remA, remB T) T {
	a := e.GCD * e.FA
	b := e.GCD * e.FB
	m := b * e.FA
	if e.Sign {
		return (remA*e.KB%a*e.FB + (b-remB)*e.KA%b*e.FA) % m
	}
	return (remB*e.KA%b*e.FA + (a-remA)*e.KB%a*e.FB) % m
}

// CRT solves x ≡ remA (mod modA), x ≡ remB (mod modB) for positive moduli.
// Residues are reduced first. It returns the least non-negative solution and
// lcm(modA, modB), or ok == false if the congruences are incompatible.
func CRT[T constraints.Integer](remA, modA, remB, modB T) (x, lcm T, ok bool) {
	if modA <= 0 || modB <= 0 {
		return 0, 0, false
	}
	remA, remB = reduce(remA, modA), reduce(remB, modB)
	e := Bezout(modA, modB)
	if reduce(remA, e.GCD) != reduce(remB, e.GCD) {
		return 0, 0, false
	}
	return ChineseRemainder(e, remA, remB), e.Lcm(), true
}

func reduce[T constraints.Integer](x, m T) T {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

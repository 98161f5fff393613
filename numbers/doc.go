// Package numbers provides the integer helpers used to combine several
// periodic sequences into one: greatest common divisor, least common
// multiple, the extended Euclidean algorithm (Bézout coefficients) and the
// Chinese remainder reconstruction built on top of it.
//
// All functions are pure and generic over constraints.Integer. Bezout keeps
// every intermediate non-negative, so unsigned types work as well as signed
// ones; inputs are expected to be non-negative.
package numbers

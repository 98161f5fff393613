// Package main implements loopseq, a command line front end to lvloop.
//
// loopseq finds where a sequence starts repeating and extrapolates it:
//
//	loopseq analyze trace.txt          # prefix and cycle of a token stream
//	loopseq at 1000000000 trace.txt    # token at a far position
//	loopseq affine --seed 1 --mul 3 --mod 1000 --at 1e12
//
// Tokens are whitespace separated; two equal tokens are the same state.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

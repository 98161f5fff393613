package main

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvloop/generator"
	"github.com/katalvlaran/lvloop/looping"
)

// ErrZeroModulus rejects --mod 0.
var ErrZeroModulus = errors.New("loopseq: modulus must be positive")

// affineStep returns x → (mul·x + add) mod m without overflow.
func affineStep(mul, add, m uint64) func(uint64) uint64 {
	return func(x uint64) uint64 {
		hi, lo := bits.Mul64(mul, x)
		lo, carry := bits.Add64(lo, add, 0)
		return bits.Rem64(hi+carry, lo, m)
	}
}

func newAffineCmd(opts *rootOptions) *cobra.Command {
	var (
		flags AffineConfig
		at    string
	)
	cmd := &cobra.Command{
		Use:   "affine",
		Short: "Loop structure of x → (mul·x + add) mod m",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := opts.cfg.Affine
			f := cmd.Flags()
			if f.Changed("seed") {
				p.Seed = flags.Seed
			}
			if f.Changed("mul") {
				p.Mul = flags.Mul
			}
			if f.Changed("add") {
				p.Add = flags.Add
			}
			if f.Changed("mod") {
				p.Mod = flags.Mod
			}
			if f.Changed("limit") {
				p.Limit = flags.Limit
			}
			if p.Mod == 0 {
				return ErrZeroModulus
			}

			var g generator.Generator[uint64] = generator.Iterate(p.Seed%p.Mod, affineStep(p.Mul, p.Add, p.Mod))
			if p.Limit > 0 {
				g = generator.Take(g, p.Limit)
			}
			c := looping.New(g, looping.WithLogger(opts.log))
			defer c.Close()

			opts.log.Debug().
				Uint64("seed", p.Seed).
				Uint64("mul", p.Mul).
				Uint64("add", p.Add).
				Uint64("mod", p.Mod).
				Int("limit", p.Limit).
				Msg("affine map")

			out := cmd.OutOrStdout()
			init, cycle, err := c.LoopStructure()
			if err != nil {
				return err
			}
			if len(cycle) == 0 {
				fmt.Fprintf(out, "no repeat within %d steps\n", len(init))
			} else {
				fmt.Fprintf(out, "init: %d\ncycle: %d\n", len(init), len(cycle))
			}

			if at == "" {
				return nil
			}
			n, err := parsePosition(at)
			if err != nil {
				return err
			}
			v, ok, err := c.Get(n)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %d >= %d", ErrPastEnd, n, len(init))
			}
			fmt.Fprintf(out, "x[%d] = %d\n", n, v)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&flags.Seed, "seed", 1, "starting value x[0]")
	cmd.Flags().Uint64Var(&flags.Mul, "mul", 3, "multiplier")
	cmd.Flags().Uint64Var(&flags.Add, "add", 0, "increment")
	cmd.Flags().Uint64Var(&flags.Mod, "mod", 1000, "modulus")
	cmd.Flags().IntVar(&flags.Limit, "limit", 0, "stop after this many values (0: no limit)")
	cmd.Flags().StringVar(&at, "at", "", "also print x[N]")
	return cmd
}

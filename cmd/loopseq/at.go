package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// ErrPastEnd reports a position beyond the end of a finite stream.
var ErrPastEnd = errors.New("loopseq: position past the end of the sequence")

func newAtCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "at N [file]",
		Short: "Print the token at position N of the extrapolated stream",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			c, done, err := tokenCache(cmd, args[1:], opts)
			if err != nil {
				return err
			}
			defer done()

			v, ok, err := c.Get(n)
			if err != nil {
				return fmt.Errorf("read tokens: %w", err)
			}
			if !ok {
				init, _ := c.Len()
				return fmt.Errorf("%w: %d >= %d", ErrPastEnd, n, init)
			}
			opts.log.Debug().Int("pos", n).Str("state", c.State().String()).Msg("resolved")
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

// parsePosition accepts plain integers and float notation such as 1e12.
func parsePosition(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid position %q", s)
	}
	return int(f), nil
}

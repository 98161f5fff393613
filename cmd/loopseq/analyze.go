package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// maxShown caps how many tokens of a cycle are printed.
const maxShown = 32

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file]",
		Short: "Print the non-repeating prefix and the cycle of a token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := tokenCache(cmd, args, opts)
			if err != nil {
				return err
			}
			defer done()

			init, cycle, err := c.LoopStructure()
			if err != nil {
				return fmt.Errorf("read tokens: %w", err)
			}
			opts.log.Info().
				Str("state", c.State().String()).
				Int("steps", c.Steps()).
				Msg("analyzed")

			out := cmd.OutOrStdout()
			if len(cycle) == 0 {
				fmt.Fprintf(out, "finite: %d tokens, no repeat\n", len(init))
				return nil
			}
			fmt.Fprintf(out, "init: %d\n", len(init))
			fmt.Fprintf(out, "cycle: %d\n", len(cycle))
			fmt.Fprintf(out, "cycle tokens: %s\n", preview(cycle))
			return nil
		},
	}
}

// preview joins up to maxShown tokens.
func preview(tokens []string) string {
	if len(tokens) <= maxShown {
		return strings.Join(tokens, " ")
	}
	return strings.Join(tokens[:maxShown], " ") + fmt.Sprintf(" … (+%d)", len(tokens)-maxShown)
}

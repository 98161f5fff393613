package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvloop/generator"
	"github.com/katalvlaran/lvloop/looping"
)

// tokenCache opens the token source named by args (a file, "-" or nothing
// for stdin) and wraps it in a cache. The returned close func must be called.
func tokenCache(cmd *cobra.Command, args []string, opts *rootOptions) (*looping.Cache[string, string], func(), error) {
	var r io.Reader = cmd.InOrStdin()
	closeFn := func() {}
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		r = f
		closeFn = func() { _ = f.Close() }
	}

	c := looping.New(scanTokens(r), looping.WithLogger(opts.log))
	return c, func() {
		c.Close()
		closeFn()
	}, nil
}

// scanTokens yields the whitespace separated words of r. A read error ends
// the sequence with that error.
func scanTokens(r io.Reader) generator.Generator[string] {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return generator.Func[string](func() (string, bool, error) {
		if sc.Scan() {
			return sc.Text(), true, nil
		}
		return "", false, sc.Err()
	})
}

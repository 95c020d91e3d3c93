// Command qmod inspects and verifies the division-free modular comparison
// algorithms for a given divisor.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	flagBits    int
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:           "qmod",
		Short:         "Inspect and verify division-free modular comparison algorithms",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().IntVarP(&flagBits, "bits", "b", 64, "operand width (32 or 64)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	root.AddCommand(newInspectCmd(), newCheckCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qmod:", err)
		os.Exit(1)
	}
}

func parseDivisor(arg string) (uint64, error) {
	if flagBits != 32 && flagBits != 64 {
		return 0, fmt.Errorf("unsupported width %d (want 32 or 64)", flagBits)
	}
	d, err := strconv.ParseUint(arg, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid divisor %q: %w", arg, err)
	}
	if d == 0 {
		return 0, errors.New("divisor must be positive")
	}
	if flagBits == 32 && d > math.MaxUint32 {
		return 0, fmt.Errorf("divisor %d does not fit in 32 bits", d)
	}
	return d, nil
}

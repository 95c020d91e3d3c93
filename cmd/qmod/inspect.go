package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qmodgo/internal/bitmath"
	"qmodgo/pkg/qmod"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <divisor>",
		Short: "Print each family's precomputed divisor record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDivisor(args[0])
			if err != nil {
				return err
			}
			if flagBits == 32 {
				inspect(uint32(d))
			} else {
				inspect(d)
			}
			return nil
		},
	}
}

func inspect[U bitmath.Uint](d U) {
	fmt.Printf("divisor %d (%d-bit)\n", uint64(d), bitmath.NBits[U]())

	mc := qmod.NewMComp(d)
	mcd := mc.Divisor()
	fmt.Printf("\n%s\n", mc.Name())
	fmt.Printf("  multiplier    = %d\n", mcd.Multiplier)
	fmt.Printf("  bound         = %d\n", mcd.Bound)
	fmt.Printf("  max_dividend  = %d\n", mcd.MaxDividend)

	ms := qmod.NewMShift(d)
	msd := ms.Divisor()
	fmt.Printf("\n%s\n", ms.Name())
	fmt.Printf("  multiplier    = %d\n", msd.Multiplier)
	fmt.Printf("  shift         = %d\n", msd.Shift)
	fmt.Printf("  max_dividend  = %d\n", msd.MaxDividend)

	mi := qmod.NewMInverse(d)
	mid := mi.Divisor()
	fmt.Printf("\n%s\n", mi.Name())
	fmt.Printf("  multiplier        = %d\n", mid.Multiplier)
	fmt.Printf("  rotation          = %d\n", mid.Rotation)
	fmt.Printf("  special_remainder = %d\n", mid.SpecialRemainder)
	fmt.Printf("  quotient_sup      = %d\n", mid.QuotientSup)
	fmt.Printf("  remainder_sup     = %d\n", mid.RemainderSup)

	hy := qmod.NewHybrid(d)
	hyd := hy.Divisor()
	fmt.Printf("\n%s\n", hy.Name())
	fmt.Printf("  multiplier    = %d\n", hyd.Multiplier)
	fmt.Printf("  shift         = %d\n", hyd.Shift)
	fmt.Printf("  max_dividend  = %d\n", hyd.MaxDividend)

	fmt.Printf("\noperations\n")
	for _, a := range []qmod.Evaluator[U]{qmod.NewBuiltIn(d), mc, ms, mi, hy} {
		fmt.Printf("  %-20s", a.Name())
		for _, f := range qmod.Functions {
			if qmod.Implements(a, f) {
				fmt.Printf(" %s;", f.Expression())
			}
		}
		fmt.Println()
	}
}

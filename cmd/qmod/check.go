package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qmodgo/internal/bitmath"
	"qmodgo/internal/util"
	"qmodgo/pkg/qmod"
)

func newCheckCmd() *cobra.Command {
	var count uint64
	cmd := &cobra.Command{
		Use:   "check <divisor>",
		Short: "Cross-check every family against the built-in oracle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDivisor(args[0])
			if err != nil {
				return err
			}
			if flagBits == 32 {
				return check(uint32(d), count)
			}
			return check(d, count)
		},
	}
	cmd.Flags().Uint64Var(&count, "count", 1_000_000, "sampled queries per family and operation")
	return cmd
}

func check[U bitmath.Uint](d U, count uint64) error {
	oracle := qmod.NewBuiltIn(d)
	algos := []qmod.Evaluator[U]{
		qmod.NewMComp(d),
		qmod.NewMShift(d),
		qmod.NewMInverse(d),
		qmod.NewHybrid(d),
		qmod.NewMCompPromoted(d),
		qmod.NewMShiftPromoted(d),
	}

	mismatches := 0
	for _, a := range algos {
		if qmod.Max1st(a) == 0 {
			util.Log(flagVerbose, "%s: no valid dividends at this width, skipping", a.Name())
			continue
		}
		pl := util.NewProgressLogger(count*uint64(len(qmod.Functions)), a.Name()+" ", flagVerbose)
		for _, f := range qmod.Functions {
			got, ok := qmod.MethodOf(a, f)
			if !ok {
				continue
			}
			want, _ := qmod.MethodOf[U](oracle, f)
			src := util.NewSampleSource(a.Name()+"/"+f.String(), uint64(d))
			max1 := uint64(qmod.Max1st(a))
			max2 := uint64(qmod.Max2nd(a, f))
			for i := uint64(0); i < count; i++ {
				n := U(src.NextMax(max1))
				m := U(src.NextMax(max2))
				if g, w := got(n, m), want(n, m); g != w {
					mismatches++
					fmt.Printf("\n%s %q: n=%d m=%d got=%v want=%v\n",
						a.Name(), f.Expression(), uint64(n), uint64(m), g, w)
				}
				pl.Log()
			}
		}
		pl.Finalize()
	}

	if mismatches > 0 {
		return fmt.Errorf("%d mismatches against the oracle for divisor %d", mismatches, uint64(d))
	}
	util.Log(flagVerbose, "all families agree with the oracle for divisor %d", uint64(d))
	return nil
}

package main

import (
	"fmt"
	"strconv"

	"deedles.dev/gameutil/pow2"
	"github.com/spf13/cobra"
)

var pow2Cmd = &cobra.Command{
	Use:   "pow2 v...",
	Short: "Round values up to the next power of two",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPow2,
}

func runPow2(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("value %q: %w", arg, err)
		}

		p := pow2.From(v)
		if p.IsZero() {
			logger.Warn("value rounds to zero", "value", v)
			fmt.Fprintf(out, "  %d -> 0\n", v)
			continue
		}
		fmt.Fprintf(out, "  %d -> %v (2^%d)\n", v, p, p.Exponent())
	}
	return nil
}

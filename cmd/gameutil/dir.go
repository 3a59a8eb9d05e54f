package main

import (
	"fmt"
	"strconv"

	"deedles.dev/gameutil/direction"
	"deedles.dev/gameutil/geom"
	"deedles.dev/gameutil/xstrings"
	"github.com/spf13/cobra"
)

var flagCX, flagCY float64

var dirCmd = &cobra.Command{
	Use:   "dir x y",
	Short: "Classify a position into grid directions around a center",
	Long: `Prints the eight-way, diagonal, and straight directions from the
center to (x, y). The y axis points down, as on screen. Use -- before
negative coordinates.`,
	Args: cobra.ExactArgs(2),
	RunE: runDir,
}

func init() {
	dirCmd.Flags().Float64Var(&flagCX, "cx", 0, "Center x")
	dirCmd.Flags().Float64Var(&flagCY, "cy", 0, "Center y")
}

func runDir(cmd *cobra.Command, args []string) error {
	var pos [2]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("coordinate %q: %w", arg, err)
		}
		pos[i] = v
	}
	p, center := geom.Pt(pos[0], pos[1]), geom.Pt(flagCX, flagCY)

	out := cmd.OutOrStdout()
	dir := direction.FromPosition(p, center)
	unit := direction.RoundedFromPosition(3, p, center)
	fmt.Fprintf(out, "  direction  %-12s %+d,%+d  edges=%v\n", xstrings.EnumName(dir), dir.X, dir.Y, dir.Edges())
	fmt.Fprintf(out, "  unit       %v,%v\n", unit.X, unit.Y)
	fmt.Fprintf(out, "  diagonal   %s\n", xstrings.EnumName(direction.Diagonal(p, center)))
	fmt.Fprintf(out, "  straight   %s\n", xstrings.EnumName(direction.Straight(p, center)))
	return nil
}

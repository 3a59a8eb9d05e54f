package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"deedles.dev/gameutil/xcolor"
	"deedles.dev/gameutil/xstrings"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	flagPseudo bool
	flagRandom int
)

var colorCmd = &cobra.Command{
	Use:   "color [hex|name]...",
	Short: "Show colors with their luminance and readable text color",
	Long: `Shows each color as a swatch with its luminance, the text color
picked by the configured mode, and its packed ARGB8888 value.

Arguments are hex colors ("#1A2B3C" or "1a2b3c") or names such as
"gold". With --pseudo, arguments are arbitrary strings hashed into
colors instead.`,
	RunE: runColor,
}

func init() {
	colorCmd.Flags().BoolVar(&flagPseudo, "pseudo", false, "Hash arguments into colors")
	colorCmd.Flags().IntVar(&flagRandom, "random", 0, "Also show this many random colors")
}

func runColor(cmd *cobra.Command, args []string) error {
	light, dark, pick, err := cfg.TextColors()
	if err != nil {
		return err
	}

	var colors []xcolor.Color
	var labels []string
	for _, arg := range args {
		c, err := parseColor(arg)
		if err != nil {
			return err
		}
		colors = append(colors, c)
		labels = append(labels, arg)
	}
	for range flagRandom {
		colors = append(colors, xcolor.Random(1))
		labels = append(labels, "random")
	}
	if len(colors) == 0 {
		return errors.New("no colors given")
	}

	for i, c := range colors {
		text := pick(c, light, dark)
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(lipgloss.Color(text.Hex())).
			Padding(0, 1).
			Render(c.Hex())

		var packed [4]byte
		c.Encode(xcolor.ARGB8888, packed[:])

		fmt.Fprintf(cmd.OutOrStdout(), "  %s  %-12s lum=%s rel=%s text=%s argb=0x%08X\n",
			swatch,
			labels[i],
			xstrings.LowPrecisePercentage(float64(xcolor.Luminance(c))*100),
			xstrings.LowPrecisePercentage(float64(xcolor.RelativeLuminance(c))*100),
			text.Hex(),
			binary.LittleEndian.Uint32(packed[:]),
		)
	}
	return nil
}

func parseColor(arg string) (xcolor.Color, error) {
	if flagPseudo {
		return xcolor.PseudoRandom(arg, 1), nil
	}
	if c, ok := xcolor.Named[strings.ToLower(arg)]; ok {
		return c, nil
	}
	return xcolor.ParseHex(arg)
}

package main

import (
	"errors"
	"fmt"

	"deedles.dev/gameutil/xstrings"
	"github.com/spf13/cobra"
)

var (
	flagLength int
	flagCount  int
)

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Generate random IDs",
	Long:  `Generates random IDs from the character classes enabled in the config.`,
	Args:  cobra.NoArgs,
	RunE:  runID,
}

func init() {
	idCmd.Flags().IntVar(&flagLength, "length", 0, "ID length (default from config)")
	idCmd.Flags().IntVar(&flagCount, "count", 1, "Number of IDs to generate")
}

func runID(cmd *cobra.Command, args []string) error {
	length := cfg.ID.Length
	if flagLength > 0 {
		length = flagLength
	}

	classes := cfg.IDClasses()
	if classes == 0 {
		return errors.New("no character classes enabled in config")
	}

	for range flagCount {
		fmt.Fprintln(cmd.OutOrStdout(), xstrings.GenerateID(length, classes))
	}
	return nil
}

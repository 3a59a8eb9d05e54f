package main

import (
	"fmt"
	"strconv"

	"deedles.dev/gameutil/geom"
	"deedles.dev/gameutil/heuristic"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var (
	flagHeuristic string
	flagAll       bool
	flagCSV       bool
)

var distCmd = &cobra.Command{
	Use:   "dist x0 y0 x1 y1",
	Short: "Measure the distance between two grid cells",
	Long: `Measures the distance between (x0, y0) and (x1, y1) using the
configured heuristic, the one named by --heuristic, or every heuristic
with --all. Use -- before negative coordinates.`,
	Args: cobra.ExactArgs(4),
	RunE: runDist,
}

func init() {
	distCmd.Flags().StringVar(&flagHeuristic, "heuristic", "", "Heuristic to use (default from config)")
	distCmd.Flags().BoolVar(&flagAll, "all", false, "Measure with every heuristic")
	distCmd.Flags().BoolVar(&flagCSV, "csv", false, "Write results as CSV")
}

type distRecord struct {
	Heuristic string  `csv:"heuristic"`
	From      string  `csv:"from"`
	To        string  `csv:"to"`
	Distance  float64 `csv:"distance"`
}

func runDist(cmd *cobra.Command, args []string) error {
	var coords [4]int
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("coordinate %q: %w", arg, err)
		}
		coords[i] = v
	}
	from, to := geom.Pt(coords[0], coords[1]), geom.Pt(coords[2], coords[3])

	m, err := cfg.Metric()
	if err != nil {
		return err
	}
	if flagHeuristic != "" {
		m.Heuristic, err = heuristic.Parse(flagHeuristic)
		if err != nil {
			return err
		}
	}

	metrics := []heuristic.Metric{m}
	if flagAll {
		metrics = metrics[:0]
		for h := range heuristic.All() {
			all := m
			all.Heuristic = h
			metrics = append(metrics, all)
		}
	}

	records := make([]distRecord, 0, len(metrics))
	for _, m := range metrics {
		records = append(records, distRecord{
			Heuristic: m.Heuristic.String(),
			From:      fmt.Sprintf("%d,%d", from.X, from.Y),
			To:        fmt.Sprintf("%d,%d", to.X, to.Y),
			Distance:  m.Between(from, to),
		})
	}
	logger.Debug("measured", "from", from, "to", to, "count", len(records))

	if flagCSV {
		return gocsv.Marshal(records, cmd.OutOrStdout())
	}

	for _, r := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-17s %g\n", r.Heuristic, r.Distance)
	}
	return nil
}

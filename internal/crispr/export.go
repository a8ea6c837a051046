package crispr

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader is the column order of exported results
var csvHeader = []string{
	"sequence_name",
	"sequence",
	"pam",
	"position",
	"gc_content",
	"gc_score",
	"self_complementarity",
	"homopolymer",
	"position_score",
	"efficiency_score",
	"off_target_score",
}

// ExportCSV writes scored guides to w as CSV, one row per guide,
// matching the dashboard's downloadable results format
func ExportCSV(w io.Writer, guides []Guide) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, g := range guides {
		row := []string{
			g.Name,
			g.Seq,
			g.PAM,
			strconv.Itoa(g.Start),
			formatScore(g.GC),
			formatScore(g.Scores.GC),
			formatScore(g.Scores.SelfComplementarity),
			formatScore(g.Scores.Homopolymer),
			formatScore(g.Scores.Position),
			formatScore(g.Scores.Final),
			strconv.FormatFloat(g.OffTarget, 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatScore renders a fractional score with enough precision to
// round-trip display values
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

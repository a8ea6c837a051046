package cmd

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"github.com/Jhansik957/CRISPR-Design-Dashboard/config"
	"github.com/Jhansik957/CRISPR-Design-Dashboard/internal/crispr"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gopkg.in/cheggaaa/pb.v1"
)

// batchCmd designs guides for every sequence in a CSV/TXT file
var batchCmd = &cobra.Command{
	Use:                        "batch",
	Short:                      "Design guide RNAs for a file of sequences",
	Run:                        runBatch,
	SuggestionsMinimumDistance: 2,
	Example:                    "  crispr batch --in sequences.csv --out results.csv",
	Long: `Design guide RNAs for each sequence in a CSV or TXT file.

The file holds one sequence per line. With --headers the first line is
skipped and each row is "name,sequence"; without it each row is a bare
sequence. Rows that fail validation are skipped and counted, never
fatal. At most the configured number of rows (100 by default) are
accepted per file.`,
}

// set flags
func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("in", "i", "", "path to a CSV/TXT file of sequences")
	batchCmd.Flags().StringP("out", "o", "", "write combined results to a CSV file")
	batchCmd.Flags().StringP("pam", "p", "SpCas9", "nuclease profile: SpCas9, SaCas9 or Cas12a")
	batchCmd.Flags().BoolP("headers", "H", false, "first line holds headers; rows are name,sequence")
	batchCmd.Flags().BoolP("cpu-profile", "", false, "write a CPU profile to the working directory")

	batchCmd.MarkFlagRequired("in")
}

// runBatch is the batch command's handler
func runBatch(cmd *cobra.Command, args []string) {
	if prof, _ := cmd.Flags().GetBool("cpu-profile"); prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	c := config.NewConfig()

	pam, _ := cmd.Flags().GetString("pam")
	nucleaseProfile, err := crispr.ProfileByName(pam)
	if err != nil {
		log.Fatalf("%v", err)
	}

	in, _ := cmd.Flags().GetString("in")
	headers, _ := cmd.Flags().GetBool("headers")
	rows, err := readBatchRows(in, headers)
	if err != nil {
		log.Fatalf("failed to read %s: %v", in, err)
	}
	if len(rows) > c.Limits.MaxBatchRows {
		log.Fatalf("%s holds %d sequences, the limit is %d per batch", in, len(rows), c.Limits.MaxBatchRows)
	}

	gcMin, gcMax := c.GCBounds()
	opts := crispr.Options{
		GCMin:               gcMin,
		GCMax:               gcMax,
		EfficiencyThreshold: c.Design.EfficiencyThreshold,
		MaxOffTarget:        c.Design.MaxOffTarget,
	}

	var all []crispr.Guide
	skipped := 0
	bar := pb.StartNew(len(rows))
	for _, row := range rows {
		bar.Increment()

		result, err := designer.Design(row.seq, nucleaseProfile, opts)
		if err != nil {
			// a malformed row never fails the batch
			skipped++
			continue
		}
		for _, g := range result.Guides {
			g.Name = row.name
			all = append(all, g)
		}
	}
	bar.Finish()

	fmt.Printf("processed %d sequences (%d skipped), found %d guides\n", len(rows), skipped, len(all))

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		printGuides(all)
		return
	}
	if err := writeCSV(out, all); err != nil {
		log.Fatalf("failed to write %s: %v", out, err)
	}
}

// batchRow is one named input sequence
type batchRow struct {
	name string
	seq  string
}

// readBatchRows parses a batch file. With headers, rows are
// "name,sequence" and the first line is dropped; otherwise each row's
// first field is the sequence and names are generated
func readBatchRows(path string, headers bool) ([]batchRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if headers && len(records) > 0 {
		records = records[1:]
	}

	rows := make([]batchRow, 0, len(records))
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		row := batchRow{name: fmt.Sprintf("Sequence_%d", i+1), seq: record[0]}
		if headers && len(record) > 1 {
			row.name = record[0]
			row.seq = record[1]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

package cmd

import (
	"fmt"
	"log"

	"github.com/Jhansik957/CRISPR-Design-Dashboard/config"
	"github.com/Jhansik957/CRISPR-Design-Dashboard/internal/crispr"
	"github.com/spf13/cobra"
)

// analyzeCmd reports composition, scoring and structure details for
// one sequence without running the full design pipeline
var analyzeCmd = &cobra.Command{
	Use:                        "analyze",
	Short:                      "Analyze a DNA sequence's composition and CRISPR scores",
	Run:                        runAnalyze,
	SuggestionsMinimumDistance: 2,
	Example:                    "  crispr analyze --seq GATTGGCCAATCAGTCAGTC",
	Long: `Report statistics for a single DNA sequence: length, GC content,
base composition, the four CRISPR efficiency score components with
their weighted total, and a simplified structure-stability estimate.`,
	Aliases: []string{"stats"},
}

// set flags
func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("seq", "s", "", "DNA sequence (A, T, G, C only)")
	analyzeCmd.Flags().StringP("in", "i", "", "path to a file holding the sequence")
	analyzeCmd.Flags().BoolP("revcomp", "r", false, "also print the reverse complement")
}

// runAnalyze is the analyze command's handler
func runAnalyze(cmd *cobra.Command, args []string) {
	c := config.NewConfig()

	seq, err := inputSequence(cmd, c)
	if err != nil {
		log.Fatalf("%v", err)
	}

	counts := crispr.BaseCounts(seq)
	fmt.Printf("length: %d\n", len(seq))
	fmt.Printf("gc content: %.1f%%\n", crispr.GCFraction(seq)*100)
	for _, base := range []byte{'A', 'T', 'G', 'C'} {
		n := counts[base]
		fmt.Printf("%c: %d (%.1f%%)\n", base, n, float64(n)/float64(len(seq))*100)
	}

	scores := designer.Score(seq)
	fmt.Println("\nscore components:")
	fmt.Printf("gc score:             %.2f\n", scores.GC)
	fmt.Printf("self complementarity: %.2f\n", scores.SelfComplementarity)
	fmt.Printf("homopolymer:          %.2f\n", scores.Homopolymer)
	fmt.Printf("position:             %.2f\n", scores.Position)
	fmt.Printf("overall:              %.2f\n", scores.Final)

	detail := crispr.AnalyzeStructure(seq)
	fmt.Printf("\nstructure: %d GC pairings, %d AT pairings, %s stability (estimate %.2f)\n",
		detail.GCPairs, detail.ATPairs, detail.Stability, crispr.StabilityEstimate(seq))

	if rc, _ := cmd.Flags().GetBool("revcomp"); rc {
		fmt.Printf("\nreverse complement:\n%s\n", crispr.ReverseComplement(seq))
	}
}

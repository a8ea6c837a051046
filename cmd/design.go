package cmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"text/tabwriter"

	"github.com/Jhansik957/CRISPR-Design-Dashboard/config"
	"github.com/Jhansik957/CRISPR-Design-Dashboard/internal/crispr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// designCmd finds and ranks guide RNA candidates in a single sequence
var designCmd = &cobra.Command{
	Use:                        "design",
	Short:                      "Design guide RNAs for a target sequence",
	Run:                        runDesign,
	SuggestionsMinimumDistance: 2,
	Example:                    "  crispr design --seq ATCGATCGATCGATCGATCGAGG --pam SpCas9",
	Long: `Design guide RNAs against a single DNA sequence.

Every PAM site of the chosen nuclease is located, a fixed-length guide
is extracted next to it, and each candidate is scored for predicted
cutting efficiency and for off-target similarity within the input
sequence. Candidates below the efficiency threshold or above the
off-target limit are hidden unless --show-all is set.`,
}

// set flags
func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().StringP("seq", "s", "", "target DNA sequence (A, T, G, C only)")
	designCmd.Flags().StringP("in", "i", "", "path to a file holding the target sequence")
	designCmd.Flags().StringP("pam", "p", "SpCas9", "nuclease profile: SpCas9, SaCas9 or Cas12a")
	designCmd.Flags().IntP("gc-min", "", 0, "minimum GC content of a guide (percent)")
	designCmd.Flags().IntP("gc-max", "", 0, "maximum GC content of a guide (percent)")
	designCmd.Flags().Float64P("efficiency", "e", 0, "minimum efficiency score of a reported guide")
	designCmd.Flags().Float64P("max-off-target", "m", 0, "maximum off-target score of a reported guide")
	designCmd.Flags().BoolP("show-all", "a", false, "report every candidate, ignoring thresholds")
	designCmd.Flags().StringP("out", "o", "", "write results to a CSV file")

	viper.BindPFlag("design.gc-min", designCmd.Flags().Lookup("gc-min"))
	viper.BindPFlag("design.gc-max", designCmd.Flags().Lookup("gc-max"))
	viper.BindPFlag("design.efficiency-threshold", designCmd.Flags().Lookup("efficiency"))
	viper.BindPFlag("design.max-off-target", designCmd.Flags().Lookup("max-off-target"))
}

// runDesign is the design command's handler
func runDesign(cmd *cobra.Command, args []string) {
	c := config.NewConfig()

	seq, err := inputSequence(cmd, c)
	if err != nil {
		log.Fatalf("%v", err)
	}

	pam, _ := cmd.Flags().GetString("pam")
	profile, err := crispr.ProfileByName(pam)
	if err != nil {
		log.Fatalf("%v", err)
	}

	showAll, _ := cmd.Flags().GetBool("show-all")
	gcMin, gcMax := c.GCBounds()
	result, err := designer.Design(seq, profile, crispr.Options{
		GCMin:               gcMin,
		GCMax:               gcMax,
		EfficiencyThreshold: c.Design.EfficiencyThreshold,
		MaxOffTarget:        c.Design.MaxOffTarget,
		ShowAll:             showAll,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	if len(result.PamSites) == 0 {
		noSitesMessage(profile)
		return
	}
	if len(result.All) == 0 {
		fmt.Println("no guides passed the GC content filter")
		return
	}
	if result.FellBack {
		fmt.Printf("no guides met the thresholds, showing all %d candidates\n", len(result.Guides))
	}

	printGuides(result.Guides)

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := writeCSV(out, result.Guides); err != nil {
			log.Fatalf("failed to write %s: %v", out, err)
		}
	}
}

// inputSequence reads the target sequence from --seq or --in and
// rejects anything malformed or over the configured length cap
func inputSequence(cmd *cobra.Command, c config.Config) (string, error) {
	seq, _ := cmd.Flags().GetString("seq")
	in, _ := cmd.Flags().GetString("in")

	if seq == "" && in == "" {
		return "", fmt.Errorf("pass a sequence with --seq or a sequence file with --in")
	}
	if seq == "" {
		contents, err := ioutil.ReadFile(in)
		if err != nil {
			return "", err
		}
		seq = string(contents)
	}

	seq = crispr.CleanSequence(seq)
	if err := crispr.ValidateSequence(seq); err != nil {
		return "", err
	}
	if len(seq) > c.Limits.MaxSequenceLength {
		return "", fmt.Errorf("sequence is %d bp, the limit is %d bp", len(seq), c.Limits.MaxSequenceLength)
	}
	return seq, nil
}

// noSitesMessage explains an empty PAM scan. Cas12a's narrow TTTV
// motif is commonly absent, so it gets specific advice
func noSitesMessage(profile crispr.Profile) {
	if profile.Name == crispr.Cas12a.Name {
		fmt.Println(`no Cas12a PAM sites (TTTV) found. This is common because:
 - the motif needs exactly TTT followed by A, C, or G
 - it is more restrictive than SpCas9 or SaCas9
 - try the reverse complement of your sequence, or SpCas9`)
		return
	}
	fmt.Printf("no PAM sites found for %s (%s)\n", profile.Name, profile.PAM)
}

// printGuides writes a guide table to stdout
func printGuides(guides []crispr.Guide) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "sequence\tpam\tposition\tgc\tefficiency\toff-target")
	for _, g := range guides {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f%%\t%.1f%%\t%.1f\n",
			g.Seq, g.PAM, g.Start, g.GC*100, g.Scores.Final*100, g.OffTarget)
	}
	w.Flush()
}

// writeCSV exports guides to a CSV file
func writeCSV(path string, guides []crispr.Guide) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return crispr.ExportCSV(f, guides)
}

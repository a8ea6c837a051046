package cmd

import (
	"fmt"
	"log"

	"github.com/Jhansik957/CRISPR-Design-Dashboard/config"
	"github.com/Jhansik957/CRISPR-Design-Dashboard/internal/crispr"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// plotCmd renders design results to image files
var plotCmd = &cobra.Command{
	Use:                        "plot",
	Short:                      "Render a guide RNA map for a target sequence",
	Run:                        runPlot,
	SuggestionsMinimumDistance: 2,
	Example:                    "  crispr plot --in target.txt --out guides.png",
	Long: `Render charts for the guide candidates of a sequence.

The guide map plots every candidate's efficiency score against its
position in the sequence. With --scores-out, a second chart shows the
average of each efficiency score component across candidates. Output
format follows the file extension (.png, .svg, .pdf).`,
}

// set flags
func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringP("seq", "s", "", "target DNA sequence (A, T, G, C only)")
	plotCmd.Flags().StringP("in", "i", "", "path to a file holding the target sequence")
	plotCmd.Flags().StringP("pam", "p", "SpCas9", "nuclease profile: SpCas9, SaCas9 or Cas12a")
	plotCmd.Flags().StringP("out", "o", "guides.png", "guide map output file")
	plotCmd.Flags().StringP("scores-out", "", "", "score component chart output file")
}

// runPlot is the plot command's handler
func runPlot(cmd *cobra.Command, args []string) {
	c := config.NewConfig()

	seq, err := inputSequence(cmd, c)
	if err != nil {
		log.Fatalf("%v", err)
	}

	pam, _ := cmd.Flags().GetString("pam")
	nucleaseProfile, err := crispr.ProfileByName(pam)
	if err != nil {
		log.Fatalf("%v", err)
	}

	gcMin, gcMax := c.GCBounds()
	result, err := designer.Design(seq, nucleaseProfile, crispr.Options{
		GCMin:   gcMin,
		GCMax:   gcMax,
		ShowAll: true,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(result.Guides) == 0 {
		log.Fatalf("no guide candidates to plot")
	}

	out, _ := cmd.Flags().GetString("out")
	if err := plotGuideMap(result, out); err != nil {
		log.Fatalf("failed to render %s: %v", out, err)
	}
	fmt.Printf("wrote guide map for %d candidates to %s\n", len(result.Guides), out)

	if scoresOut, _ := cmd.Flags().GetString("scores-out"); scoresOut != "" {
		if err := plotScoreComponents(result.Guides, scoresOut); err != nil {
			log.Fatalf("failed to render %s: %v", scoresOut, err)
		}
		fmt.Printf("wrote score component chart to %s\n", scoresOut)
	}
}

// plotGuideMap draws efficiency and off-target scores against guide
// position, mirroring the dashboard's guide RNA map
func plotGuideMap(result *crispr.Result, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Guide RNA map (%s)", result.Profile.Name)
	p.X.Label.Text = "position"
	p.Y.Label.Text = "efficiency score"
	p.Y.Min, p.Y.Max = 0, 1

	efficiency := make(plotter.XYs, len(result.Guides))
	offTarget := make(plotter.XYs, len(result.Guides))
	for i, g := range result.Guides {
		efficiency[i].X = float64(g.Start)
		efficiency[i].Y = g.Scores.Final
		offTarget[i].X = float64(g.Start)
		offTarget[i].Y = g.OffTarget / 100
	}

	effScatter, err := plotter.NewScatter(efficiency)
	if err != nil {
		return err
	}
	offScatter, err := plotter.NewScatter(offTarget)
	if err != nil {
		return err
	}
	offScatter.GlyphStyle.Shape = draw.PlusGlyph{}

	p.Add(effScatter, offScatter, plotter.NewGrid())
	p.Legend.Add("efficiency", effScatter)
	p.Legend.Add("off-target / 100", offScatter)
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// plotScoreComponents draws the mean of each score component over all
// candidates as a bar chart
func plotScoreComponents(guides []crispr.Guide, path string) error {
	means := make(plotter.Values, 5)
	for _, g := range guides {
		means[0] += g.Scores.GC
		means[1] += g.Scores.SelfComplementarity
		means[2] += g.Scores.Homopolymer
		means[3] += g.Scores.Position
		means[4] += g.Scores.Final
	}
	for i := range means {
		means[i] /= float64(len(guides))
	}

	p := plot.New()
	p.Title.Text = "Mean efficiency score components"
	p.Y.Label.Text = "score"
	p.Y.Min, p.Y.Max = 0, 1

	bars, err := plotter.NewBarChart(means, vg.Points(30))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX("gc", "self-comp", "homopolymer", "position", "final")

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

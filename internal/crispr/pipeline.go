package crispr

// Options are the caller-supplied knobs for one design run.
// GC bounds are fractions, not percentages
type Options struct {
	// GCMin and GCMax bound the GC fraction of kept candidates
	GCMin float64
	GCMax float64

	// EfficiencyThreshold drops candidates scoring below it
	EfficiencyThreshold float64

	// MaxOffTarget drops candidates with higher off-target risk
	MaxOffTarget float64

	// ShowAll skips the efficiency and off-target filters
	ShowAll bool
}

// Result is the outcome of one design run
type Result struct {
	// Sequence is the cleaned input sequence
	Sequence string

	// Profile used for the run
	Profile Profile

	// PamSites are all motif match positions, in ascending order
	PamSites []int

	// Guides are the candidates surviving the filters
	Guides []Guide

	// All are the scored candidates before threshold filtering
	All []Guide

	// FellBack is true when no candidate met the thresholds and
	// Guides holds the unfiltered list instead
	FellBack bool
}

// Designer runs the full candidate pipeline: PAM detection, guide
// extraction, efficiency scoring, and off-target estimation. Each
// stage is a pure function of its inputs; a Designer is safe for
// concurrent use
type Designer struct {
	scorer *Scorer
}

// NewDesigner returns a Designer with the default scorer
func NewDesigner() *Designer {
	return &Designer{scorer: NewScorer()}
}

// Design runs the pipeline over a single raw sequence. The sequence
// is cleaned and validated here; everything downstream assumes clean
// input. An empty candidate list is a valid, non-error outcome
func (d *Designer) Design(rawSeq string, profile Profile, opts Options) (*Result, error) {
	seq := CleanSequence(rawSeq)
	if err := ValidateSequence(seq); err != nil {
		return nil, err
	}

	sites := FindPamSites(seq, profile)
	guides := DesignGuides(seq, sites, opts.GCMin, opts.GCMax, profile)

	for i := range guides {
		guides[i].Scores = d.scorer.ScoreAll(guides[i].Seq)
	}
	guides = CheckOffTargets(guides, seq)

	result := &Result{
		Sequence: seq,
		Profile:  profile,
		PamSites: sites,
		All:      guides,
		Guides:   guides,
	}

	if !opts.ShowAll {
		kept := []Guide{}
		for _, g := range guides {
			if g.Scores.Final >= opts.EfficiencyThreshold && g.OffTarget <= opts.MaxOffTarget {
				kept = append(kept, g)
			}
		}
		// when nothing meets the thresholds, surface all candidates
		// rather than an empty table
		if len(kept) == 0 && len(guides) > 0 {
			result.FellBack = true
		} else {
			result.Guides = kept
		}
	}

	return result, nil
}

// Score exposes the designer's scorer for standalone sequence
// analysis outside the pipeline
func (d *Designer) Score(guide string) ScoreSet {
	return d.scorer.ScoreAll(guide)
}

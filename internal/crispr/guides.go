package crispr

// Guide is one candidate guide RNA derived from a PAM site.
// Scores and OffTarget are attached by later pipeline stages and are
// not mutated afterward
type Guide struct {
	// Name of the input sequence this guide came from (batch mode)
	Name string

	// Seq is the extracted guide sequence
	Seq string

	// PAM is the matched PAM subsequence
	PAM string

	// Start of the guide in the input sequence (0-indexed)
	Start int

	// GC fraction of the guide sequence
	GC float64

	// Scores holds the efficiency score components
	Scores ScoreSet

	// OffTarget is the intra-sequence off-target risk, 0-100
	OffTarget float64
}

// DesignGuides extracts a guide candidate for each PAM site and keeps
// those whose GC fraction lies within [gcMin, gcMax] (inclusive).
// Sites whose guide span would fall outside the sequence are dropped.
// Output order follows the site order. When gcMin > gcMax the result
// is empty by construction
func DesignGuides(seq string, pamSites []int, gcMin, gcMax float64, profile Profile) []Guide {
	guides := []Guide{}
	for _, site := range pamSites {
		var start, end int
		if profile.Downstream {
			start = site + len(profile.PAM)
			end = start + profile.GuideLength
		} else {
			start = site - profile.GuideLength
			end = site
		}
		if start < 0 || end > len(seq) {
			continue
		}

		guide := seq[start:end]
		gc := GCFraction(guide)
		if gc < gcMin || gc > gcMax {
			continue
		}

		guides = append(guides, Guide{
			Seq:   guide,
			PAM:   seq[site : site+len(profile.PAM)],
			Start: start,
			GC:    gc,
		})
	}
	return guides
}

package crispr

import "math"

// StructureDetail summarizes a sequence's base-pairing potential
type StructureDetail struct {
	// GCPairs is the number of possible G-C pairings, limited by the
	// rarer of the two bases
	GCPairs int

	// ATPairs is the number of possible A-T pairings
	ATPairs int

	// Stability is a coarse High/Medium/Low label
	Stability string
}

// StabilityEstimate is a simplified structure-stability heuristic
// based on pairing potential: G-C pairs bond more strongly than A-T
// pairs, so sequences rich in both G and C fold more stably. More
// negative means more stable. This is not a thermodynamic model
func StabilityEstimate(seq string) float64 {
	counts := BaseCounts(seq)

	gcPairs := counts['G']
	if counts['C'] < gcPairs {
		gcPairs = counts['C']
	}
	atPairs := counts['A']
	if counts['T'] < atPairs {
		atPairs = counts['T']
	}

	stability := -float64(gcPairs*3 + atPairs*2)
	return math.Round(stability*100) / 100
}

// AnalyzeStructure reports the GC/AT pairing counts of a sequence
// along with a coarse stability label
func AnalyzeStructure(seq string) StructureDetail {
	counts := BaseCounts(seq)
	gc := counts['G'] + counts['C']
	at := counts['A'] + counts['T']

	stability := "Low"
	if gc > len(seq)/2 {
		stability = "High"
	} else if gc > len(seq)/3 {
		stability = "Medium"
	}

	return StructureDetail{
		GCPairs:   gc,
		ATPairs:   at,
		Stability: stability,
	}
}

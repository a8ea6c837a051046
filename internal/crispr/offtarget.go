package crispr

import "math"

// Off-target windows with more than this many mismatches contribute
// nothing to the risk score
const maxOffTargetMismatches = 4

// CheckOffTargets attaches an off-target risk score to each guide by
// sliding the guide across the full input sequence and accumulating a
// mismatch-weighted contribution at each alignment: 1/2^mismatches for
// windows within the mismatch tolerance. The sum is scaled by 20,
// capped at 100, and rounded to one decimal.
//
// The guide's own origin window matches exactly, so every guide
// carries a baseline of 20 points from its self-alignment.
//
// The window at the final offset, len(fullSeq)-len(guide), is not
// evaluated. This boundary is intentional: it preserves score parity
// with the behavior the scoring thresholds were tuned against, and is
// pinned by tests.
//
// This is a similarity heuristic over the input sequence only, not a
// genome-wide off-target search.
func CheckOffTargets(guides []Guide, fullSeq string) []Guide {
	for i := range guides {
		guide := guides[i].Seq

		sum := 0.0
		for offset := 0; offset < len(fullSeq)-len(guide); offset++ {
			mm := mismatches(guide, fullSeq[offset:offset+len(guide)])
			if mm <= maxOffTargetMismatches {
				sum += 1.0 / float64(int(1)<<mm)
			}
		}

		score := sum * 20
		if score > 100 {
			score = 100
		}
		guides[i].OffTarget = math.Round(score*10) / 10
	}
	return guides
}

// mismatches counts positions where two equal-length strings differ,
// giving up once the count exceeds the off-target tolerance
func mismatches(a, b string) int {
	mm := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			mm++
			if mm > maxOffTargetMismatches {
				return mm
			}
		}
	}
	return mm
}

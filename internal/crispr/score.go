package crispr

import "strings"

// ScoreSet is the set of efficiency score components for one guide,
// each in [0.0, 1.0], with their weighted combination in Final
type ScoreSet struct {
	// GC rewards guides in the 45-65% GC sweet spot
	GC float64

	// SelfComplementarity penalizes hairpin-prone guides
	SelfComplementarity float64

	// Homopolymer penalizes long single-base runs, T runs hardest
	Homopolymer float64

	// Position rewards preferred bases at the ends of the guide
	Position float64

	// Final is the weighted sum of the four components
	Final float64
}

// Component weights for the final score
const (
	gcWeight          = 0.25
	selfCompWeight    = 0.25
	homopolymerWeight = 0.20
	positionWeight    = 0.30
)

// defaultPreferences maps 1-based guide positions to per-base weights.
// Only the four 5' and five 3' positions carry empirical preferences;
// interior positions are unscored
func defaultPreferences() map[int]map[byte]float64 {
	return map[int]map[byte]float64{
		1:  {'G': 0.9, 'A': 0.6, 'C': 0.4, 'T': 0.2},
		2:  {'G': 0.3, 'A': 0.8, 'C': 0.4, 'T': 0.3},
		3:  {'G': 0.6, 'A': 0.6, 'C': 0.4, 'T': 0.3},
		4:  {'G': 0.5, 'A': 0.5, 'C': 0.5, 'T': 0.4},
		16: {'G': 0.7, 'A': 0.5, 'C': 0.3, 'T': 0.3},
		17: {'G': 0.8, 'A': 0.4, 'C': 0.3, 'T': 0.2},
		18: {'G': 0.7, 'A': 0.4, 'C': 0.4, 'T': 0.3},
		19: {'G': 0.6, 'A': 0.5, 'C': 0.4, 'T': 0.3},
		20: {'G': 0.8, 'A': 0.4, 'C': 0.3, 'T': 0.2},
	}
}

// Scorer computes efficiency scores for guide sequences. The position
// preference table is fixed at construction
type Scorer struct {
	preferences map[int]map[byte]float64
}

// NewScorer returns a Scorer with the default position preferences
func NewScorer() *Scorer {
	return &Scorer{preferences: defaultPreferences()}
}

// ScoreAll computes the four component scores for a guide sequence
// and their weighted final score. It is a pure function of the guide
// sequence alone
func (s *Scorer) ScoreAll(guide string) ScoreSet {
	set := ScoreSet{
		GC:                  s.gcScore(guide),
		SelfComplementarity: s.selfComplementarityScore(guide),
		Homopolymer:         s.homopolymerScore(guide),
		Position:            s.positionScore(guide),
	}
	set.Final = gcWeight*set.GC +
		selfCompWeight*set.SelfComplementarity +
		homopolymerWeight*set.Homopolymer +
		positionWeight*set.Position
	return set
}

// gcScore peaks at 1.0 for 45-65% GC and ramps linearly to 0 at
// either extreme
func (s *Scorer) gcScore(guide string) float64 {
	gc := GCFraction(guide)
	switch {
	case gc >= 0.45 && gc <= 0.65:
		return 1.0
	case gc < 0.45:
		return gc / 0.45
	default:
		score := (1 - gc) / 0.35
		if score < 0 {
			return 0
		}
		return score
	}
}

// selfComplementarityScore finds the longest substring of the guide,
// of length 5 or more, that recurs in the guide's reverse complement.
// Such regions can fold the guide into a hairpin. The scan is O(n^2)
// over substring start/end pairs, acceptable for 20-mers
func (s *Scorer) selfComplementarityScore(guide string) float64 {
	rc := ReverseComplement(guide)

	maxComplementary := 0
	for i := 0; i < len(guide)-4; i++ {
		for j := i + 5; j < len(guide); j++ {
			if j-i > maxComplementary && strings.Contains(rc, guide[i:j]) {
				maxComplementary = j - i
			}
		}
	}

	switch {
	case maxComplementary < 5:
		return 1.0
	case maxComplementary >= 12:
		return 0.0
	default:
		return 1 - (float64(maxComplementary-5) / 7)
	}
}

// homopolymerScore penalizes single-base runs. T runs are the most
// detrimental and are held to a stricter threshold than the other
// bases
func (s *Scorer) homopolymerScore(guide string) float64 {
	tScore := runScore(longestRun(guide, 'T'), 2, 4)
	aScore := runScore(longestRun(guide, 'A'), 3, 5)
	gScore := runScore(longestRun(guide, 'G'), 3, 5)
	cScore := runScore(longestRun(guide, 'C'), 3, 5)

	return 0.4*tScore + 0.2*aScore + 0.2*gScore + 0.2*cScore
}

// runScore maps a homopolymer run length onto [0, 1]: 1.0 at or below
// ok, 0.0 at or above bad, linear in between
func runScore(run, ok, bad int) float64 {
	switch {
	case run <= ok:
		return 1.0
	case run >= bad:
		return 0.0
	default:
		return 1 - float64(run-ok)/float64(bad-ok)
	}
}

// positionScore averages the preference weights of the scored
// positions that fall within the guide. A base without an explicit
// weight contributes 0.3. A guide too short to reach any scored
// position scores 0.5
func (s *Scorer) positionScore(guide string) float64 {
	score := 0.0
	count := 0

	for pos, weights := range s.preferences {
		if pos > len(guide) {
			continue
		}
		weight, ok := weights[guide[pos-1]]
		if !ok {
			weight = 0.3
		}
		score += weight
		count++
	}

	if count == 0 {
		return 0.5
	}
	return score / float64(count)
}

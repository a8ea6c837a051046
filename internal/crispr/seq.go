// Package crispr is for designing guide RNAs against an input DNA
// sequence: finding PAM sites, extracting guide candidates, scoring
// their predicted cutting efficiency, and estimating off-target risk
// within the same sequence
package crispr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySequence is returned when a sequence is empty after cleaning
var ErrEmptySequence = errors.New("empty sequence")

// complement maps each base to its Watson-Crick partner
var complement = [256]byte{
	'A': 'T',
	'T': 'A',
	'G': 'C',
	'C': 'G',
}

// CleanSequence upper-cases a raw sequence and strips whitespace so
// pasted or file-read input can be validated
func CleanSequence(seq string) string {
	seq = strings.ToUpper(seq)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, seq)
}

// ValidateSequence checks that a cleaned sequence is non-empty and
// restricted to the {A,T,G,C} alphabet. Callers must validate before
// passing a sequence to any of the design functions
func ValidateSequence(seq string) error {
	if seq == "" {
		return ErrEmptySequence
	}
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'T', 'G', 'C':
		default:
			return fmt.Errorf("invalid character %q at index %d: only A, T, G, C are allowed", seq[i], i)
		}
	}
	return nil
}

// ReverseComplement returns the reverse complement of a sequence
func ReverseComplement(seq string) string {
	rc := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		rc[i] = complement[seq[len(seq)-1-i]]
	}
	return string(rc)
}

// GCFraction returns the fraction of G and C bases in a sequence,
// 0 for an empty sequence
func GCFraction(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}

// BaseCounts returns the number of occurrences of each base
func BaseCounts(seq string) map[byte]int {
	counts := map[byte]int{'A': 0, 'T': 0, 'G': 0, 'C': 0}
	for i := 0; i < len(seq); i++ {
		counts[seq[i]]++
	}
	return counts
}

// longestRun returns the length of the longest consecutive run of
// base in seq
func longestRun(seq string, base byte) int {
	max, run := 0, 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == base {
			run++
			if run > max {
				max = run
			}
		} else {
			run = 0
		}
	}
	return max
}

package crispr

import (
	"fmt"
	"math/rand"
	"strings"
)

// Organisms maps preset names to typical genomic GC content, in
// percent, for generating biologically plausible test sequences
var Organisms = map[string]float64{
	"human":         42,
	"ecoli":         51,
	"scerevisiae":   38,
	"mycobacterium": 65,
}

// OrganismGC returns the preset GC percentage for an organism name
func OrganismGC(name string) (float64, error) {
	gc, ok := Organisms[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown organism %q: options are human, ecoli, scerevisiae, mycobacterium", name)
	}
	return gc, nil
}

// GenerateSequence creates a random DNA sequence of the given length
// whose expected GC content matches gcPercent. G and C each draw
// gc/2 of the probability mass, A and T the remainder
func GenerateSequence(length int, gcPercent float64, rnd *rand.Rand) string {
	gc := gcPercent / 100

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		r := rnd.Float64()
		switch {
		case r < gc/2:
			b.WriteByte('G')
		case r < gc:
			b.WriteByte('C')
		case r < gc+(1-gc)/2:
			b.WriteByte('A')
		default:
			b.WriteByte('T')
		}
	}
	return b.String()
}

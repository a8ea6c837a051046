package crispr

import (
	"math/rand"
	"testing"
)

func Test_GenerateSequence(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	seq := GenerateSequence(2000, 50, rnd)

	if len(seq) != 2000 {
		t.Fatalf("generated %d bases, want 2000", len(seq))
	}
	if err := ValidateSequence(seq); err != nil {
		t.Fatalf("generated sequence is invalid: %v", err)
	}

	// GC content should land near the 50% target
	gc := GCFraction(seq)
	if gc < 0.45 || gc > 0.55 {
		t.Errorf("gc fraction = %v, want near 0.5", gc)
	}
}

func Test_GenerateSequence_bias(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	seq := GenerateSequence(2000, 65, rnd)

	gc := GCFraction(seq)
	if gc < 0.60 || gc > 0.70 {
		t.Errorf("gc fraction = %v, want near 0.65", gc)
	}
}

func Test_OrganismGC(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    float64
		wantErr bool
	}{
		{"human", "human", 42, false},
		{"case insensitive", "Ecoli", 51, false},
		{"mycobacterium", "mycobacterium", 65, false},
		{"unknown", "tardigrade", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OrganismGC(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("OrganismGC() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("OrganismGC() = %v, want %v", got, tt.want)
			}
		})
	}
}

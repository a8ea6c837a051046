package crispr

import (
	"fmt"
	"strings"
)

// Profile fixes the PAM motif, guide length, and guide placement of
// one nuclease. Profiles are immutable values, passed explicitly to
// the functions that need them
type Profile struct {
	// Name of the nuclease, eg "SpCas9"
	Name string

	// PAM is the motif in IUPAC notation (N = any, R = A/G, V = A/C/G)
	PAM string

	// GuideLength is the number of bases extracted per guide
	GuideLength int

	// Downstream is true when the guide sits 3' of the PAM rather
	// than immediately upstream of it (Cas12a)
	Downstream bool
}

// The three supported nuclease profiles. Cas12a guides are extracted
// downstream of the PAM, matching the enzyme's biology, unlike the
// Cas9 profiles
var (
	SpCas9 = Profile{Name: "SpCas9", PAM: "NGG", GuideLength: 20}
	SaCas9 = Profile{Name: "SaCas9", PAM: "NNGRRT", GuideLength: 20}
	Cas12a = Profile{Name: "Cas12a", PAM: "TTTV", GuideLength: 20, Downstream: true}
)

// Profiles returns every supported nuclease profile
func Profiles() []Profile {
	return []Profile{SpCas9, SaCas9, Cas12a}
}

// ProfileByName finds a profile by its nuclease name, case-insensitively.
// An unrecognized name is a configuration error and should abort the
// request path that sent it
func ProfileByName(name string) (Profile, error) {
	for _, p := range Profiles() {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown nuclease profile %q: options are SpCas9, SaCas9, Cas12a", name)
}

// iupac maps each motif letter to the set of bases it accepts
var iupac = map[byte]string{
	'A': "A",
	'T': "T",
	'G': "G",
	'C': "C",
	'N': "ATGC",
	'R': "AG",
	'V': "ACG",
}

// matchAt reports whether the profile's PAM motif matches seq
// starting at index i
func (p Profile) matchAt(seq string, i int) bool {
	if i+len(p.PAM) > len(seq) {
		return false
	}
	for j := 0; j < len(p.PAM); j++ {
		if !strings.ContainsRune(iupac[p.PAM[j]], rune(seq[i+j])) {
			return false
		}
	}
	return true
}

package crispr

// FindPamSites scans a sequence for every start index where the
// profile's PAM motif matches. The scan is non-consuming: overlapping
// matches are all reported, in ascending position order. An empty
// result is a normal outcome, not an error; Cas12a's TTTV motif in
// particular is often absent from short inputs.
//
// The sequence must already be cleaned and validated by the caller.
func FindPamSites(seq string, profile Profile) []int {
	sites := []int{}
	for i := 0; i+len(profile.PAM) <= len(seq); i++ {
		if profile.matchAt(seq, i) {
			sites = append(sites, i)
		}
	}
	return sites
}

package crispr

import "testing"

func Test_Designer_Design(t *testing.T) {
	d := NewDesigner()
	seq := "ATCGATCGATCGATCGATCGAGGATCG"

	result, err := d.Design(seq, SpCas9, Options{GCMin: 0.3, GCMax: 0.7, ShowAll: true})
	if err != nil {
		t.Fatalf("Design() error = %v", err)
	}

	if len(result.PamSites) != 1 || result.PamSites[0] != 20 {
		t.Fatalf("pam sites = %v, want [20]", result.PamSites)
	}
	if len(result.Guides) != 1 {
		t.Fatalf("got %d guides, want 1", len(result.Guides))
	}

	g := result.Guides[0]
	if g.Seq != "ATCGATCGATCGATCGATCG" {
		t.Errorf("guide = %s, want ATCGATCGATCGATCGATCG", g.Seq)
	}
	if g.PAM != "AGG" {
		t.Errorf("pam = %s, want AGG", g.PAM)
	}
	if g.Scores.Final <= 0 || g.Scores.Final > 1 {
		t.Errorf("final score %v out of range", g.Scores.Final)
	}

	// self-match window plus one 3-mismatch window at the period-4
	// repeat offset: 20 * (1 + 1/8) = 22.5
	if g.OffTarget != 22.5 {
		t.Errorf("off-target = %v, want 22.5", g.OffTarget)
	}
}

func Test_Designer_Design_cleansInput(t *testing.T) {
	d := NewDesigner()

	result, err := d.Design(" atcg atcg\natcgatcgatcgAGGATCG\n", SpCas9, Options{GCMax: 1.0, ShowAll: true})
	if err != nil {
		t.Fatalf("Design() error = %v", err)
	}
	if result.Sequence != "ATCGATCGATCGATCGATCGAGGATCG" {
		t.Errorf("cleaned sequence = %s", result.Sequence)
	}
}

func Test_Designer_Design_invalidSequence(t *testing.T) {
	d := NewDesigner()

	if _, err := d.Design("ATXGATCG", SpCas9, Options{}); err == nil {
		t.Error("expected an error for a sequence with invalid characters")
	}
	if _, err := d.Design("   ", SpCas9, Options{}); err == nil {
		t.Error("expected an error for an all-whitespace sequence")
	}
}

func Test_Designer_Design_thresholdFallback(t *testing.T) {
	d := NewDesigner()
	seq := "ATCGATCGATCGATCGATCGAGGATCG"

	// an unreachable efficiency threshold filters out every candidate;
	// the full list is surfaced instead of an empty table
	result, err := d.Design(seq, SpCas9, Options{
		GCMin:               0.3,
		GCMax:               0.7,
		EfficiencyThreshold: 1.1,
		MaxOffTarget:        100,
	})
	if err != nil {
		t.Fatalf("Design() error = %v", err)
	}
	if !result.FellBack {
		t.Error("expected the fallback flag when nothing meets the thresholds")
	}
	if len(result.Guides) != len(result.All) {
		t.Errorf("fallback guides = %d, want all %d", len(result.Guides), len(result.All))
	}
}

func Test_Designer_Design_filters(t *testing.T) {
	d := NewDesigner()
	seq := "ATCGATCGATCGATCGATCGAGGATCG"

	// thresholds every candidate passes
	result, err := d.Design(seq, SpCas9, Options{
		GCMin:               0.3,
		GCMax:               0.7,
		EfficiencyThreshold: 0.0,
		MaxOffTarget:        100,
	})
	if err != nil {
		t.Fatalf("Design() error = %v", err)
	}
	if result.FellBack {
		t.Error("no fallback expected")
	}
	if len(result.Guides) != 1 {
		t.Errorf("got %d guides, want 1", len(result.Guides))
	}

	// an off-target cap below the self-match baseline rejects everything
	result, err = d.Design(seq, SpCas9, Options{
		GCMin:        0.3,
		GCMax:        0.7,
		MaxOffTarget: 10,
	})
	if err != nil {
		t.Fatalf("Design() error = %v", err)
	}
	if !result.FellBack {
		t.Error("expected fallback below the self-match baseline")
	}
}

func Test_Designer_Design_noSites(t *testing.T) {
	d := NewDesigner()

	result, err := d.Design("ATATATATATAT", SpCas9, Options{GCMax: 1.0})
	if err != nil {
		t.Fatalf("Design() error = %v", err)
	}
	if len(result.PamSites) != 0 {
		t.Errorf("pam sites = %v, want none", result.PamSites)
	}
	if len(result.Guides) != 0 {
		t.Errorf("guides = %v, want none", result.Guides)
	}
	if result.FellBack {
		t.Error("no candidates means no fallback")
	}
}

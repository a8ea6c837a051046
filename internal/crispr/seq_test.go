package crispr

import "testing"

func Test_CleanSequence(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"lower case", "atgc", "ATGC"},
		{"whitespace", " AT GC\nTA\r\n\tGG ", "ATGCTAGG"},
		{"already clean", "ATGC", "ATGC"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanSequence(tt.seq); got != tt.want {
				t.Errorf("CleanSequence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_ValidateSequence(t *testing.T) {
	tests := []struct {
		name    string
		seq     string
		wantErr bool
	}{
		{"valid", "ATGCATGC", false},
		{"empty", "", true},
		{"ambiguity code", "ATGCN", true},
		{"lower case is invalid", "atgc", true},
		{"numeric", "ATG1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateSequence(tt.seq); (err != nil) != tt.wantErr {
				t.Errorf("ValidateSequence() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_ReverseComplement(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"mixed", "ATGC", "GCAT"},
		{"palindrome-like", "AAAAATTTTT", "AAAAATTTTT"},
		{"single", "G", "C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReverseComplement(tt.seq); got != tt.want {
				t.Errorf("ReverseComplement() = %v, want %v", got, tt.want)
			}
		})
	}

	// applying it twice returns the input
	seq := "GATTACAGGATTACA"
	if got := ReverseComplement(ReverseComplement(seq)); got != seq {
		t.Errorf("double ReverseComplement() = %v, want %v", got, seq)
	}
}

func Test_GCFraction(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want float64
	}{
		{"half", "ATGC", 0.5},
		{"none", "ATAT", 0.0},
		{"all", "GGCC", 1.0},
		{"three quarters", "GGCA", 0.75},
		{"empty", "", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GCFraction(tt.seq); got != tt.want {
				t.Errorf("GCFraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_longestRun(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		base byte
		want int
	}{
		{"run at start", "TTTAG", 'T', 3},
		{"run at end", "AGTTT", 'T', 3},
		{"two runs", "TTATTTT", 'T', 4},
		{"absent base", "AGAG", 'T', 0},
		{"whole sequence", "GGGG", 'G', 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := longestRun(tt.seq, tt.base); got != tt.want {
				t.Errorf("longestRun() = %v, want %v", got, tt.want)
			}
		})
	}
}

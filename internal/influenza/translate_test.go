package influenza

import "testing"

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		nt   string
		want string
	}{
		{"start of M1", "ATGAGTCTTCTAACC", "MSLLT"},
		{"stop codon translates to asterisk", "ATGTAA", "M*"},
		{"ambiguous codon translates to X", "ATGNNNAAA", "MXK"},
		{"trailing partial codon is dropped", "ATGA", "M"},
		{"lowercase input", "atgaaa", "MK"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.nt); got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.nt, got, tt.want)
			}
		})
	}
}

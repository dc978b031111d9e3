package influenza

import (
	"strings"
	"testing"
)

func TestSegmentMessage(t *testing.T) {
	tests := []struct {
		name string
		err  SegmentError
		want string
	}{
		{
			"too short",
			TooShort{Length: 120, MinLength: 500},
			"assembly is 120 bases long, shorter than the minimum of 500",
		},
		{
			"ambiguous",
			Ambiguous{Count: 3},
			"assembly has 3 ambiguous bases",
		},
		{
			"missing protein",
			MissingProtein{Protein: "M2"},
			"no coding sequence could be reconstructed for M2",
		},
		{
			"low identity with a value",
			LowIdentity{Identity: Some(0.751)},
			"identity to the reference is too low (75.1%)",
		},
		{
			"low identity without a value",
			LowIdentity{Identity: None[float64]()},
			"identity to the reference could not be computed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentMessage(tt.err); got != tt.want {
				t.Errorf("SegmentMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProteinMessage(t *testing.T) {
	indel, err := NewIndel(Insertion, Range{10, 11}, 9)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		err  ProteinError
		want string
	}{
		{
			"frameshift",
			FrameShift{Indel: indel},
			"frameshift: insertion of 2 bases between positions 9 and 10",
		},
		{
			"early stop",
			EarlyStop{Position: 11, ExpectedAA: 4, ObservedAA: 3},
			"premature stop codon at position 11: expected 4 amino acids, observed 3",
		},
		{
			"late stop",
			LateStop{ExpectedPosition: 9, ObservedPosition: 12, ExpectedAA: 3, ObservedAA: 4},
			"stop codon at position 12 instead of 9: expected 3 amino acids, observed 4",
		},
		{
			"no stop",
			NoStop{},
			"no stop codon at the end of the coding sequence",
		},
		{
			"length not divisible",
			CDSNotDivisible{Length: 11},
			"coding sequence length 11 is not divisible by 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProteinMessage(tt.err); got != tt.want {
				t.Errorf("ProteinMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Every variant of the two closed finding families must render without
// panicking.
func TestMessages_allVariants(t *testing.T) {
	indel, err := NewIndel(Deletion, Range{1, 3}, 0)
	if err != nil {
		t.Fatal(err)
	}

	segmentErrs := []SegmentError{
		TooShort{}, Ambiguous{}, Insignificant{}, LowDepth{}, LowCoverage{},
		NotConverged{}, LinkerContamination{}, MissingProtein{}, LowIdentity{},
	}
	for _, e := range segmentErrs {
		if strings.TrimSpace(SegmentMessage(e)) == "" {
			t.Errorf("SegmentMessage(%T) is empty", e)
		}
	}

	proteinErrs := []ProteinError{
		FrameShift{Indel: indel}, IndelTooBig{Indel: indel},
		FivePrimeDeletion{Indel: indel}, EarlyStop{}, LateStop{}, NoStop{},
		CDSNotDivisible{}, LowIdentity{},
	}
	for _, e := range proteinErrs {
		if strings.TrimSpace(ProteinMessage(e)) == "" {
			t.Errorf("ProteinMessage(%T) is empty", e)
		}
	}
}

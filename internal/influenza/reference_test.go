package influenza

import "testing"

func TestNewReferenceProtein(t *testing.T) {
	type args struct {
		name   string
		orfs   []Range
		refLen int
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			"single ORF",
			args{"NP", []Range{{46, 1542}}, 1565},
			false,
		},
		{
			"two spliced ORFs",
			args{"M2", []Range{{26, 51}, {740, 1007}}, 1027},
			false,
		},
		{
			"no name",
			args{"", []Range{{1, 9}}, 9},
			true,
		},
		{
			"no ORFs",
			args{"NP", nil, 1565},
			true,
		},
		{
			"ORF starting at zero",
			args{"NP", []Range{{0, 9}}, 9},
			true,
		},
		{
			"empty ORF range",
			args{"NP", []Range{{9, 5}}, 20},
			true,
		},
		{
			"ORF past the reference end",
			args{"NP", []Range{{1, 30}}, 20},
			true,
		},
		{
			"overlapping ORFs",
			args{"M2", []Range{{26, 51}, {40, 100}}, 200},
			true,
		},
		{
			"out of order ORFs",
			args{"M2", []Range{{740, 1007}, {26, 51}}, 1027},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReferenceProtein(tt.args.name, tt.args.orfs, tt.args.refLen)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewReferenceProtein() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_codingMask(t *testing.T) {
	p, err := NewReferenceProtein("test", []Range{{2, 4}, {7, 9}}, 10)
	if err != nil {
		t.Fatal(err)
	}
	m := p.mask(10)

	if got := m.count(); got != 6 {
		t.Errorf("count() = %d, want 6", got)
	}
	if got := m.last(); got != 9 {
		t.Errorf("last() = %d, want 9", got)
	}
	wantAt := map[int]bool{1: false, 2: true, 4: true, 5: false, 6: false, 7: true, 9: true, 10: false}
	for pos, want := range wantAt {
		if got := m.at(pos); got != want {
			t.Errorf("at(%d) = %v, want %v", pos, got, want)
		}
	}
	if m.at(0) || m.at(11) {
		t.Error("positions outside the mask should never be coding")
	}
}

func Test_codingMask_empty(t *testing.T) {
	m := newCodingMask(80)
	if got := m.last(); got != 0 {
		t.Errorf("last() on an empty mask = %d, want 0", got)
	}
	if got := m.count(); got != 0 {
		t.Errorf("count() on an empty mask = %d, want 0", got)
	}
}

func TestNewReference(t *testing.T) {
	np, err := NewReferenceProtein("NP", []Range{{4, 15}}, 18)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewReference("A/ref/1", NP, "AGGATGAAATTTTAACTA", []ReferenceProtein{np}); err != nil {
		t.Errorf("NewReference() unexpected error: %v", err)
	}
	if _, err := NewReference("", NP, "AGGATGAAATTTTAACTA", nil); err == nil {
		t.Error("NewReference() accepted an empty name")
	}
	if _, err := NewReference("A/ref/1", NP, "", nil); err == nil {
		t.Error("NewReference() accepted an empty sequence")
	}
	if _, err := NewReference("A/ref/1", NP, "ACGT", []ReferenceProtein{np}); err == nil {
		t.Error("NewReference() accepted ORFs past the sequence end")
	}
}

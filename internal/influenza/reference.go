package influenza

import (
	"errors"
	"fmt"
	"math/bits"
)

// ReferenceProtein names one protein variant and the open-reading-frame
// ranges encoding it in the reference sequence. Spliced proteins (M2, NEP)
// have more than one range.
type ReferenceProtein struct {
	Name string
	ORFs []Range // sorted, non-overlapping, 1-based into the reference
}

// NewReferenceProtein validates the ORF ranges against the reference
// length: no empty range, no range starting at zero, no range past the end,
// sorted and non-overlapping.
func NewReferenceProtein(name string, orfs []Range, refLen int) (ReferenceProtein, error) {
	if name == "" {
		return ReferenceProtein{}, errors.New("protein has no name")
	}
	if err := validateORFs(orfs, refLen); err != nil {
		return ReferenceProtein{}, fmt.Errorf("protein %s: %v", name, err)
	}
	return ReferenceProtein{Name: name, ORFs: orfs}, nil
}

func validateORFs(orfs []Range, refLen int) error {
	if len(orfs) == 0 {
		return errors.New("no ORF ranges")
	}
	prevEnd := 0
	for _, r := range orfs {
		if r.Start < 1 {
			return fmt.Errorf("ORF range [%d, %d] starts at zero", r.Start, r.End)
		}
		if !r.valid() {
			return fmt.Errorf("ORF range [%d, %d] is empty", r.Start, r.End)
		}
		if r.End > refLen {
			return fmt.Errorf("ORF range [%d, %d] exceeds the reference length %d", r.Start, r.End, refLen)
		}
		if r.Start <= prevEnd {
			return fmt.Errorf("ORF range [%d, %d] is out of order or overlapping", r.Start, r.End)
		}
		prevEnd = r.End
	}
	return nil
}

// mask precomputes per-position coding membership so the scanner gets O(1)
// lookups during its single pass.
func (p ReferenceProtein) mask(refLen int) *codingMask {
	m := newCodingMask(refLen)
	for _, r := range p.ORFs {
		for pos := r.Start; pos <= r.End; pos++ {
			m.set(pos)
		}
	}
	return m
}

// codingMask is a fixed-size bit array flagging, per 1-based reference
// position, membership in any of one protein's ORF ranges.
type codingMask struct {
	words []uint64
	n     int
}

func newCodingMask(n int) *codingMask {
	return &codingMask{words: make([]uint64, (n+64)/64), n: n}
}

func (m *codingMask) set(pos int) {
	m.words[pos/64] |= 1 << (pos % 64)
}

func (m *codingMask) at(pos int) bool {
	if pos < 1 || pos > m.n {
		return false
	}
	return m.words[pos/64]&(1<<(pos%64)) != 0
}

// count is the number of coding positions.
func (m *codingMask) count() int {
	total := 0
	for _, w := range m.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// last is the highest coding position, 0 when the mask is empty.
func (m *codingMask) last() int {
	for i := len(m.words) - 1; i >= 0; i-- {
		if m.words[i] != 0 {
			return i*64 + 63 - bits.LeadingZeros64(m.words[i])
		}
	}
	return 0
}

// Reference is one curated reference segment: its sequence and the proteins
// it encodes. Immutable once built.
type Reference struct {
	Name     string
	Segment  Segment
	Seq      string
	Proteins []ReferenceProtein
}

// NewReference re-validates every protein's ORF ranges against the actual
// sequence length; inconsistent reference data is a setup error.
func NewReference(name string, segment Segment, seq string, proteins []ReferenceProtein) (Reference, error) {
	if name == "" {
		return Reference{}, errors.New("reference has no name")
	}
	if len(seq) == 0 {
		return Reference{}, fmt.Errorf("reference %s has no sequence", name)
	}
	for _, p := range proteins {
		if err := validateORFs(p.ORFs, len(seq)); err != nil {
			return Reference{}, fmt.Errorf("reference %s, protein %s: %v", name, p.Name, err)
		}
	}
	return Reference{Name: name, Segment: segment, Seq: seq, Proteins: proteins}, nil
}

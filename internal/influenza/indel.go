package influenza

import "fmt"

// Range is a 1-based, inclusive, non-empty span of sequence positions.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len is the number of positions covered.
func (r Range) Len() int { return r.End - r.Start + 1 }

func (r Range) valid() bool { return r.Start >= 1 && r.End >= r.Start }

// IndelKind distinguishes the two directions an indel can go.
type IndelKind uint8

const (
	// Deletion marks bases missing from the assembly; the indel's range is
	// in reference coordinates.
	Deletion IndelKind = iota

	// Insertion marks extra bases in the assembly; the indel's range is in
	// assembly coordinates.
	Insertion
)

// Indel is a contiguous insertion or deletion found by comparing aligned
// positions across the assembly and the reference. Position is the
// alignment position immediately before the indel, describing "between
// Position and Position+1" in the other sequence's coordinates.
type Indel struct {
	Kind     IndelKind
	Range    Range
	Position int
}

// NewIndel fails on an empty range: every indel covers at least one base.
func NewIndel(kind IndelKind, r Range, position int) (Indel, error) {
	if !r.valid() {
		return Indel{}, fmt.Errorf("indel range [%d, %d] is empty", r.Start, r.End)
	}
	return Indel{Kind: kind, Range: r, Position: position}, nil
}

// Length is the number of inserted or deleted bases.
func (i Indel) Length() int { return i.Range.Len() }

func (i Indel) String() string {
	kind := "deletion"
	if i.Kind == Insertion {
		kind = "insertion"
	}
	return fmt.Sprintf("%s of %d bases between positions %d and %d", kind, i.Length(), i.Position, i.Position+1)
}

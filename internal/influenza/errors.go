package influenza

import "fmt"

// Findings are first-class values describing properties of the sequenced
// sample, never Go errors: validation records every applicable finding and
// keeps going. The two families below are closed sets; formatting and
// serialization rely on that.

// SegmentError is a finding about the assembled segment as a whole.
type SegmentError interface{ segmentError() }

// ProteinError is a finding about one reconstructed protein.
type ProteinError interface{ proteinError() }

// TooShort flags an assembly below the configured minimum length.
type TooShort struct {
	Length    int
	MinLength int
}

// Ambiguous flags ambiguous (non-ACGT) bases in the assembly.
type Ambiguous struct {
	Count int
}

// Insignificant flags bases the basecaller marked as low confidence.
type Insignificant struct {
	Count int
}

// LowDepth flags insufficient read depth. Populated by read-level tooling.
type LowDepth struct {
	Depth float64
}

// LowCoverage flags insufficient reference coverage. Populated by
// read-level tooling.
type LowCoverage struct {
	Coverage float64
}

// NotConverged flags an assembly whose iterations did not converge.
// Populated by the assembler's own reporting.
type NotConverged struct{}

// LinkerContamination flags leftover linker sequence in the assembly.
// Populated by read-level tooling.
type LinkerContamination struct {
	Linker string
}

// MissingProtein flags a reference protein for which no coding nucleotides
// could be reconstructed.
type MissingProtein struct {
	Protein string
}

// LowIdentity flags a whole-sequence or protein identity below the
// configured minimum, or one that could not be computed at all. It belongs
// to both finding families.
type LowIdentity struct {
	Identity Opt[float64]
}

// FrameShift is an indel whose length is not a multiple of 3, displacing
// the reading frame downstream.
type FrameShift struct {
	Indel Indel
}

// IndelTooBig is an indel beyond the tolerated size for its kind.
type IndelTooBig struct {
	Indel Indel
}

// FivePrimeDeletion is a deletion at the very start of the coding sequence,
// before the assembly produced any bases.
type FivePrimeDeletion struct {
	Indel Indel
}

// EarlyStop is a stop codon before the reference's coding region ended.
type EarlyStop struct {
	Position   int // assembly position of the stop codon's last base
	ExpectedAA int
	ObservedAA int
}

// LateStop is a stop codon past the position where the reference's coding
// region ended.
type LateStop struct {
	ExpectedPosition int
	ObservedPosition int
	ExpectedAA       int
	ObservedAA       int
}

// NoStop marks a reconstructed coding sequence with no terminal stop codon.
type NoStop struct{}

// CDSNotDivisible marks a reconstructed coding sequence whose length is not
// a multiple of 3.
type CDSNotDivisible struct {
	Length int
}

// NewCDSNotDivisible fails when length is divisible by 3: building this
// finding for a well-formed length is a contract violation by the caller,
// not a property of the sample.
func NewCDSNotDivisible(length int) (CDSNotDivisible, error) {
	if length%3 == 0 {
		return CDSNotDivisible{}, fmt.Errorf("CDS length %d is divisible by 3", length)
	}
	return CDSNotDivisible{Length: length}, nil
}

func (TooShort) segmentError()            {}
func (Ambiguous) segmentError()           {}
func (Insignificant) segmentError()       {}
func (LowDepth) segmentError()            {}
func (LowCoverage) segmentError()         {}
func (NotConverged) segmentError()        {}
func (LinkerContamination) segmentError() {}
func (MissingProtein) segmentError()      {}
func (LowIdentity) segmentError()         {}

func (LowIdentity) proteinError()       {}
func (FrameShift) proteinError()        {}
func (IndelTooBig) proteinError()       {}
func (FivePrimeDeletion) proteinError() {}
func (EarlyStop) proteinError()         {}
func (LateStop) proteinError()          {}
func (NoStop) proteinError()            {}
func (CDSNotDivisible) proteinError()   {}

// Package influenza validates assembled influenza genome segments against
// curated references: it aligns the two sequences, scores identity,
// reconstructs each annotated protein's coding region from the assembly,
// and classifies the biological defects found along the way.
package influenza

import "github.com/jakobnissen/Influenza/internal/pairwise"

// Assembly is one assembled segment as it came out of the assembler.
// Unknown segment and missing basecall confidence are first-class absent
// states, not sentinels.
type Assembly struct {
	Name string
	Seq  string

	// Segment is the segment the assembler believes this is, if known.
	Segment Opt[Segment]

	// Insignificant flags, per base, lower-confidence basecalls, when the
	// source record carried that information.
	Insignificant Opt[[]bool]
}

// AssemblyProtein is one reference protein's outcome after scanning the
// alignment. ORFs, Identity and AminoAcids are absent when reconstruction
// produced no coding nucleotides at all.
type AssemblyProtein struct {
	Name       string
	ORFs       Opt[[]Range] // reconstructed ranges, assembly coordinates
	Identity   Opt[float64] // amino-acid identity to the reference protein
	AminoAcids Opt[string]  // translation of the reconstructed CDS
	Errors     []ProteinError
	Indels     []Indel
}

// AlignedAssembly is the fully validated result for one (assembly,
// reference) pair. Created once by Validate and immutable thereafter.
type AlignedAssembly struct {
	Assembly  Assembly
	Reference Reference
	Alignment []pairwise.Column
	Identity  Opt[float64]
	Proteins  []AssemblyProtein
	Errors    []SegmentError
	Cleavage  Opt[CleavageSite]
}

package influenza

import "fmt"

// SegmentMessage renders one segment-level finding as a sentence. The
// finding families are closed; an unknown variant is a programming error.
func SegmentMessage(e SegmentError) string {
	switch v := e.(type) {
	case TooShort:
		return fmt.Sprintf("assembly is %d bases long, shorter than the minimum of %d", v.Length, v.MinLength)
	case Ambiguous:
		return fmt.Sprintf("assembly has %d ambiguous bases", v.Count)
	case Insignificant:
		return fmt.Sprintf("assembly has %d insignificantly called bases", v.Count)
	case LowDepth:
		return fmt.Sprintf("mean read depth of %.1f is too low", v.Depth)
	case LowCoverage:
		return fmt.Sprintf("reference coverage of %.2f is too low", v.Coverage)
	case NotConverged:
		return "assembly did not converge"
	case LinkerContamination:
		return fmt.Sprintf("assembly contains linker sequence %q", v.Linker)
	case MissingProtein:
		return fmt.Sprintf("no coding sequence could be reconstructed for %s", v.Protein)
	case LowIdentity:
		return identityMessage(v)
	default:
		panic(fmt.Sprintf("unknown segment error %T", e))
	}
}

// ProteinMessage renders one protein-level finding as a sentence.
func ProteinMessage(e ProteinError) string {
	switch v := e.(type) {
	case FrameShift:
		return fmt.Sprintf("frameshift: %s", v.Indel)
	case IndelTooBig:
		return fmt.Sprintf("indel too big: %s", v.Indel)
	case FivePrimeDeletion:
		return fmt.Sprintf("5' deletion of %d bases at the start of the coding sequence", v.Indel.Length())
	case EarlyStop:
		return fmt.Sprintf(
			"premature stop codon at position %d: expected %d amino acids, observed %d",
			v.Position, v.ExpectedAA, v.ObservedAA,
		)
	case LateStop:
		return fmt.Sprintf(
			"stop codon at position %d instead of %d: expected %d amino acids, observed %d",
			v.ObservedPosition, v.ExpectedPosition, v.ExpectedAA, v.ObservedAA,
		)
	case NoStop:
		return "no stop codon at the end of the coding sequence"
	case CDSNotDivisible:
		return fmt.Sprintf("coding sequence length %d is not divisible by 3", v.Length)
	case LowIdentity:
		return identityMessage(v)
	default:
		panic(fmt.Sprintf("unknown protein error %T", e))
	}
}

func identityMessage(v LowIdentity) string {
	if id, ok := v.Identity.Get(); ok {
		return fmt.Sprintf("identity to the reference is too low (%.1f%%)", id*100)
	}
	return "identity to the reference could not be computed"
}

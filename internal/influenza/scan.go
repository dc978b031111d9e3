package influenza

import "github.com/jakobnissen/Influenza/internal/pairwise"

// Indels are tolerated up to different sizes depending on direction. These
// are domain constants, not derived from a shared rule.
const (
	maxDeletion  = 21
	maxInsertion = 36
)

var stopCodons = [...][3]byte{
	{'T', 'A', 'A'},
	{'T', 'A', 'G'},
	{'T', 'G', 'A'},
}

// codonSentinel can never complete a stop codon. The rolling codon resets
// to it whenever an ambiguous base arrives, since an ambiguous base can
// never legitimately complete a stop.
var codonSentinel = [3]byte{'X', 'X', 'X'}

// scanResult is everything one pass over the alignment yields for one
// reference protein.
type scanResult struct {
	nt     []byte  // reconstructed in-frame CDS, trailing stop codon removed
	orfs   []Range // reconstructed ORF ranges, assembly coordinates
	errs   []ProteinError
	indels []Indel
}

// scanProtein walks the alignment once, left to right, reconstructing the
// protein's coding sequence from the assembly side and classifying every
// deviation from the reference coding structure. Doing all the checks in
// one pass keeps the reported positions mutually consistent.
func scanProtein(cols []pairwise.Column, mask *codingMask) scanResult {
	var (
		res scanResult

		// 1-based positions of the last consumed symbol on each side.
		apos, rpos int

		// 5' truncation: coding reference positions skipped before the
		// assembly produced its first symbol.
		started                   bool
		trunc, truncFrom, truncTo int

		orfOpen  bool
		orfStart int

		codon = codonSentinel

		delRun, delFrom int
		insRun, insFrom int

		// Assembly position at the moment the reference reached its last
		// coding position; the yardstick for the late-stop decision.
		expStop    int
		expStopSet bool
	)

	lastCoding := mask.last()
	expectedAA := mask.count() / 3

loop:
	for _, c := range cols {
		if c.A != pairwise.Gap {
			apos++
		}
		if c.B != pairwise.Gap {
			rpos++
		}
		coding := mask.at(rpos)

		if !started {
			if c.A == pairwise.Gap {
				if coding && c.B != pairwise.Gap {
					if trunc == 0 {
						truncFrom = rpos
					}
					trunc++
					truncTo = rpos
				}
				continue
			}
			started = true
			if trunc > 0 {
				ind, _ := NewIndel(Deletion, Range{Start: truncFrom, End: truncTo}, 0)
				res.indels = append(res.indels, ind)
				res.errs = append(res.errs, FivePrimeDeletion{Indel: ind})
			}
		}

		// ORF bookkeeping in assembly coordinates.
		if coding && c.A != pairwise.Gap && !orfOpen {
			orfOpen, orfStart = true, apos
		} else if !coding && orfOpen {
			end := apos
			if c.A != pairwise.Gap {
				end = apos - 1
			}
			res.orfs = append(res.orfs, Range{Start: orfStart, End: end})
			orfOpen = false
		}

		if !expStopSet && rpos == lastCoding {
			expStop, expStopSet = apos, true
		}

		if !coding {
			continue
		}

		if c.B != pairwise.Gap && insRun > 0 {
			res.closeRun(Insertion, Range{Start: insFrom, End: insFrom + insRun - 1}, rpos-1, maxInsertion)
			insRun = 0
		}

		if c.A == pairwise.Gap {
			if delRun == 0 {
				delFrom = rpos
			}
			delRun++
			continue
		}

		if delRun > 0 {
			res.closeRun(Deletion, Range{Start: delFrom, End: delFrom + delRun - 1}, apos-1, maxDeletion)
			delRun = 0
		}
		if c.B == pairwise.Gap {
			if insRun == 0 {
				insFrom = apos
			}
			insRun++
		}

		codon = pushBase(codon, c.A)
		res.nt = append(res.nt, c.A)

		// Only a codon-aligned stop terminates: the frame guard keeps a
		// stop spanning an intron boundary from firing mid-codon.
		if len(res.nt)%3 == 0 && isStop(codon) {
			switch {
			case !expStopSet:
				res.errs = append(res.errs, EarlyStop{
					Position:   apos,
					ExpectedAA: expectedAA,
					ObservedAA: len(res.nt) / 3,
				})
			case expStop != apos:
				res.errs = append(res.errs, LateStop{
					ExpectedPosition: expStop,
					ObservedPosition: apos,
					ExpectedAA:       expectedAA,
					ObservedAA:       len(res.nt) / 3,
				})
			}
			break loop
		}
	}

	if orfOpen {
		res.orfs = append(res.orfs, Range{Start: orfStart, End: apos})
	}

	if rem := len(res.nt) % 3; rem != 0 {
		e, _ := NewCDSNotDivisible(len(res.nt))
		res.errs = append(res.errs, e)
		res.nt = res.nt[:len(res.nt)-rem]
	}
	if n := len(res.nt); n == 0 || !isStop([3]byte{res.nt[n-3], res.nt[n-2], res.nt[n-1]}) {
		res.errs = append(res.errs, NoStop{})
	} else {
		res.nt = res.nt[:n-3]
	}

	return res
}

// closeRun turns a finished gap run into an indel plus whatever findings
// its length implies.
func (r *scanResult) closeRun(kind IndelKind, span Range, boundary, limit int) {
	ind, _ := NewIndel(kind, span, boundary)
	r.indels = append(r.indels, ind)
	r.errs = append(r.errs, indelErrors(ind, limit)...)
}

// indelErrors classifies one indel: off-frame lengths shift the reading
// frame, and lengths beyond the tolerated size are flagged regardless.
func indelErrors(ind Indel, limit int) []ProteinError {
	var errs []ProteinError
	if ind.Length()%3 != 0 {
		errs = append(errs, FrameShift{Indel: ind})
	}
	if ind.Length() > limit {
		errs = append(errs, IndelTooBig{Indel: ind})
	}
	return errs
}

func pushBase(codon [3]byte, base byte) [3]byte {
	switch base {
	case 'A', 'C', 'G', 'T':
		return [3]byte{codon[1], codon[2], base}
	default:
		return codonSentinel
	}
}

func isStop(codon [3]byte) bool {
	for _, s := range stopCodons {
		if codon == s {
			return true
		}
	}
	return false
}

package pairwise

import (
	"strings"

	"github.com/BurntSushi/cablastp/blosum"
	"github.com/biogo/biogo/align"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/feat"
)

// Scoring bundles an alphabet, a substitution matrix and an affine gap
// model for one class of sequence. The two models used by the validator
// are fixed; see Nucleotide and Protein.
type Scoring struct {
	alpha   alphabet.Alphabet
	matrix  align.Linear
	gapOpen int
}

const (
	nucGapOpen   = -25
	nucGapExtend = -2
	nucMatch     = 5
	nucPartial   = 1 // IUPAC codes sharing at least one base
	nucMismatch  = -4

	protGapOpen   = -10
	protGapExtend = -2
)

// nucLetters is the gapless IUPAC nucleotide alphabet; the scoring alphabet
// prefixes it with the gap so the gap sits at index 0 as biogo requires.
const nucLetters = "acgtrywskmbdhvn"

// nucBits maps each IUPAC code to its set of possible bases,
// bit0=A bit1=C bit2=G bit3=T.
var nucBits = map[byte]uint8{
	'a': 1, 'c': 2, 'g': 4, 't': 8,
	'r': 1 | 4, 'y': 2 | 8, 'w': 1 | 8, 's': 2 | 4, 'k': 4 | 8, 'm': 1 | 2,
	'b': 2 | 4 | 8, 'd': 1 | 4 | 8, 'h': 1 | 2 | 8, 'v': 1 | 2 | 4,
	'n': 1 | 2 | 4 | 8,
}

var (
	nucScoring  Scoring
	protScoring Scoring
)

func init() {
	nucScoring = buildNucleotide()
	protScoring = buildProtein()
}

// Nucleotide returns the fixed nucleotide model: affine gaps (open -25,
// extend -2) over the IUPAC DNA alphabet.
func Nucleotide() Scoring { return nucScoring }

// Protein returns the fixed amino-acid model: affine gaps (open -10,
// extend -2) over BLOSUM62.
func Protein() Scoring { return protScoring }

// DNAAlphabet is the IUPAC nucleotide alphabet sequences are read with.
func DNAAlphabet() alphabet.Alphabet { return nucScoring.alpha }

// ProteinAlphabet is the gapped BLOSUM62 alphabet.
func ProteinAlphabet() alphabet.Alphabet { return protScoring.alpha }

func buildNucleotide() Scoring {
	alpha, err := alphabet.NewAlphabet("-"+nucLetters, feat.DNA, '-', 'n', false)
	if err != nil {
		panic(err)
	}

	n := len(nucLetters) + 1
	m := make(align.Linear, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for i := 1; i < n; i++ {
		m[0][i], m[i][0] = nucGapExtend, nucGapExtend
	}
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			x, y := nucBits[nucLetters[i-1]], nucBits[nucLetters[j-1]]
			switch {
			case i == j && x&(x-1) == 0: // identical unambiguous bases
				m[i][j] = nucMatch
			case x&y != 0:
				m[i][j] = nucPartial
			default:
				m[i][j] = nucMismatch
			}
		}
	}
	return Scoring{alpha: alpha, matrix: m, gapOpen: nucGapOpen}
}

func buildProtein() Scoring {
	raw := string(blosum.Alphabet62)
	letters := strings.ReplaceAll(raw, "-", "")

	alpha, err := alphabet.NewAlphabet("-"+letters, feat.Protein, '-', 'X', false)
	if err != nil {
		panic(err)
	}

	// Indexes into Matrix62 follow Alphabet62 order; skip its gap if any.
	idx := make([]int, 0, len(letters))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '-' {
			idx = append(idx, i)
		}
	}

	n := len(letters) + 1
	m := make(align.Linear, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for i := 1; i < n; i++ {
		m[0][i], m[i][0] = protGapExtend, protGapExtend
	}
	for i, bi := range idx {
		for j, bj := range idx {
			m[i+1][j+1] = blosum.Matrix62[bi][bj]
		}
	}
	return Scoring{alpha: alpha, matrix: m, gapOpen: protGapOpen}
}

// Package pairwise wraps the biogo aligners behind the column-oriented
// alignment model the validation core consumes: a pairwise alignment is a
// finite, ordered sequence of columns, each holding a symbol or gap from
// both input sequences.
package pairwise

import (
	"github.com/biogo/biogo/align"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/seq/linear"
)

// Gap is the gap symbol in alignment columns.
const Gap = byte('-')

// Column is one position of a pairwise alignment.
type Column struct {
	A byte // symbol or gap from the first sequence
	B byte // symbol or gap from the second sequence
}

// Global aligns a against b end to end under the given scoring model and
// returns the alignment columns. Symbols are reported upper-case.
func Global(a, b string, sc Scoring) ([]Column, error) {
	nw := align.NWAffine{Matrix: sc.matrix, GapOpen: sc.gapOpen}
	pairs, err := nw.Align(newSeq("a", a, sc.alpha), newSeq("b", b, sc.alpha))
	if err != nil {
		return nil, err
	}
	cols, _, _ := columns(a, b, pairs)
	return cols, nil
}

// Local aligns the best-scoring region of a against b and returns the
// alignment columns plus the 0-based offsets of the aligned region within
// each input.
func Local(a, b string, sc Scoring) ([]Column, int, int, error) {
	sw := align.SWAffine{Matrix: sc.matrix, GapOpen: sc.gapOpen}
	pairs, err := sw.Align(newSeq("a", a, sc.alpha), newSeq("b", b, sc.alpha))
	if err != nil {
		return nil, 0, 0, err
	}
	cols, aOff, bOff := columns(a, b, pairs)
	return cols, aOff, bOff, nil
}

func newSeq(id, s string, alpha alphabet.Alphabet) *linear.Seq {
	return linear.NewSeq(id, alphabet.BytesToLetters([]byte(s)), alpha)
}

// columns flattens biogo's block-structured alignment into columns. A block
// with a zero-length side is a run of gaps on that side.
func columns(a, b string, pairs []feat.Pair) ([]Column, int, int) {
	if len(pairs) == 0 {
		return nil, 0, 0
	}
	first := pairs[0].Features()
	aOff, bOff := first[0].Start(), first[1].Start()

	var cols []Column
	for _, p := range pairs {
		f := p.Features()
		fa, fb := f[0], f[1]
		switch {
		case fa.Len() == 0:
			for i := fb.Start(); i < fb.End(); i++ {
				cols = append(cols, Column{A: Gap, B: upper(b[i])})
			}
		case fb.Len() == 0:
			for i := fa.Start(); i < fa.End(); i++ {
				cols = append(cols, Column{A: upper(a[i]), B: Gap})
			}
		default:
			for i := 0; i < fa.Len(); i++ {
				cols = append(cols, Column{A: upper(a[fa.Start()+i]), B: upper(b[fb.Start()+i])})
			}
		}
	}
	return cols, aOff, bOff
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

package influenza

import "github.com/jakobnissen/Influenza/internal/pairwise"

// Identity scores a pairwise alignment as the number of matching columns
// over the smaller of the two ungapped lengths, so overhangs on the longer
// sequence do not drag the score down. Absent when either side contributed
// no symbols to the alignment.
func Identity(cols []pairwise.Column) Opt[float64] {
	var matches, na, nb int
	for _, c := range cols {
		if c.A != pairwise.Gap {
			na++
		}
		if c.B != pairwise.Gap {
			nb++
		}
		if c.A != pairwise.Gap && c.B != pairwise.Gap && c.A == c.B {
			matches++
		}
	}
	shorter := na
	if nb < na {
		shorter = nb
	}
	if shorter == 0 {
		return None[float64]()
	}
	return Some(float64(matches) / float64(shorter))
}

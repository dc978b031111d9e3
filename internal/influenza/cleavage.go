package influenza

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jakobnissen/Influenza/internal/pairwise"
	"github.com/spf13/cobra"
)

// Pathogenicity classifies the basic-residue content of an HA cleavage
// site. A polybasic site lets host proteases outside the respiratory tract
// cleave HA, the hallmark of highly pathogenic avian influenza.
type Pathogenicity uint8

const (
	PathogenicityLow Pathogenicity = iota
	PathogenicityHigh
	PathogenicityIndeterminate
)

func (p Pathogenicity) String() string {
	switch p {
	case PathogenicityLow:
		return "low"
	case PathogenicityHigh:
		return "high"
	default:
		return "indeterminate"
	}
}

// cleavageTemplate is the 31-residue HA cleavage-site region the input is
// located against; the site itself sits in template window [9, 20].
const cleavageTemplate = "LATGLRNSPQRERRRKRGLFGAIAGFIEGGW"

const (
	cleavageWindowStart = 9
	cleavageWindowEnd   = 20
	cleavageWindowMin   = 9
	cleavagePreceding   = 5
)

// CleavageSite is a located HA proteolytic-cleavage motif and its
// pathogenicity classification.
type CleavageSite struct {
	Motif         string
	Pathogenicity Pathogenicity
}

// AnalyzeCleavageSite locates the conserved cleavage motif in a translated
// HA protein and classifies its pathogenicity from the five residues ahead
// of the cleaved basic residue. Absent when no recognizable motif exists.
func AnalyzeCleavageSite(protein string) (Opt[CleavageSite], error) {
	cols, _, tOff, err := pairwise.Local(protein, cleavageTemplate, pairwise.Protein())
	if err != nil {
		return None[CleavageSite](), err
	}

	// Collect the input residues aligned inside the template window,
	// skipping input-side gaps.
	tpos := tOff
	var window []byte
	for _, c := range cols {
		if c.B == pairwise.Gap {
			continue
		}
		tpos++
		if tpos >= cleavageWindowStart && tpos <= cleavageWindowEnd && c.A != pairwise.Gap {
			window = append(window, c.A)
		}
	}

	// The motif is one basic residue followed by GLF, ending exactly at the
	// window's last residue.
	n := len(window)
	if n < cleavageWindowMin || !bytes.HasSuffix(window, []byte("GLF")) || !isBasic(window[n-4]) {
		return None[CleavageSite](), nil
	}

	basic := 0
	for _, r := range window[n-4-cleavagePreceding : n-4] {
		if isBasic(r) {
			basic++
		}
	}

	site := CleavageSite{Motif: string(window)}
	switch {
	case basic >= 4:
		site.Pathogenicity = PathogenicityHigh
	case basic == 3:
		site.Pathogenicity = PathogenicityIndeterminate
	default:
		site.Pathogenicity = PathogenicityLow
	}
	return Some(site), nil
}

func isBasic(r byte) bool { return r == 'R' || r == 'K' }

// CleavageCmd classifies the HA cleavage site of a protein sequence passed
// on the command line or read from a FASTA file.
func CleavageCmd(cmd *cobra.Command, args []string) {
	var protein string
	if len(args) > 0 {
		protein = strings.ToUpper(args[0])
	} else {
		in, err := cmd.Flags().GetString("in")
		if in == "" || err != nil {
			cmd.Help()
			stderr.Fatalln("\nno protein sequence passed.")
		}
		records, err := readFasta(in, pairwise.ProteinAlphabet())
		if err != nil {
			stderr.Fatalln(err)
		}
		if len(records) == 0 {
			stderr.Fatalf("no sequences in %s", in)
		}
		protein = strings.ToUpper(records[0].seq)
	}

	site, err := AnalyzeCleavageSite(protein)
	if err != nil {
		stderr.Fatalln(err)
	}
	s, ok := site.Get()
	if !ok {
		fmt.Println("no cleavage motif found")
		return
	}
	fmt.Printf("motif: %s\npathogenicity: %s\n", s.Motif, s.Pathogenicity)
}

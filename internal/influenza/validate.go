package influenza

import (
	"fmt"
	"time"

	"github.com/jakobnissen/Influenza/config"
	"github.com/jakobnissen/Influenza/internal/pairwise"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ValidateCmd runs validation from a cobra command: read assemblies and
// references, validate each assembly against its reference, write the
// report.
func ValidateCmd(cmd *cobra.Command, args []string) {
	flags := parseCmdFlags(cmd)
	conf := config.New()
	start := time.Now()

	assemblies, err := ReadAssemblies(flags.in)
	if err != nil {
		stderr.Fatalln(err)
	}
	if len(assemblies) == 0 {
		stderr.Fatalf("no assemblies in %s", flags.in)
	}
	refs, err := ReadReferences(flags.refs)
	if err != nil {
		stderr.Fatalln(err)
	}

	results, err := ValidateAll(assemblies, refs, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	if _, err := writeJSON(flags.out, results, time.Since(start).Seconds()); err != nil {
		stderr.Fatalln(err)
	}
	if conf.Verbose {
		fmt.Printf("validated %d assemblies in %s\n", len(results), time.Since(start))
	}
}

// ValidateAll validates every assembly against the reference matching its
// segment. Assemblies are independent of each other, so they run in
// parallel; each task gets its own immutable inputs.
func ValidateAll(assemblies []Assembly, refs []Reference, conf *config.Config) ([]*AlignedAssembly, error) {
	results := make([]*AlignedAssembly, len(assemblies))
	var g errgroup.Group
	for i := range assemblies {
		i := i
		g.Go(func() error {
			ref, err := matchReference(assemblies[i], refs)
			if err != nil {
				return err
			}
			results[i], err = Validate(assemblies[i], ref, conf)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func matchReference(a Assembly, refs []Reference) (Reference, error) {
	if seg, ok := a.Segment.Get(); ok {
		for _, r := range refs {
			if r.Segment == seg {
				return r, nil
			}
		}
		return Reference{}, fmt.Errorf("no reference for segment %s of %s", seg, a.Name)
	}
	if len(refs) == 1 {
		return refs[0], nil
	}
	return Reference{}, fmt.Errorf("segment of %s is unknown and more than one reference was given", a.Name)
}

// Validate aligns one assembly against a compatible reference, exactly
// once, and derives everything else from that alignment. It fails outright
// when both segments are known and disagree: that is a data-setup error,
// not a property of the sample. Findings never stop validation early.
func Validate(a Assembly, ref Reference, conf *config.Config) (*AlignedAssembly, error) {
	if seg, ok := a.Segment.Get(); ok && seg != ref.Segment {
		return nil, fmt.Errorf(
			"assembly %s is segment %s but reference %s is segment %s",
			a.Name, seg, ref.Name, ref.Segment,
		)
	}

	cols, err := pairwise.Global(a.Seq, ref.Seq, pairwise.Nucleotide())
	if err != nil {
		return nil, fmt.Errorf("failed to align %s against %s: %v", a.Name, ref.Name, err)
	}

	identity := Identity(cols)
	aligned := &AlignedAssembly{
		Assembly:  a,
		Reference: ref,
		Alignment: cols,
		Identity:  identity,
	}

	if id, ok := identity.Get(); !ok || id < conf.MinIdentity {
		aligned.Errors = append(aligned.Errors, LowIdentity{Identity: identity})
	}
	if conf.MinLength > 0 && len(a.Seq) < conf.MinLength {
		aligned.Errors = append(aligned.Errors, TooShort{Length: len(a.Seq), MinLength: conf.MinLength})
	}

	for _, rp := range ref.Proteins {
		res := scanProtein(cols, rp.mask(len(ref.Seq)))
		ap := AssemblyProtein{Name: rp.Name, Errors: res.errs, Indels: res.indels}

		if len(res.nt) == 0 {
			// Nothing coding was reconstructed; translating nothing is
			// meaningless, so ORFs and identity stay absent.
			aligned.Errors = append(aligned.Errors, MissingProtein{Protein: rp.Name})
		} else {
			ap.ORFs = Some(res.orfs)
			protein := Translate(string(res.nt))
			ap.AminoAcids = Some(protein)

			refProtein := Translate(trimStop(codingSequence(ref.Seq, rp.ORFs)))
			pcols, err := pairwise.Global(protein, refProtein, pairwise.Protein())
			if err != nil {
				return nil, fmt.Errorf("failed to align protein %s of %s: %v", rp.Name, a.Name, err)
			}
			ap.Identity = Identity(pcols)
		}
		aligned.Proteins = append(aligned.Proteins, ap)
	}

	if flags, ok := a.Insignificant.Get(); ok {
		n := 0
		for _, f := range flags {
			if f {
				n++
			}
		}
		if n > 0 {
			aligned.Errors = append(aligned.Errors, Insignificant{Count: n})
		}
	}
	if n := countAmbiguous(a.Seq); n > 0 {
		aligned.Errors = append(aligned.Errors, Ambiguous{Count: n})
	}

	if ref.Segment == HA {
		for _, ap := range aligned.Proteins {
			protein, ok := ap.AminoAcids.Get()
			if !ok {
				continue
			}
			site, err := AnalyzeCleavageSite(protein)
			if err != nil {
				return nil, err
			}
			aligned.Cleavage = site
			break
		}
	}

	return aligned, nil
}

// codingSequence concatenates the reference bases under the protein's ORF
// ranges, splicing out any intron between them.
func codingSequence(seq string, orfs []Range) string {
	var cds []byte
	for _, r := range orfs {
		cds = append(cds, seq[r.Start-1:r.End]...)
	}
	return string(cds)
}

// trimStop removes a trailing stop codon so translations compare stop-free.
func trimStop(cds string) string {
	if n := len(cds); n >= 3 {
		last := [3]byte{cds[n-3], cds[n-2], cds[n-1]}
		if isStop(last) {
			return cds[:n-3]
		}
	}
	return cds
}

func countAmbiguous(seq string) int {
	n := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
		default:
			n++
		}
	}
	return n
}

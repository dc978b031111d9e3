package influenza

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/jakobnissen/Influenza/internal/pairwise"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags like "in", "refs" and "out" used by the
// validate command.
type Flags struct {
	// the FASTA file with assembled segments
	in string

	// the JSON file with curated references
	refs string

	// the name of the file to write the report to
	out string
}

// parseCmdFlags gathers the in path, refs path and out path from a cobra
// cmd object.
func parseCmdFlags(cmd *cobra.Command) *Flags {
	fs := &Flags{}
	var err error

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		cmd.Help()
		stderr.Fatalln("\nno input FASTA passed.")
	}
	if fs.refs, err = cmd.Flags().GetString("refs"); fs.refs == "" || err != nil {
		cmd.Help()
		stderr.Fatalln("\nno reference JSON passed.")
	}
	if fs.out, err = cmd.Flags().GetString("out"); err != nil || fs.out == "" {
		fs.out = guessOutput(fs.in)
	}
	return fs
}

// guessOutput names the report after the input file.
func guessOutput(in string) string {
	base := strings.TrimSuffix(in, ".fa")
	base = strings.TrimSuffix(base, ".fasta")
	return base + ".report.json"
}

type fastaRecord struct {
	name string
	seq  string
}

func readFasta(path string, alpha alphabet.Alphabet) ([]fastaRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alpha)))
	var records []fastaRecord
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		b := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			b[i] = byte(l)
		}
		records = append(records, fastaRecord{name: s.ID, seq: string(b)})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	return records, nil
}

// ReadAssemblies reads assembled segments from a FASTA file. Lower-case
// basecalls mark insignificantly called bases, and a trailing _HA style
// name token sets the segment; names without one leave it unknown.
func ReadAssemblies(path string) ([]Assembly, error) {
	records, err := readFasta(path, pairwise.DNAAlphabet())
	if err != nil {
		return nil, err
	}

	assemblies := make([]Assembly, 0, len(records))
	for _, r := range records {
		if len(r.seq) == 0 {
			return nil, fmt.Errorf("assembly %s in %s has no sequence", r.name, path)
		}
		flags := make([]bool, len(r.seq))
		for i := 0; i < len(r.seq); i++ {
			flags[i] = 'a' <= r.seq[i] && r.seq[i] <= 'z'
		}
		assemblies = append(assemblies, Assembly{
			Name:          r.name,
			Seq:           strings.ToUpper(r.seq),
			Segment:       guessSegment(r.name),
			Insignificant: Some(flags),
		})
	}
	return assemblies, nil
}

// guessSegment takes the last _-separated token of a record name as its
// segment when it parses as one.
func guessSegment(name string) Opt[Segment] {
	i := strings.LastIndexByte(name, '_')
	if i < 0 || i == len(name)-1 {
		return None[Segment]()
	}
	seg, err := ParseSegment(name[i+1:])
	if err != nil {
		return None[Segment]()
	}
	return Some(seg)
}

// referenceRecord is the wire form of one curated reference.
type referenceRecord struct {
	Name     string `json:"name"`
	Segment  string `json:"segment"`
	Seq      string `json:"seq"`
	Proteins []struct {
		Name string  `json:"name"`
		ORFs []Range `json:"orfs"`
	} `json:"proteins"`
}

// ReadReferences loads and validates the curated reference database.
func ReadReferences(path string) ([]Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []referenceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse references %s: %v", path, err)
	}

	refs := make([]Reference, 0, len(records))
	for _, w := range records {
		seg, err := ParseSegment(w.Segment)
		if err != nil {
			return nil, fmt.Errorf("reference %s: %v", w.Name, err)
		}
		seq := strings.ToUpper(w.Seq)
		proteins := make([]ReferenceProtein, 0, len(w.Proteins))
		for _, p := range w.Proteins {
			rp, err := NewReferenceProtein(p.Name, p.ORFs, len(seq))
			if err != nil {
				return nil, fmt.Errorf("reference %s: %v", w.Name, err)
			}
			proteins = append(proteins, rp)
		}
		ref, err := NewReference(w.Name, seg, seq, proteins)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

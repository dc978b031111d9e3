package influenza

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

func testAlignedAssembly(t *testing.T) *AlignedAssembly {
	t.Helper()
	ref := testReference(t)
	return &AlignedAssembly{
		Assembly:  Assembly{Name: "sample", Seq: ref.Seq, Segment: Some(NP)},
		Reference: ref,
		Identity:  Some(0.97),
		Errors:    []SegmentError{Ambiguous{Count: 2}},
		Proteins: []AssemblyProtein{{
			Name:       "NP",
			ORFs:       Some([]Range{{4, 15}}),
			Identity:   Some(1.0),
			AminoAcids: Some("MKF"),
			Errors:     []ProteinError{NoStop{}},
		}},
		Cleavage: Some(CleavageSite{Motif: "PLREKRRKRGLF", Pathogenicity: PathogenicityHigh}),
	}
}

func Test_makeReport(t *testing.T) {
	got := makeReport(testAlignedAssembly(t))

	if got.Assembly != "sample" || got.Reference != "A/ref/1" || got.Segment != "NP" {
		t.Errorf("header = %s / %s / %s", got.Assembly, got.Reference, got.Segment)
	}
	if len(got.Errors) != 1 || got.Errors[0] != "assembly has 2 ambiguous bases" {
		t.Errorf("errors = %v", got.Errors)
	}
	if len(got.Proteins) != 1 {
		t.Fatalf("got %d proteins, want 1", len(got.Proteins))
	}
	p := got.Proteins[0]
	if p.Name != "NP" || len(p.Errors) != 1 {
		t.Errorf("protein report = %+v", p)
	}
	if got.Cleavage == nil || got.Cleavage.Pathogenicity != "high" {
		t.Errorf("cleavage report = %+v", got.Cleavage)
	}
}

func Test_makeReport_noFindings(t *testing.T) {
	aligned := testAlignedAssembly(t)
	aligned.Errors = nil
	aligned.Cleavage = None[CleavageSite]()
	got := makeReport(aligned)

	// The report always carries an array, never null, so downstream readers
	// can index unconditionally.
	if got.Errors == nil || len(got.Errors) != 0 {
		t.Errorf("errors = %#v, want an empty array", got.Errors)
	}
	if got.Cleavage != nil {
		t.Errorf("cleavage = %+v, want omitted", got.Cleavage)
	}
}

func Test_writeJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	output, err := writeJSON(path, []*AlignedAssembly{testAlignedAssembly(t)}, 1.25)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		Time      string  `json:"time"`
		Execution float64 `json:"execution"`
		Results   []struct {
			Assembly string  `json:"assembly"`
			Identity float64 `json:"identity"`
		} `json:"results"`
	}
	if err := json.Unmarshal(output, &out); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if out.Execution != 1.25 {
		t.Errorf("execution = %v, want 1.25", out.Execution)
	}
	if out.Time == "" {
		t.Error("report has no timestamp")
	}
	if len(out.Results) != 1 || out.Results[0].Assembly != "sample" {
		t.Fatalf("results = %+v", out.Results)
	}
	if out.Results[0].Identity != 0.97 {
		t.Errorf("identity = %v, want 0.97", out.Results[0].Identity)
	}
}

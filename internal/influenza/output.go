package influenza

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ProteinReport is one protein's outcome in the JSON report.
type ProteinReport struct {
	Name     string       `json:"name"`
	ORFs     Opt[[]Range] `json:"orfs"`
	Identity Opt[float64] `json:"identity"`
	Errors   []string     `json:"errors"`
}

// CleavageReport is the HA cleavage-site classification, when one was made.
type CleavageReport struct {
	Motif         string `json:"motif"`
	Pathogenicity string `json:"pathogenicity"`
}

// AssemblyReport is one validated assembly in the JSON report.
type AssemblyReport struct {
	Assembly  string          `json:"assembly"`
	Reference string          `json:"reference"`
	Segment   string          `json:"segment"`
	Identity  Opt[float64]    `json:"identity"`
	Errors    []string        `json:"errors"`
	Proteins  []ProteinReport `json:"proteins"`
	Cleavage  *CleavageReport `json:"cleavage,omitempty"`
}

// Output is the root of the JSON report.
type Output struct {
	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to run the validation
	Execution float64 `json:"execution"`

	// Results, one per input assembly
	Results []AssemblyReport `json:"results"`
}

// writeJSON renders the validated assemblies to the filename requested.
func writeJSON(filename string, results []*AlignedAssembly, seconds float64) ([]byte, error) {
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out := Output{Time: stamp, Execution: seconds, Results: []AssemblyReport{}}
	for _, r := range results {
		out.Results = append(out.Results, makeReport(r))
	}

	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize the report: %v", err)
	}
	if err := os.WriteFile(filename, output, 0644); err != nil {
		return nil, fmt.Errorf("failed to write the report to %s: %v", filename, err)
	}
	return output, nil
}

func makeReport(r *AlignedAssembly) AssemblyReport {
	rep := AssemblyReport{
		Assembly:  r.Assembly.Name,
		Reference: r.Reference.Name,
		Segment:   r.Reference.Segment.String(),
		Identity:  r.Identity,
		Errors:    []string{},
	}
	for _, e := range r.Errors {
		rep.Errors = append(rep.Errors, SegmentMessage(e))
	}
	for _, p := range r.Proteins {
		pr := ProteinReport{Name: p.Name, ORFs: p.ORFs, Identity: p.Identity, Errors: []string{}}
		for _, e := range p.Errors {
			pr.Errors = append(pr.Errors, ProteinMessage(e))
		}
		rep.Proteins = append(rep.Proteins, pr)
	}
	if site, ok := r.Cleavage.Get(); ok {
		rep.Cleavage = &CleavageReport{Motif: site.Motif, Pathogenicity: site.Pathogenicity.String()}
	}
	return rep
}

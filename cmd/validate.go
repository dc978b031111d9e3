package cmd

import (
	"github.com/jakobnissen/Influenza/internal/influenza"
	"github.com/spf13/cobra"
)

// validateCmd validates assembled segments against curated references.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate assembled segments against curated references",
	Long: `Align each assembled segment against the reference for its segment,
score the whole-sequence identity, reconstruct every annotated protein's
coding region, and report the indels, frameshifts, truncations and
stop-codon anomalies found along the way.

Assemblies are read from a FASTA file; lower-case basecalls are treated as
insignificantly called bases and a trailing _HA style name token sets the
segment. References come from a curated JSON database.`,
	Run: influenza.ValidateCmd,
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("in", "i", "", "FASTA file with assembled segments")
	validateCmd.Flags().StringP("refs", "r", "", "JSON file with curated references")
	validateCmd.Flags().StringP("out", "o", "", "path to write the validation report to")
}

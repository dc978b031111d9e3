package cmd

import (
	"github.com/jakobnissen/Influenza/internal/influenza"
	"github.com/spf13/cobra"
)

// cleavageCmd classifies the pathogenicity of an HA cleavage site.
var cleavageCmd = &cobra.Command{
	Use:   "cleavage [protein sequence]",
	Short: "Locate and classify an HA cleavage site",
	Long: `Locate the conserved proteolytic-cleavage motif in a translated HA
protein and classify its pathogenicity from the basic-residue content
ahead of the cleaved residue. The protein is passed as an argument or
read from a FASTA file.`,
	Run: influenza.CleavageCmd,
}

func init() {
	RootCmd.AddCommand(cleavageCmd)

	cleavageCmd.Flags().StringP("in", "i", "", "FASTA file with a translated HA protein")
}

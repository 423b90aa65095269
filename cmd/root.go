package cmd

import (
	"github.com/samplemap/clipgen/constants"
	"github.com/spf13/cobra"
)

var outRoot string

var rootCmd = &cobra.Command{
	Use:   "clipgen",
	Short: "Generates MIDI clips for sample mapping",
	Long: `Generates small single-track MIDI files that map notes and chords
onto specific pitches, ready to drag into a DAW for sample mapping.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outRoot, "out", constants.GetOutRoot(),
		"root directory for generated files")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

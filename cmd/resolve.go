package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/samplemap/clipgen/pitch"
	"github.com/spf13/cobra"
)

var resolveNotation string

func init() {
	resolveCmd.Flags().StringVar(&resolveNotation, "notation", "ableton", "octave naming convention (ableton or standard)")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <note>...",
	Short: "Prints the MIDI mapping of note names without writing files",
	Long: `Prints the MIDI number, frequency and display name under both octave
conventions for each note name. Example:

  clipgen resolve C3 F#2 --notation ableton`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, err := pitch.ParseConvention(resolveNotation)
		if err != nil {
			return err
		}

		for _, name := range args {
			midi, err := pitch.Parse(name, conv)
			if err != nil {
				color.Yellow("%v: %v", name, err)
				continue
			}
			fmt.Printf("%v (%v notation)\n", name, conv)
			fmt.Printf("  MIDI number: %v\n", midi)
			fmt.Printf("  Frequency: %.2f Hz\n", pitch.Frequency(midi))
			fmt.Printf("  Ableton display: %v\n", pitch.Name(midi, pitch.Ableton))
			fmt.Printf("  Standard display: %v\n", pitch.Name(midi, pitch.Standard))
		}
		return nil
	},
}

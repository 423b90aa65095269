package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samplemap/clipgen/batch"
	"github.com/samplemap/clipgen/chord"
	"github.com/samplemap/clipgen/constants"
	"github.com/samplemap/clipgen/model"
	"github.com/samplemap/clipgen/pitch"
	"github.com/spf13/cobra"
)

const triadsDir = "midi_files_ableton_triads"

var (
	chordsDuration uint32
	chordsBPM      float64
)

func init() {
	chordsCmd.Flags().Uint32Var(&chordsDuration, "duration", constants.DefaultDurationTicks, "chord length in ticks")
	chordsCmd.Flags().Float64Var(&chordsBPM, "bpm", constants.DefaultBPM, "tempo written into each file")
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords <start> <end>",
	Short: "Generates all four triads for every root in a range",
	Long: `Generates Major, Minor, Diminished and Augmented triads for every
chromatic root in the inclusive range (Ableton notation), ordered root
first then triad type. Example:

  clipgen chords C3 C5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		roots, err := pitch.Range(args[0], args[1], pitch.Ableton)
		if err != nil {
			return err
		}

		var specs []model.ChordSpec
		for _, root := range roots {
			for _, triad := range chord.Triads {
				specs = append(specs, model.ChordSpec{
					Root:  root,
					Triad: triad.String(),
					Label: fmt.Sprintf("%v %v", root, triad),
				})
			}
		}

		rangeName := strings.ReplaceAll(fmt.Sprintf("range_%v_to_%v", args[0], args[1]), "#", "sharp")
		dir := filepath.Join(outRoot, triadsDir, rangeName)

		fmt.Printf("Generating %v chord triads from %v to %v\n", len(specs), args[0], args[1])
		n, err := batch.GenerateChords(specs, batch.Options{
			OutDir:        dir,
			DurationTicks: chordsDuration,
			BPM:           chordsBPM,
			Convention:    pitch.Ableton,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created %v chord files in %v\n", n, dir)
		return nil
	},
}

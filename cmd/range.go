package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/samplemap/clipgen/batch"
	"github.com/samplemap/clipgen/constants"
	"github.com/samplemap/clipgen/model"
	"github.com/samplemap/clipgen/pitch"
	"github.com/spf13/cobra"
)

var (
	rangeNotation string
	rangeDuration uint32
	rangeBPM      float64
	rangeDir      string
)

func init() {
	rangeCmd.Flags().StringVar(&rangeNotation, "notation", "ableton", "octave naming convention (ableton or standard)")
	rangeCmd.Flags().Uint32Var(&rangeDuration, "duration", constants.DefaultDurationTicks, "note length in ticks")
	rangeCmd.Flags().Float64Var(&rangeBPM, "bpm", constants.DefaultBPM, "tempo written into each file")
	rangeCmd.Flags().StringVar(&rangeDir, "dir", "", "output directory name (default derived from notation)")
	rootCmd.AddCommand(rangeCmd)
}

var rangeCmd = &cobra.Command{
	Use:   "range <start> <end>",
	Short: "Generates every chromatic note in a range",
	Long: `Generates one MIDI file per chromatic note in the inclusive range,
numbered from the lowest to the highest pitch. Example:

  clipgen range C0 C6 --notation ableton`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, err := pitch.ParseConvention(rangeNotation)
		if err != nil {
			return err
		}

		names, err := pitch.Range(args[0], args[1], conv)
		if err != nil {
			return err
		}

		dir := rangeDir
		if dir == "" {
			dir = fmt.Sprintf("midi_files_%v_sequential", conv)
		}

		specs := make([]model.NoteSpec, 0, len(names))
		for _, name := range names {
			specs = append(specs, model.NoteSpec{Note: name, TrackName: "Note " + name})
		}

		fmt.Printf("Generating %v notes from %v to %v (%v notation)\n", len(specs), args[0], args[1], conv)
		n, err := batch.GenerateNotes(specs, batch.Options{
			OutDir:        filepath.Join(outRoot, dir),
			DurationTicks: rangeDuration,
			BPM:           rangeBPM,
			Convention:    conv,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created %v files in %v\n", n, dir)
		return nil
	},
}

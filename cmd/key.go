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
	"github.com/samplemap/clipgen/util"
	"github.com/spf13/cobra"
)

// Diatonic chord batches start on the octave holding middle C.
const keyStartOctave = 3

var (
	keyOctaves int
	keyAll     bool
)

func init() {
	keyCmd.Flags().IntVar(&keyOctaves, "octaves", 2, "number of octaves to generate")
	keyCmd.Flags().BoolVar(&keyAll, "all", false, "generate every key signature")
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key <signature>",
	Short: "Generates the diatonic triads of a key signature",
	Long: `Generates the seven diatonic triads of a key signature across one or
more octaves, each key in its own subdirectory. Example:

  clipgen key C Major --octaves 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if keyAll {
			for _, signature := range util.SortedKeys(chord.KeySignatures) {
				if err := generateKey(signature); err != nil {
					return err
				}
			}
			return nil
		}

		signature := strings.Join(args, " ")
		if signature == "" {
			return fmt.Errorf("name a key signature (e.g. \"C Major\") or pass --all")
		}
		return generateKey(signature)
	},
}

func generateKey(signature string) error {
	key, err := chord.LookupKey(signature)
	if err != nil {
		return err
	}

	var specs []model.ChordSpec
	for octave := keyStartOctave; octave < keyStartOctave+keyOctaves; octave++ {
		for _, chordName := range key.Chords {
			root, triad, err := chord.ParseName(chordName)
			if err != nil {
				return fmt.Errorf("bad chord %q in key %v: %w", chordName, signature, err)
			}
			rootNote := fmt.Sprintf("%v%v", root, octave)
			specs = append(specs, model.ChordSpec{
				Root:  rootNote,
				Triad: triad.String(),
				Label: fmt.Sprintf("%v %v", rootNote, triad),
			})
		}
	}

	dir := filepath.Join(outRoot, triadsDir, "key_"+util.SafeKeyName(signature))
	fmt.Printf("Generating %v chords for %v\n", len(specs), signature)

	n, err := batch.GenerateChords(specs, batch.Options{
		OutDir:        dir,
		DurationTicks: constants.DefaultDurationTicks,
		Convention:    pitch.Ableton,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created %v files in %v\n", n, dir)
	fmt.Printf("Progression in %v:\n", signature)
	numerals := key.RomanNumerals()
	for i, chordName := range key.Chords {
		fmt.Printf("  %-4v %v\n", numerals[i], chordName)
	}
	fmt.Println()
	return nil
}

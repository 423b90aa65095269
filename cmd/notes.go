package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/samplemap/clipgen/batch"
	"github.com/samplemap/clipgen/layout"
	"github.com/samplemap/clipgen/pitch"
	"github.com/spf13/cobra"
)

var notesAll bool

func init() {
	notesCmd.Flags().BoolVar(&notesAll, "all", false, "generate every built-in layout")
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes [layout...]",
	Short: "Generates the note files for instrument layouts",
	Long: `Generates the note files for one or more built-in instrument layouts.
Each layout gets its own output directory; files are numbered from the
lowest to the highest trigger note.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if notesAll {
			names = layout.Names()
		}
		if len(names) == 0 {
			return fmt.Errorf("name at least one layout or pass --all (known: %v)", layout.Names())
		}
		return RunNotes(names, outRoot)
	},
}

// RunNotes generates the named layouts under root.
func RunNotes(names []string, root string) error {
	for _, name := range names {
		l, err := layout.Get(name)
		if err != nil {
			return err
		}

		fmt.Printf("Generating %v notes in %v\n", len(l.Entries), l.Dir)
		n, err := batch.GenerateNotes(l.Entries, batch.Options{
			OutDir:        filepath.Join(root, l.Dir),
			PadWidth:      l.PadWidth,
			DurationTicks: l.DurationTicks,
			Convention:    pitch.Ableton,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created %v of %v files for %v\n\n", n, len(l.Entries), name)
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/samplemap/clipgen/layout"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(layoutsCmd)
}

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Lists the built-in instrument layouts",
	Long:  `Lists the built-in instrument layouts`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range layout.Names() {
			l := layout.Layouts[name]
			first := l.Entries[0].Note
			last := l.Entries[len(l.Entries)-1].Note
			fmt.Printf("%-12v %3v notes  %v..%v  -> %v\n", name, len(l.Entries), first, last, l.Dir)
		}
	},
}

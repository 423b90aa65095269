// Package batch turns tables of note and chord specs into numbered
// MIDI files: resolve every entry, sort ascending by pitch, number from
// 1 in sorted order, render and write. Entries that fail to resolve are
// reported and skipped without aborting the rest.
package batch

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/samplemap/clipgen/chord"
	"github.com/samplemap/clipgen/clip"
	"github.com/samplemap/clipgen/constants"
	"github.com/samplemap/clipgen/file"
	"github.com/samplemap/clipgen/model"
	"github.com/samplemap/clipgen/pitch"
)

type Options struct {
	OutDir        string
	PadWidth      int
	DurationTicks uint32
	BPM           float64
	Convention    pitch.Convention
}

func (o Options) withDefaults(padWidth int) Options {
	if o.PadWidth == 0 {
		o.PadWidth = padWidth
	}
	if o.DurationTicks == 0 {
		o.DurationTicks = constants.DefaultDurationTicks
	}
	if o.BPM == 0 {
		o.BPM = constants.DefaultBPM
	}
	return o
}

type resolvedEntry struct {
	label     string
	trackName string
	sortKey   uint8
	notes     []uint8
	velocity  []uint8
}

var (
	created = color.New(color.FgGreen)
	skipped = color.New(color.FgYellow)
)

// GenerateNotes writes one single-note clip per spec. Returns the
// number of files created.
func GenerateNotes(specs []model.NoteSpec, opts Options) (int, error) {
	opts = opts.withDefaults(constants.NotePadWidth)

	var entries []resolvedEntry
	for _, spec := range specs {
		midi, err := pitch.Parse(spec.Note, opts.Convention)
		if err != nil {
			skipped.Printf("Skipping %v: %v\n", spec.Note, err)
			continue
		}
		trackName := spec.TrackName
		if trackName == "" {
			trackName = "Note " + spec.Note
		}
		entries = append(entries, resolvedEntry{
			label:     trackName,
			trackName: trackName,
			sortKey:   midi,
			notes:     []uint8{midi},
		})
	}

	return writeAll(entries, opts)
}

// GenerateChords writes one triad clip per spec.
func GenerateChords(specs []model.ChordSpec, opts Options) (int, error) {
	opts = opts.withDefaults(constants.ChordPadWidth)

	var entries []resolvedEntry
	for _, spec := range specs {
		root, err := pitch.Parse(spec.Root, opts.Convention)
		if err != nil {
			skipped.Printf("Skipping %v %v: %v\n", spec.Root, spec.Triad, err)
			continue
		}
		triad, err := chord.ParseTriad(spec.Triad)
		if err != nil {
			skipped.Printf("Skipping %v %v: %v\n", spec.Root, spec.Triad, err)
			continue
		}
		notes, err := chord.Build(root, triad)
		if err != nil {
			skipped.Printf("Skipping %v %v: %v\n", spec.Root, spec.Triad, err)
			continue
		}
		label := spec.Label
		if label == "" {
			label = fmt.Sprintf("%v %v", spec.Root, triad)
		}
		entries = append(entries, resolvedEntry{
			label:     label,
			trackName: label,
			sortKey:   root,
			notes:     notes[:],
			velocity:  constants.TriadVelocities[:],
		})
	}

	return writeAll(entries, opts)
}

func writeAll(entries []resolvedEntry, opts Options) (int, error) {
	// Stable sort so triads on the same root keep their declared order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sortKey < entries[j].sortKey
	})

	var numCreated int
	for i, entry := range entries {
		c := clip.Clip{
			TrackName:     entry.trackName,
			BPM:           opts.BPM,
			DurationTicks: opts.DurationTicks,
			Notes:         entry.notes,
			Velocities:    entry.velocity,
		}
		s, err := c.SMF()
		if err != nil {
			return numCreated, err
		}

		filename := file.Name(i+1, opts.PadWidth, entry.label)
		if err := file.WriteSMF(opts.OutDir, filename, s); err != nil {
			return numCreated, err
		}
		numCreated++
		report(filename, entry, c)
	}
	return numCreated, nil
}

func report(filename string, entry resolvedEntry, c clip.Clip) {
	created.Printf("Created: %v\n", filename)
	fmt.Printf("  Track name: %q\n", entry.trackName)
	for _, note := range entry.notes {
		fmt.Printf("  MIDI %v: %.2f Hz, %v ableton / %v standard\n",
			note, pitch.Frequency(note),
			pitch.Name(note, pitch.Ableton), pitch.Name(note, pitch.Standard))
	}
	fmt.Printf("  Duration: %v ticks (%.1f bars at %v BPM)\n", c.DurationTicks, c.Bars(), c.BPM)
}

// Package layout holds the built-in instrument note maps. Each layout
// mirrors the trigger-key chart of one virtual instrument so the
// generated clips line up with its phrases, fills and style switches.
package layout

import (
	"fmt"

	"github.com/samplemap/clipgen/constants"
	"github.com/samplemap/clipgen/model"
	"github.com/samplemap/clipgen/util"
)

type Layout struct {
	// Dir is the per-instrument output directory name.
	Dir           string
	PadWidth      int
	DurationTicks uint32
	Entries       []model.NoteSpec
}

func Get(name string) (Layout, error) {
	l, ok := Layouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("unknown layout %q (known: %v)", name, Names())
	}
	return l, nil
}

func Names() []string {
	return util.SortedKeys(Layouts)
}

var Layouts = map[string]Layout{
	"beatmaker": {
		Dir:           "notes_beatmaker",
		PadWidth:      constants.NotePadWidth,
		DurationTicks: constants.LayoutDurationTicks,
		Entries: []model.NoteSpec{
			{Note: "C#1", TrackName: "Intro C#1"},
			{Note: "D#1", TrackName: "Fill D#1"},
			{Note: "F#1", TrackName: "Verse 1 F#1"},
			{Note: "G#1", TrackName: "Verse 2 G#1"},
			{Note: "A#1", TrackName: "Fill A#1"},
			{Note: "C#2", TrackName: "Chorus 1 C#2"},
			{Note: "D#2", TrackName: "Chorus 2 D#2"},
			{Note: "F#2", TrackName: "Break F#2"},
			{Note: "G#2", TrackName: "Special G#2"},
			{Note: "A#2", TrackName: "Ending A#2"},
		},
	},
	"pianist": {
		Dir:           "notes_pianist",
		PadWidth:      constants.NotePadWidth,
		DurationTicks: constants.LayoutDurationTicks,
		Entries: []model.NoteSpec{
			{Note: "C1", TrackName: "Phrase 1 C1"},
			{Note: "C#1", TrackName: "Low Chord C#1"},
			{Note: "D1", TrackName: "Phrase 2 D1"},
			{Note: "D#1", TrackName: "High Chord D#1"},
			{Note: "E1", TrackName: "Phrase 3 E1"},
			{Note: "F1", TrackName: "Phrase 4 F1"},
			{Note: "F#1", TrackName: "Fill 1 F#1"},
			{Note: "G1", TrackName: "Phrase 5 G1"},
			{Note: "G#1", TrackName: "Fill 2 G#1"},
			{Note: "A1", TrackName: "Phrase 6 A1"},
			{Note: "A#1", TrackName: "Fill 3 for A#1"},
			{Note: "B1", TrackName: "Phrase 7 B1"},
		},
	},
	"usynth": {
		Dir:           "notes_usynth",
		PadWidth:      constants.NotePadWidth,
		DurationTicks: constants.LayoutDurationTicks,
		Entries: []model.NoteSpec{
			{Note: "C1", TrackName: "Loop 1 C1"},
			{Note: "C#1", TrackName: "Mute C#1"},
			{Note: "D1", TrackName: "Loop 2 D1"},
			{Note: "D#1", TrackName: "Repeat D#1"},
			{Note: "E1", TrackName: "Loop 3 E1"},
			{Note: "F1", TrackName: "Loop 4 F1"},
			{Note: "F#1", TrackName: "Time x2 F#1"},
			{Note: "G1", TrackName: "Loop 5 G1"},
			{Note: "G#1", TrackName: "Time x3 G#1"},
			{Note: "A1", TrackName: "Loop 6 A1"},
			{Note: "A#1", TrackName: "Time x4 A#1"},
			{Note: "B1", TrackName: "Stop B1"},
		},
	},
	"playbeat": {
		Dir:           "notes_playbeat",
		PadWidth:      constants.NotePadWidth,
		DurationTicks: constants.LayoutDurationTicks,
		Entries: []model.NoteSpec{
			{Note: "C3", TrackName: "Original C3"},
			{Note: "C#3", TrackName: "Remix 1 C#3"},
			{Note: "D3", TrackName: "Remix 2 D3"},
			{Note: "D#3", TrackName: "Remix 3 D#3"},
			{Note: "E3", TrackName: "Remix 4 E3"},
			{Note: "F3", TrackName: "Remix 5 F3"},
			{Note: "F#3", TrackName: "Remix 6 F#3"},
			{Note: "G3", TrackName: "Remix 7 G3"},
			{Note: "G#3", TrackName: "Remix 8 G#3"},
			{Note: "A3", TrackName: "Remix 9 A3"},
			{Note: "A#3", TrackName: "Remix 10 A#3"},
			{Note: "B3", TrackName: "Remix 11 B3"},
			{Note: "C4", TrackName: "Remix 12 C4"},
			{Note: "C#4", TrackName: "Remix 13 C#4"},
			{Note: "D4", TrackName: "Remix 14 D4"},
			{Note: "D#4", TrackName: "Remix 15 D#4"},
			{Note: "E4", TrackName: "Remix 16 E4"},
			{Note: "F4", TrackName: "Remix 17 F4"},
			{Note: "F#4", TrackName: "Remix 18 F#4"},
			{Note: "G4", TrackName: "Remix 19 G4"},
			{Note: "G#4", TrackName: "Remix 20 G#4"},
			{Note: "A4", TrackName: "Remix 21 A4"},
			{Note: "A#4", TrackName: "Remix 22 A#4"},
			{Note: "B4", TrackName: "Remix 23 B4"},
		},
	},
	"vguitarist": {
		Dir:           "notes_v-guitarist",
		PadWidth:      constants.NotePadWidth,
		DurationTicks: constants.LayoutDurationTicks,
		Entries: []model.NoteSpec{
			{Note: "C0", TrackName: "Silence C0"},
			{Note: "C#0", TrackName: "Phrase 1 C#0"},
			{Note: "D0", TrackName: "Phrase 2 D0"},
			{Note: "D#0", TrackName: "Phrase 3 D#0"},
			{Note: "E0", TrackName: "Phrase 4 E0"},
			{Note: "F0", TrackName: "Phrase 5 F0"},
			{Note: "F#0", TrackName: "Phrase 6 F#0"},
			{Note: "G0", TrackName: "Phrase 7 G0"},
			{Note: "G#0", TrackName: "Phrase 8 G#0"},
			{Note: "A0", TrackName: "Phrase 9 A0"},
			{Note: "A#0", TrackName: "Phrase 10 A#0"},
			{Note: "B0", TrackName: "Phrase 11 B0"},
			{Note: "C1", TrackName: "Phrase 12 C1"},
			{Note: "C#1", TrackName: "Phrase 13 C#1"},
			{Note: "D1", TrackName: "Phrase 14 D1"},
			{Note: "D#1", TrackName: "Phrase 15 D#1"},
			{Note: "E1", TrackName: "Phrase 16 E1"},
			{Note: "F1", TrackName: "Phrase 17 F1"},
			{Note: "F#1", TrackName: "Phrase 18 F#1"},
			{Note: "G1", TrackName: "Phrase 19 G1"},
			{Note: "G#1", TrackName: "Phrase 20 G#1"},
			{Note: "A1", TrackName: "Phrase 21 A1"},
			{Note: "A#1", TrackName: "Phrase 22 A#1"},
			{Note: "B1", TrackName: "Phrase 23 B1"},
			{Note: "C2", TrackName: "Style 1 C2"},
			{Note: "C#2", TrackName: "Style 2 C#2"},
			{Note: "D2", TrackName: "Style 3 D2"},
			{Note: "D#2", TrackName: "Style 4 D#2"},
			{Note: "E2", TrackName: "Style 5 E2"},
			{Note: "F2", TrackName: "Style 6 F2"},
			{Note: "F#2", TrackName: "Style 7 F#2"},
			{Note: "G2", TrackName: "Style 8 G2"},
			{Note: "G#2", TrackName: "Style 9 G#2"},
			{Note: "A2", TrackName: "Style 10 A2"},
			{Note: "A#2", TrackName: "Style 11 A#2"},
			{Note: "B2", TrackName: "Stop B2"},
		},
	},
	"vbassist": {
		Dir:           "notes_v-bassist",
		PadWidth:      constants.NotePadWidth,
		DurationTicks: constants.LayoutDurationTicks,
		Entries: []model.NoteSpec{
			{Note: "C0", TrackName: "Silence C0"},
			{Note: "C#0", TrackName: "Phrase 1 C#0"},
			{Note: "D0", TrackName: "Phrase 2 D0"},
			{Note: "D#0", TrackName: "Phrase 3 D#0"},
			{Note: "E0", TrackName: "Phrase 4 E0"},
			{Note: "F0", TrackName: "Phrase 5 F0"},
			{Note: "F#0", TrackName: "Phrase 6 F#0"},
			{Note: "G0", TrackName: "Phrase 7 G0"},
			{Note: "G#0", TrackName: "Phrase 8 G#0"},
			{Note: "A0", TrackName: "Phrase 9 A0"},
			{Note: "A#0", TrackName: "Phrase 10 A#0"},
			{Note: "B0", TrackName: "Phrase 11 B0"},
			{Note: "C1", TrackName: "Phrase 12 C1"},
			{Note: "C#1", TrackName: "Intro 1 C#1"},
			{Note: "D1", TrackName: "Phrase 13 D1"},
			{Note: "D#1", TrackName: "Intro 2 D#1"},
			{Note: "E1", TrackName: "Phrase 14 E1"},
			{Note: "F1", TrackName: "Phrase 15 F1"},
			{Note: "F#1", TrackName: "Fill 1 F#1"},
			{Note: "G1", TrackName: "Phrase 16 G1"},
			{Note: "G#1", TrackName: "Fill 2 G#1"},
			{Note: "A1", TrackName: "Phrase 17 A1"},
			{Note: "A#1", TrackName: "Fill 3 A#1"},
			{Note: "B1", TrackName: "Phrase 18 B1"},
			{Note: "C2", TrackName: "Style 1 C2"},
			{Note: "C#2", TrackName: "Style Intro 1 C#2"},
			{Note: "D2", TrackName: "Style 2 D2"},
			{Note: "D#2", TrackName: "Style Intro 2 D#2"},
			{Note: "E2", TrackName: "Style 3 E2"},
			{Note: "F2", TrackName: "Style 4 F2"},
			{Note: "F#2", TrackName: "Style Fill 1 F#2"},
			{Note: "G2", TrackName: "Style 5 G2"},
			{Note: "G#2", TrackName: "Style Fill 2 G#2"},
			{Note: "A2", TrackName: "Style 6 A2"},
			{Note: "A#2", TrackName: "Style Fill 3 A#2"},
			{Note: "B2", TrackName: "Stop B2"},
		},
	},
	"drummer": {
		Dir:           "notes_drummer",
		PadWidth:      constants.NotePadWidth,
		DurationTicks: constants.LayoutDurationTicks,
		Entries: []model.NoteSpec{
			{Note: "C3", TrackName: "Verse 1 C3"},
			{Note: "C#3", TrackName: "Intro 1 C#3"},
			{Note: "D3", TrackName: "Verse 2 D3"},
			{Note: "D#3", TrackName: "Intro 2 D#3"},
			{Note: "E3", TrackName: "Verse 3 E3"},
			{Note: "F3", TrackName: "Verse 4 F3"},
			{Note: "F#3", TrackName: "Fill 1 F#3"},
			{Note: "G3", TrackName: "Verse 5 G3"},
			{Note: "G#3", TrackName: "Fill 2 G#3"},
			{Note: "A3", TrackName: "Chorus 1 A3"},
			{Note: "A#3", TrackName: "Fill 3 A#3"},
			{Note: "B3", TrackName: "Chorus 2 B3"},
			{Note: "C4", TrackName: "Chorus 3 C4"},
			{Note: "C#4", TrackName: "Ending 1 C#4"},
			{Note: "D4", TrackName: "Chorus 4 D4"},
			{Note: "D#4", TrackName: "Ending 2 D#4"},
			{Note: "E4", TrackName: "Chorus 5 E4"},
			{Note: "F4", TrackName: "Special 1 F4"},
			{Note: "F#4", TrackName: "Breakdown 1 F#4"},
			{Note: "G4", TrackName: "Special 2 G4"},
			{Note: "G#4", TrackName: "Breakdown 2 G#4"},
			{Note: "A4", TrackName: "Special 3 A4"},
			{Note: "A#4", TrackName: "Breakdown 3 A#4"},
			{Note: "B4", TrackName: "Stop B4"},
		},
	},
	"subcraft": {
		Dir:           "notes_subcraft",
		PadWidth:      constants.NotePadWidth,
		DurationTicks: constants.LayoutDurationTicks,
		Entries: []model.NoteSpec{
			{Note: "C2", TrackName: "Loop 1 C2"},
			{Note: "C#2", TrackName: "Loop 2 C#2"},
			{Note: "D2", TrackName: "Loop 3 D2"},
			{Note: "D#2", TrackName: "Stop D#2"},
			{Note: "E2", TrackName: "Loop 4 E2"},
		},
	},
	"spotlight": {
		Dir:           "notes_spotlight",
		PadWidth:      constants.NotePadWidth,
		DurationTicks: constants.LayoutDurationTicks,
		Entries: []model.NoteSpec{
			{Note: "C1", TrackName: "Pattern 1 C1"},
			{Note: "C#1", TrackName: "Pattern 2 C#1"},
			{Note: "D1", TrackName: "Pattern 3 D1"},
			{Note: "D#1", TrackName: "Pattern 4 D#1"},
			{Note: "E1", TrackName: "Pattern 5 E1"},
			{Note: "F1", TrackName: "Pattern 6 F1"},
			{Note: "F#1", TrackName: "Pattern 7 F#1"},
			{Note: "G1", TrackName: "Pattern 8 G1"},
			{Note: "G#1", TrackName: "Pattern 9 G#1"},
			{Note: "A1", TrackName: "Pattern 10 A1"},
			{Note: "A#1", TrackName: "Pattern 11 A#1"},
			{Note: "B1", TrackName: "Pattern 12 B1"},
			{Note: "C2", TrackName: "Phrase 1 C2"},
			{Note: "C#2", TrackName: "Phrase 2 C#2"},
			{Note: "D2", TrackName: "Phrase 3 D2"},
			{Note: "D#2", TrackName: "Phrase 4 D#2"},
			{Note: "E2", TrackName: "Phrase 5 E2"},
			{Note: "F2", TrackName: "Phrase 6 F2"},
			{Note: "F#2", TrackName: "Phrase 7 F#2"},
			{Note: "G2", TrackName: "Phrase 8 G2"},
			{Note: "G#2", TrackName: "Phrase 9 G#2"},
			{Note: "A2", TrackName: "Phrase 10 A2"},
			{Note: "A#2", TrackName: "Phrase 11 A#2"},
			{Note: "B2", TrackName: "Phrase 12 B2"},
		},
	},
	"drumlab": {
		Dir:           "notes_drumlab",
		PadWidth:      constants.NotePadWidth,
		DurationTicks: constants.LayoutDurationTicks,
		Entries: []model.NoteSpec{
			{Note: "C-1", TrackName: "Groove 1 C-1"},
			{Note: "C#-1", TrackName: "Groove 2 C#-1"},
			{Note: "D-1", TrackName: "Groove 3 D-1"},
			{Note: "D#-1", TrackName: "Groove 4 D#-1"},
			{Note: "E-1", TrackName: "Groove 5 E-1"},
			{Note: "F-1", TrackName: "Groove 6 F-1"},
			{Note: "F#-1", TrackName: "Groove 7 F#-1"},
			{Note: "G-1", TrackName: "Groove 8 G-1"},
			{Note: "G#-1", TrackName: "Groove 9 G#-1"},
			{Note: "A-1", TrackName: "Groove 10 A-1"},
			{Note: "A#-1", TrackName: "Groove 11 A#-1"},
			{Note: "B-1", TrackName: "Groove 12 B-1"},
		},
	},
	"s-horns": {
		Dir:           "notes_s-horns",
		PadWidth:      constants.NotePadWidth,
		DurationTicks: constants.LayoutDurationTicks,
		Entries: []model.NoteSpec{
			{Note: "C1", TrackName: "Phrase 1 C1"},
			{Note: "D1", TrackName: "Phrase 2 D1"},
			{Note: "E1", TrackName: "Phrase 3 E1"},
			{Note: "F1", TrackName: "Phrase 4 F1"},
			{Note: "G1", TrackName: "Phrase 5 G1"},
			{Note: "A1", TrackName: "Phrase 6 A1"},
		},
	},
}

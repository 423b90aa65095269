package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samplemap/clipgen/pitch"
)

var (
	ErrTriadType    = errors.New("invalid triad type")
	ErrKeySignature = errors.New("invalid key signature")
)

type Triad int

const (
	Major Triad = iota
	Minor
	Diminished
	Augmented
)

// Triads in the order chord batches are numbered.
var Triads = [4]Triad{Major, Minor, Diminished, Augmented}

var triadNames = [4]string{"Major", "Minor", "Diminished", "Augmented"}

// Semitone offsets of third and fifth from the root.
var triadIntervals = [4][3]uint8{
	{0, 4, 7}, // Major
	{0, 3, 7}, // Minor
	{0, 3, 6}, // Diminished
	{0, 4, 8}, // Augmented
}

func (t Triad) String() string {
	return triadNames[t]
}

func (t Triad) Intervals() [3]uint8 {
	return triadIntervals[t]
}

func ParseTriad(s string) (Triad, error) {
	for i, name := range triadNames {
		if strings.EqualFold(s, name) {
			return Triad(i), nil
		}
	}
	return Major, fmt.Errorf("%w: %q (use Major, Minor, Diminished or Augmented)", ErrTriadType, s)
}

// Build returns the three absolute pitches of the triad on root.
func Build(root uint8, t Triad) ([3]uint8, error) {
	var notes [3]uint8
	for i, offset := range t.Intervals() {
		n := int(root) + int(offset)
		if n > 127 {
			return notes, fmt.Errorf("%w: %v + %v semitones", pitch.ErrOutOfRange, root, offset)
		}
		notes[i] = uint8(n)
	}
	return notes, nil
}

// ParseName splits a chord name like "D# Minor" or "Eb Major" into a
// normalized root pitch-class name and triad type.
func ParseName(name string) (string, Triad, error) {
	root, triadName, found := strings.Cut(name, " ")
	if !found {
		return "", Major, fmt.Errorf("%w: %q (use format like \"C Major\")", ErrTriadType, name)
	}
	root = pitch.Normalize(root)
	if _, err := pitch.ClassIndex(root); err != nil {
		return "", Major, err
	}
	triad, err := ParseTriad(triadName)
	if err != nil {
		return "", Major, err
	}
	return root, triad, nil
}

type Key struct {
	Tonality string
	Chords   [7]string
}

// RomanNumerals returns the scale-degree labels for a key's seven
// diatonic triads.
func (k Key) RomanNumerals() [7]string {
	if k.Tonality == "major" {
		return [7]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}
	}
	return [7]string{"i", "ii°", "III", "iv", "v", "VI", "VII"}
}

var KeySignatures = map[string]Key{
	"C Major":  {"major", [7]string{"C Major", "D Minor", "E Minor", "F Major", "G Major", "A Minor", "B Diminished"}},
	"C# Major": {"major", [7]string{"C# Major", "D# Minor", "F Minor", "F# Major", "G# Major", "A# Minor", "C Diminished"}},
	"D Major":  {"major", [7]string{"D Major", "E Minor", "F# Minor", "G Major", "A Major", "B Minor", "C# Diminished"}},
	"D# Major": {"major", [7]string{"D# Major", "F Minor", "G Minor", "G# Major", "A# Major", "C Minor", "D Diminished"}},
	"E Major":  {"major", [7]string{"E Major", "F# Minor", "G# Minor", "A Major", "B Major", "C# Minor", "D# Diminished"}},
	"F Major":  {"major", [7]string{"F Major", "G Minor", "A Minor", "A# Major", "C Major", "D Minor", "E Diminished"}},
	"F# Major": {"major", [7]string{"F# Major", "G# Minor", "A# Minor", "B Major", "C# Major", "D# Minor", "F Diminished"}},
	"G Major":  {"major", [7]string{"G Major", "A Minor", "B Minor", "C Major", "D Major", "E Minor", "F# Diminished"}},
	"G# Major": {"major", [7]string{"G# Major", "A# Minor", "C Minor", "C# Major", "D# Major", "F Minor", "G Diminished"}},
	"A Major":  {"major", [7]string{"A Major", "B Minor", "C# Minor", "D Major", "E Major", "F# Minor", "G# Diminished"}},
	"A# Major": {"major", [7]string{"A# Major", "C Minor", "D Minor", "D# Major", "F Major", "G Minor", "A Diminished"}},
	"B Major":  {"major", [7]string{"B Major", "C# Minor", "D# Minor", "E Major", "F# Major", "G# Minor", "A# Diminished"}},

	"C Minor":  {"minor", [7]string{"C Minor", "D Diminished", "Eb Major", "F Minor", "G Minor", "Ab Major", "Bb Major"}},
	"C# Minor": {"minor", [7]string{"C# Minor", "D# Diminished", "E Major", "F# Minor", "G# Minor", "A Major", "B Major"}},
	"D Minor":  {"minor", [7]string{"D Minor", "E Diminished", "F Major", "G Minor", "A Minor", "Bb Major", "C Major"}},
	"D# Minor": {"minor", [7]string{"D# Minor", "F Diminished", "Gb Major", "G# Minor", "A# Minor", "B Major", "C# Major"}},
	"E Minor":  {"minor", [7]string{"E Minor", "F# Diminished", "G Major", "A Minor", "B Minor", "C Major", "D Major"}},
	"F Minor":  {"minor", [7]string{"F Minor", "G Diminished", "Ab Major", "Bb Minor", "C Minor", "Db Major", "Eb Major"}},
	"F# Minor": {"minor", [7]string{"F# Minor", "G# Diminished", "A Major", "B Minor", "C# Minor", "D Major", "E Major"}},
	"G Minor":  {"minor", [7]string{"G Minor", "A Diminished", "Bb Major", "C Minor", "D Minor", "Eb Major", "F Major"}},
	"G# Minor": {"minor", [7]string{"G# Minor", "A# Diminished", "B Major", "C# Minor", "D# Minor", "E Major", "F# Major"}},
	"A Minor":  {"minor", [7]string{"A Minor", "B Diminished", "C Major", "D Minor", "E Minor", "F Major", "G Major"}},
	"A# Minor": {"minor", [7]string{"A# Minor", "C Diminished", "Db Major", "Eb Minor", "F Minor", "Gb Major", "Ab Major"}},
	"B Minor":  {"minor", [7]string{"B Minor", "C# Diminished", "D Major", "E Minor", "F# Minor", "G Major", "A Major"}},
}

// LookupKey finds a key signature, matching case-insensitively.
func LookupKey(signature string) (Key, error) {
	for name, key := range KeySignatures {
		if strings.EqualFold(name, signature) {
			return key, nil
		}
	}
	return Key{}, fmt.Errorf("%w: %q", ErrKeySignature, signature)
}

package pitch

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrNoteFormat = errors.New("invalid note format")
	ErrNoteName   = errors.New("invalid note name")
	ErrOutOfRange = errors.New("note outside MIDI range 0-127")
)

// Convention selects which octave number maps to which MIDI octave.
// Ableton's UI labels MIDI 60 as C3, standard notation calls it C4.
type Convention int

const (
	Ableton Convention = iota
	Standard
)

func (c Convention) Offset() int {
	if c == Ableton {
		return 2
	}
	return 1
}

func (c Convention) String() string {
	if c == Ableton {
		return "ableton"
	}
	return "standard"
}

// ParseConvention maps a --notation flag value to a Convention.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(s) {
	case "ableton":
		return Ableton, nil
	case "standard":
		return Standard, nil
	}
	return Ableton, fmt.Errorf("unknown notation %q (want ableton or standard)", s)
}

var Names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatAliases = map[string]string{
	"Ab": "G#",
	"Bb": "A#",
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
}

var noteRe = regexp.MustCompile(`^([A-G]#?)(-?\d+)$`)

// Normalize rewrites the flat spellings that appear in key-signature
// tables (Ab, Bb, Db, Eb, Gb) to their sharp equivalents.
func Normalize(name string) string {
	for flat, sharp := range flatAliases {
		if strings.HasPrefix(name, flat) {
			return sharp + name[len(flat):]
		}
	}
	return name
}

// ClassIndex returns the semitone index of a pitch-class name like "C#".
func ClassIndex(name string) (int, error) {
	name = Normalize(name)
	for i, n := range Names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNoteName, name)
}

// Parse resolves a note name like "C3", "F#-1" or "Eb2" to a MIDI note
// number under the given convention.
func Parse(name string, conv Convention) (uint8, error) {
	m := noteRe.FindStringSubmatch(Normalize(name))
	if m == nil {
		return 0, fmt.Errorf("%w: %q (use format like C3, C#4, A2)", ErrNoteFormat, name)
	}
	idx, err := ClassIndex(m[1])
	if err != nil {
		return 0, err
	}
	octave, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNoteFormat, name)
	}
	midi := (octave+conv.Offset())*12 + idx
	if midi < 0 || midi > 127 {
		return 0, fmt.Errorf("%w: %q is MIDI %v", ErrOutOfRange, name, midi)
	}
	return uint8(midi), nil
}

// Name is the inverse of Parse: the display name of a MIDI note number
// under the given convention.
func Name(midi uint8, conv Convention) string {
	octave := int(midi)/12 - conv.Offset()
	return fmt.Sprintf("%v%v", Names[midi%12], octave)
}

// Frequency in Hz, equal temperament with A4 = MIDI 69 = 440 Hz.
func Frequency(midi uint8) float64 {
	return 440.0 * math.Pow(2, (float64(midi)-69)/12)
}

// Range expands the inclusive chromatic range between two note names,
// lowest to highest. Bad bounds abort with an error; the caller decides
// whether that kills the whole run.
func Range(start, end string, conv Convention) ([]string, error) {
	lo, err := Parse(start, conv)
	if err != nil {
		return nil, fmt.Errorf("bad start note: %w", err)
	}
	hi, err := Parse(end, conv)
	if err != nil {
		return nil, fmt.Errorf("bad end note: %w", err)
	}
	if lo > hi {
		return nil, fmt.Errorf("start %v is above end %v", start, end)
	}

	names := make([]string, 0, hi-lo+1)
	for m := lo; ; m++ {
		names = append(names, Name(m, conv))
		if m == hi {
			break
		}
	}
	return names, nil
}

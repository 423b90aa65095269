package chord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/samplemap/clipgen/pitch"
	"github.com/stretchr/testify/assert"
)

func TestBuildTriadsOnMiddleC(t *testing.T) {
	cases := []struct {
		triad    Triad
		expected [3]uint8
	}{
		{Major, [3]uint8{60, 64, 67}},
		{Minor, [3]uint8{60, 63, 67}},
		{Diminished, [3]uint8{60, 63, 66}},
		{Augmented, [3]uint8{60, 64, 68}},
	}

	assert := assert.New(t)
	for _, c := range cases {
		notes, err := Build(60, c.triad)
		assert.NoError(err)
		assert.Equal(c.expected, notes, "%v triad", c.triad)
	}
}

func TestBuildRejectsOutOfRange(t *testing.T) {
	// 125 + 4 = 129 blows past the top of the MIDI range
	_, err := Build(125, Major)
	assert.True(t, errors.Is(err, pitch.ErrOutOfRange))

	// 120 + 7 = 127 just fits
	notes, err := Build(120, Major)
	assert.NoError(t, err)
	assert.Equal(t, [3]uint8{120, 124, 127}, notes)
}

func TestParseTriad(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"Major", "major", "MAJOR"} {
		triad, err := ParseTriad(name)
		assert.NoError(err)
		assert.Equal(Major, triad)
	}

	_, err := ParseTriad("Suspended")
	assert.True(errors.Is(err, ErrTriadType))
}

func TestParseName(t *testing.T) {
	cases := []struct {
		name  string
		root  string
		triad Triad
	}{
		{"C Major", "C", Major},
		{"D# Minor", "D#", Minor},
		{"Eb Major", "D#", Major},
		{"Bb Minor", "A#", Minor},
		{"B Diminished", "B", Diminished},
	}

	assert := assert.New(t)
	for _, c := range cases {
		root, triad, err := ParseName(c.name)
		assert.NoError(err)
		assert.Equal(c.root, root, c.name)
		assert.Equal(c.triad, triad, c.name)
	}

	_, _, err := ParseName("CMajor")
	assert.Error(err)
}

func TestKeySignatureTable(t *testing.T) {
	assert := assert.New(t)
	assert.Len(KeySignatures, 24)

	for name, key := range KeySignatures {
		t.Run(fmt.Sprintf("key %v", name), func(t *testing.T) {
			for _, chordName := range key.Chords {
				root, _, err := ParseName(chordName)
				if err != nil {
					t.Fatalf("chord %q does not parse: %v", chordName, err)
				}
				if _, err := pitch.ClassIndex(root); err != nil {
					t.Fatalf("chord %q has bad root: %v", chordName, err)
				}
			}
		})
	}
}

func TestLookupKey(t *testing.T) {
	assert := assert.New(t)

	key, err := LookupKey("C Major")
	assert.NoError(err)
	assert.Equal("major", key.Tonality)
	assert.Equal("B Diminished", key.Chords[6])
	assert.Equal("I", key.RomanNumerals()[0])

	key, err = LookupKey("a minor")
	assert.NoError(err)
	assert.Equal("minor", key.Tonality)
	assert.Equal("i", key.RomanNumerals()[0])

	_, err = LookupKey("H Major")
	assert.True(errors.Is(err, ErrKeySignature))
}

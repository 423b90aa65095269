package clip

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

type notedEvent struct {
	absTicks uint64
	isOff    bool
	note     uint8
	velocity uint8
}

// writeAndReadBack round-trips the clip through the SMF binary format.
func writeAndReadBack(t *testing.T, c Clip) *smf.SMF {
	t.Helper()

	s, err := c.SMF()
	if err != nil {
		t.Fatalf("could not render clip: %v", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("could not serialize clip: %v", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("could not re-read clip: %v", err)
	}
	return res
}

func collectNoteEvents(s *smf.SMF) []notedEvent {
	var events []notedEvent
	for _, track := range s.Tracks {
		var absTicks uint64
		for _, event := range track {
			absTicks += uint64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, notedEvent{absTicks, false, key, velocity})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, notedEvent{absTicks, true, key, velocity})
			}
		}
	}
	return events
}

func TestSingleNoteClip(t *testing.T) {
	c := Clip{
		TrackName:     "Intro C#1",
		BPM:           120,
		DurationTicks: 1920,
		Notes:         []uint8{37},
	}
	res := writeAndReadBack(t, c)

	assert := assert.New(t)
	assert.Len(res.Tracks, 1)

	events := collectNoteEvents(res)
	assert.Equal([]notedEvent{
		{0, false, 37, 64},
		{1920, true, 37, 0},
	}, events)
}

func TestChordClipAllNotesShareOnAndOffTimes(t *testing.T) {
	c := Clip{
		TrackName:     "C3 Major",
		DurationTicks: 3840,
		Notes:         []uint8{60, 64, 67},
		Velocities:    []uint8{64, 60, 56},
	}
	res := writeAndReadBack(t, c)

	events := collectNoteEvents(res)

	assert := assert.New(t)
	assert.Len(events, 6)
	for _, e := range events[:3] {
		assert.Equal(uint64(0), e.absTicks)
		assert.False(e.isOff)
	}
	for _, e := range events[3:] {
		assert.Equal(uint64(3840), e.absTicks)
		assert.True(e.isOff)
	}
	assert.Equal(uint8(64), events[0].velocity)
	assert.Equal(uint8(60), events[1].velocity)
	assert.Equal(uint8(56), events[2].velocity)
}

func TestClipMetadata(t *testing.T) {
	c := Clip{
		TrackName:     "Phrase 1 C1",
		BPM:           120,
		DurationTicks: 1920,
		Notes:         []uint8{36},
	}
	res := writeAndReadBack(t, c)

	assert := assert.New(t)

	var foundName, foundTempo, foundMeter bool
	for _, event := range res.Tracks[0] {
		var text string
		var bpm float64
		var num, denom uint8
		switch {
		case event.Message.GetMetaTrackName(&text):
			foundName = true
			assert.Equal("Phrase 1 C1", text)
		case event.Message.GetMetaTempo(&bpm):
			foundTempo = true
			assert.InDelta(120.0, bpm, 0.01)
		case event.Message.GetMetaMeter(&num, &denom):
			foundMeter = true
			assert.Equal(uint8(4), num)
			assert.Equal(uint8(4), denom)
		}
	}
	assert.True(foundName, "track name meta missing")
	assert.True(foundTempo, "tempo meta missing")
	assert.True(foundMeter, "time signature meta missing")
}

func TestEmptyClipFails(t *testing.T) {
	_, err := Clip{TrackName: "empty"}.SMF()
	assert.Error(t, err)
}

func TestBars(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(4.0, Clip{DurationTicks: 1920}.Bars())
	assert.Equal(8.0, Clip{DurationTicks: 3840}.Bars())
}

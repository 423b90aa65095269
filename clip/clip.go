package clip

import (
	"fmt"

	"github.com/samplemap/clipgen/constants"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Clip is one generated MIDI file: a handful of notes struck together
// at tick 0 and released together after DurationTicks.
type Clip struct {
	TrackName     string
	BPM           float64
	DurationTicks uint32
	Notes         []uint8

	// Optional per-note velocities; notes without one get the default.
	Velocities []uint8
}

func (c Clip) velocity(i int) uint8 {
	if i < len(c.Velocities) {
		return c.Velocities[i]
	}
	return constants.DefaultVelocity
}

func (c Clip) bpm() float64 {
	if c.BPM == 0 {
		return constants.DefaultBPM
	}
	return c.BPM
}

// SMF renders the clip as a single-track standard MIDI file: track name
// (when set), tempo and 4/4 time signature at tick 0, every note-on at
// tick 0, every note-off at DurationTicks, then end of track.
func (c Clip) SMF() (*smf.SMF, error) {
	if len(c.Notes) == 0 {
		return nil, fmt.Errorf("clip %q has no notes", c.TrackName)
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var track smf.Track
	if c.TrackName != "" {
		track.Add(0, smf.MetaTrackSequenceName(c.TrackName))
	}
	track.Add(0, smf.MetaTempo(c.bpm()))
	track.Add(0, smf.MetaTimeSig(4, 4, 24, 8))

	for i, note := range c.Notes {
		track.Add(0, midi.NoteOn(0, note, c.velocity(i)))
	}
	for i, note := range c.Notes {
		var delta uint32
		if i == 0 {
			delta = c.DurationTicks
		}
		track.Add(delta, midi.NoteOff(0, note))
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("could not add track for %q: %w", c.TrackName, err)
	}
	return s, nil
}

// Bars reports the clip length in the 480-ticks-per-bar accounting the
// clip packs were authored against.
func (c Clip) Bars() float64 {
	return float64(c.DurationTicks) / constants.TicksPerBar
}

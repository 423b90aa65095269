package layout

import (
	"fmt"
	"testing"

	"github.com/samplemap/clipgen/pitch"
	"github.com/stretchr/testify/assert"
)

func TestEveryLayoutEntryResolves(t *testing.T) {
	for _, name := range Names() {
		l := Layouts[name]
		t.Run(fmt.Sprintf("layout %v", name), func(t *testing.T) {
			assert := assert.New(t)
			assert.NotEmpty(l.Entries)
			assert.NotEmpty(l.Dir)
			assert.NotZero(l.DurationTicks)

			for _, entry := range l.Entries {
				_, err := pitch.Parse(entry.Note, pitch.Ableton)
				assert.NoError(err, "entry %v", entry.Note)
				assert.Contains(entry.TrackName, entry.Note,
					"track name should carry the trigger note")
			}
		})
	}
}

func TestGet(t *testing.T) {
	assert := assert.New(t)

	l, err := Get("beatmaker")
	assert.NoError(err)
	assert.Len(l.Entries, 10)
	assert.Equal("notes_beatmaker", l.Dir)

	_, err = Get("accordion")
	assert.Error(err)
}

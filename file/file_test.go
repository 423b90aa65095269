package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samplemap/clipgen/clip"
	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("01 Intro_C#1.mid", Name(1, 2, "Intro C#1"))
	assert.Equal("042 C3_Major.mid", Name(42, 3, "C3 Major"))
	assert.Equal("10 Ending_A#2.mid", Name(10, 2, "Ending A#2"))
}

func TestWriteSMFCreatesDirAndLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	c := clip.Clip{TrackName: "Note C3", DurationTicks: 1920, Notes: []uint8{60}}
	s, err := c.SMF()
	if err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.NoError(WriteSMF(dir, "01 Note_C3.mid", s))

	entries, err := os.ReadDir(dir)
	assert.NoError(err)
	assert.Len(entries, 1)
	assert.Equal("01 Note_C3.mid", entries[0].Name())
}

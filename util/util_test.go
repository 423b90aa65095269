package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLabel(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Intro_C#1", SanitizeLabel("Intro C#1"))
	assert.Equal("Fill_3_for_A#1", SanitizeLabel("Fill 3 for A#1"))
	assert.Equal("plain", SanitizeLabel("plain"))
}

func TestSafeKeyName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C_Major", SafeKeyName("C Major"))
	assert.Equal("Csharp_Minor", SafeKeyName("C# Minor"))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}

package util

import (
	"os"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// SanitizeLabel makes a track name usable as a filename component.
func SanitizeLabel(label string) string {
	return strings.ReplaceAll(label, " ", "_")
}

// SafeKeyName converts e.g. "C# Major" to "Csharp_Major" for directory names.
func SafeKeyName(key string) string {
	s := strings.ReplaceAll(key, " ", "_")
	return strings.ReplaceAll(s, "#", "sharp")
}

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0777)
}

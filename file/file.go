package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/samplemap/clipgen/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Name builds the on-disk name for a generated clip: zero-padded
// sequence index, sanitized label, .mid extension.
func Name(index int, padWidth int, label string) string {
	return fmt.Sprintf("%0*d %s.mid", padWidth, index, util.SanitizeLabel(label))
}

// WriteSMF writes the rendered file under dir. The bytes go to a
// uuid-named temp file first and are renamed into place, so an
// interrupted run leaves either a complete file or none.
func WriteSMF(dir string, name string, s *smf.SMF) error {
	if err := util.EnsureDir(dir); err != nil {
		return fmt.Errorf("could not create output dir %v: %w", dir, err)
	}

	tmp := filepath.Join(dir, "."+uuid.New().String()+".tmp")
	if err := s.WriteFile(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %v: %w", name, err)
	}
	if err := os.Rename(tmp, filepath.Join(dir, name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not finalize %v: %w", name, err)
	}
	return nil
}

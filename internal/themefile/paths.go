package themefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/palette/internal/logging"
	"github.com/opencode-ai/palette/internal/theme"
)

// DefaultDir returns the user themes directory,
// <user config dir>/palette/themes.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "palette", "themes"), nil
}

// Filename derives the on-disk name for a family.
func Filename(familyName string) string {
	return slug(familyName) + ".yaml"
}

// slug lowercases a family name and squeezes everything outside [a-z0-9]
// into single dashes.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// DirStore persists families as one document per file in a directory. It is
// the registry's Store for edits and conversions.
type DirStore struct {
	dir    string
	logger zerolog.Logger
}

// NewDirStore creates a store rooted at dir. The directory is created on the
// first save.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir, logger: logging.Component("themefile")}
}

// Dir returns the store's directory.
func (s *DirStore) Dir() string { return s.dir }

// SaveFamily writes the family's document into the store directory.
func (s *DirStore) SaveFamily(f *theme.Family) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create themes dir %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, Filename(f.Name()))
	if err := SaveFile(path, f); err != nil {
		return err
	}
	s.logger.Debug().Str("family", f.Name()).Str("path", path).Msg("family saved")
	return nil
}

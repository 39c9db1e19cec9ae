// Package storage keeps uploaded character images in a single directory on
// the local filesystem. Writes are two-phase: bytes land in a staged temp
// file first and are renamed into place only after the matching database row
// committed, so a failed insert never leaves a half-adopted upload behind.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ckoockiy/api-rest-dbz/global"

	"github.com/google/uuid"
)

var ErrNombreInvalido = errors.New("nombre de imagen invalido")

var allowedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type Store struct {
	dir     string
	baseURL string
}

func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *Store) Dir() string { return s.dir }

// SanitizeFilename reduces an uploaded filename to its base name, rejecting
// anything that still carries traversal characters or a non-image extension.
func (s *Store) SanitizeFilename(name string) (string, error) {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", ErrNombreInvalido
	}
	if !allowedExt[strings.ToLower(filepath.Ext(name))] {
		return "", ErrNombreInvalido
	}
	return name, nil
}

// Stage writes the upload next to its final location under a unique temp
// name and returns the staged path.
func (s *Store) Stage(name string, r io.Reader) (string, error) {
	staged := filepath.Join(s.dir, fmt.Sprintf("%s.%s.part", name, uuid.NewString()))
	f, err := os.Create(staged)
	if err != nil {
		return "", fmt.Errorf("create staged file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(staged)
		return "", fmt.Errorf("write staged file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(staged)
		return "", fmt.Errorf("close staged file: %w", err)
	}
	return staged, nil
}

// Promote renames a staged file into its final place. Concurrent promotions
// of the same name are not coordinated; the last rename wins.
func (s *Store) Promote(staged, name string) error {
	if err := os.Rename(staged, s.Path(name)); err != nil {
		return fmt.Errorf("promote staged file: %w", err)
	}
	return nil
}

// Discard drops a staged file after the paired database write failed.
func (s *Store) Discard(staged string) {
	if err := os.Remove(staged); err != nil && !errors.Is(err, os.ErrNotExist) {
		global.Logger.Warn().Err(err).Str("path", staged).Msg("discard staged file failed")
	}
}

// Remove deletes a stored image. A file that is already gone is logged and
// ignored.
func (s *Store) Remove(name string) {
	if err := os.Remove(s.Path(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			global.Logger.Info().Str("imagen", name).Msg("stored image already absent")
			return
		}
		global.Logger.Warn().Err(err).Str("imagen", name).Msg("remove stored image failed")
	}
}

func (s *Store) Path(name string) string { return filepath.Join(s.dir, name) }

func (s *Store) PublicURL(name string) string {
	return s.baseURL + "/static/uploads/" + name
}

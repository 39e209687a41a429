package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// ProfileFile is the profile override file name inside a content dir.
	ProfileFile = "profile.toml"
	// StartupFile is the startup text override file name inside a content dir.
	StartupFile = "startup.txt"
)

// Store reads content overrides from a directory.
// Layout: <dir>/profile.toml, <dir>/startup.txt
// Missing files (or an empty dir) fall back to the embedded defaults.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at dir. An empty dir means embedded
// content only.
func NewStore(dir string) *Store {
	return &Store{baseDir: dir}
}

// BaseDir returns the override directory, or "" when none is set.
func (s *Store) BaseDir() string {
	if s == nil {
		return ""
	}
	return s.baseDir
}

// Profile returns the override profile if present, else the embedded one.
func (s *Store) Profile() (Profile, error) {
	data, ok, err := s.read(ProfileFile)
	if err != nil {
		return Profile{}, err
	}
	if !ok {
		return DefaultProfile(), nil
	}
	p, err := ParseProfile(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", s.path(ProfileFile), err)
	}
	return p, nil
}

// ProfileTOML returns the raw profile document (override or embedded).
func (s *Store) ProfileTOML() ([]byte, error) {
	data, ok, err := s.read(ProfileFile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return defaultProfileTOML, nil
	}
	return data, nil
}

// StartupText returns the override startup text if present, else the
// embedded one.
func (s *Store) StartupText() (string, error) {
	data, ok, err := s.read(StartupFile)
	if err != nil {
		return "", err
	}
	if !ok {
		return defaultStartupText, nil
	}
	return string(data), nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.BaseDir(), name)
}

func (s *Store) read(name string) ([]byte, bool, error) {
	if s.BaseDir() == "" {
		return nil, false, nil
	}
	b, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", s.path(name), err)
	}
	return b, true, nil
}

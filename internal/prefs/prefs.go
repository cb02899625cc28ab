// Package prefs persists the few user preferences that outlive a session.
package prefs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/wesen/studio/internal/apperr"
)

// WelcomeDismissedKey records that the onboarding panel was dismissed.
const WelcomeDismissedKey = "design_studio_welcome_dismissed"

type stateFile struct {
	Flags map[string]bool `toml:"flags"`
}

// Store reads and writes boolean flags in a TOML state file.
type Store struct {
	path string
}

// NewStore returns a store backed by dir/state.toml.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "state.toml")}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Flag returns the value of key; missing files and keys read as false.
func (s *Store) Flag(key string) (bool, error) {
	st, err := s.load()
	if err != nil {
		return false, err
	}
	return st.Flags[key], nil
}

// SetFlag stores value under key, keeping any other flags.
func (s *Store) SetFlag(key string, value bool) error {
	st, err := s.load()
	if err != nil {
		return err
	}
	if value {
		st.Flags[key] = true
	} else {
		delete(st.Flags, key)
	}
	return s.save(st)
}

// WelcomeDismissed reports whether the welcome panel was dismissed.
func (s *Store) WelcomeDismissed() (bool, error) {
	return s.Flag(WelcomeDismissedKey)
}

// DismissWelcome records the welcome panel as dismissed.
func (s *Store) DismissWelcome() error {
	return s.SetFlag(WelcomeDismissedKey, true)
}

// ResetWelcome makes the welcome panel show again on next start.
func (s *Store) ResetWelcome() error {
	return s.SetFlag(WelcomeDismissedKey, false)
}

func (s *Store) load() (*stateFile, error) {
	st := &stateFile{Flags: make(map[string]bool)}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return nil, apperr.Wrap(err, "reading preferences")
	}
	if err := toml.Unmarshal(data, st); err != nil {
		return nil, apperr.NewValidation("parsing %s: %v", s.path, err)
	}
	if st.Flags == nil {
		st.Flags = make(map[string]bool)
	}
	return st, nil
}

func (s *Store) save(st *stateFile) (err error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperr.Wrap(err, "creating preferences directory")
	}
	f, err := os.Create(s.path)
	if err != nil {
		return apperr.Wrap(err, "writing preferences")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = apperr.Wrap(cerr, "closing preferences")
		}
	}()
	if err := toml.NewEncoder(f).Encode(st); err != nil {
		return apperr.Wrap(err, "writing preferences")
	}
	return nil
}

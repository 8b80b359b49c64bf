package cliapp

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// Profile is a named, reusable string-mode alphabet, persisted so CLI
// users don't have to retype DigitBase/LengthBase on every invocation.
type Profile struct {
	Name       string `yaml:"name"`
	DigitBase  string `yaml:"digit_base"`
	LengthBase string `yaml:"length_base"`
}

type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

const profileLockTimeout = 2 * time.Second

// ProfileStore reads and writes the profile file under an flock-guarded
// lock scoped to path+".lock", so two CLI invocations racing to save a
// profile don't corrupt each other's write, and writes it out with a
// temp-file-plus-rename so a crash mid-write never leaves a truncated
// profile file behind.
type ProfileStore struct {
	path string
}

// NewProfileStore returns a store rooted at path.
func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{path: path}
}

// DefaultProfilePath returns ~/.config/fraci/alphabets.yaml (or
// $XDG_CONFIG_HOME/fraci/alphabets.yaml), matching the config file's
// resolution rule.
func DefaultProfilePath(env []string) string {
	for _, e := range env {
		if after, ok := cutPrefix(e, "XDG_CONFIG_HOME="); ok {
			return filepath.Join(after, "fraci", "alphabets.yaml")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "fraci", "alphabets.yaml")
}

// lock acquires path+".lock" via flock(2), shared for reads and exclusive
// for writes, retrying until profileLockTimeout elapses.
func (s *ProfileStore) lock(exclusive bool) (*os.File, error) {
	lockPath := s.path + ".lock"

	if err := os.MkdirAll(filepath.Dir(lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("fraci: create profile dir: %w", err)
	}

	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("fraci: open profile lock %s: %w", lockPath, err)
	}

	how := syscall.LOCK_SH
	if exclusive {
		how = syscall.LOCK_EX
	}

	fd := int(file.Fd())
	deadline := time.Now().Add(profileLockTimeout)

	for {
		err := syscall.Flock(fd, how|syscall.LOCK_NB)
		if err == nil {
			return file, nil
		}

		if !errors.Is(err, syscall.EWOULDBLOCK) || time.Now().After(deadline) {
			_ = file.Close()

			return nil, fmt.Errorf("fraci: lock profiles %s: %w", lockPath, err)
		}

		time.Sleep(10 * time.Millisecond)
	}
}

func unlockProfiles(file *os.File) {
	_ = syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
	_ = file.Close()
}

func (s *ProfileStore) load() (profileFile, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return profileFile{}, nil
		}

		return profileFile{}, fmt.Errorf("fraci: read profiles %s: %w", s.path, err)
	}

	var pf profileFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return profileFile{}, fmt.Errorf("fraci: parse profiles %s: %w", s.path, err)
	}

	return pf, nil
}

// List returns every saved profile, sorted by name.
func (s *ProfileStore) List() ([]Profile, error) {
	lock, err := s.lock(false)
	if err != nil {
		return nil, err
	}
	defer unlockProfiles(lock)

	pf, err := s.load()
	if err != nil {
		return nil, err
	}

	out := append([]Profile(nil), pf.Profiles...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

// Get returns the named profile, or false if it does not exist.
func (s *ProfileStore) Get(name string) (Profile, bool, error) {
	profiles, err := s.List()
	if err != nil {
		return Profile{}, false, err
	}

	for _, p := range profiles {
		if p.Name == name {
			return p, true, nil
		}
	}

	return Profile{}, false, nil
}

// Save inserts or replaces the profile with this name.
func (s *ProfileStore) Save(p Profile) error {
	lock, err := s.lock(true)
	if err != nil {
		return err
	}
	defer unlockProfiles(lock)

	pf, err := s.load()
	if err != nil {
		return err
	}

	replaced := false

	for i, existing := range pf.Profiles {
		if existing.Name == p.Name {
			pf.Profiles[i] = p
			replaced = true

			break
		}
	}

	if !replaced {
		pf.Profiles = append(pf.Profiles, p)
	}

	out, err := yaml.Marshal(pf)
	if err != nil {
		return fmt.Errorf("fraci: encode profiles: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(out)); err != nil {
		return fmt.Errorf("fraci: write profiles %s: %w", s.path, err)
	}

	return nil
}

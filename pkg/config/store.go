// Package config persists the user's custom recognition patterns.
//
// The store is a single TOML document under the XDG config directory,
// rewritten atomically on every add or remove. Builtin patterns never
// appear in the store.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/mergef/pkg/errors"
	"github.com/arthur-debert/mergef/pkg/logging"
	"github.com/arthur-debert/mergef/pkg/patterns"
	"github.com/arthur-debert/mergef/pkg/types"
)

const (
	// EnvConfigDir overrides the XDG config directory for mergef
	EnvConfigDir = "MERGEF_CONFIG_DIR"

	configDirName = "mergef"
	patternsFile  = "patterns.toml"
	storeVersion  = "1"
)

// storedPattern is the on-disk shape of one user pattern
type storedPattern struct {
	Name          string `toml:"name"`
	Pattern       string `toml:"pattern"`
	TargetPattern string `toml:"target_pattern"`
	Description   string `toml:"description,omitempty"`
	Example       string `toml:"example,omitempty"`
}

// storeFile is the on-disk shape of the pattern store
type storeFile struct {
	Version  string          `toml:"version"`
	Patterns []storedPattern `toml:"patterns"`
}

// Store reads and rewrites the user pattern file
type Store struct {
	path string
}

// NewStore creates a store at the default location:
// $MERGEF_CONFIG_DIR/patterns.toml, or $XDG_CONFIG_HOME/mergef/patterns.toml.
func NewStore() *Store {
	dir := os.Getenv(EnvConfigDir)
	if dir == "" {
		dir = filepath.Join(xdg.ConfigHome, configDirName)
	}
	return &Store{path: filepath.Join(dir, patternsFile)}
}

// NewStoreAt creates a store backed by an explicit file path, for tests
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the store's file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the user patterns. A missing file is an empty store, not an
// error. Entries that fail validation are skipped with a warning so one
// bad hand-edit does not take the whole catalog down.
func (s *Store) Load() ([]types.Pattern, error) {
	logger := logging.GetLogger("config")

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read pattern store %s", s.path)
	}

	var file storeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot parse pattern store %s", s.path)
	}

	var out []types.Pattern
	for _, sp := range file.Patterns {
		p := types.Pattern{
			Name:        sp.Name,
			Base:        sp.Pattern,
			Target:      sp.TargetPattern,
			Description: sp.Description,
			Example:     sp.Example,
			Source:      types.SourceUser,
		}
		if _, err := patterns.Compile(p); err != nil {
			logger.Warn().Err(err).Str("pattern", sp.Name).Msg("skipping invalid stored pattern")
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Save rewrites the store atomically: temp file in the same directory,
// synced, then renamed over the old file.
func (s *Store) Save(userPatterns []types.Pattern) error {
	file := storeFile{Version: storeVersion}
	for _, p := range userPatterns {
		file.Patterns = append(file.Patterns, storedPattern{
			Name:          p.Name,
			Pattern:       p.Base,
			TargetPattern: p.Target,
			Description:   p.Description,
			Example:       p.Example,
		})
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "cannot serialize pattern store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "cannot create config directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, patternsFile+".tmp-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "cannot create temp file")
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, errors.ErrConfigSave, "cannot write pattern store")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, errors.ErrConfigSave, "cannot sync pattern store")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "cannot close pattern store")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "cannot replace pattern store %s", s.path)
	}
	return nil
}

// AddPattern validates a new user pattern against the full catalog
// (builtins included, so a user pattern cannot shadow a builtin name) and
// persists it.
func (s *Store) AddPattern(p types.Pattern) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}

	cat := patterns.NewCatalog(existing)
	if err := cat.Add(p); err != nil {
		return err
	}

	p.Source = types.SourceUser
	return s.Save(append(existing, p))
}

// RemovePattern deletes a user pattern from the store. Builtin names are
// protected; unknown names fail with PATTERN_NOT_FOUND.
func (s *Store) RemovePattern(name string) error {
	for _, b := range patterns.Builtins() {
		if b.Name == name {
			return errors.Newf(errors.ErrPatternProtected, "pattern %q is builtin and cannot be removed", name)
		}
	}

	existing, err := s.Load()
	if err != nil {
		return err
	}

	kept := existing[:0]
	found := false
	for _, p := range existing {
		if p.Name == name {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return errors.Newf(errors.ErrPatternNotFound, "no pattern named %q", name)
	}
	return s.Save(kept)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mergef/pkg/errors"
	"github.com/arthur-debert/mergef/pkg/types"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "patterns.toml"))
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store := tempStore(t)
	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := tempStore(t)

	in := []types.Pattern{
		{
			Name:        "season",
			Base:        `^(.+?) season (\d+)$`,
			Target:      ` season 1$`,
			Description: "season folders",
			Example:     "Show season 1, Show season 2",
			Source:      types.SourceUser,
		},
	}
	require.NoError(t, store.Save(in))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "season", got[0].Name)
	assert.Equal(t, in[0].Base, got[0].Base)
	assert.Equal(t, in[0].Target, got[0].Target)
	assert.Equal(t, in[0].Description, got[0].Description)
	assert.Equal(t, in[0].Example, got[0].Example)
	assert.Equal(t, types.SourceUser, got[0].Source)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save([]types.Pattern{
		{Name: "x", Base: `^(.+?) x(\d+)$`, Target: ` x1$`},
	}))

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "patterns.toml", entries[0].Name())
}

func TestAddPattern(t *testing.T) {
	store := tempStore(t)

	require.NoError(t, store.AddPattern(types.Pattern{
		Name:   "season",
		Base:   `^(.+?) season (\d+)$`,
		Target: ` season 1$`,
	}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)

	// duplicate of a stored pattern
	err = store.AddPattern(types.Pattern{Name: "season", Base: `^(.+?)(\d+)$`, Target: `1$`})
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicatePattern))

	// builtin names cannot be shadowed
	err = store.AddPattern(types.Pattern{Name: "classic_part", Base: `^(.+?)(\d+)$`, Target: `1$`})
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicatePattern))

	// invalid patterns are rejected at add time
	err = store.AddPattern(types.Pattern{Name: "bad", Base: `^.+\d+$`, Target: `1$`})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidRegex))
}

func TestRemovePattern(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.AddPattern(types.Pattern{
		Name:   "season",
		Base:   `^(.+?) season (\d+)$`,
		Target: ` season 1$`,
	}))

	assert.True(t, errors.IsErrorCode(store.RemovePattern("classic_part"), errors.ErrPatternProtected))
	assert.True(t, errors.IsErrorCode(store.RemovePattern("nope"), errors.ErrPatternNotFound))

	require.NoError(t, store.RemovePattern("season"))
	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadSkipsInvalidStoredPattern(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(`
version = "1"

[[patterns]]
name = "broken"
pattern = "^[no capture$"
target_pattern = "1$"

[[patterns]]
name = "fine"
pattern = "^(.+?) y(\\d+)$"
target_pattern = " y1$"
`), 0644))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fine", got[0].Name)
}

func TestLoadMalformedFileFails(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("not toml {{"), 0644))

	_, err := store.Load()
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

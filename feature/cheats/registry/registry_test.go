package registry_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cheatvault/core/faults"
	"cheatvault/core/fsys"
	"cheatvault/feature/cheats/models"
	"cheatvault/feature/cheats/registry"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newRegistry(t *testing.T) (*registry.Registry, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cheat_types.json")
	return registry.New(path, fsys.NewLocal(), zap.NewNop()), path
}

func TestLoadCreatesDefaultDocument(t *testing.T) {
	reg, path := newRegistry(t)

	err := reg.Load()
	assert.NoError(t, err)

	// Only the raw built-in is seeded
	assert.Equal(t, []string{"raw"}, reg.ListIDs())

	raw, ok := reg.Get("raw")
	assert.True(t, ok)
	assert.Equal(t, "Raw", raw.Name)
	assert.Equal(t, "^.+$", raw.Pattern)

	// Document was persisted
	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	var doc map[string]map[string]any
	assert.NoError(t, json.Unmarshal(content, &doc))
	assert.Contains(t, doc, "raw")
}

func TestLoadInvalidDocumentFallsBackToEmpty(t *testing.T) {
	reg, path := newRegistry(t)
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	err := reg.Load()

	var cfgErr *faults.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Empty(t, reg.ListIDs())
}

func TestMutationsPersistWholeDocument(t *testing.T) {
	reg, path := newRegistry(t)
	assert.NoError(t, reg.Load())

	err := reg.Add("game_genie", models.CheatType{
		Name:    "Game Genie",
		Pattern: "^[A-Z0-9]{6,8}$",
	})
	assert.NoError(t, err)

	// Reload from disk into a fresh instance
	fresh := registry.New(path, fsys.NewLocal(), zap.NewNop())
	assert.NoError(t, fresh.Load())
	assert.Equal(t, []string{"game_genie", "raw"}, fresh.ListIDs())

	assert.NoError(t, reg.Update("game_genie", models.CheatType{Name: "GG"}))
	got, ok := reg.Get("game_genie")
	assert.True(t, ok)
	assert.Equal(t, "GG", got.Name)

	assert.NoError(t, reg.Remove("game_genie"))
	assert.False(t, reg.Has("game_genie"))
}

func TestUpdateAndRemoveUnknownType(t *testing.T) {
	reg, _ := newRegistry(t)
	assert.NoError(t, reg.Load())

	err := reg.Update("nope", models.CheatType{Name: "Nope"})
	assert.ErrorIs(t, err, faults.ErrNotFound)

	err = reg.Remove("nope")
	assert.ErrorIs(t, err, faults.ErrNotFound)
}

func TestPatternForUnknownTypeIsCatchAll(t *testing.T) {
	reg, _ := newRegistry(t)
	assert.NoError(t, reg.Load())

	assert.Equal(t, registry.CatchAllPattern, reg.PatternFor("vanished"))
	assert.Equal(t, "^.+$", reg.PatternFor("raw"))
}

func TestSeedDefaults(t *testing.T) {
	reg, _ := newRegistry(t)
	assert.NoError(t, reg.Load())
	assert.NoError(t, reg.SeedDefaults())

	assert.Equal(t,
		[]string{"actionreplay", "codebreaker", "game_genie", "gameshark", "raw"},
		reg.ListIDs())

	gg, ok := reg.Get("game_genie")
	assert.True(t, ok)
	assert.NotEmpty(t, gg.FormatHint)

	// Seeding twice is a no-op
	assert.NoError(t, reg.SeedDefaults())
	assert.Len(t, reg.All(), 5)
}

package roms_test

import (
	"os"
	"path/filepath"
	"testing"

	"cheatvault/core/database"
	"cheatvault/core/faults"
	"cheatvault/core/fsys"
	"cheatvault/core/library"
	"cheatvault/feature/cheats"
	cheatmodels "cheatvault/feature/cheats/models"
	"cheatvault/feature/cheats/registry"
	"cheatvault/feature/roms"
	"cheatvault/feature/roms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	roms   *roms.Service
	cheats *cheats.Service
	paths  *library.Paths
}

// newFixture wires the rom and cheat services together the way the server
// does, over an in-memory database and a temp resources directory.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Rom{}, &cheatmodels.CheatCode{}, &cheatmodels.CheatFile{}))

	base := t.TempDir()
	fs := fsys.NewLocal()

	reg := registry.New(filepath.Join(base, "cheat_types.json"), fs, zap.NewNop())
	require.NoError(t, reg.Load())
	require.NoError(t, reg.SeedDefaults())

	paths := library.NewPaths(base)
	romSvc := roms.NewService(db, zap.NewNop())
	cheatSvc := cheats.NewService(cheats.NewGormStore(db), romSvc, fs, paths, reg, zap.NewNop(), nil, "")
	romSvc.SetPurger(cheatSvc)

	return &fixture{roms: romSvc, cheats: cheatSvc, paths: paths}
}

func TestCreateDerivesResourcesPath(t *testing.T) {
	fx := newFixture(t)

	rom := &models.Rom{Name: "The Legend of Zelda"}
	require.NoError(t, fx.roms.Create(rom))

	assert.NotZero(t, rom.ID)
	assert.Equal(t, "The Legend of Zelda", rom.FsName)
	assert.Equal(t, filepath.Join("roms", "the-legend-of-zelda"), rom.FsResourcesPath)
}

func TestCreateRequiresName(t *testing.T) {
	fx := newFixture(t)

	err := fx.roms.Create(&models.Rom{})

	var vErr *faults.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Rom name is required", vErr.Fields["name"])
}

func TestResolveOwner(t *testing.T) {
	fx := newFixture(t)

	rom := &models.Rom{Name: "Metroid"}
	require.NoError(t, fx.roms.Create(rom))

	owner, err := fx.roms.ResolveOwner(rom.ID)
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, rom.ID, owner.ID)
	assert.Equal(t, rom.FsResourcesPath, owner.ResourcesPath)

	// Missing roms resolve to nil, not an error.
	owner, err = fx.roms.ResolveOwner(9999)
	require.NoError(t, err)
	assert.Nil(t, owner)
}

func TestDeleteCascadesToCheatData(t *testing.T) {
	fx := newFixture(t)

	rom := &models.Rom{Name: "Kirby"}
	require.NoError(t, fx.roms.Create(rom))

	_, err := fx.cheats.AddCode(rom.ID, cheatmodels.Input{
		Name: "Max Health",
		Code: "12345678",
		Type: "gameshark",
	})
	require.NoError(t, err)

	cheatsFile := fx.paths.CheatsFile(rom.FsResourcesPath)
	_, err = os.Stat(cheatsFile)
	require.NoError(t, err)

	require.NoError(t, fx.roms.Delete(rom.ID))

	_, err = fx.roms.Get(rom.ID)
	assert.ErrorIs(t, err, faults.ErrNotFound)

	// The cheat row and the on-disk cheat directory are gone with it.
	_, err = fx.cheats.ListCodes(rom.ID)
	assert.ErrorIs(t, err, faults.ErrNotFound)

	_, err = os.Stat(fx.paths.CheatsDir(rom.FsResourcesPath))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteUnknownRom(t *testing.T) {
	fx := newFixture(t)
	assert.ErrorIs(t, fx.roms.Delete(123), faults.ErrNotFound)
}

package library

import "path/filepath"

// Config holds configuration for the game library layout on disk.
type Config struct {
	// ResourcesPath is the base directory holding per-game resource folders.
	ResourcesPath string `mapstructure:"resources_path" default:"./resources"`
	// CheatTypesPath is the location of the cheat-type registry document.
	CheatTypesPath string `mapstructure:"cheat_types_path" default:"./config/cheat_types.json"`
}

// Paths derives the on-disk locations of a game's cheat data from its
// resources sub-path. Both the base directory and the derivation are
// injectable so tests can point everything at a temp dir.
type Paths struct {
	resourcesBase string
}

// NewPaths creates a Paths rooted at the given resources base directory.
func NewPaths(resourcesBase string) *Paths {
	return &Paths{resourcesBase: resourcesBase}
}

// CheatsDir returns the cheats directory for a game's resources sub-path.
func (p *Paths) CheatsDir(resourcesPath string) string {
	return filepath.Join(p.resourcesBase, resourcesPath, "cheats")
}

// CheatsFile returns the flat cheats.txt file for a game.
func (p *Paths) CheatsFile(resourcesPath string) string {
	return filepath.Join(p.CheatsDir(resourcesPath), "cheats.txt")
}

// CheatFileBlob returns the storage location of an uploaded cheat file.
func (p *Paths) CheatFileBlob(resourcesPath, fileName string) string {
	return filepath.Join(p.CheatsDir(resourcesPath), fileName)
}

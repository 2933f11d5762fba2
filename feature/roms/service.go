package roms

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cheatvault/core/faults"
	"cheatvault/feature/cheats/sync"
	"cheatvault/feature/roms/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CheatPurger removes all cheat data owned by a rom. Implemented by the
// cheats service; kept as an interface so the two features stay decoupled
// at construction time.
type CheatPurger interface {
	PurgeOwner(romID int, resourcesPath string) error
}

// Service manages the rom catalog.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	purger CheatPurger
}

// NewService creates a rom service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// SetPurger attaches the cheat purger used on rom deletion. Set after
// construction because the cheats service resolves owners through this
// service.
func (s *Service) SetPurger(p CheatPurger) {
	s.purger = p
}

// ResolveOwner implements the sync engine's owner lookup. A missing rom
// resolves to nil, not an error.
func (s *Service) ResolveOwner(id int) (*sync.Owner, error) {
	rom, err := s.Get(id)
	if err != nil {
		if errors.Is(err, faults.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sync.Owner{ID: rom.ID, ResourcesPath: rom.FsResourcesPath}, nil
}

// List returns the full catalog.
func (s *Service) List() ([]models.Rom, error) {
	var all []models.Rom
	if err := s.db.Order("id").Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}

// Get returns one rom by id.
func (s *Service) Get(id int) (*models.Rom, error) {
	var rom models.Rom
	if err := s.db.First(&rom, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.NotFound("rom", id)
		}
		return nil, err
	}
	return &rom, nil
}

// Create catalogues a new rom. The resources sub-path is derived from the
// filesystem name when not supplied.
func (s *Service) Create(rom *models.Rom) error {
	if rom.Name == "" {
		return &faults.ValidationError{Fields: map[string]string{"name": "Rom name is required"}}
	}
	if rom.FsName == "" {
		rom.FsName = rom.Name
	}
	if rom.FsResourcesPath == "" {
		rom.FsResourcesPath = filepath.Join("roms", slug(rom.FsName))
	}
	return s.db.Create(rom).Error
}

// Delete removes a rom and cascades to its cheat codes and cheat files.
func (s *Service) Delete(id int) error {
	rom, err := s.Get(id)
	if err != nil {
		return err
	}

	if s.purger != nil {
		if err := s.purger.PurgeOwner(rom.ID, rom.FsResourcesPath); err != nil {
			return fmt.Errorf("failed to purge cheat data for rom %d: %w", rom.ID, err)
		}
	}

	return s.db.Delete(&models.Rom{}, rom.ID).Error
}

// slug normalizes a filesystem name into a safe directory segment.
func slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, string(filepath.Separator), "-")
	return s
}

package cheats

import (
	"errors"

	"cheatvault/core/faults"
	"cheatvault/feature/cheats/models"

	"gorm.io/gorm"
)

// Store is the minimal record-store contract the cheat engine needs from
// the relational database. Inserts must be visible to subsequent reads
// within the same reconciliation pass.
type Store interface {
	CodesByOwner(romID int) ([]models.CheatCode, error)
	CodeByID(id int) (*models.CheatCode, error)
	InsertCode(code *models.CheatCode) error
	UpdateCode(code *models.CheatCode) error
	DeleteCode(id int) error
	DeleteCodesByOwner(romID int) error

	FilesByOwner(romID int) ([]models.CheatFile, error)
	FileByID(id int) (*models.CheatFile, error)
	InsertFile(file *models.CheatFile) error
	DeleteFile(id int) error
	DeleteFilesByOwner(romID int) error
}

// GormStore implements Store over a GORM connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates the database-backed store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CodesByOwner(romID int) ([]models.CheatCode, error) {
	var codes []models.CheatCode
	if err := s.db.Where("rom_id = ?", romID).Order("id").Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

func (s *GormStore) CodeByID(id int) (*models.CheatCode, error) {
	var code models.CheatCode
	if err := s.db.First(&code, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.NotFound("cheat code", id)
		}
		return nil, err
	}
	return &code, nil
}

func (s *GormStore) InsertCode(code *models.CheatCode) error {
	return s.db.Create(code).Error
}

func (s *GormStore) UpdateCode(code *models.CheatCode) error {
	return s.db.Save(code).Error
}

func (s *GormStore) DeleteCode(id int) error {
	return s.db.Delete(&models.CheatCode{}, id).Error
}

func (s *GormStore) DeleteCodesByOwner(romID int) error {
	return s.db.Where("rom_id = ?", romID).Delete(&models.CheatCode{}).Error
}

func (s *GormStore) FilesByOwner(romID int) ([]models.CheatFile, error) {
	var files []models.CheatFile
	if err := s.db.Where("rom_id = ?", romID).Order("id").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (s *GormStore) FileByID(id int) (*models.CheatFile, error) {
	var file models.CheatFile
	if err := s.db.First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.NotFound("cheat file", id)
		}
		return nil, err
	}
	return &file, nil
}

func (s *GormStore) InsertFile(file *models.CheatFile) error {
	return s.db.Create(file).Error
}

func (s *GormStore) DeleteFile(id int) error {
	return s.db.Delete(&models.CheatFile{}, id).Error
}

func (s *GormStore) DeleteFilesByOwner(romID int) error {
	return s.db.Where("rom_id = ?", romID).Delete(&models.CheatFile{}).Error
}

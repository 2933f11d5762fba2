package integrity

import (
	"cheatvault/core/database"
	"cheatvault/core/faults"
	"cheatvault/core/fsys"
	"cheatvault/core/library"
	"cheatvault/feature/cheats/codec"
	"cheatvault/feature/cheats/models"
	"cheatvault/feature/cheats/registry"
	roms "cheatvault/feature/roms"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CheatsReport describes one rom's dual-store state. A clean report has
// FileExists true and the three slices empty.
type CheatsReport struct {
	RomID               int      `json:"rom_id"`
	RomName             string   `json:"rom_name"`
	FileExists          bool     `json:"file_exists"`
	MissingFromFile     []string `json:"missing_from_file"`
	MissingFromDatabase []string `json:"missing_from_database"`
	MetadataDrift       []string `json:"metadata_drift"`
	InSync              bool     `json:"in_sync"`
}

// SchemaReport lists missing columns per table. Empty maps mean the
// schema matches the expected layout.
type SchemaReport struct {
	MissingColumns map[string][]string `json:"missing_columns"`
	OK             bool                `json:"ok"`
}

// expectedColumns is the schema contract of the cheat subsystem.
var expectedColumns = map[string][]string{
	"roms":        {"id", "name", "fs_name", "fs_resources_path", "created_at", "updated_at"},
	"cheat_codes": {"id", "rom_id", "name", "code", "description", "type", "created_at", "updated_at"},
	"cheat_files": {"id", "rom_id", "file_name", "file_path", "file_size_bytes", "uploaded_at", "created_at", "updated_at"},
}

// Service runs read-only integrity checks; it never mutates either store.
type Service struct {
	db       *gorm.DB
	roms     *roms.Service
	fs       fsys.Filesystem
	paths    *library.Paths
	registry *registry.Registry
	logger   *zap.Logger
}

// NewService creates an integrity service.
func NewService(db *gorm.DB, romSvc *roms.Service, fs fsys.Filesystem, paths *library.Paths, reg *registry.Registry, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		roms:     romSvc,
		fs:       fs,
		paths:    paths,
		registry: reg,
		logger:   logger,
	}
}

// CheckCheats reports the dual-store state of one rom.
func (s *Service) CheckCheats(romID int) (*CheatsReport, error) {
	rom, err := s.roms.Get(romID)
	if err != nil {
		return nil, err
	}

	var rows []models.CheatCode
	if err := s.db.Where("rom_id = ?", rom.ID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	path := s.paths.CheatsFile(rom.FsResourcesPath)
	content, exists, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, faults.IO("read", path, err)
	}
	fileRecords := codec.Parse(string(content), s.registry)

	report := &CheatsReport{
		RomID:               rom.ID,
		RomName:             rom.Name,
		FileExists:          exists,
		MissingFromFile:     []string{},
		MissingFromDatabase: []string{},
		MetadataDrift:       []string{},
	}

	inFile := make(map[string]codec.Record, len(fileRecords))
	for _, rec := range fileRecords {
		inFile[rec.Code] = rec
	}
	inDB := make(map[string]models.CheatCode, len(rows))
	for _, row := range rows {
		inDB[row.Code] = row
	}

	for _, row := range rows {
		rec, ok := inFile[row.Code]
		if !ok {
			report.MissingFromFile = append(report.MissingFromFile, row.Code)
			continue
		}
		if rec.Name != row.Name || rec.Description != row.Description || rec.Type != row.Type {
			report.MetadataDrift = append(report.MetadataDrift, row.Code)
		}
	}
	for _, rec := range fileRecords {
		if _, ok := inDB[rec.Code]; !ok {
			report.MissingFromDatabase = append(report.MissingFromDatabase, rec.Code)
		}
	}

	report.InSync = len(report.MissingFromFile) == 0 &&
		len(report.MissingFromDatabase) == 0 &&
		len(report.MetadataDrift) == 0 &&
		(exists || len(rows) == 0)

	return report, nil
}

// CheckAllCheats reports every catalogued rom.
func (s *Service) CheckAllCheats() ([]CheatsReport, error) {
	all, err := s.roms.List()
	if err != nil {
		return nil, err
	}

	reports := make([]CheatsReport, 0, len(all))
	for _, rom := range all {
		report, err := s.CheckCheats(rom.ID)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

// CheckSchema verifies that the cheat tables carry their expected columns.
func (s *Service) CheckSchema() (*SchemaReport, error) {
	report := &SchemaReport{MissingColumns: make(map[string][]string)}

	for table, expected := range expectedColumns {
		missing, err := database.HasColumns(s.db, table, expected)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			report.MissingColumns[table] = missing
		}
	}

	report.OK = len(report.MissingColumns) == 0
	return report, nil
}

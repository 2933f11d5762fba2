package cheats

import (
	"bytes"
	"context"
	"errors"
	"path"
	"path/filepath"

	"cheatvault/core/faults"
	"cheatvault/core/fsys"
	"cheatvault/core/library"
	"cheatvault/core/storage"
	"cheatvault/feature/cheats/models"
	"cheatvault/feature/cheats/registry"
	"cheatvault/feature/cheats/sync"
	"cheatvault/feature/cheats/validator"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrTypeExists rejects creation of a cheat type whose id is taken.
var ErrTypeExists = errors.New("cheat type already exists")

// Service exposes the cheat subsystem's operations: type registry
// management, cheat-code reads and writes (always through the sync
// engine's discipline), and uploaded cheat files.
type Service struct {
	store     Store
	owners    sync.OwnerResolver
	engine    *sync.Engine
	registry  *registry.Registry
	validator *validator.Validator
	fs        fsys.Filesystem
	paths     *library.Paths
	logger    *zap.Logger

	mirror       storage.Client
	mirrorBucket string
}

// NewService wires the cheat service. mirror may be nil when object
// storage is disabled.
func NewService(store Store, owners sync.OwnerResolver, fs fsys.Filesystem, paths *library.Paths, reg *registry.Registry, logger *zap.Logger, mirror storage.Client, mirrorBucket string) *Service {
	val := validator.New(reg)
	return &Service{
		store:        store,
		owners:       owners,
		engine:       sync.NewEngine(store, owners, fs, paths, reg, val, logger),
		registry:     reg,
		validator:    val,
		fs:           fs,
		paths:        paths,
		logger:       logger,
		mirror:       mirror,
		mirrorBucket: mirrorBucket,
	}
}

// Engine exposes the sync engine (CLI sync command, integrity reporting).
func (s *Service) Engine() *sync.Engine {
	return s.engine
}

// Registry exposes the type registry.
func (s *Service) Registry() *registry.Registry {
	return s.registry
}

// --- Cheat type operations ---

// ListTypes returns every registered cheat type, ordered by id.
func (s *Service) ListTypes() []models.CheatType {
	return s.registry.All()
}

// GetType returns one cheat type.
func (s *Service) GetType(id string) (models.CheatType, error) {
	t, ok := s.registry.Get(id)
	if !ok {
		return models.CheatType{}, faults.NotFound("cheat type", id)
	}
	return t, nil
}

// CreateType registers a new cheat type.
func (s *Service) CreateType(id string, t models.CheatType) (models.CheatType, error) {
	if s.registry.Has(id) {
		return models.CheatType{}, ErrTypeExists
	}
	if err := s.registry.Add(id, t); err != nil {
		return models.CheatType{}, err
	}
	created, _ := s.registry.Get(id)
	return created, nil
}

// UpdateType replaces an existing cheat type.
func (s *Service) UpdateType(id string, t models.CheatType) (models.CheatType, error) {
	if err := s.registry.Update(id, t); err != nil {
		return models.CheatType{}, err
	}
	updated, _ := s.registry.Get(id)
	return updated, nil
}

// DeleteType removes a cheat type. Codes tagged with it are untouched;
// they degrade to raw the next time they are read from a flat file.
func (s *Service) DeleteType(id string) (models.CheatType, error) {
	t, ok := s.registry.Get(id)
	if !ok {
		return models.CheatType{}, faults.NotFound("cheat type", id)
	}
	if err := s.registry.Remove(id); err != nil {
		return models.CheatType{}, err
	}
	return t, nil
}

// --- Cheat code operations ---

// ListCodes reconciles the owner's dual store and returns its rows.
func (s *Service) ListCodes(romID int) ([]models.CheatCode, error) {
	if err := s.requireOwner(romID); err != nil {
		return nil, err
	}
	if err := s.engine.Sync(romID); err != nil {
		return nil, err
	}
	return s.store.CodesByOwner(romID)
}

// AddCode validates, sanitizes and stores a new cheat code, keeping the
// flat file current.
func (s *Service) AddCode(romID int, in models.Input) (*models.CheatCode, error) {
	if errs := s.validator.Validate(in); len(errs) > 0 {
		return nil, &faults.ValidationError{Fields: errs}
	}

	sanitized := s.validator.Sanitize(in)
	code := &models.CheatCode{
		RomID:       romID,
		Name:        sanitized.Name,
		Code:        sanitized.Code,
		Description: sanitized.Description,
		Type:        sanitized.Type,
	}

	err := s.engine.Mutate(romID, func() error {
		return s.store.InsertCode(code)
	})
	if err != nil {
		return nil, err
	}
	return code, nil
}

// UpdateCode replaces an existing code's fields.
func (s *Service) UpdateCode(codeID int, in models.Input) (*models.CheatCode, error) {
	code, err := s.store.CodeByID(codeID)
	if err != nil {
		return nil, err
	}

	if errs := s.validator.Validate(in); len(errs) > 0 {
		return nil, &faults.ValidationError{Fields: errs}
	}
	sanitized := s.validator.Sanitize(in)

	err = s.engine.Mutate(code.RomID, func() error {
		code.Name = sanitized.Name
		code.Code = sanitized.Code
		code.Description = sanitized.Description
		code.Type = sanitized.Type
		return s.store.UpdateCode(code)
	})
	if err != nil {
		return nil, err
	}
	return code, nil
}

// DeleteCode removes a code row and its flat-file block.
func (s *Service) DeleteCode(codeID int) error {
	code, err := s.store.CodeByID(codeID)
	if err != nil {
		return err
	}

	return s.engine.Mutate(code.RomID, func() error {
		return s.store.DeleteCode(code.ID)
	})
}

// --- Cheat file operations ---

// UploadFile stores an uploaded cheat-file blob and its metadata row. A
// colliding file name overwrites the previous blob (last write wins).
func (s *Service) UploadFile(ctx context.Context, romID int, fileName string, content []byte) (*models.CheatFile, error) {
	owner, err := s.owners.ResolveOwner(romID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, faults.NotFound("rom", romID)
	}

	if fileName == "" {
		fileName = "cheat_file.cht"
	}
	// Strip any path component a client smuggles into the name.
	fileName = filepath.Base(fileName)

	dir := s.paths.CheatsDir(owner.ResourcesPath)
	if err := s.fs.MkdirAll(dir); err != nil {
		return nil, faults.IO("mkdir", dir, err)
	}

	blobPath := s.paths.CheatFileBlob(owner.ResourcesPath, fileName)
	if err := s.fs.WriteFile(blobPath, content); err != nil {
		return nil, faults.IO("write", blobPath, err)
	}

	file := &models.CheatFile{
		RomID:         romID,
		FileName:      fileName,
		FilePath:      blobPath,
		FileSizeBytes: int64(len(content)),
	}
	if err := s.store.InsertFile(file); err != nil {
		return nil, err
	}

	s.mirrorPut(ctx, owner, fileName, content)
	return file, nil
}

// ListFiles returns the owner's cheat-file metadata rows.
func (s *Service) ListFiles(romID int) ([]models.CheatFile, error) {
	if err := s.requireOwner(romID); err != nil {
		return nil, err
	}
	return s.store.FilesByOwner(romID)
}

// DeleteFile removes the blob first (tolerating an already-missing file),
// then the metadata row.
func (s *Service) DeleteFile(ctx context.Context, fileID int) error {
	file, err := s.store.FileByID(fileID)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(file.FilePath); err != nil {
		return faults.IO("remove", file.FilePath, err)
	}
	if err := s.store.DeleteFile(file.ID); err != nil {
		return err
	}

	s.mirrorRemove(ctx, file)
	return nil
}

// PurgeOwner deletes every cheat row and the on-disk cheats directory of
// a game. Called when the game itself is deleted.
func (s *Service) PurgeOwner(romID int, resourcesPath string) error {
	if err := s.store.DeleteCodesByOwner(romID); err != nil {
		return err
	}
	if err := s.store.DeleteFilesByOwner(romID); err != nil {
		return err
	}

	dir := s.paths.CheatsDir(resourcesPath)
	if err := s.fs.RemoveAll(dir); err != nil {
		return faults.IO("remove", dir, err)
	}
	return nil
}

func (s *Service) requireOwner(romID int) error {
	owner, err := s.owners.ResolveOwner(romID)
	if err != nil {
		return err
	}
	if owner == nil {
		return faults.NotFound("rom", romID)
	}
	return nil
}

// mirrorPut copies an uploaded blob to object storage. Best effort: the
// filesystem and database stay the system of record.
func (s *Service) mirrorPut(ctx context.Context, owner *sync.Owner, fileName string, content []byte) {
	if s.mirror == nil {
		return
	}

	objectName := path.Join(owner.ResourcesPath, "cheats", fileName)
	_, err := s.mirror.PutObject(ctx, s.mirrorBucket, objectName,
		bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{})
	if err != nil {
		s.logger.Warn("Cheat file mirror upload failed",
			zap.String("object", objectName), zap.Error(err))
	}
}

func (s *Service) mirrorRemove(ctx context.Context, file *models.CheatFile) {
	if s.mirror == nil {
		return
	}

	owner, err := s.owners.ResolveOwner(file.RomID)
	if err != nil || owner == nil {
		return
	}

	objectName := path.Join(owner.ResourcesPath, "cheats", file.FileName)
	if err := s.mirror.RemoveObject(ctx, s.mirrorBucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Warn("Cheat file mirror delete failed",
			zap.String("object", objectName), zap.Error(err))
	}
}

package sync

import (
	"sync"
	"sync/atomic"

	"cheatvault/core/faults"
	"cheatvault/core/fsys"
	"cheatvault/core/library"
	"cheatvault/feature/cheats/codec"
	"cheatvault/feature/cheats/models"
	"cheatvault/feature/cheats/registry"
	"cheatvault/feature/cheats/validator"

	"go.uber.org/zap"
)

// CodeStore is the slice of the record store the engine needs: reads and
// inserts must observe each other within one reconciliation pass.
type CodeStore interface {
	CodesByOwner(romID int) ([]models.CheatCode, error)
	InsertCode(code *models.CheatCode) error
}

// Owner is the game a cheat file belongs to, reduced to what the engine
// needs: its id and its resources sub-path.
type Owner struct {
	ID            int
	ResourcesPath string
}

// OwnerResolver looks up an owner. A missing owner resolves to (nil, nil);
// errors are reserved for lookup failures.
type OwnerResolver interface {
	ResolveOwner(id int) (*Owner, error)
}

// Engine reconciles a game's relational cheat rows with its flat file.
//
// The flat file is an import source for net-new codes only: on any
// metadata mismatch for a shared code value the database wins and the file
// is rewritten from the rows. Every pass runs under a per-owner lock so
// concurrent mutations of the same game cannot interleave read-modify-write
// cycles on the file.
type Engine struct {
	store     CodeStore
	owners    OwnerResolver
	fs        fsys.Filesystem
	paths     *library.Paths
	registry  *registry.Registry
	validator *validator.Validator
	logger    *zap.Logger

	mu    sync.Mutex
	locks map[int]*sync.Mutex

	conflicts atomic.Int64
}

// NewEngine creates a reconciliation engine. All collaborators are
// injected; nothing global.
func NewEngine(store CodeStore, owners OwnerResolver, fs fsys.Filesystem, paths *library.Paths, reg *registry.Registry, val *validator.Validator, logger *zap.Logger) *Engine {
	return &Engine{
		store:     store,
		owners:    owners,
		fs:        fs,
		paths:     paths,
		registry:  reg,
		validator: val,
		logger:    logger,
		locks:     make(map[int]*sync.Mutex),
	}
}

// ConflictsResolved reports how many database-wins conflicts the engine
// has silently resolved since creation.
func (e *Engine) ConflictsResolved() int64 {
	return e.conflicts.Load()
}

// ownerLock returns the mutex serializing all work for one owner.
func (e *Engine) ownerLock(ownerID int) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.locks[ownerID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[ownerID] = l
	}
	return l
}

// Sync runs one reconciliation pass for the owner. A missing owner is a
// no-op: there is nothing to reconcile.
func (e *Engine) Sync(ownerID int) error {
	l := e.ownerLock(ownerID)
	l.Lock()
	defer l.Unlock()

	owner, err := e.owners.ResolveOwner(ownerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return nil
	}
	return e.syncLocked(owner)
}

// Mutate runs the full write discipline for one owner under its lock:
// a reconciliation pass, then the caller's relational mutation, then a
// full rewrite of the flat file so it reflects the post-mutation state.
// A missing owner fails with not-found before anything runs.
func (e *Engine) Mutate(ownerID int, fn func() error) error {
	l := e.ownerLock(ownerID)
	l.Lock()
	defer l.Unlock()

	owner, err := e.owners.ResolveOwner(ownerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return faults.NotFound("rom", ownerID)
	}

	if err := e.syncLocked(owner); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return e.rewriteFile(owner)
}

// syncLocked merges the flat file into the rows and rewrites the file.
// Callers hold the owner lock.
func (e *Engine) syncLocked(owner *Owner) error {
	rows, err := e.store.CodesByOwner(owner.ID)
	if err != nil {
		return err
	}

	path := e.paths.CheatsFile(owner.ResourcesPath)
	content, _, err := e.fs.ReadFile(path)
	if err != nil {
		return faults.IO("read", path, err)
	}
	// An absent file parses to no records; so does a malformed one.
	fileRecords := codec.Parse(string(content), e.registry)

	existing := make(map[string]models.CheatCode, len(rows))
	for _, row := range rows {
		existing[row.Code] = row
	}

	for _, rec := range fileRecords {
		row, ok := existing[rec.Code]
		if !ok {
			sanitized := e.validator.Sanitize(models.Input{
				Name:        rec.Name,
				Code:        rec.Code,
				Description: rec.Description,
				Type:        rec.Type,
			})
			code := models.CheatCode{
				RomID:       owner.ID,
				Name:        sanitized.Name,
				Code:        sanitized.Code,
				Description: sanitized.Description,
				Type:        sanitized.Type,
			}
			if err := e.store.InsertCode(&code); err != nil {
				return err
			}
			existing[code.Code] = code
			continue
		}

		// Database wins on metadata drift; the file never overwrites an
		// existing row. Count it so the policy stays observable.
		if row.Name != rec.Name || row.Description != rec.Description || row.Type != rec.Type {
			e.conflicts.Add(1)
			e.logger.Debug("Resolved cheat metadata conflict in favor of database",
				zap.Int("rom_id", owner.ID),
				zap.String("code", rec.Code),
			)
		}
	}

	return e.rewriteFile(owner)
}

// rewriteFile serializes the owner's full row set over the flat file.
// Callers hold the owner lock. The relational state is already committed
// when this runs, so a write failure leaves the stores inconsistent until
// the next successful pass; the error is surfaced, not hidden.
func (e *Engine) rewriteFile(owner *Owner) error {
	rows, err := e.store.CodesByOwner(owner.ID)
	if err != nil {
		return err
	}

	records := make([]codec.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, codec.Record{
			Name:        row.Name,
			Description: row.Description,
			Type:        row.Type,
			Code:        row.Code,
		})
	}

	dir := e.paths.CheatsDir(owner.ResourcesPath)
	if err := e.fs.MkdirAll(dir); err != nil {
		return faults.IO("mkdir", dir, err)
	}

	path := e.paths.CheatsFile(owner.ResourcesPath)
	if err := e.fs.WriteFile(path, []byte(codec.Serialize(records))); err != nil {
		return faults.IO("write", path, err)
	}
	return nil
}

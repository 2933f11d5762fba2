package registry

import (
	"encoding/json"
	"sort"
	"sync"

	"cheatvault/core/faults"
	"cheatvault/core/fsys"
	"cheatvault/feature/cheats/models"

	"go.uber.org/zap"
)

// CatchAllPattern validates any non-empty code. It is the pattern of the
// built-in raw type and the fallback for unknown type ids.
const CatchAllPattern = "^.+$"

// docEntry is the persisted shape of one registry entry; the document is a
// JSON object keyed by type id.
type docEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Pattern     string `json:"pattern"`
	Example     string `json:"example"`
	FormatHint  string `json:"format_hint,omitempty"`
}

// Registry is the mutable store of cheat-code types. It is constructor
// injected everywhere (validator, codec, sync engine) so tests can supply
// an isolated instance; there is no package-level singleton.
type Registry struct {
	mu     sync.RWMutex
	path   string
	fs     fsys.Filesystem
	logger *zap.Logger
	types  map[string]models.CheatType
}

// New creates a Registry persisting to the document at path.
func New(path string, fs fsys.Filesystem, logger *zap.Logger) *Registry {
	return &Registry{
		path:   path,
		fs:     fs,
		logger: logger,
		types:  make(map[string]models.CheatType),
	}
}

// Load reads the persistent document. A missing document is initialized
// with the single built-in raw type and persisted. An unparseable document
// returns a ConfigError and leaves the registry empty; callers downgrade
// that to a warning, never a crash.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	content, exists, err := r.fs.ReadFile(r.path)
	if err != nil {
		return faults.IO("read", r.path, err)
	}

	if !exists {
		r.types = map[string]models.CheatType{
			"raw": rawType(),
		}
		return r.save()
	}

	var doc map[string]docEntry
	if err := json.Unmarshal(content, &doc); err != nil {
		r.logger.Warn("Cheat type document is not valid JSON, starting with empty registry",
			zap.String("path", r.path), zap.Error(err))
		r.types = make(map[string]models.CheatType)
		return &faults.ConfigError{Path: r.path, Err: err}
	}

	types := make(map[string]models.CheatType, len(doc))
	for id, entry := range doc {
		types[id] = models.CheatType{
			ID:          id,
			Name:        entry.Name,
			Description: entry.Description,
			Pattern:     entry.Pattern,
			Example:     entry.Example,
			FormatHint:  entry.FormatHint,
		}
	}
	r.types = types
	return nil
}

// save rewrites the whole document. Callers hold the lock. The registry is
// small and human-edited, so full rewrites are simpler than incremental
// persistence.
func (r *Registry) save() error {
	doc := make(map[string]docEntry, len(r.types))
	for id, t := range r.types {
		doc[id] = docEntry{
			Name:        t.Name,
			Description: t.Description,
			Pattern:     t.Pattern,
			Example:     t.Example,
			FormatHint:  t.FormatHint,
		}
	}

	content, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	if err := r.fs.WriteFile(r.path, content); err != nil {
		return faults.IO("write", r.path, err)
	}
	return nil
}

// ListIDs returns all type ids, sorted for deterministic output.
func (r *Registry) ListIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns every registered type, ordered by id.
func (r *Registry) All() []models.CheatType {
	r.mu.RLock()
	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	types := make([]models.CheatType, 0, len(ids))
	for _, id := range ids {
		types = append(types, r.types[id])
	}
	r.mu.RUnlock()
	return types
}

// Get returns the type for an id.
func (r *Registry) Get(id string) (models.CheatType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[id]
	return t, ok
}

// Has reports whether the id is a live registry type.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[id]
	return ok
}

// PatternFor returns the type's validation pattern, or the catch-all
// pattern for unknown types.
func (r *Registry) PatternFor(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.types[id]; ok && t.Pattern != "" {
		return t.Pattern
	}
	return CatchAllPattern
}

// Add registers a new type and persists the document.
func (r *Registry) Add(id string, t models.CheatType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = id
	r.types[id] = t
	return r.save()
}

// Update replaces an existing type and persists the document.
func (r *Registry) Update(id string, t models.CheatType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[id]; !ok {
		return faults.NotFound("cheat type", id)
	}
	t.ID = id
	r.types[id] = t
	return r.save()
}

// Remove deletes a type and persists the document.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[id]; !ok {
		return faults.NotFound("cheat type", id)
	}
	delete(r.types, id)
	return r.save()
}

// SeedDefaults installs any of the built-in types that are missing and
// persists the document once if anything changed.
func (r *Registry) SeedDefaults() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := false
	for _, t := range Defaults() {
		if _, ok := r.types[t.ID]; !ok {
			r.types[t.ID] = t
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.save()
}

func rawType() models.CheatType {
	return models.CheatType{
		ID:          "raw",
		Name:        "Raw",
		Description: "Raw cheat code with no specific format",
		Pattern:     CatchAllPattern,
		Example:     "ABCDEF",
	}
}

// Defaults returns the five built-in cheat types with their canonical
// patterns and format messages.
func Defaults() []models.CheatType {
	return []models.CheatType{
		rawType(),
		{
			ID:          "game_genie",
			Name:        "Game Genie",
			Description: "Game Genie cheat code",
			Pattern:     "^([A-Za-z0-9]{3}-?[A-Za-z0-9]{3}|[A-Za-z0-9]{4}-?[A-Za-z0-9]{4})$",
			Example:     "ABCD-EFGH",
			FormatHint:  "Game Genie codes must be 6-8 alphanumeric characters (A-Z, 0-9)",
		},
		{
			ID:          "gameshark",
			Name:        "GameShark",
			Description: "GameShark cheat code",
			Pattern:     "^[0-9A-Fa-f]{8}([0-9A-Fa-f]{8})?$",
			Example:     "12345678 9ABCDEF0",
			FormatHint:  "GameShark codes must be in format: XXXXXXXX or XXXXXXXX YYYYYYYY (hex digits)",
		},
		{
			ID:          "codebreaker",
			Name:        "CodeBreaker",
			Description: "CodeBreaker cheat code",
			Pattern:     "^[0-9A-Fa-f]{8,16}$",
			Example:     "123456789ABC",
			FormatHint:  "CodeBreaker codes must be 8-12 hex digits",
		},
		{
			ID:          "actionreplay",
			Name:        "Action Replay",
			Description: "Action Replay cheat code",
			Pattern:     "^[0-9A-Fa-f]{8,16}$",
			Example:     "123456789ABCDEF0",
			FormatHint:  "Action Replay codes must be 8-16 hex digits",
		},
	}
}

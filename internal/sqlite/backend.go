// Package sqlite implements the session backend on an in-memory SQLite
// database. Nothing is written to disk except by WriteExport.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

// Backend implements types.Session. The collection lives in one in-memory
// SQLite connection; rendered code is memoized per animation revision.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	active   string
	logger   *slog.Logger

	memoMu sync.Mutex
	memo   map[string]rendered
}

var _ types.Session = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for session mutations.
func WithLogger(l *slog.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBackend creates a new session backend. The backend is not attached;
// call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		logger: slog.New(slog.DiscardHandler),
		memo:   make(map[string]rendered),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach validates config and opens a fresh in-memory database.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory", uuid.NewString()))
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	// The database lives only as long as its single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.active = ""
	b.attached = true
	b.resetMemo()
	b.logger.Debug("session attached", "backend", config.Backend)
	return nil
}

// Detach closes the database. After Detach, all operations return
// ErrSessionDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	b.active = ""
	b.resetMemo()
	b.logger.Debug("session detached")
	return nil
}

// ExportPath returns the configured export destination.
func (b *Backend) ExportPath() (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", types.ErrSessionDetached
	}
	return filepath.Join(b.config.ExportDir, b.config.ExportName()), nil
}

// Add appends a default animation of type t and makes it active.
func (b *Backend) Add(t types.AnimationType) (types.Animation, error) {
	a, err := types.New(t)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrSessionDetached
	}
	if err := insertAnimation(b.db, a); err != nil {
		return nil, err
	}
	b.active = a.Common().ID
	b.logger.Debug("animation added", "id", b.active, "type", t)
	return a.Clone(), nil
}

// Remove deletes the animation. When it was active, the first remaining
// animation becomes active.
func (b *Backend) Remove(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrSessionDetached
	}
	if err := deleteAnimation(b.db, id); err != nil {
		return err
	}
	b.forget(id)

	if b.active == id {
		next, err := firstAnimationID(b.db)
		if err != nil {
			return err
		}
		b.active = next
	}
	b.logger.Debug("animation removed", "id", id, "active", b.active)
	return nil
}

// Update applies p to the stored animation. On error the stored animation
// is unchanged.
func (b *Backend) Update(id string, p types.Patch) (types.Animation, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrSessionDetached
	}
	cur, err := getAnimation(b.db, id)
	if err != nil {
		return nil, err
	}
	next, err := p.Apply(cur)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", id, err)
	}
	if err := updateAnimation(b.db, next); err != nil {
		return nil, err
	}
	b.logger.Debug("animation updated", "id", id)
	return next.Clone(), nil
}

// Get returns the animation with the given ID.
func (b *Backend) Get(id string) (types.Animation, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrSessionDetached
	}
	return getAnimation(b.db, id)
}

// List returns every animation in insertion order.
func (b *Backend) List() ([]types.Animation, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrSessionDetached
	}
	return listAnimations(b.db)
}

// SetActive selects an animation. An empty id clears the selection.
func (b *Backend) SetActive(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrSessionDetached
	}
	if id != "" {
		if _, err := getAnimation(b.db, id); err != nil {
			return err
		}
	}
	b.active = id
	return nil
}

// Active returns the selected animation, if any.
func (b *Backend) Active() (types.Animation, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, false, types.ErrSessionDetached
	}
	if b.active == "" {
		return nil, false, nil
	}
	a, err := getAnimation(b.db, b.active)
	if err != nil {
		return nil, false, err
	}
	return a, true, nil
}

// Replace discards the collection and loads list in order. The first
// animation becomes active. On error the previous collection is kept.
func (b *Backend) Replace(list []types.Animation) error {
	for i, a := range list {
		if a.Common().ID == "" {
			return fmt.Errorf("animation %d: %w", i, types.ErrInvalidID)
		}
		if err := a.Validate(); err != nil {
			return fmt.Errorf("animation %d: %w", i, err)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrSessionDetached
	}
	if err := replaceAnimations(b.db, list); err != nil {
		return err
	}
	b.resetMemo()
	b.active = ""
	if len(list) > 0 {
		b.active = list[0].Common().ID
	}
	b.logger.Debug("session replaced", "count", len(list))
	return nil
}

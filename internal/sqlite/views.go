package sqlite

import (
	"strings"
	"time"

	"github.com/mesh-intelligence/tweenkit/pkg/codegen"
	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

// rendered is a memoized render of one animation revision.
type rendered struct {
	revision int64
	code     string
}

// render returns the code for rec, reusing the memo when the revision has
// not changed.
func (b *Backend) render(rec record) string {
	id := rec.animation.Common().ID

	b.memoMu.Lock()
	defer b.memoMu.Unlock()

	if m, ok := b.memo[id]; ok && m.revision == rec.revision {
		return m.code
	}
	code := codegen.Render(rec.animation)
	b.memo[id] = rendered{revision: rec.revision, code: code}
	return code
}

func (b *Backend) forget(id string) {
	b.memoMu.Lock()
	defer b.memoMu.Unlock()
	delete(b.memo, id)
}

func (b *Backend) resetMemo() {
	b.memoMu.Lock()
	defer b.memoMu.Unlock()
	b.memo = make(map[string]rendered)
}

// ActiveCode renders the active animation, or "" when none is selected.
func (b *Backend) ActiveCode() (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", types.ErrSessionDetached
	}
	if b.active == "" {
		return "", nil
	}
	rec, err := getRecord(b.db, b.active)
	if err != nil {
		return "", err
	}
	return b.render(rec), nil
}

// AllCode renders the whole collection separated by codegen.Divider.
func (b *Backend) AllCode() (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", types.ErrSessionDetached
	}
	recs, err := listRecords(b.db)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(recs))
	for i, rec := range recs {
		parts[i] = b.render(rec)
	}
	return strings.Join(parts, "\n\n"+codegen.Divider+"\n\n"), nil
}

// StateJSON returns the collection as a bare JSON array.
func (b *Backend) StateJSON() ([]byte, error) {
	list, err := b.List()
	if err != nil {
		return nil, err
	}
	return codegen.Snapshot(list)
}

// Export returns the export document stamped with at.
func (b *Backend) Export(at time.Time) ([]byte, error) {
	list, err := b.List()
	if err != nil {
		return nil, err
	}
	return codegen.Export(list, at)
}

package types

import "time"

// Session holds the live, ordered animation collection and the active
// selection. Implementations hand out deep copies; callers never hold a
// reference into session state.
type Session interface {
	// Attach initializes the session storage. Returns ErrAlreadyAttached if
	// called while attached.
	Attach(config Config) error

	// Detach releases storage. Idempotent. After Detach, operations return
	// ErrSessionDetached.
	Detach() error

	// Add appends a default animation of type t and makes it active.
	Add(t AnimationType) (Animation, error)

	// Remove deletes the animation. When it was active, the first remaining
	// animation becomes active, or none.
	Remove(id string) error

	// Update applies p to the animation and stores the result. On error the
	// stored animation is unchanged.
	Update(id string, p Patch) (Animation, error)

	// Get returns the animation with the given ID or ErrNotFound.
	Get(id string) (Animation, error)

	// List returns every animation in insertion order.
	List() ([]Animation, error)

	// SetActive selects an animation. An empty id clears the selection.
	SetActive(id string) error

	// Active returns the selected animation, if any.
	Active() (Animation, bool, error)

	// Replace discards the collection and loads list in order. The first
	// animation becomes active.
	Replace(list []Animation) error

	// ActiveCode renders the active animation, or "" when none is selected.
	ActiveCode() (string, error)

	// AllCode renders the whole collection.
	AllCode() (string, error)

	// StateJSON returns the bare JSON array of the collection.
	StateJSON() ([]byte, error)

	// Export returns the export document captured at at.
	Export(at time.Time) ([]byte, error)
}

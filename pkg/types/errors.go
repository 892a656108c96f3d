package types

import "errors"

// Session lifecycle errors.
var (
	ErrSessionDetached = errors.New("session is detached")
	ErrAlreadyAttached = errors.New("session is already attached")
)

// Lookup and decoding errors.
var (
	ErrNotFound      = errors.New("animation not found")
	ErrInvalidID     = errors.New("invalid animation ID")
	ErrUnknownType   = errors.New("unknown animation type")
	ErrPatchMismatch = errors.New("patch does not match animation type")
)

// Validation errors returned by Animation.Validate.
var (
	ErrInvalidDuration      = errors.New("duration must be positive")
	ErrInvalidVisibleItems  = errors.New("visible items must be at least 1")
	ErrInvalidAutoplayDelay = errors.New("autoplay delay must be positive")
	ErrUnknownTransition    = errors.New("unknown transition type")
	ErrUnknownToggleActions = errors.New("unknown toggle actions")
	ErrInvalidStagger       = errors.New("stagger must be positive")
	ErrInvalidScrub         = errors.New("scrub smoothing must not be negative")
)

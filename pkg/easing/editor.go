package easing

// DefaultPreset is remembered as the last preset when an Editor opens on a
// custom value.
const DefaultPreset = "power2.out"

// Handle selects one of the two draggable control points.
type Handle int

// Control point handles.
const (
	HandleP1 Handle = iota
	HandleP2
)

// Editor holds the state of a curve editor for one easing field: the current
// identifier, its mode, the control points shown, and the last preset that
// was active so that leaving custom mode restores it.
type Editor struct {
	value      string
	mode       Mode
	bezier     Bezier
	lastPreset string
}

// NewEditor opens an editor on value.
func NewEditor(value string) *Editor {
	e := &Editor{
		bezier:     DefaultBezier,
		lastPreset: DefaultPreset,
	}
	e.SetValue(value)
	return e
}

// Value returns the current identifier.
func (e *Editor) Value() string { return e.value }

// Mode returns the current mode.
func (e *Editor) Mode() Mode { return e.mode }

// Bezier returns the control points currently shown.
func (e *Editor) Bezier() Bezier { return e.bezier }

// LastPreset returns the preset that SwitchToPreset would restore.
func (e *Editor) LastPreset() string { return e.lastPreset }

// SetValue syncs the editor to an identifier set from outside. A preset
// becomes the last preset; its Bézier approximation, when it has one,
// replaces the control points. Malformed custom notation keeps the previous
// control points.
func (e *Editor) SetValue(v string) {
	e.value = v
	if ClassifyMode(v) == ModeCustom {
		e.mode = ModeCustom
		if b, err := ParseCubicBezier(v); err == nil {
			e.bezier = b
		}
		return
	}
	e.mode = ModePreset
	e.lastPreset = v
	if b, ok := LookupBezier(v); ok {
		e.bezier = b
	}
}

// SwitchToCustom converts a preset to custom notation seeded from its Bézier
// approximation, or DefaultBezier when it has none. It returns the new value
// and is a no-op in custom mode.
func (e *Editor) SwitchToCustom() string {
	if e.mode == ModeCustom {
		return e.value
	}
	seed, ok := LookupBezier(e.value)
	if !ok {
		seed = DefaultBezier
	}
	e.SetValue(FormatCubicBezier(seed))
	return e.value
}

// MoveHandle drags control point h to (x, y), switching to custom mode first
// if needed. x is clamped to [0,1]; y may overshoot. It returns the new value.
func (e *Editor) MoveHandle(h Handle, x, y float64) string {
	e.SwitchToCustom()
	x = min(max(x, 0), 1)
	b := e.bezier
	if h == HandleP1 {
		b.X1, b.Y1 = x, y
	} else {
		b.X2, b.Y2 = x, y
	}
	e.SetValue(FormatCubicBezier(b))
	return e.value
}

// SwitchToPreset leaves custom mode by restoring the last preset. It returns
// the restored value.
func (e *Editor) SwitchToPreset() string {
	e.SetValue(e.lastPreset)
	return e.value
}

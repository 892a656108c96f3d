package types

// HoverState is the tween applied on pointer enter or leave. Nil optional
// fields mean "leave the runtime default", not zero.
type HoverState struct {
	Duration float64  `json:"duration"`
	Ease     string   `json:"ease"`
	Scale    *float64 `json:"scale,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	X        *float64 `json:"x,omitempty"`
	Opacity  *float64 `json:"opacity,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`
}

// Props returns the present optional properties in the order
// scale, y, x, opacity, rotation.
func (s HoverState) Props() []Prop {
	props := make([]Prop, 0, 5)
	props = appendProp(props, "scale", s.Scale)
	props = appendProp(props, "y", s.Y)
	props = appendProp(props, "x", s.X)
	props = appendProp(props, "opacity", s.Opacity)
	props = appendProp(props, "rotation", s.Rotation)
	return props
}

func (s HoverState) clone() HoverState {
	s.Scale = clonePtr(s.Scale)
	s.Y = clonePtr(s.Y)
	s.X = clonePtr(s.X)
	s.Opacity = clonePtr(s.Opacity)
	s.Rotation = clonePtr(s.Rotation)
	return s
}

// HoverStatePatch edits a HoverState. Nil pointers and zero Changes keep the
// current value.
type HoverStatePatch struct {
	Duration *float64
	Ease     *string
	Scale    Change
	Y        Change
	X        Change
	Opacity  Change
	Rotation Change
}

// Merge returns s with p applied. s is not modified.
func (s HoverState) Merge(p HoverStatePatch) HoverState {
	next := s.clone()
	if p.Duration != nil {
		next.Duration = *p.Duration
	}
	if p.Ease != nil {
		next.Ease = *p.Ease
	}
	next.Scale = p.Scale.apply(next.Scale)
	next.Y = p.Y.apply(next.Y)
	next.X = p.X.apply(next.X)
	next.Opacity = p.Opacity.apply(next.Opacity)
	next.Rotation = p.Rotation.apply(next.Rotation)
	return next
}

func (s HoverState) validate() error {
	if !finitePositive(s.Duration) {
		return ErrInvalidDuration
	}
	return nil
}

// Hover animates an element set on pointer enter and leave.
type Hover struct {
	BaseAnimation
	Enter HoverState `json:"enter"`
	Leave HoverState `json:"leave"`
}

var _ Animation = (*Hover)(nil)

// Common returns the shared fields.
func (h *Hover) Common() BaseAnimation { return h.BaseAnimation }

// Accept dispatches to v.VisitHover.
func (h *Hover) Accept(v Visitor) { v.VisitHover(h) }

// Validate checks both states have a positive duration.
func (h *Hover) Validate() error {
	if err := h.Enter.validate(); err != nil {
		return err
	}
	return h.Leave.validate()
}

// Clone returns a deep copy.
func (h *Hover) Clone() Animation {
	c := *h
	c.Enter = h.Enter.clone()
	c.Leave = h.Leave.clone()
	return &c
}

func (*Hover) sealed() {}

// HoverPatch is a partial update for a Hover animation.
type HoverPatch struct {
	BasePatch
	Enter HoverStatePatch
	Leave HoverStatePatch
}

// Apply merges the patch into a copy of a. It returns ErrPatchMismatch when a
// is not a *Hover, and the validation error when the result is invalid.
func (p HoverPatch) Apply(a Animation) (Animation, error) {
	h, ok := a.(*Hover)
	if !ok {
		return nil, ErrPatchMismatch
	}
	next := &Hover{
		BaseAnimation: h.BaseAnimation.merge(p.BasePatch),
		Enter:         h.Enter.Merge(p.Enter),
		Leave:         h.Leave.Merge(p.Leave),
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return next, nil
}

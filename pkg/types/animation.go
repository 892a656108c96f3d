package types

// AnimationType is the variant discriminant. It is fixed at creation.
type AnimationType string

// Animation variants.
const (
	TypeHover    AnimationType = "hover"
	TypeCarousel AnimationType = "carousel"
	TypeScroll   AnimationType = "scroll"
)

// knownTypes is the set of recognized animation types.
var knownTypes = map[AnimationType]bool{
	TypeHover:    true,
	TypeCarousel: true,
	TypeScroll:   true,
}

// Valid reports whether t names one of the three variants.
func (t AnimationType) Valid() bool {
	return knownTypes[t]
}

// BaseAnimation holds the fields shared by every variant. ID and Type are
// immutable once the animation is created; no patch can change them.
type BaseAnimation struct {
	ID             string        `json:"id"`
	Type           AnimationType `json:"type"`
	Label          string        `json:"label"`
	TargetSelector string        `json:"targetSelector"`
}

// Animation is a configured animation behavior: one of *Hover, *Carousel or
// *Scroll. The interface is sealed.
type Animation interface {
	// Common returns a copy of the shared fields.
	Common() BaseAnimation

	// Accept calls the Visitor method for the concrete variant.
	Accept(v Visitor)

	// Validate checks the numeric and enumerated field contracts.
	Validate() error

	// Clone returns a deep copy that shares no pointers with the receiver.
	Clone() Animation

	sealed()
}

// Visitor is implemented by every consumer that branches on the variant.
type Visitor interface {
	VisitHover(h *Hover)
	VisitCarousel(c *Carousel)
	VisitScroll(s *Scroll)
}

// BasePatch edits the mutable shared fields. Nil fields are left unchanged.
type BasePatch struct {
	Label          *string
	TargetSelector *string
}

func (b BaseAnimation) merge(p BasePatch) BaseAnimation {
	if p.Label != nil {
		b.Label = *p.Label
	}
	if p.TargetSelector != nil {
		b.TargetSelector = *p.TargetSelector
	}
	return b
}

// Patch is a typed partial update for one variant. Apply returns a new
// Animation and never mutates its argument.
type Patch interface {
	Apply(a Animation) (Animation, error)
}

// Prop is one present optional numeric property, in emission order.
type Prop struct {
	Key   string
	Value float64
}

// appendProp appends key when v is present.
func appendProp(props []Prop, key string, v *float64) []Prop {
	if v == nil {
		return props
	}
	return append(props, Prop{Key: key, Value: *v})
}

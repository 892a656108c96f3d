package types

// TransitionType selects how a carousel moves between items.
type TransitionType string

// Carousel transitions.
const (
	TransitionSlide TransitionType = "slide"
	TransitionFade  TransitionType = "fade"
	TransitionFlip  TransitionType = "flip"
)

// TransitionTypes returns the recognized transitions in display order.
func TransitionTypes() []TransitionType {
	return []TransitionType{TransitionSlide, TransitionFade, TransitionFlip}
}

// Valid reports whether t is a recognized transition.
func (t TransitionType) Valid() bool {
	switch t {
	case TransitionSlide, TransitionFade, TransitionFlip:
		return true
	}
	return false
}

// Carousel steps through a set of items with an animated transition.
type Carousel struct {
	BaseAnimation
	ItemSelector   string         `json:"itemSelector"`
	VisibleItems   int            `json:"visibleItems"`
	Autoplay       bool           `json:"autoplay"`
	AutoplayDelay  float64        `json:"autoplayDelay"`
	Loop           bool           `json:"loop"`
	TransitionType TransitionType `json:"transitionType"`
	Duration       float64        `json:"duration"`
	Ease           string         `json:"ease"`
	DragEnabled    bool           `json:"dragEnabled"`
}

var _ Animation = (*Carousel)(nil)

// Common returns the shared fields.
func (c *Carousel) Common() BaseAnimation { return c.BaseAnimation }

// Accept dispatches to v.VisitCarousel.
func (c *Carousel) Accept(v Visitor) { v.VisitCarousel(c) }

// Validate checks the carousel field contracts. AutoplayDelay is only checked
// when Autoplay is on.
func (c *Carousel) Validate() error {
	if c.VisibleItems < 1 {
		return ErrInvalidVisibleItems
	}
	if c.Autoplay && !finitePositive(c.AutoplayDelay) {
		return ErrInvalidAutoplayDelay
	}
	if !c.TransitionType.Valid() {
		return ErrUnknownTransition
	}
	if !finitePositive(c.Duration) {
		return ErrInvalidDuration
	}
	return nil
}

// Clone returns a copy. Carousel has no pointer fields.
func (c *Carousel) Clone() Animation {
	cp := *c
	return &cp
}

func (*Carousel) sealed() {}

// Navigate returns the index the generated goTo function lands on when asked
// for index over n items: wrapped modulo n when Loop is on, clamped to
// [0, n-1] otherwise. It returns 0 when n is not positive.
func (c *Carousel) Navigate(index, n int) int {
	if n <= 0 {
		return 0
	}
	if c.Loop {
		return ((index % n) + n) % n
	}
	return max(0, min(index, n-1))
}

// CarouselPatch is a partial update for a Carousel animation.
type CarouselPatch struct {
	BasePatch
	ItemSelector   *string
	VisibleItems   *int
	Autoplay       *bool
	AutoplayDelay  *float64
	Loop           *bool
	TransitionType *TransitionType
	Duration       *float64
	Ease           *string
	DragEnabled    *bool
}

// Apply merges the patch into a copy of a. It returns ErrPatchMismatch when a
// is not a *Carousel, and the validation error when the result is invalid.
func (p CarouselPatch) Apply(a Animation) (Animation, error) {
	c, ok := a.(*Carousel)
	if !ok {
		return nil, ErrPatchMismatch
	}
	next := *c
	next.BaseAnimation = c.BaseAnimation.merge(p.BasePatch)
	if p.ItemSelector != nil {
		next.ItemSelector = *p.ItemSelector
	}
	if p.VisibleItems != nil {
		next.VisibleItems = *p.VisibleItems
	}
	if p.Autoplay != nil {
		next.Autoplay = *p.Autoplay
	}
	if p.AutoplayDelay != nil {
		next.AutoplayDelay = *p.AutoplayDelay
	}
	if p.Loop != nil {
		next.Loop = *p.Loop
	}
	if p.TransitionType != nil {
		next.TransitionType = *p.TransitionType
	}
	if p.Duration != nil {
		next.Duration = *p.Duration
	}
	if p.Ease != nil {
		next.Ease = *p.Ease
	}
	if p.DragEnabled != nil {
		next.DragEnabled = *p.DragEnabled
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return &next, nil
}

package types

import (
	"fmt"

	"github.com/google/uuid"
)

// newID generates a UUID v7 for a new animation.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// NewHover returns a Hover with the canonical defaults: a 0.3s lift to
// scale 1.05 on enter and back to rest on leave.
func NewHover() *Hover {
	return &Hover{
		BaseAnimation: BaseAnimation{
			ID:             newID(),
			Type:           TypeHover,
			Label:          "Hover Animation",
			TargetSelector: ".my-element",
		},
		Enter: HoverState{
			Duration: 0.3,
			Ease:     "power2.out",
			Scale:    Float(1.05),
			Y:        Float(-4),
			Opacity:  Float(1),
		},
		Leave: HoverState{
			Duration: 0.3,
			Ease:     "power2.in",
			Scale:    Float(1),
			Y:        Float(0),
			Opacity:  Float(1),
		},
	}
}

// NewCarousel returns a Carousel with the canonical defaults: one visible
// item, looping 0.5s slide, drag on, autoplay off.
func NewCarousel() *Carousel {
	return &Carousel{
		BaseAnimation: BaseAnimation{
			ID:             newID(),
			Type:           TypeCarousel,
			Label:          "Carousel",
			TargetSelector: ".carousel",
		},
		ItemSelector:   ".carousel-item",
		VisibleItems:   1,
		Autoplay:       false,
		AutoplayDelay:  3,
		Loop:           true,
		TransitionType: TransitionSlide,
		Duration:       0.5,
		Ease:           "power2.inOut",
		DragEnabled:    true,
	}
}

// NewScroll returns a Scroll with the canonical defaults: fade and rise from
// opacity 0, y 40 over 0.8s between "top 80%" and "bottom 20%", reversing on
// leave back.
func NewScroll() *Scroll {
	return &Scroll{
		BaseAnimation: BaseAnimation{
			ID:             newID(),
			Type:           TypeScroll,
			Label:          "Scroll Animation",
			TargetSelector: ".my-section",
		},
		Trigger: ScrollTriggerConfig{
			Start:         "top 80%",
			End:           "bottom 20%",
			Scrub:         ScrubOff(),
			Pin:           false,
			ToggleActions: TogglePlayReverse,
		},
		Tween: ScrollTween{
			From:     TweenVars{Opacity: Float(0), Y: Float(40)},
			To:       TweenVars{Opacity: Float(1), Y: Float(0)},
			Duration: 0.8,
			Ease:     "power2.out",
		},
	}
}

// New returns the default animation for t, or ErrUnknownType.
func New(t AnimationType) (Animation, error) {
	switch t {
	case TypeHover:
		return NewHover(), nil
	case TypeCarousel:
		return NewCarousel(), nil
	case TypeScroll:
		return NewScroll(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
}

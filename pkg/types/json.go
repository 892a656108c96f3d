package types

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// DecodeAnimation decodes one animation object, choosing the variant from its
// "type" field. The result is validated and a zero stagger is dropped.
func DecodeAnimation(data []byte) (Animation, error) {
	var head struct {
		ID   string        `json:"id"`
		Type AnimationType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decoding animation: %w", err)
	}
	if head.ID == "" {
		return nil, ErrInvalidID
	}

	var a Animation
	switch head.Type {
	case TypeHover:
		a = &Hover{}
	case TypeCarousel:
		a = &Carousel{}
	case TypeScroll:
		a = &Scroll{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, head.Type)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return nil, fmt.Errorf("decoding %s animation %s: %w", head.Type, head.ID, err)
	}
	if s, ok := a.(*Scroll); ok {
		s.Tween.Stagger = normalizeStagger(s.Tween.Stagger)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("animation %s: %w", head.ID, err)
	}
	return a, nil
}

// Animations is an ordered animation collection that decodes its elements by
// their type discriminant.
type Animations []Animation

// UnmarshalJSON decodes a JSON array of animation objects.
func (as *Animations) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding animations: %w", err)
	}
	out := make(Animations, 0, len(raw))
	for i, r := range raw {
		a, err := DecodeAnimation(r)
		if err != nil {
			return fmt.Errorf("animation %d: %w", i, err)
		}
		out = append(out, a)
	}
	*as = out
	return nil
}

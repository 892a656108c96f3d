package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

// assignment is one key=value edit from the command line.
type assignment struct {
	key   string
	value string
}

func parseAssignments(args []string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		out = append(out, assignment{key: k, value: strings.TrimSpace(v)})
	}
	return out, nil
}

// buildPatch turns assignments into a typed patch for a's variant.
func buildPatch(a types.Animation, base types.BasePatch, assigns []assignment) (types.Patch, error) {
	b := &patchBuilder{base: base}
	for _, as := range assigns {
		switch as.key {
		case "label":
			b.base.Label = ptr(as.value)
		case "selector", "targetSelector":
			b.base.TargetSelector = ptr(as.value)
		default:
			b.assigns = append(b.assigns, as)
		}
	}
	a.Accept(b)
	if b.err != nil {
		return nil, b.err
	}
	return b.patch, nil
}

// applyBase applies a label/selector patch to any variant.
func applyBase(a types.Animation, base types.BasePatch) (types.Animation, error) {
	p, err := buildPatch(a, base, nil)
	if err != nil {
		return nil, err
	}
	return p.Apply(a)
}

// patchBuilder builds the variant patch while visiting an animation.
type patchBuilder struct {
	base    types.BasePatch
	assigns []assignment
	patch   types.Patch
	err     error
}

var _ types.Visitor = (*patchBuilder)(nil)

func (b *patchBuilder) VisitHover(*types.Hover) {
	p := types.HoverPatch{BasePatch: b.base}
	for _, as := range b.assigns {
		state, field, _ := strings.Cut(as.key, ".")
		var sp *types.HoverStatePatch
		switch state {
		case "enter":
			sp = &p.Enter
		case "leave":
			sp = &p.Leave
		default:
			b.err = fmt.Errorf("%s: %w", as.key, unknownField(types.TypeHover))
			return
		}
		if err := setHoverState(sp, field, as); err != nil {
			b.err = fmt.Errorf("%s: %w", as.key, err)
			return
		}
	}
	b.patch = p
}

func setHoverState(sp *types.HoverStatePatch, field string, as assignment) error {
	var err error
	switch field {
	case "duration":
		sp.Duration, err = floatPtr(as)
	case "ease":
		sp.Ease = ptr(as.value)
	case "scale":
		sp.Scale, err = change(as)
	case "y":
		sp.Y, err = change(as)
	case "x":
		sp.X, err = change(as)
	case "opacity":
		sp.Opacity, err = change(as)
	case "rotation":
		sp.Rotation, err = change(as)
	default:
		return unknownField(types.TypeHover)
	}
	return err
}

func (b *patchBuilder) VisitCarousel(*types.Carousel) {
	p := types.CarouselPatch{BasePatch: b.base}
	for _, as := range b.assigns {
		var err error
		switch as.key {
		case "items", "itemSelector":
			p.ItemSelector = ptr(as.value)
		case "visible", "visibleItems":
			var n int
			n, err = strconv.Atoi(as.value)
			p.VisibleItems = &n
		case "autoplay":
			p.Autoplay, err = boolPtr(as)
		case "delay", "autoplayDelay":
			p.AutoplayDelay, err = floatPtr(as)
		case "loop":
			p.Loop, err = boolPtr(as)
		case "transition", "transitionType":
			p.TransitionType = ptr(types.TransitionType(as.value))
		case "duration":
			p.Duration, err = floatPtr(as)
		case "ease":
			p.Ease = ptr(as.value)
		case "drag", "dragEnabled":
			p.DragEnabled, err = boolPtr(as)
		default:
			err = unknownField(types.TypeCarousel)
		}
		if err != nil {
			b.err = fmt.Errorf("%s: %w", as.key, err)
			return
		}
	}
	b.patch = p
}

func (b *patchBuilder) VisitScroll(*types.Scroll) {
	p := types.ScrollPatch{BasePatch: b.base}
	for _, as := range b.assigns {
		var err error
		switch as.key {
		case "start":
			p.Trigger.Start = ptr(as.value)
		case "end":
			p.Trigger.End = ptr(as.value)
		case "scrub":
			var s types.Scrub
			s, err = parseScrub(as.value)
			p.Trigger.Scrub = &s
		case "pin":
			p.Trigger.Pin, err = boolPtr(as)
		case "toggle", "toggleActions":
			p.Trigger.ToggleActions = ptr(types.ToggleActions(as.value))
		case "duration":
			p.Tween.Duration, err = floatPtr(as)
		case "ease":
			p.Tween.Ease = ptr(as.value)
		case "stagger":
			p.Tween.Stagger, err = change(as)
		default:
			err = setTweenVars(&p.Tween, as)
		}
		if err != nil {
			b.err = fmt.Errorf("%s: %w", as.key, err)
			return
		}
	}
	b.patch = p
}

func setTweenVars(tp *types.TweenPatch, as assignment) error {
	frame, field, _ := strings.Cut(as.key, ".")
	var vp *types.TweenVarsPatch
	switch frame {
	case "from":
		vp = &tp.From
	case "to":
		vp = &tp.To
	default:
		return unknownField(types.TypeScroll)
	}
	c, err := change(as)
	if err != nil {
		return err
	}
	switch field {
	case "opacity":
		vp.Opacity = c
	case "y":
		vp.Y = c
	case "x":
		vp.X = c
	case "scale":
		vp.Scale = c
	case "rotation":
		vp.Rotation = c
	default:
		return unknownField(types.TypeScroll)
	}
	return nil
}

func unknownField(t types.AnimationType) error {
	return fmt.Errorf("unknown %s field", t)
}

func ptr[T any](v T) *T { return &v }

func floatPtr(as assignment) (*float64, error) {
	v, err := strconv.ParseFloat(as.value, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", as.value)
	}
	return &v, nil
}

func boolPtr(as assignment) (*bool, error) {
	v, err := strconv.ParseBool(as.value)
	if err != nil {
		return nil, fmt.Errorf("not a boolean: %q", as.value)
	}
	return &v, nil
}

// change parses an optional number. "unset", "none" and "-" clear the field.
func change(as assignment) (types.Change, error) {
	switch strings.ToLower(as.value) {
	case "unset", "none", "-", "":
		return types.Unset(), nil
	}
	v, err := strconv.ParseFloat(as.value, 64)
	if err != nil {
		return types.Change{}, fmt.Errorf("not a number: %q", as.value)
	}
	return types.Set(v), nil
}

// parseScrub accepts true, false or a smoothing duration in seconds.
func parseScrub(s string) (types.Scrub, error) {
	switch strings.ToLower(s) {
	case "true", "on":
		return types.ScrubOn(), nil
	case "false", "off":
		return types.ScrubOff(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return types.Scrub{}, types.ErrInvalidScrub
	}
	if v == 0 {
		return types.ScrubOff(), nil
	}
	return types.ScrubSmoothing(v), nil
}

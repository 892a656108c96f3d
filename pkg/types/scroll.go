package types

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// ToggleActions is the four-verb onEnter/onLeave/onEnterBack/onLeaveBack
// action string of a scroll trigger.
type ToggleActions string

// Recognized toggle action strings.
const (
	TogglePlayOnce             ToggleActions = "play none none none"
	TogglePlayReverse          ToggleActions = "play none none reverse"
	TogglePlayPauseResumeReset ToggleActions = "play pause resume reset"
	ToggleRestart              ToggleActions = "restart none none none"
)

// ToggleActionOption pairs a toggle action string with its display label.
type ToggleActionOption struct {
	Value ToggleActions
	Label string
}

// ToggleActionOptions returns the recognized toggle actions in display order.
func ToggleActionOptions() []ToggleActionOption {
	return []ToggleActionOption{
		{Value: TogglePlayOnce, Label: "Play once"},
		{Value: TogglePlayReverse, Label: "Play / Reverse"},
		{Value: TogglePlayPauseResumeReset, Label: "Play / Pause / Resume / Reset"},
		{Value: ToggleRestart, Label: "Restart each time"},
	}
}

// Valid reports whether a is one of the recognized toggle action strings.
func (a ToggleActions) Valid() bool {
	for _, opt := range ToggleActionOptions() {
		if opt.Value == a {
			return true
		}
	}
	return false
}

// Scrub links tween progress to the scrollbar. It serializes as a boolean,
// or as a number of seconds of smoothing when Smoothing is positive.
type Scrub struct {
	Enabled   bool
	Smoothing float64
}

// ScrubOff disables scrubbing.
func ScrubOff() Scrub { return Scrub{} }

// ScrubOn enables scrubbing with no smoothing.
func ScrubOn() Scrub { return Scrub{Enabled: true} }

// ScrubSmoothing enables scrubbing that catches up over seconds.
func ScrubSmoothing(seconds float64) Scrub {
	return Scrub{Enabled: true, Smoothing: seconds}
}

// IsNumeric reports whether the scrub serializes as a number. A disabled
// scrub is always a boolean.
func (s Scrub) IsNumeric() bool {
	return s.Enabled && s.Smoothing > 0
}

// MarshalJSON encodes the scrub as a boolean or a number.
func (s Scrub) MarshalJSON() ([]byte, error) {
	if s.IsNumeric() {
		return json.Marshal(s.Smoothing)
	}
	return json.Marshal(s.Enabled)
}

// UnmarshalJSON accepts a boolean or a number. A zero number decodes as
// scrubbing off.
func (s *Scrub) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")) {
		var on bool
		if err := json.Unmarshal(data, &on); err != nil {
			return err
		}
		*s = Scrub{Enabled: on}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("scrub must be a boolean or a number: %w", err)
	}
	if n < 0 {
		return ErrInvalidScrub
	}
	*s = Scrub{Enabled: n > 0, Smoothing: n}
	return nil
}

// ScrollTriggerConfig binds a tween to an element's scroll position. Start
// and End are runtime position expressions and are passed through verbatim.
type ScrollTriggerConfig struct {
	Start         string        `json:"start"`
	End           string        `json:"end"`
	Scrub         Scrub         `json:"scrub"`
	Pin           bool          `json:"pin"`
	ToggleActions ToggleActions `json:"toggleActions"`
}

// TriggerPatch edits a ScrollTriggerConfig. Nil fields are left unchanged.
type TriggerPatch struct {
	Start         *string
	End           *string
	Scrub         *Scrub
	Pin           *bool
	ToggleActions *ToggleActions
}

// Merge returns t with p applied.
func (t ScrollTriggerConfig) Merge(p TriggerPatch) ScrollTriggerConfig {
	if p.Start != nil {
		t.Start = *p.Start
	}
	if p.End != nil {
		t.End = *p.End
	}
	if p.Scrub != nil {
		t.Scrub = *p.Scrub
	}
	if p.Pin != nil {
		t.Pin = *p.Pin
	}
	if p.ToggleActions != nil {
		t.ToggleActions = *p.ToggleActions
	}
	return t
}

// TweenVars is one keyframe of a scroll tween.
type TweenVars struct {
	Opacity  *float64 `json:"opacity,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	X        *float64 `json:"x,omitempty"`
	Scale    *float64 `json:"scale,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`
}

// Props returns the present properties in the order
// opacity, y, x, scale, rotation.
func (v TweenVars) Props() []Prop {
	props := make([]Prop, 0, 5)
	props = appendProp(props, "opacity", v.Opacity)
	props = appendProp(props, "y", v.Y)
	props = appendProp(props, "x", v.X)
	props = appendProp(props, "scale", v.Scale)
	props = appendProp(props, "rotation", v.Rotation)
	return props
}

func (v TweenVars) clone() TweenVars {
	return TweenVars{
		Opacity:  clonePtr(v.Opacity),
		Y:        clonePtr(v.Y),
		X:        clonePtr(v.X),
		Scale:    clonePtr(v.Scale),
		Rotation: clonePtr(v.Rotation),
	}
}

// TweenVarsPatch edits a TweenVars.
type TweenVarsPatch struct {
	Opacity  Change
	Y        Change
	X        Change
	Scale    Change
	Rotation Change
}

// Merge returns v with p applied.
func (v TweenVars) Merge(p TweenVarsPatch) TweenVars {
	next := v.clone()
	next.Opacity = p.Opacity.apply(next.Opacity)
	next.Y = p.Y.apply(next.Y)
	next.X = p.X.apply(next.X)
	next.Scale = p.Scale.apply(next.Scale)
	next.Rotation = p.Rotation.apply(next.Rotation)
	return next
}

// ScrollTween is the from/to tween driven by the trigger. A zero Stagger is
// stored as nil.
type ScrollTween struct {
	From     TweenVars `json:"from"`
	To       TweenVars `json:"to"`
	Duration float64   `json:"duration"`
	Ease     string    `json:"ease"`
	Stagger  *float64  `json:"stagger,omitempty"`
}

func (t ScrollTween) clone() ScrollTween {
	t.From = t.From.clone()
	t.To = t.To.clone()
	t.Stagger = normalizeStagger(clonePtr(t.Stagger))
	return t
}

// TweenPatch edits a ScrollTween. From and To are merged one level deeper.
type TweenPatch struct {
	From     TweenVarsPatch
	To       TweenVarsPatch
	Duration *float64
	Ease     *string
	Stagger  Change
}

// Merge returns t with p applied. Setting Stagger to 0 clears it.
func (t ScrollTween) Merge(p TweenPatch) ScrollTween {
	next := t.clone()
	next.From = next.From.Merge(p.From)
	next.To = next.To.Merge(p.To)
	if p.Duration != nil {
		next.Duration = *p.Duration
	}
	if p.Ease != nil {
		next.Ease = *p.Ease
	}
	next.Stagger = normalizeStagger(p.Stagger.apply(next.Stagger))
	return next
}

func normalizeStagger(p *float64) *float64 {
	if p != nil && *p == 0 {
		return nil
	}
	return p
}

// Scroll plays a from/to tween when its target scrolls through the trigger
// window.
type Scroll struct {
	BaseAnimation
	Trigger ScrollTriggerConfig `json:"trigger"`
	Tween   ScrollTween         `json:"tween"`
}

var _ Animation = (*Scroll)(nil)

// Common returns the shared fields.
func (s *Scroll) Common() BaseAnimation { return s.BaseAnimation }

// Accept dispatches to v.VisitScroll.
func (s *Scroll) Accept(v Visitor) { v.VisitScroll(s) }

// Validate checks the trigger and tween contracts.
func (s *Scroll) Validate() error {
	if !s.Trigger.ToggleActions.Valid() {
		return ErrUnknownToggleActions
	}
	if sm := s.Trigger.Scrub.Smoothing; sm != 0 && !finitePositive(sm) {
		return ErrInvalidScrub
	}
	if !finitePositive(s.Tween.Duration) {
		return ErrInvalidDuration
	}
	if !positive(s.Tween.Stagger) {
		return ErrInvalidStagger
	}
	return nil
}

// Clone returns a deep copy.
func (s *Scroll) Clone() Animation {
	c := *s
	c.Tween = s.Tween.clone()
	return &c
}

func (*Scroll) sealed() {}

// ScrollPatch is a partial update for a Scroll animation.
type ScrollPatch struct {
	BasePatch
	Trigger TriggerPatch
	Tween   TweenPatch
}

// Apply merges the patch into a copy of a. It returns ErrPatchMismatch when a
// is not a *Scroll, and the validation error when the result is invalid.
func (p ScrollPatch) Apply(a Animation) (Animation, error) {
	s, ok := a.(*Scroll)
	if !ok {
		return nil, ErrPatchMismatch
	}
	next := &Scroll{
		BaseAnimation: s.BaseAnimation.merge(p.BasePatch),
		Trigger:       s.Trigger.Merge(p.Trigger),
		Tween:         s.Tween.Merge(p.Tween),
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return next, nil
}

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestChange(t *testing.T) {
	prev := Float(2)
	var keep Change
	assert.True(t, keep.IsKeep())
	assert.Same(t, prev, keep.apply(prev))
	assert.Equal(t, 5.0, *Set(5).apply(prev))
	assert.Nil(t, Unset().apply(prev))
	assert.Equal(t, 0.0, *Set(0).apply(nil), "set zero stays present")
}

func TestHoverPatchMergesOneLevel(t *testing.T) {
	h := NewHover()
	got, err := HoverPatch{
		BasePatch: BasePatch{Label: ptr("Lift")},
		Enter:     HoverStatePatch{Duration: ptr(0.5), Rotation: Set(3), Opacity: Unset()},
	}.Apply(h)
	require.NoError(t, err)

	next := got.(*Hover)
	assert.Equal(t, "Lift", next.Label)
	assert.Equal(t, h.ID, next.ID)
	assert.Equal(t, 0.5, next.Enter.Duration)
	assert.Equal(t, "power2.out", next.Enter.Ease)
	assert.Equal(t, []Prop{{"scale", 1.05}, {"y", -4}, {"rotation", 3}}, next.Enter.Props())
	assert.Equal(t, h.Leave, next.Leave)

	assert.Equal(t, "Hover Animation", h.Label, "original untouched")
	assert.NotNil(t, h.Enter.Opacity)
}

func TestPatchRejectsInvalidResult(t *testing.T) {
	h := NewHover()
	_, err := HoverPatch{Leave: HoverStatePatch{Duration: ptr(0.0)}}.Apply(h)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Equal(t, 0.3, h.Leave.Duration)

	c := NewCarousel()
	tests := []struct {
		name  string
		patch CarouselPatch
		want  error
	}{
		{"visible items", CarouselPatch{VisibleItems: ptr(0)}, ErrInvalidVisibleItems},
		{"autoplay delay", CarouselPatch{Autoplay: ptr(true), AutoplayDelay: ptr(-1.0)}, ErrInvalidAutoplayDelay},
		{"transition", CarouselPatch{TransitionType: ptr(TransitionType("warp"))}, ErrUnknownTransition},
		{"duration", CarouselPatch{Duration: ptr(-0.5)}, ErrInvalidDuration},
		{"duration NaN", CarouselPatch{Duration: ptr(math.NaN())}, ErrInvalidDuration},
		{"duration Inf", CarouselPatch{Duration: ptr(math.Inf(1))}, ErrInvalidDuration},
		{"autoplay delay NaN", CarouselPatch{Autoplay: ptr(true), AutoplayDelay: ptr(math.NaN())}, ErrInvalidAutoplayDelay},
		{"autoplay delay Inf", CarouselPatch{Autoplay: ptr(true), AutoplayDelay: ptr(math.Inf(1))}, ErrInvalidAutoplayDelay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.patch.Apply(c)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = HoverPatch{Enter: HoverStatePatch{Duration: ptr(d)}}.Apply(h)
		assert.ErrorIs(t, err, ErrInvalidDuration, "hover duration %v", d)
		_, err = ScrollPatch{Tween: TweenPatch{Duration: ptr(d)}}.Apply(NewScroll())
		assert.ErrorIs(t, err, ErrInvalidDuration, "scroll duration %v", d)
		_, err = ScrollPatch{Tween: TweenPatch{Stagger: Set(d)}}.Apply(NewScroll())
		assert.ErrorIs(t, err, ErrInvalidStagger, "stagger %v", d)
		_, err = ScrollPatch{Trigger: TriggerPatch{Scrub: ptr(ScrubSmoothing(d))}}.Apply(NewScroll())
		assert.ErrorIs(t, err, ErrInvalidScrub, "scrub %v", d)
	}

	// Delay is only checked while autoplay is on.
	_, err = CarouselPatch{AutoplayDelay: ptr(0.0)}.Apply(c)
	assert.NoError(t, err)
}

func TestPatchMismatch(t *testing.T) {
	_, err := CarouselPatch{}.Apply(NewHover())
	assert.ErrorIs(t, err, ErrPatchMismatch)
	_, err = ScrollPatch{}.Apply(NewCarousel())
	assert.ErrorIs(t, err, ErrPatchMismatch)
	_, err = HoverPatch{}.Apply(NewScroll())
	assert.ErrorIs(t, err, ErrPatchMismatch)
}

func TestScrollPatch(t *testing.T) {
	s := NewScroll()
	got, err := ScrollPatch{
		Trigger: TriggerPatch{Scrub: ptr(ScrubSmoothing(2)), Pin: ptr(true)},
		Tween: TweenPatch{
			From:    TweenVarsPatch{X: Set(-20)},
			To:      TweenVarsPatch{Y: Unset()},
			Stagger: Set(0.2),
		},
	}.Apply(s)
	require.NoError(t, err)

	next := got.(*Scroll)
	assert.Equal(t, "top 80%", next.Trigger.Start)
	assert.True(t, next.Trigger.Pin)
	assert.Equal(t, 2.0, next.Trigger.Scrub.Smoothing)
	assert.Equal(t, []Prop{{"opacity", 0}, {"y", 40}, {"x", -20}}, next.Tween.From.Props())
	assert.Equal(t, []Prop{{"opacity", 1}}, next.Tween.To.Props())
	assert.Equal(t, 0.2, *next.Tween.Stagger)
	assert.Nil(t, s.Tween.Stagger)
}

func TestScrollPatchStagger(t *testing.T) {
	s := NewScroll()
	s.Tween.Stagger = Float(0.2)

	got, err := ScrollPatch{Tween: TweenPatch{Stagger: Set(0)}}.Apply(s)
	require.NoError(t, err)
	assert.Nil(t, got.(*Scroll).Tween.Stagger, "zero stagger clears")

	_, err = ScrollPatch{Tween: TweenPatch{Stagger: Set(-1)}}.Apply(s)
	assert.ErrorIs(t, err, ErrInvalidStagger)

	_, err = ScrollPatch{Trigger: TriggerPatch{ToggleActions: ptr(ToggleActions("bogus"))}}.Apply(s)
	assert.ErrorIs(t, err, ErrUnknownToggleActions)
}

func TestCloneIndependence(t *testing.T) {
	h := NewHover()
	hc := h.Clone().(*Hover)
	*hc.Enter.Scale = 9
	assert.Equal(t, 1.05, *h.Enter.Scale)

	s := NewScroll()
	s.Tween.Stagger = Float(0.1)
	sc := s.Clone().(*Scroll)
	*sc.Tween.From.Y = 99
	*sc.Tween.Stagger = 5
	assert.Equal(t, 40.0, *s.Tween.From.Y)
	assert.Equal(t, 0.1, *s.Tween.Stagger)

	c := NewCarousel()
	cc := c.Clone().(*Carousel)
	cc.Loop = false
	assert.True(t, c.Loop)
}

func TestNavigate(t *testing.T) {
	c := NewCarousel()
	tests := []struct {
		name  string
		loop  bool
		index int
		want  int
	}{
		{"wrap forward", true, 5, 0},
		{"wrap backward", true, -1, 4},
		{"wrap far", true, 12, 2},
		{"wrap in range", true, 3, 3},
		{"clamp high", false, 5, 4},
		{"clamp low", false, -1, 0},
		{"clamp in range", false, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Loop = tt.loop
			assert.Equal(t, tt.want, c.Navigate(tt.index, 5))
		})
	}
	assert.Equal(t, 0, c.Navigate(3, 0))
}

func TestNavigateLaws(t *testing.T) {
	c := NewCarousel()
	for n := 1; n <= 7; n++ {
		for i := -20; i <= 20; i++ {
			c.Loop = true
			got := c.Navigate(i, n)
			assert.True(t, got >= 0 && got < n)
			assert.Equal(t, got, c.Navigate(i+n, n))

			c.Loop = false
			got = c.Navigate(i, n)
			assert.True(t, got >= 0 && got < n)
			if i >= 0 && i < n {
				assert.Equal(t, i, got)
			}
		}
	}
}

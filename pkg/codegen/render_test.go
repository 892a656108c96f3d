package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

func hover(enter, leave types.HoverState) *types.Hover {
	return &types.Hover{
		BaseAnimation: types.BaseAnimation{ID: "h1", Type: types.TypeHover, Label: "Card hover", TargetSelector: ".card"},
		Enter:         enter,
		Leave:         leave,
	}
}

// enterBlock returns the text between the mouseenter and mouseleave listeners.
func enterBlock(t *testing.T, code string) string {
	t.Helper()
	start := strings.Index(code, "'mouseenter'")
	end := strings.Index(code, "'mouseleave'")
	require.True(t, start >= 0 && end > start, "listeners missing in:\n%s", code)
	return code[start:end]
}

func TestRenderHoverPresentPropsOnly(t *testing.T) {
	h := hover(
		types.HoverState{Duration: 0.3, Ease: "power2.out", Scale: types.Float(1.05), Y: types.Float(-4)},
		types.HoverState{Duration: 0.3, Ease: "power2.in", Scale: types.Float(1), Y: types.Float(0)},
	)
	code := Render(h)
	enter := enterBlock(t, code)

	assert.Contains(t, enter, "scale: 1.05,")
	assert.Contains(t, enter, "y: -4,")
	assert.NotContains(t, enter, "opacity")
	assert.NotContains(t, enter, "rotation")
	assert.Contains(t, code, "y: 0,", "present zero must be emitted")
}

func TestRenderHoverDefault(t *testing.T) {
	h := types.NewHover()
	want := `// Hover Animation
const els = document.querySelectorAll('.my-element');

els.forEach((el) => {
  el.addEventListener('mouseenter', () => {
    gsap.to(el, {
      duration: 0.3,
      ease: 'power2.out',
      scale: 1.05,
      y: -4,
      opacity: 1,
    });
  });

  el.addEventListener('mouseleave', () => {
    gsap.to(el, {
      duration: 0.3,
      ease: 'power2.in',
      scale: 1,
      y: 0,
      opacity: 1,
    });
  });
});`
	assert.Equal(t, want, Render(h))
}

func TestRenderHoverPropOrder(t *testing.T) {
	s := types.HoverState{
		Duration: 1, Ease: "none",
		Rotation: types.Float(45), Opacity: types.Float(0.5), X: types.Float(3), Y: types.Float(2), Scale: types.Float(2),
	}
	enter := enterBlock(t, Render(hover(s, s)))

	keys := []string{"duration:", "ease:", "scale:", "y:", "x:", "opacity:", "rotation:"}
	last := -1
	for _, k := range keys {
		i := strings.Index(enter, k)
		require.Greater(t, i, last, "%s out of order", k)
		last = i
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, a := range []types.Animation{types.NewHover(), types.NewCarousel(), types.NewScroll()} {
		first := Render(a)
		for range 5 {
			assert.Equal(t, first, Render(a.Clone()))
		}
	}
}

func carousel() *types.Carousel {
	c := types.NewCarousel()
	c.ID = "c1"
	return c
}

func TestRenderCarouselNavigation(t *testing.T) {
	c := carousel()
	c.Loop = true
	assert.Contains(t, Render(c), "currentIndex = ((index % items.length) + items.length) % items.length;")

	c.Loop = false
	code := Render(c)
	assert.Contains(t, code, "currentIndex = Math.max(0, Math.min(index, items.length - 1));")
	assert.NotContains(t, code, "% items.length")
}

func TestRenderCarouselTransitions(t *testing.T) {
	tests := []struct {
		transition types.TransitionType
		want       []string
		absent     []string
	}{
		{
			transition: types.TransitionSlide,
			want:       []string{"x: -currentIndex * itemWidth,", "duration: 0.5,", "ease: 'power2.inOut',"},
			absent:     []string{"rotationY", "opacity"},
		},
		{
			transition: types.TransitionFade,
			want: []string{
				"gsap.to(items, { opacity: 0, duration: 0.25, ease: 'power2.inOut' });",
				"gsap.set(track, { x: -currentIndex * itemWidth });",
				"gsap.to(items[currentIndex], { opacity: 1, duration: 0.25, ease: 'power2.inOut' });",
			},
			absent: []string{"rotationY"},
		},
		{
			transition: types.TransitionFlip,
			want:       []string{"rotationY: currentIndex * -90,", "transformOrigin: 'center center',"},
			absent:     []string{"x: -currentIndex"},
		},
		{
			transition: types.TransitionType("warp"),
			want:       []string{"x: -currentIndex * itemWidth,"},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.transition), func(t *testing.T) {
			c := carousel()
			c.TransitionType = tt.transition
			code := Render(c)
			for _, w := range tt.want {
				assert.Contains(t, code, w)
			}
			for _, a := range tt.absent {
				assert.NotContains(t, code, a)
			}
		})
	}
}

func TestRenderCarouselConditionalBlocks(t *testing.T) {
	c := carousel()
	c.Autoplay = false
	c.DragEnabled = false
	code := Render(c)
	assert.NotContains(t, code, "setInterval")
	assert.NotContains(t, code, "resetAutoplay")
	assert.NotContains(t, code, "pointerdown")
	assert.Contains(t, code, "// Wire up your prev/next buttons:")

	c.Autoplay = true
	c.AutoplayDelay = 2.5
	c.DragEnabled = true
	code = Render(c)
	assert.Contains(t, code, "setInterval(() => goTo(currentIndex + 1), 2500);")
	assert.Contains(t, code, "  resetAutoplay();\n}", "goTo re-arms the timer")
	assert.Contains(t, code, "track.addEventListener('pointerdown'")
	assert.Contains(t, code, "if (Math.abs(diff) > 50)")
	assert.True(t, strings.HasSuffix(code, "goTo(currentIndex + 1));"))
}

func TestRenderCarouselVisibleItems(t *testing.T) {
	c := carousel()
	c.VisibleItems = 3
	assert.Contains(t, Render(c), "const itemWidth = carousel.offsetWidth / 3;")
}

func scroll() *types.Scroll {
	s := types.NewScroll()
	s.ID = "s1"
	return s
}

func TestRenderScrollStagger(t *testing.T) {
	s := scroll()
	assert.NotContains(t, Render(s), "stagger")

	s.Tween.Stagger = types.Float(0)
	assert.NotContains(t, Render(s), "stagger")

	s.Tween.Stagger = types.Float(0.2)
	code := Render(s)
	assert.Equal(t, 1, strings.Count(code, "stagger"))
	assert.Contains(t, code, "    stagger: 0.2,\n")
}

func TestRenderScrollTrigger(t *testing.T) {
	s := scroll()
	s.Trigger.Start = "top center"
	s.Trigger.End = "+=500"
	s.Trigger.Pin = true
	s.Trigger.ToggleActions = types.ToggleRestart
	code := Render(s)

	assert.True(t, strings.HasPrefix(code, "// Scroll Animation\ngsap.registerPlugin(ScrollTrigger);\n"))
	assert.Contains(t, code, "gsap.fromTo(\n  '.my-section',\n")
	assert.Contains(t, code, "      trigger: '.my-section',\n")
	assert.Contains(t, code, "      start: 'top center',\n")
	assert.Contains(t, code, "      end: '+=500',\n")
	assert.Contains(t, code, "      scrub: false,\n")
	assert.Contains(t, code, "      pin: true,\n")
	assert.Contains(t, code, "      toggleActions: 'restart none none none',\n")
}

func TestRenderScrollScrub(t *testing.T) {
	tests := []struct {
		name  string
		scrub types.Scrub
		want  string
	}{
		{name: "off", scrub: types.ScrubOff(), want: "scrub: false,"},
		{name: "on", scrub: types.ScrubOn(), want: "scrub: true,"},
		{name: "smoothing", scrub: types.ScrubSmoothing(1.5), want: "scrub: 1.5,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scroll()
			s.Trigger.Scrub = tt.scrub
			assert.Contains(t, Render(s), tt.want)
		})
	}
}

func TestRenderScrollKeyframes(t *testing.T) {
	s := scroll()
	s.Tween.From = types.TweenVars{Rotation: types.Float(-10), Opacity: types.Float(0)}
	s.Tween.To = types.TweenVars{}
	code := Render(s)

	assert.Contains(t, code, "  {\n    opacity: 0,\n    rotation: -10,\n  },\n")
	assert.Contains(t, code, "  {\n    duration: 0.8,\n")
}

func TestRenderEscapesStrings(t *testing.T) {
	h := types.NewHover()
	h.TargetSelector = `a[title='x\y']`
	h.Label = "first\nsecond"
	code := Render(h)

	assert.Contains(t, code, `document.querySelectorAll('a[title=\'x\\y\']')`)
	assert.True(t, strings.HasPrefix(code, "// first\n// second\nconst els"))

	breaks := []struct {
		name string
		sep  string
	}{
		{"carriage return", "\r"},
		{"crlf", "\r\n"},
		{"line separator", "\u2028"},
		{"paragraph separator", "\u2029"},
	}
	for _, tt := range breaks {
		t.Run(tt.name, func(t *testing.T) {
			h := types.NewHover()
			h.Label = "card" + tt.sep + "window.x = 1"
			h.TargetSelector = "a" + tt.sep + "b"
			code := Render(h)

			assert.True(t, strings.HasPrefix(code, "// card\n// window.x = 1\nconst els"), code)
			assert.NotContains(t, code, "\r")
			assert.NotContains(t, code, "\u2028")
			assert.NotContains(t, code, "\u2029")
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `'a\u2028b'`, quote("a\u2028b"))
	assert.Equal(t, `'a\u2029b'`, quote("a\u2029b"))
	assert.Equal(t, `'a\r\nb'`, quote("a\r\nb"))
	assert.Equal(t, `'it\'s'`, quote("it's"))
}

func TestRenderAll(t *testing.T) {
	assert.Equal(t, "", RenderAll(nil))
	assert.Equal(t, "", RenderAll([]types.Animation{}))

	h, c := types.NewHover(), types.NewCarousel()
	assert.Equal(t, Render(h), RenderAll([]types.Animation{h}))

	got := RenderAll([]types.Animation{h, c})
	assert.Equal(t, Render(h)+"\n\n"+Divider+"\n\n"+Render(c), got)
	assert.False(t, strings.HasSuffix(got, Divider))
	assert.Equal(t, 1, strings.Count(got, Divider))
}

func TestNumber(t *testing.T) {
	a, b := 0.1, 0.2
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-4, "-4"},
		{1.05, "1.05"},
		{a + b, "0.30000000000000004"},
		{2500, "2500"},
		{1e6, "1000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, number(tt.in))
	}
}

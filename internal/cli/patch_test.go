package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

func applyArgs(t *testing.T, a types.Animation, args ...string) (types.Animation, error) {
	t.Helper()
	assigns, err := parseAssignments(args)
	require.NoError(t, err)
	p, err := buildPatch(a, types.BasePatch{}, assigns)
	if err != nil {
		return nil, err
	}
	return p.Apply(a)
}

func TestBuildPatchCarousel(t *testing.T) {
	got, err := applyArgs(t, types.NewCarousel(),
		"visible=3", "autoplay=true", "delay=2", "loop=false", "transition=fade", "drag=false", "items=.slide")
	require.NoError(t, err)

	c := got.(*types.Carousel)
	assert.Equal(t, 3, c.VisibleItems)
	assert.True(t, c.Autoplay)
	assert.Equal(t, 2.0, c.AutoplayDelay)
	assert.False(t, c.Loop)
	assert.Equal(t, types.TransitionFade, c.TransitionType)
	assert.False(t, c.DragEnabled)
	assert.Equal(t, ".slide", c.ItemSelector)
}

func TestBuildPatchScroll(t *testing.T) {
	got, err := applyArgs(t, types.NewScroll(),
		"scrub=true", "pin=true", "toggle=restart none none none", "to.y=unset", "from.rotation=15", "stagger=0.1")
	require.NoError(t, err)

	s := got.(*types.Scroll)
	assert.Equal(t, types.ScrubOn(), s.Trigger.Scrub)
	assert.True(t, s.Trigger.Pin)
	assert.Equal(t, types.ToggleRestart, s.Trigger.ToggleActions)
	assert.Nil(t, s.Tween.To.Y)
	assert.Equal(t, 15.0, *s.Tween.From.Rotation)
	assert.Equal(t, 0.1, *s.Tween.Stagger)

	got, err = applyArgs(t, s, "stagger=0", "scrub=1")
	require.NoError(t, err)
	assert.Nil(t, got.(*types.Scroll).Tween.Stagger)
	assert.Equal(t, types.ScrubSmoothing(1), got.(*types.Scroll).Trigger.Scrub)
}

func TestBuildPatchErrors(t *testing.T) {
	tests := []struct {
		name string
		a    types.Animation
		arg  string
	}{
		{"hover unknown state", types.NewHover(), "hover.scale=1"},
		{"hover unknown field", types.NewHover(), "enter.skew=1"},
		{"hover bad number", types.NewHover(), "enter.duration=fast"},
		{"carousel bad bool", types.NewCarousel(), "loop=maybe"},
		{"carousel unknown", types.NewCarousel(), "speed=2"},
		{"scroll bad scrub", types.NewScroll(), "scrub=-1"},
		{"scroll unknown frame", types.NewScroll(), "mid.x=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := applyArgs(t, tt.a, tt.arg)
			assert.Error(t, err)
		})
	}

	_, err := parseAssignments([]string{"novalue"})
	assert.Error(t, err)
}

func TestApplyBase(t *testing.T) {
	label := "Renamed"
	got, err := applyBase(types.NewScroll(), types.BasePatch{Label: &label})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Common().Label)
	assert.Equal(t, ".my-section", got.Common().TargetSelector)
}

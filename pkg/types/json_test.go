package types

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrubJSON(t *testing.T) {
	tests := []struct {
		name  string
		scrub Scrub
		text  string
	}{
		{"off", ScrubOff(), "false"},
		{"on", ScrubOn(), "true"},
		{"smoothing", ScrubSmoothing(1.5), "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.scrub)
			require.NoError(t, err)
			assert.Equal(t, tt.text, string(data))

			var got Scrub
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.scrub, got)
		})
	}

	data, err := json.Marshal(Scrub{Smoothing: 2})
	require.NoError(t, err)
	assert.Equal(t, "false", string(data), "disabled scrub stays a boolean")

	var s Scrub
	require.NoError(t, json.Unmarshal([]byte("0"), &s))
	assert.Equal(t, ScrubOff(), s)
	assert.ErrorIs(t, json.Unmarshal([]byte("-1"), &s), ErrInvalidScrub)
	assert.Error(t, json.Unmarshal([]byte(`"yes"`), &s))
}

func TestDecodeAnimationRoundTrip(t *testing.T) {
	s := NewScroll()
	s.Trigger.Scrub = ScrubOn()
	s.Tween.Stagger = Float(0.3)
	for _, a := range []Animation{NewHover(), NewCarousel(), s} {
		data, err := json.Marshal(a)
		require.NoError(t, err)

		got, err := DecodeAnimation(data)
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}

func TestDecodeAnimationKeyOrder(t *testing.T) {
	data, err := json.Marshal(NewCarousel())
	require.NoError(t, err)
	out := string(data)

	keys := []string{`"id"`, `"type"`, `"label"`, `"targetSelector"`, `"itemSelector"`, `"visibleItems"`, `"dragEnabled"`}
	last := -1
	for _, k := range keys {
		i := strings.Index(out, k)
		require.Greater(t, i, last, "%s out of order in %s", k, out)
		last = i
	}
}

func TestDecodeAnimationErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"missing id", `{"type":"hover"}`, ErrInvalidID},
		{"unknown type", `{"id":"x","type":"parallax"}`, ErrUnknownType},
		{"invalid duration", `{"id":"x","type":"hover","enter":{"duration":0,"ease":"none"},"leave":{"duration":1,"ease":"none"}}`, ErrInvalidDuration},
		{"negative scrub", `{"id":"x","type":"scroll","trigger":{"scrub":-2,"toggleActions":"play none none none"},"tween":{"duration":1}}`, ErrInvalidScrub},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAnimation([]byte(tt.in))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeAnimationDropsZeroStagger(t *testing.T) {
	in := `{"id":"x","type":"scroll","trigger":{"start":"top top","end":"bottom top","scrub":0,"pin":false,"toggleActions":"play none none none"},"tween":{"from":{},"to":{"opacity":1},"duration":1,"ease":"none","stagger":0}}`
	a, err := DecodeAnimation([]byte(in))
	require.NoError(t, err)

	s := a.(*Scroll)
	assert.Nil(t, s.Tween.Stagger)
	assert.Equal(t, ScrubOff(), s.Trigger.Scrub)
	assert.Empty(t, s.Tween.From.Props())

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stagger")
}

func TestAnimationsUnmarshal(t *testing.T) {
	h, c := NewHover(), NewCarousel()
	data, err := json.Marshal([]Animation{h, c})
	require.NoError(t, err)

	var list Animations
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 2)
	assert.Equal(t, h, list[0])
	assert.Equal(t, c, list[1])

	err = json.Unmarshal([]byte(`[{"id":"a","type":"nope"}]`), &list)
	assert.ErrorIs(t, err, ErrUnknownType)
}

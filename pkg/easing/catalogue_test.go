package easing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetsCatalogue(t *testing.T) {
	ps := Presets()
	assert.Len(t, ps, 31)
	assert.Equal(t, Preset{Value: "none", Label: "Linear"}, ps[0])

	seen := map[string]bool{}
	for _, p := range ps {
		assert.False(t, seen[p.Value], "duplicate preset %s", p.Value)
		seen[p.Value] = true
		assert.Equal(t, ModePreset, ClassifyMode(p.Value))
		assert.True(t, IsPreset(p.Value))
	}

	// Presets returns a copy.
	ps[0].Value = "mutated"
	assert.Equal(t, "none", Presets()[0].Value)
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"power2.out", "power2.out"},
		{"power2", "power2.out"},
		{"linear", "none"},
		{"power0.inOut", "none"},
		{"back.out", "back.out(1.7)"},
		{"back", "back.out(1.7)"},
		{"elastic.in", "elastic.in(1, 0.3)"},
		{"elastic.in(1,0.3)", "elastic.in(1, 0.3)"},
		{"sine", "sine.out"},
		{"back.out(3)", "back.out(3)"},
		{"steps(4)", "steps(4)"},
		{"unknown.ease", "unknown.ease"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.in))
		})
	}
}

func TestIsPreset(t *testing.T) {
	assert.True(t, IsPreset("bounce.out"))
	assert.True(t, IsPreset("power3"))
	assert.False(t, IsPreset("cubic-bezier(0, 0, 1, 1)"))
	assert.False(t, IsPreset("wobble.out"))
}

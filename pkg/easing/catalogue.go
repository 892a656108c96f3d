package easing

import (
	"slices"
	"strings"
)

// Preset is one entry of the easing catalogue.
type Preset struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// presets is the closed catalogue in display order.
var presets = []Preset{
	{Value: "none", Label: "Linear"},
	{Value: "power1.in", Label: "Power1 In"},
	{Value: "power1.out", Label: "Power1 Out"},
	{Value: "power1.inOut", Label: "Power1 InOut"},
	{Value: "power2.in", Label: "Power2 In"},
	{Value: "power2.out", Label: "Power2 Out"},
	{Value: "power2.inOut", Label: "Power2 InOut"},
	{Value: "power3.in", Label: "Power3 In"},
	{Value: "power3.out", Label: "Power3 Out"},
	{Value: "power3.inOut", Label: "Power3 InOut"},
	{Value: "power4.in", Label: "Power4 In"},
	{Value: "power4.out", Label: "Power4 Out"},
	{Value: "power4.inOut", Label: "Power4 InOut"},
	{Value: "back.in(1.7)", Label: "Back In"},
	{Value: "back.out(1.7)", Label: "Back Out"},
	{Value: "back.inOut(1.7)", Label: "Back InOut"},
	{Value: "elastic.in(1, 0.3)", Label: "Elastic In"},
	{Value: "elastic.out(1, 0.3)", Label: "Elastic Out"},
	{Value: "elastic.inOut(1, 0.3)", Label: "Elastic InOut"},
	{Value: "bounce.in", Label: "Bounce In"},
	{Value: "bounce.out", Label: "Bounce Out"},
	{Value: "bounce.inOut", Label: "Bounce InOut"},
	{Value: "circ.in", Label: "Circ In"},
	{Value: "circ.out", Label: "Circ Out"},
	{Value: "circ.inOut", Label: "Circ InOut"},
	{Value: "expo.in", Label: "Expo In"},
	{Value: "expo.out", Label: "Expo Out"},
	{Value: "expo.inOut", Label: "Expo InOut"},
	{Value: "sine.in", Label: "Sine In"},
	{Value: "sine.out", Label: "Sine Out"},
	{Value: "sine.inOut", Label: "Sine InOut"},
}

// presetIndex maps a whitespace-free preset value to its catalogue form.
var presetIndex = func() map[string]string {
	m := make(map[string]string, len(presets))
	for _, p := range presets {
		m[stripSpaces(p.Value)] = p.Value
	}
	return m
}()

// defaultParams are appended to parameterized families named without
// arguments.
var defaultParams = map[string]string{
	"back":    "(1.7)",
	"elastic": "(1,0.3)",
}

// Presets returns the catalogue in display order.
func Presets() []Preset {
	return slices.Clone(presets)
}

// IsPreset reports whether name is a catalogue entry or an alias of one.
func IsPreset(name string) bool {
	_, ok := presetIndex[stripSpaces(Canonical(name))]
	return ok
}

// Canonical resolves runtime aliases to their catalogue form: "linear" and
// "power0.*" to "none", a bare family such as "power2" to its ".out" variant,
// and "back"/"elastic" without arguments to the default parameters. Names it
// does not recognize are returned unchanged. Canonical is used for curve
// lookup only; generated code always carries the identifier verbatim.
func Canonical(name string) string {
	key := stripSpaces(name)
	if v, ok := presetIndex[key]; ok {
		return v
	}
	if key == "linear" || strings.HasPrefix(key, "power0") {
		return "none"
	}
	family, variant, found := strings.Cut(key, ".")
	if !found {
		variant = "out"
	}
	if params, ok := defaultParams[family]; ok && !strings.Contains(variant, "(") {
		variant += params
	}
	if v, ok := presetIndex[family+"."+variant]; ok {
		return v
	}
	return name
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

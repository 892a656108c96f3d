package easing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Func maps normalized progress t in [0,1] to eased progress.
type Func func(t float64) float64

// Evaluator resolves a preset name to its exact timing function. It is the
// only path by which oscillatory presets (elastic, bounce) are sampled.
type Evaluator interface {
	Lookup(name string) (Func, bool)
}

// FuncTable is an Evaluator backed by a map keyed by catalogue value.
// Lookups canonicalize the name first.
type FuncTable map[string]Func

// Lookup returns the function registered for name or one of its aliases.
func (ft FuncTable) Lookup(name string) (Func, bool) {
	fn, ok := ft[Canonical(name)]
	return fn, ok
}

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// DefaultEvaluator maps every catalogue preset to a gween easing function.
// powerN uses the degree N+1 polynomial, back uses overshoot 1.70158, and
// elastic uses amplitude 1 with period 0.3.
func DefaultEvaluator() FuncTable {
	return FuncTable{
		"none": Linear,

		"power1.in":    fromTween(ease.InQuad),
		"power1.out":   fromTween(ease.OutQuad),
		"power1.inOut": fromTween(ease.InOutQuad),
		"power2.in":    fromTween(ease.InCubic),
		"power2.out":   fromTween(ease.OutCubic),
		"power2.inOut": fromTween(ease.InOutCubic),
		"power3.in":    fromTween(ease.InQuart),
		"power3.out":   fromTween(ease.OutQuart),
		"power3.inOut": fromTween(ease.InOutQuart),
		"power4.in":    fromTween(ease.InQuint),
		"power4.out":   fromTween(ease.OutQuint),
		"power4.inOut": fromTween(ease.InOutQuint),

		"back.in(1.7)":    fromTween(ease.InBack),
		"back.out(1.7)":   fromTween(ease.OutBack),
		"back.inOut(1.7)": fromTween(ease.InOutBack),

		"elastic.in(1, 0.3)":    fromTween(ease.InElastic),
		"elastic.out(1, 0.3)":   fromTween(ease.OutElastic),
		"elastic.inOut(1, 0.3)": fromTween(ease.InOutElastic),

		"bounce.in":    fromTween(ease.InBounce),
		"bounce.out":   fromTween(ease.OutBounce),
		"bounce.inOut": fromTween(ease.InOutBounce),

		"circ.in":    fromTween(ease.InCirc),
		"circ.out":   fromTween(ease.OutCirc),
		"circ.inOut": fromTween(ease.InOutCirc),

		"expo.in":    fromTween(ease.InExpo),
		"expo.out":   fromTween(ease.OutExpo),
		"expo.inOut": fromTween(ease.InOutExpo),

		"sine.in":    fromTween(ease.InSine),
		"sine.out":   fromTween(ease.OutSine),
		"sine.inOut": fromTween(ease.InOutSine),
	}
}

// fromTween adapts a gween easing function to Func. Evaluating through a
// one-second 0→1 tween pins t<=0 to 0 and t>=1 to 1.
func fromTween(fn ease.TweenFunc) Func {
	return func(t float64) float64 {
		v, _ := gween.New(0, 1, 1, fn).Set(float32(t))
		return float64(v)
	}
}

// Package easing maps easing identifiers to timing curves.
//
// An identifier is either a preset name from a closed catalogue ("power2.out",
// "elastic.in(1, 0.3)", ...) or custom cubic-bezier notation
// ("cubic-bezier(0.25, 0.1, 0.25, 1)"). The two forms are told apart by syntax
// alone. Presets resolve through an injectable Evaluator; custom curves are
// sampled with the parametric Bézier Y formula.
package easing

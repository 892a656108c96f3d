package easing

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// CustomPrefix starts every custom curve identifier.
const CustomPrefix = "cubic-bezier("

// ErrMalformedBezier is returned by ParseCubicBezier for notation that does
// not hold four numbers.
var ErrMalformedBezier = errors.New("malformed cubic-bezier notation")

// Bezier holds the two control points of a cubic Bézier easing curve whose
// anchors are fixed at (0,0) and (1,1).
type Bezier struct {
	X1, Y1, X2, Y2 float64
}

// DefaultBezier seeds custom editing for presets without an approximation.
var DefaultBezier = Bezier{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}

// presetBeziers approximates each non-oscillatory preset with one cubic.
// Elastic and bounce are absent: a single cubic cannot represent them.
var presetBeziers = map[string]Bezier{
	"none": {0, 0, 1, 1},

	"power1.in":    {0.55, 0.085, 0.68, 0.53},
	"power1.out":   {0.25, 0.46, 0.45, 0.94},
	"power1.inOut": {0.455, 0.03, 0.515, 0.955},

	"power2.in":    {0.55, 0.055, 0.675, 0.19},
	"power2.out":   {0.215, 0.61, 0.355, 1},
	"power2.inOut": {0.645, 0.045, 0.355, 1},

	"power3.in":    {0.895, 0.03, 0.685, 0.22},
	"power3.out":   {0.165, 0.84, 0.44, 1},
	"power3.inOut": {0.77, 0, 0.175, 1},

	"power4.in":    {0.755, 0.05, 0.855, 0.06},
	"power4.out":   {0.23, 1, 0.32, 1},
	"power4.inOut": {0.86, 0, 0.07, 1},

	"sine.in":    {0.47, 0, 0.745, 0.715},
	"sine.out":   {0.39, 0.575, 0.565, 1},
	"sine.inOut": {0.445, 0.05, 0.55, 0.95},

	"circ.in":    {0.6, 0.04, 0.98, 0.335},
	"circ.out":   {0.075, 0.82, 0.165, 1},
	"circ.inOut": {0.785, 0.135, 0.15, 0.86},

	"expo.in":    {0.95, 0.05, 0.795, 0.035},
	"expo.out":   {0.19, 1, 0.22, 1},
	"expo.inOut": {1, 0, 0, 1},

	"back.in(1.7)":    {0.6, -0.28, 0.735, 0.045},
	"back.out(1.7)":   {0.175, 0.885, 0.32, 1.275},
	"back.inOut(1.7)": {0.68, -0.55, 0.265, 1.55},
}

// LookupBezier returns the cubic approximation of a preset.
func LookupBezier(name string) (Bezier, bool) {
	b, ok := presetBeziers[Canonical(name)]
	return b, ok
}

// Y evaluates the curve's Y component at parameter t:
//
//	3(1-t)²t·y1 + 3(1-t)t²·y2 + t³
//
// t is the Bézier parameter, not the X coordinate: this is the curve shape as
// drawn, not exact timing for a given progress x.
func (b Bezier) Y(t float64) float64 {
	mt := 1 - t
	return 3*mt*mt*t*b.Y1 + 3*mt*t*t*b.Y2 + t*t*t
}

// String formats b as custom notation.
func (b Bezier) String() string {
	return FormatCubicBezier(b)
}

var bezierPattern = regexp.MustCompile(
	`^\s*cubic-bezier\(\s*([\d.+-]+)\s*,\s*([\d.+-]+)\s*,\s*([\d.+-]+)\s*,\s*([\d.+-]+)\s*\)\s*$`)

// ParseCubicBezier parses "cubic-bezier(x1, y1, x2, y2)".
func ParseCubicBezier(s string) (Bezier, error) {
	m := bezierPattern.FindStringSubmatch(s)
	if m == nil {
		return Bezier{}, fmt.Errorf("%w: %q", ErrMalformedBezier, s)
	}
	var v [4]float64
	for i := range v {
		f, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return Bezier{}, fmt.Errorf("%w: %q: %v", ErrMalformedBezier, s, err)
		}
		v[i] = f
	}
	return Bezier{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

// FormatCubicBezier writes b as custom notation with each coordinate rounded
// to three decimal places.
func FormatCubicBezier(b Bezier) string {
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)",
		formatCoord(b.X1), formatCoord(b.Y1), formatCoord(b.X2), formatCoord(b.Y2))
}

// Round3 rounds v to three decimals, half toward positive infinity.
func Round3(v float64) float64 {
	r := math.Floor(v*1000+0.5) / 1000
	if r == 0 {
		return 0 // no "-0"
	}
	return r
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(Round3(v), 'f', -1, 64)
}

package easing

import "iter"

// DefaultSteps is the number of sample intervals for a curve.
const DefaultSteps = 60

// Point is one (t, value) sample of a curve.
type Point struct {
	T float64 `json:"t"`
	V float64 `json:"v"`
}

// Sampler turns easing identifiers into point sequences. The zero value uses
// DefaultSteps and DefaultEvaluator.
type Sampler struct {
	Steps     int
	Evaluator Evaluator
}

// NewSampler returns a Sampler. steps <= 0 selects DefaultSteps and a nil
// evaluator selects DefaultEvaluator.
func NewSampler(steps int, ev Evaluator) *Sampler {
	if ev == nil {
		ev = defaultEvaluator
	}
	if steps <= 0 {
		steps = DefaultSteps
	}
	return &Sampler{Steps: steps, Evaluator: ev}
}

var (
	defaultEvaluator = DefaultEvaluator()
	defaultSampler   = NewSampler(DefaultSteps, nil)
)

// Sample returns the points of id using DefaultSteps and DefaultEvaluator.
func Sample(id string) []Point {
	return defaultSampler.Sample(id)
}

// Points yields Steps+1 samples (i/Steps, f(i/Steps)) of the curve named by
// id. The sequence is finite and can be ranged over any number of times.
//
// Custom notation uses Bezier.Y; malformed notation yields only (0,0) and
// (1,1). Presets resolve through the Evaluator, then the Bézier table; unknown
// names sample as linear.
func (s *Sampler) Points(id string) iter.Seq2[float64, float64] {
	fn, steps := s.curve(id)
	return func(yield func(float64, float64) bool) {
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			if !yield(t, fn(t)) {
				return
			}
		}
	}
}

// Sample collects Points into a slice.
func (s *Sampler) Sample(id string) []Point {
	var pts []Point
	for t, v := range s.Points(id) {
		pts = append(pts, Point{T: t, V: v})
	}
	return pts
}

func (s *Sampler) curve(id string) (Func, int) {
	steps := s.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}
	if ClassifyMode(id) == ModeCustom {
		b, err := ParseCubicBezier(id)
		if err != nil {
			return Linear, 1
		}
		return b.Y, steps
	}
	if fn, ok := s.evaluator().Lookup(id); ok {
		return fn, steps
	}
	if b, ok := LookupBezier(id); ok {
		return b.Y, steps
	}
	return Linear, steps
}

func (s *Sampler) evaluator() Evaluator {
	if s.Evaluator == nil {
		return defaultEvaluator
	}
	return s.Evaluator
}

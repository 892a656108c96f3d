package types

import "math"

// changeOp is the kind of edit a Change carries.
type changeOp uint8

const (
	changeKeep changeOp = iota
	changeSet
	changeUnset
)

// Change edits an optional numeric field. The zero value keeps the current
// value, Set assigns one, and Unset removes it so the property is no longer
// emitted.
type Change struct {
	op    changeOp
	value float64
}

// Set returns a Change that assigns v.
func Set(v float64) Change {
	return Change{op: changeSet, value: v}
}

// Unset returns a Change that clears the field.
func Unset() Change {
	return Change{op: changeUnset}
}

// IsKeep reports whether the Change leaves the field untouched.
func (c Change) IsKeep() bool {
	return c.op == changeKeep
}

func (c Change) apply(prev *float64) *float64 {
	switch c.op {
	case changeSet:
		return Float(c.value)
	case changeUnset:
		return nil
	}
	return prev
}

// Float returns a pointer to v, for populating optional fields.
func Float(v float64) *float64 {
	return &v
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Float(*p)
}

func positive(p *float64) bool {
	return p == nil || finitePositive(*p)
}

// finitePositive is false for NaN and +Inf.
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

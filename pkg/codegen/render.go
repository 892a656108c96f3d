package codegen

import (
	"strings"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

// Divider separates animations in RenderAll output.
const Divider = "// ─────────────────────────────────────────────"

// Render returns the script for one animation.
func Render(a types.Animation) string {
	var e emitter
	a.Accept(&e)
	return e.b.String()
}

// RenderAll renders each animation in order, separated by Divider. It
// returns "" for an empty collection and adds no trailing divider.
func RenderAll(list []types.Animation) string {
	if len(list) == 0 {
		return ""
	}
	parts := make([]string, len(list))
	for i, a := range list {
		parts[i] = Render(a)
	}
	return strings.Join(parts, "\n\n"+Divider+"\n\n")
}

// emitter writes the script for whichever variant it visits.
type emitter struct {
	b strings.Builder
}

var _ types.Visitor = (*emitter)(nil)

func (e *emitter) VisitHover(h *types.Hover)       { writeHover(&e.b, h) }
func (e *emitter) VisitCarousel(c *types.Carousel) { writeCarousel(&e.b, c) }
func (e *emitter) VisitScroll(s *types.Scroll)     { writeScroll(&e.b, s) }

// writeProps writes one "key: value," line per property at indent.
func writeProps(b *strings.Builder, indent string, props []types.Prop) {
	for _, p := range props {
		b.WriteString(indent)
		b.WriteString(p.Key)
		b.WriteString(": ")
		b.WriteString(number(p.Value))
		b.WriteString(",\n")
	}
}

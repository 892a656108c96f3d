package codegen

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

func writeScroll(b *strings.Builder, s *types.Scroll) {
	sel := quote(s.TargetSelector)
	comment(b, s.Label)
	b.WriteString("gsap.registerPlugin(ScrollTrigger);\n\n")
	b.WriteString("gsap.fromTo(\n")
	b.WriteString("  " + sel + ",\n")
	b.WriteString("  {\n")
	writeProps(b, "    ", s.Tween.From.Props())
	b.WriteString("  },\n")
	b.WriteString("  {\n")
	writeProps(b, "    ", s.Tween.To.Props())
	b.WriteString("    duration: " + number(s.Tween.Duration) + ",\n")
	b.WriteString("    ease: " + quote(s.Tween.Ease) + ",\n")
	if s.Tween.Stagger != nil && *s.Tween.Stagger != 0 {
		b.WriteString("    stagger: " + number(*s.Tween.Stagger) + ",\n")
	}
	b.WriteString("    scrollTrigger: {\n")
	b.WriteString("      trigger: " + sel + ",\n")
	b.WriteString("      start: " + quote(s.Trigger.Start) + ",\n")
	b.WriteString("      end: " + quote(s.Trigger.End) + ",\n")
	b.WriteString("      scrub: " + scrub(s.Trigger.Scrub) + ",\n")
	b.WriteString("      pin: " + strconv.FormatBool(s.Trigger.Pin) + ",\n")
	b.WriteString("      toggleActions: " + quote(string(s.Trigger.ToggleActions)) + ",\n")
	b.WriteString("    },\n")
	b.WriteString("  }\n")
	b.WriteString(");")
}

func scrub(s types.Scrub) string {
	if s.IsNumeric() {
		return number(s.Smoothing)
	}
	return strconv.FormatBool(s.Enabled)
}


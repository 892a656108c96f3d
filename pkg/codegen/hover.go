package codegen

import (
	"strings"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

func writeHover(b *strings.Builder, h *types.Hover) {
	comment(b, h.Label)
	b.WriteString("const els = document.querySelectorAll(" + quote(h.TargetSelector) + ");\n\n")
	b.WriteString("els.forEach((el) => {\n")
	writeHoverListener(b, "mouseenter", h.Enter)
	b.WriteString("\n")
	writeHoverListener(b, "mouseleave", h.Leave)
	b.WriteString("});")
}

func writeHoverListener(b *strings.Builder, event string, s types.HoverState) {
	b.WriteString("  el.addEventListener('" + event + "', () => {\n")
	b.WriteString("    gsap.to(el, {\n")
	b.WriteString("      duration: " + number(s.Duration) + ",\n")
	b.WriteString("      ease: " + quote(s.Ease) + ",\n")
	writeProps(b, "      ", s.Props())
	b.WriteString("    });\n")
	b.WriteString("  });\n")
}

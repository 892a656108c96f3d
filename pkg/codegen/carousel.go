package codegen

import (
	"strings"

	"github.com/mesh-intelligence/tweenkit/pkg/types"
)

// dragThreshold is the pointer travel in pixels that counts as a swipe.
const dragThreshold = 50

func writeCarousel(b *strings.Builder, c *types.Carousel) {
	item := quote(c.ItemSelector)
	comment(b, c.Label)
	b.WriteString("const carousel = document.querySelector(" + quote(c.TargetSelector) + ");\n")
	b.WriteString("const track = carousel.querySelector(" + item + ")?.parentElement;\n")
	b.WriteString("const items = carousel.querySelectorAll(" + item + ");\n")
	b.WriteString("const itemWidth = carousel.offsetWidth / " + number(float64(c.VisibleItems)) + ";\n")
	b.WriteString("let currentIndex = 0;\n\n")

	b.WriteString("function goTo(index) {\n")
	if c.Loop {
		b.WriteString("  currentIndex = ((index % items.length) + items.length) % items.length;\n")
	} else {
		b.WriteString("  currentIndex = Math.max(0, Math.min(index, items.length - 1));\n")
	}
	writeTransition(b, c)
	if c.Autoplay {
		b.WriteString("  resetAutoplay();\n")
	}
	b.WriteString("}\n")

	if c.Autoplay {
		b.WriteString("\nlet autoplayTimer = null;\n\n")
		b.WriteString("function resetAutoplay() {\n")
		b.WriteString("  clearInterval(autoplayTimer);\n")
		b.WriteString("  autoplayTimer = setInterval(() => goTo(currentIndex + 1), " + number(c.AutoplayDelay*1000) + ");\n")
		b.WriteString("}\n\n")
		b.WriteString("resetAutoplay();\n")
	}

	if c.DragEnabled {
		b.WriteString("\n// Drag support\n")
		b.WriteString("let startX = 0;\n")
		b.WriteString("track.addEventListener('pointerdown', (e) => {\n")
		b.WriteString("  startX = e.clientX;\n")
		b.WriteString("});\n")
		b.WriteString("track.addEventListener('pointerup', (e) => {\n")
		b.WriteString("  const diff = e.clientX - startX;\n")
		b.WriteString("  if (Math.abs(diff) > " + number(dragThreshold) + ") goTo(currentIndex + (diff < 0 ? 1 : -1));\n")
		b.WriteString("});\n")
	}

	b.WriteString("\n// Wire up your prev/next buttons:\n")
	b.WriteString("// document.querySelector('.prev').addEventListener('click', () => goTo(currentIndex - 1));\n")
	b.WriteString("// document.querySelector('.next').addEventListener('click', () => goTo(currentIndex + 1));")
}

// writeTransition writes the tween body of goTo. Unrecognized transitions
// render as slide.
func writeTransition(b *strings.Builder, c *types.Carousel) {
	ease := quote(c.Ease)
	switch c.TransitionType {
	case types.TransitionFade:
		half := number(c.Duration / 2)
		b.WriteString("  gsap.to(items, { opacity: 0, duration: " + half + ", ease: " + ease + " });\n")
		b.WriteString("  gsap.set(track, { x: -currentIndex * itemWidth });\n")
		b.WriteString("  gsap.to(items[currentIndex], { opacity: 1, duration: " + half + ", ease: " + ease + " });\n")
	case types.TransitionFlip:
		b.WriteString("  gsap.to(track, {\n")
		b.WriteString("    rotationY: currentIndex * -90,\n")
		b.WriteString("    duration: " + number(c.Duration) + ",\n")
		b.WriteString("    ease: " + ease + ",\n")
		b.WriteString("    transformOrigin: 'center center',\n")
		b.WriteString("  });\n")
	default:
		b.WriteString("  gsap.to(track, {\n")
		b.WriteString("    x: -currentIndex * itemWidth,\n")
		b.WriteString("    duration: " + number(c.Duration) + ",\n")
		b.WriteString("    ease: " + ease + ",\n")
		b.WriteString("  });\n")
	}
}

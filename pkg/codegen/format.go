package codegen

import (
	"math"
	"strconv"
	"strings"
)

// number formats v the way the runtime prints a number literal: shortest
// round-trip decimal, no exponent for ordinary magnitudes, and "0" for -0.
func number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// quoteEscaper escapes text for a single-quoted script string literal.
var quoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// lineBreaks maps every script line terminator to "\n".
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// quote returns s as a single-quoted string literal.
func quote(s string) string {
	return "'" + quoteEscaper.Replace(s) + "'"
}

// comment writes label as line comments, one per label line. Any line
// terminator in label starts a new comment line.
func comment(b *strings.Builder, label string) {
	for _, line := range strings.Split(lineBreaks.Replace(label), "\n") {
		if line == "" {
			b.WriteString("//\n")
			continue
		}
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

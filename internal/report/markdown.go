// Package report turns an analysis result into HTML: a fixed, minimal
// line-oriented renderer for the advisor's restricted markup, and the
// exportable report document around it. This is not a general markup engine.
package report

import (
	"html/template"
	"strings"
)

// Render converts the restricted report markup to HTML. Rules, in order:
// lines starting with '#' are headings (leading hashes stripped); lines
// fully wrapped in ** are emphasized callouts; lines starting with "- " are
// bullet items (consecutive bullets grouped into one list); blank lines are
// vertical spacing; everything else is a plain paragraph. All content is
// escaped.
func Render(markdown string) template.HTML {
	var b strings.Builder
	inList := false

	closeList := func() {
		if inList {
			b.WriteString("</ul>\n")
			inList = false
		}
	}

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			closeList()
			b.WriteString(`<div class="spacer"></div>` + "\n")

		case strings.HasPrefix(trimmed, "#"):
			closeList()
			text := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			b.WriteString(`<h3>` + template.HTMLEscapeString(text) + "</h3>\n")

		case isCallout(trimmed):
			closeList()
			text := strings.TrimSuffix(strings.TrimPrefix(trimmed, "**"), "**")
			b.WriteString(`<p class="callout">` + template.HTMLEscapeString(text) + "</p>\n")

		case strings.HasPrefix(trimmed, "- "):
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
			text := strings.TrimPrefix(trimmed, "- ")
			b.WriteString(`<li>` + template.HTMLEscapeString(text) + "</li>\n")

		default:
			closeList()
			b.WriteString(`<p>` + template.HTMLEscapeString(trimmed) + "</p>\n")
		}
	}
	closeList()

	return template.HTML(b.String())
}

// isCallout reports whether the whole line is wrapped in a bold-marker pair.
func isCallout(line string) bool {
	return len(line) > 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**")
}

package analyzer

import "strings"

// ExtractUnits returns the text spans of function/method-like units in src,
// in order of appearance. A unit starts at a signature match and ends at the
// matching closing brace (or at the end of the indented block for
// indentation-delimited languages). A span whose braces never balance before
// end of file is discarded rather than reported.
// Nested functions are extracted as independent, overlapping units.
func ExtractUnits(src, language string) []string {
	p, ok := patternsByLanguage[language]
	if !ok || p.function == nil {
		return nil
	}

	locs := p.function.FindAllStringIndex(src, -1)
	units := make([]string, 0, len(locs))
	for _, loc := range locs {
		var body string
		if p.indent {
			body = indentSpan(src, loc[0])
		} else {
			body = braceSpan(src, loc[0])
		}
		if body != "" {
			units = append(units, body)
		}
	}
	return units
}

// braceSpan returns src[start:...] up to the brace that balances the first
// '{' at or after start, or "" if the text ends before balancing.
func braceSpan(src string, start int) string {
	open := strings.IndexByte(src[start:], '{')
	if open < 0 {
		return ""
	}
	depth := 0
	for i := start + open; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return src[start : i+1]
			}
		}
	}
	// Unbalanced at EOF: discard the partial span.
	return ""
}

// indentSpan returns the block starting at the signature on the line
// containing start, ending before the first non-blank line indented at or
// below the signature's indentation. Used for Python, where blocks are
// delimited by indentation rather than braces.
func indentSpan(src string, start int) string {
	lineStart := strings.LastIndexByte(src[:start], '\n') + 1
	sigIndent := indentWidth(src[lineStart:])

	// Advance past the signature line.
	pos := strings.IndexByte(src[start:], '\n')
	if pos < 0 {
		return src[lineStart:]
	}
	pos += start + 1

	end := len(src)
	for pos < len(src) {
		next := strings.IndexByte(src[pos:], '\n')
		var line string
		if next < 0 {
			line = src[pos:]
			next = len(src) - pos
		} else {
			line = src[pos : pos+next]
		}
		if strings.TrimSpace(line) != "" && indentWidth(line) <= sigIndent {
			end = pos
			break
		}
		pos += next + 1
	}
	return src[lineStart:end]
}

// indentWidth counts leading spaces and tabs, a tab counting as one column.
func indentWidth(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

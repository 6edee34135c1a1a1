package analyzer

import "sort"

// ImportTargets returns the import target strings captured in src, in order
// of appearance. A language with no configured import patterns yields nil.
func ImportTargets(src, language string) []string {
	p, ok := patternsByLanguage[language]
	if !ok || len(p.imports) == 0 {
		return nil
	}

	type hit struct {
		pos    int
		target string
	}
	var hits []hit
	for _, re := range p.imports {
		for _, m := range re.FindAllStringSubmatchIndex(src, -1) {
			if len(m) < 4 || m[2] < 0 {
				continue
			}
			hits = append(hits, hit{pos: m[0], target: src[m[2]:m[3]]})
		}
	}

	// Patterns are scanned one at a time; restore source order.
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	targets := make([]string, len(hits))
	for i, h := range hits {
		targets[i] = h.target
	}
	return targets
}

// CountImports returns the number of import/include-like statements in src,
// the file's coupling estimate.
func CountImports(src, language string) int {
	return len(ImportTargets(src, language))
}

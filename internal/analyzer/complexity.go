package analyzer

import "regexp"

// decisionTokens matches the decision points counted toward cyclomatic
// complexity: branch and loop keywords, case labels, exception handlers, and
// the short-circuit/ternary operators. "else if" contributes exactly one
// count through its "if". Token matching is textual, so occurrences inside
// strings or comments are counted too, an accepted imprecision of the
// regex-based approach.
var decisionTokens = regexp.MustCompile(`\b(?:elif|foreach|for|if|while|case|when|catch|except|rescue)\b|&&|\|\||\?`)

// UnitComplexity estimates cyclomatic complexity for one unit's text span:
// 1 plus the number of decision-point occurrences. The minimum is 1. A
// decision point inside a nested unit that was also extracted separately is
// counted in both spans by design; the tool approximates per-unit
// complexity, not whole-program complexity.
func UnitComplexity(body string) int {
	return 1 + len(decisionTokens.FindAllStringIndex(body, -1))
}

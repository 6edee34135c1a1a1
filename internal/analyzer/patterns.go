package analyzer

import "regexp"

// languagePatterns holds the heuristic regexes for one language tag.
// function matches the start of a function/method-like signature; imports
// each capture the import target in group 1. Languages with indent=true end
// blocks by indentation instead of brace balancing.
type languagePatterns struct {
	function *regexp.Regexp
	imports  []*regexp.Regexp
	indent   bool
}

// patternsByLanguage is the per-language pattern table. A language with no
// entry, or a nil function pattern, simply yields zero units; that is the
// contract, not an error. The patterns accept false positives (a regex is
// not a grammar); downstream banding was tuned against that behavior.
var patternsByLanguage = map[string]languagePatterns{
	"go": {
		function: regexp.MustCompile(`(?m)^func\s+(?:\([^)]*\)\s*)?[A-Za-z_]\w*\s*\(`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^import\s+(?:\w+\s+)?"([^"]+)"`),
			// Lines inside a gofmt'd import block are tab-indented.
			regexp.MustCompile(`(?m)^\t(?:\w+\s+)?"([^"]+)"$`),
		},
	},
	"python": {
		function: regexp.MustCompile(`(?m)^[ \t]*(?:async\s+)?def\s+\w+\s*\(`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*from\s+([\w.]+)\s+import\b`),
			regexp.MustCompile(`(?m)^[ \t]*import\s+([\w.]+)`),
		},
		indent: true,
	},
	"javascript": {
		function: regexp.MustCompile(`(?m)^[ \t]*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*\w*\s*\(|^[ \t]*(?:export\s+)?(?:const|let|var)\s+\w+\s*=\s*(?:async\s+)?(?:function\b|\([^)]*\)\s*=>\s*\{)`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*(?:import|export)\s+[^;\n]*?from\s+['"]([^'"]+)['"]`),
			regexp.MustCompile(`(?m)^[ \t]*import\s+['"]([^'"]+)['"]`),
			regexp.MustCompile(`\brequire\s*\(\s*['"]([^'"]+)['"]\s*\)`),
		},
	},
	"java": {
		function: regexp.MustCompile(`(?m)^[ \t]+(?:(?:public|private|protected|static|final|abstract|synchronized|native)\s+)+[\w<>\[\],.\s]*?\w+\s*\([^;{]*\)\s*(?:throws\s+[\w,.\s]+)?\{`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*import\s+(?:static\s+)?([\w.]+)\s*;`),
		},
	},
	"kotlin": {
		function: regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|protected|internal|override|suspend|open|inline)\s+)*fun\s+\w+`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*import\s+([\w.]+)`),
		},
	},
	"csharp": {
		function: regexp.MustCompile(`(?m)^[ \t]+(?:(?:public|private|protected|internal|static|virtual|override|async|sealed)\s+)+[\w<>\[\],.\s]*?\w+\s*\([^;{]*\)\s*\{`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*using\s+(?:static\s+)?([A-Za-z_][\w.]*)\s*;`),
		},
	},
	"c": {
		function: regexp.MustCompile(`(?m)^[A-Za-z_][\w\s\*]*[\s\*][A-Za-z_]\w*\s*\([^;{}]*\)\s*\{`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*#[ \t]*include[ \t]*[<"]([^>"]+)[>"]`),
		},
	},
	"cpp": {
		function: regexp.MustCompile(`(?m)^[A-Za-z_][\w\s\*&:<>,~]*[\s\*&][A-Za-z_~][\w:]*\s*\([^;{}]*\)\s*(?:const\s*)?\{`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*#[ \t]*include[ \t]*[<"]([^>"]+)[>"]`),
		},
	},
	"ruby": {
		// Ruby blocks end with "end", not braces; no function pattern
		// configured, so Ruby files contribute imports only.
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*require(?:_relative)?\s+['"]([^'"]+)['"]`),
		},
	},
	"php": {
		function: regexp.MustCompile(`(?m)(?:(?:public|private|protected|static)\s+)*function\s+\w+\s*\(`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*use\s+([\w\\]+)`),
			regexp.MustCompile(`\b(?:require|include)(?:_once)?\s*\(?\s*['"]([^'"]+)['"]`),
		},
	},
	"rust": {
		function: regexp.MustCompile(`(?m)^[ \t]*(?:pub(?:\([^)]*\))?\s+)?(?:async\s+)?(?:unsafe\s+)?fn\s+\w+`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*(?:pub\s+)?use\s+([\w:]+)`),
			regexp.MustCompile(`(?m)^[ \t]*mod\s+(\w+)\s*;`),
		},
	},
	"swift": {
		function: regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|internal|open|static|override|final)\s+)*func\s+\w+`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*import\s+(\w+)`),
		},
	},
	"typescript": {
		function: regexp.MustCompile(`(?m)^[ \t]*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*\w*\s*\(|^[ \t]*(?:export\s+)?(?:const|let|var)\s+\w+\s*(?::[^=\n]+)?=\s*(?:async\s+)?(?:function\b|\([^)]*\)(?:\s*:\s*[^=\n{]+)?\s*=>\s*\{)`),
		imports: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*(?:import|export)\s+[^;\n]*?from\s+['"]([^'"]+)['"]`),
			regexp.MustCompile(`(?m)^[ \t]*import\s+['"]([^'"]+)['"]`),
			regexp.MustCompile(`\brequire\s*\(\s*['"]([^'"]+)['"]\s*\)`),
		},
	},
}

package analyzer

import (
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/repolens/internal/scanner"
)

// BuildGraph resolves each file's import targets against the collected file
// set, producing a directed graph keyed by file stem. An import resolves to
// another collected file when that file's stem contains the import string as
// a substring, or the file's path contains the import string with module
// separators rewritten as path separators. The substring match is
// intentionally permissive and can produce false-positive edges; the cycle
// and depth bands downstream were tuned against exactly that behavior, so it
// must not be tightened. Imports that resolve to nothing are dropped.
//
// targets is keyed by file path and holds each file's captured import
// strings in source order.
func BuildGraph(files []scanner.SourceFile, targets map[string][]string) DependencyGraph {
	graph := make(DependencyGraph, len(files))
	for _, f := range files {
		// Every source node gets an entry, even with no resolved edges.
		graph[f.Stem] = []string{}
	}

	for _, f := range files {
		seen := make(map[string]bool)
		for _, target := range targets[f.Path] {
			dst, ok := resolveTarget(target, f, files)
			if !ok || seen[dst] {
				continue
			}
			seen[dst] = true
			graph[f.Stem] = append(graph[f.Stem], dst)
		}
	}
	return graph
}

// moduleSeparators rewrites dotted, double-colon, and backslash module paths
// into slash-delimited path fragments.
var moduleSeparators = strings.NewReplacer(".", "/", "::", "/", `\`, "/")

// resolveTarget finds the first collected file (other than the importer)
// that the import string plausibly refers to.
func resolveTarget(target string, self scanner.SourceFile, files []scanner.SourceFile) (string, bool) {
	t := normalizeTarget(target)
	if t == "" {
		return "", false
	}
	pathForm := moduleSeparators.Replace(t)

	for _, f := range files {
		if f.Path == self.Path {
			continue
		}
		// Substring match runs in both directions, so an import of
		// "Testing" links to a file named Test and vice versa.
		if strings.Contains(f.Stem, t) || strings.Contains(t, f.Stem) {
			return f.Stem, true
		}
		if strings.Contains(filepath.ToSlash(f.Path), pathForm) {
			return f.Stem, true
		}
	}
	return "", false
}

// normalizeTarget strips relative path prefixes and a trailing source
// extension from an import string, leaving the fragment used for matching.
func normalizeTarget(target string) string {
	t := strings.TrimSpace(target)
	for strings.HasPrefix(t, "./") || strings.HasPrefix(t, "../") {
		t = strings.TrimPrefix(t, "./")
		t = strings.TrimPrefix(t, "../")
	}
	if ext := filepath.Ext(t); ext != "" && scanner.LanguageForExt(ext) != "" {
		t = strings.TrimSuffix(t, ext)
	}
	return t
}

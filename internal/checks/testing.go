package checks

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/repolens/internal/analyzer"
	"github.com/blackwell-systems/repolens/internal/scanner"
)

// AssessTesting scores the visibility of automated tests: how many of the
// collected source files follow a recognized test naming convention.
func AssessTesting(root string) analyzer.Result {
	r := analyzer.Result{MaxScore: CheckMaxScore}

	files := scanner.CollectSourceFiles(root)
	if len(files) == 0 {
		r.Weaknesses = append(r.Weaknesses, "No code files found to analyze")
		return r
	}

	tests := 0
	for _, f := range files {
		if isTestFile(f) {
			tests++
		}
	}

	ratio := float64(tests) / float64(len(files))
	switch {
	case tests == 0:
		r.Weaknesses = append(r.Weaknesses, "No test files detected")
		r.Recommendations = append(r.Recommendations, "Add tests using the ecosystem's standard naming so they are discoverable")
	case ratio >= 0.3:
		r.Score = 20
		r.Strengths = append(r.Strengths, fmt.Sprintf("Strong test presence (%d test files, %.0f%% of sources)", tests, ratio*100))
	case ratio >= 0.1:
		r.Score = 12
		r.Strengths = append(r.Strengths, fmt.Sprintf("Tests present (%d test files)", tests))
	default:
		r.Score = 6
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Sparse test coverage signal (%d test files, %.0f%% of sources)", tests, ratio*100))
		r.Recommendations = append(r.Recommendations, "Grow the test suite alongside new code")
	}
	return r
}

// isTestFile reports whether a source file follows a recognized per-language
// test naming convention.
func isTestFile(f scanner.SourceFile) bool {
	base := filepath.Base(f.Path)
	stem := f.Stem

	switch f.Language {
	case "go":
		return strings.HasSuffix(stem, "_test")
	case "python":
		return strings.HasPrefix(base, "test_") || strings.HasSuffix(stem, "_test")
	case "javascript", "typescript":
		return strings.HasSuffix(stem, ".test") || strings.HasSuffix(stem, ".spec")
	case "java", "kotlin":
		return strings.HasSuffix(stem, "Test") || strings.HasSuffix(stem, "IT")
	case "csharp":
		return strings.HasSuffix(stem, "Test") || strings.HasSuffix(stem, "Tests")
	case "rust":
		return strings.Contains(filepath.ToSlash(f.Path), "/tests/")
	case "ruby":
		return strings.HasSuffix(stem, "_spec") || strings.HasSuffix(stem, "_test")
	default:
		return false
	}
}

// Package checks implements the formulaic repository checks: documentation,
// build and CI configuration, test signal, and optional AI grading of agent
// instruction files. Each check returns the same score/findings shape as the
// analysis engine so the assessment command can merge them uniformly.
package checks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/repolens/internal/analyzer"
)

// CheckMaxScore is the point ceiling for each formulaic check.
const CheckMaxScore = 20

// instructionFiles are the agent instruction files recognized at the repo
// root, in preference order.
var instructionFiles = []string{"CLAUDE.md", "AGENTS.md", ".cursorrules"}

// AssessDocumentation scores the repository's human-facing documentation:
// README presence and substance, contribution guide, docs directory, and an
// agent instruction file.
func AssessDocumentation(root string, readmeMinBytes int) analyzer.Result {
	r := analyzer.Result{MaxScore: CheckMaxScore}

	readme, size := findReadme(root)
	switch {
	case readme == "":
		r.Weaknesses = append(r.Weaknesses, "No README found")
		r.Recommendations = append(r.Recommendations, "Add a README describing what the project does and how to run it")
	case size < int64(readmeMinBytes):
		r.Score += 4
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("README is a stub (%d bytes)", size))
		r.Recommendations = append(r.Recommendations, "Expand the README with setup, usage, and project layout")
	default:
		r.Score += 10
		r.Strengths = append(r.Strengths, "Substantive README present")
	}

	if fileExists(filepath.Join(root, "CONTRIBUTING.md")) {
		r.Score += 2
		r.Strengths = append(r.Strengths, "Contribution guide present")
	}

	if dirExists(filepath.Join(root, "docs")) {
		r.Score += 2
		r.Strengths = append(r.Strengths, "Dedicated docs directory present")
	}

	if name := findInstructionFile(root); name != "" {
		r.Score += 6
		r.Strengths = append(r.Strengths, fmt.Sprintf("Agent instruction file present (%s)", name))
	} else {
		r.Weaknesses = append(r.Weaknesses, "No agent instruction file (CLAUDE.md or AGENTS.md)")
		r.Recommendations = append(r.Recommendations, "Add an instruction file so AI assistants start with project context")
	}

	if r.Score > CheckMaxScore {
		r.Score = CheckMaxScore
	}
	return r
}

// findReadme returns the path and size of the first README variant found.
func findReadme(root string) (string, int64) {
	for _, name := range []string{"README.md", "README.rst", "README.txt", "README"} {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, info.Size()
		}
	}
	return "", 0
}

// findInstructionFile returns the name of the first recognized agent
// instruction file at the root, or "".
func findInstructionFile(root string) string {
	for _, name := range instructionFiles {
		if fileExists(filepath.Join(root, name)) {
			return name
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

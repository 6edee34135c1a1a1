package checks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/repolens/internal/analyzer"
)

// buildIndicators maps well-known build configuration files to a short
// label, checked in order of specificity.
var buildIndicators = []struct {
	file  string
	label string
}{
	{"go.mod", "Go module"},
	{"Cargo.toml", "Cargo manifest"},
	{"package.json", "npm package"},
	{"pyproject.toml", "Python project"},
	{"setup.py", "Python setup script"},
	{"pom.xml", "Maven build"},
	{"build.gradle", "Gradle build"},
	{"build.gradle.kts", "Gradle build"},
	{"CMakeLists.txt", "CMake build"},
	{"Makefile", "Makefile"},
}

// ciIndicators are well-known CI configuration locations.
var ciIndicators = []string{
	filepath.Join(".github", "workflows"),
	".gitlab-ci.yml",
	filepath.Join(".circleci", "config.yml"),
	"Jenkinsfile",
	".travis.yml",
}

// AssessBuild scores the discoverability of the repository's build and CI
// setup from well-known config filenames.
func AssessBuild(root string) analyzer.Result {
	r := analyzer.Result{MaxScore: CheckMaxScore}

	if label := findBuildConfig(root); label != "" {
		r.Score += 10
		r.Strengths = append(r.Strengths, fmt.Sprintf("Recognized build configuration (%s)", label))
	} else {
		r.Weaknesses = append(r.Weaknesses, "No recognized build configuration file")
		r.Recommendations = append(r.Recommendations, "Add a standard build manifest so tooling can build without guesswork")
	}

	if fileExists(filepath.Join(root, "Dockerfile")) {
		r.Score += 2
		r.Strengths = append(r.Strengths, "Container build file present")
	}

	if hasCI(root) {
		r.Score += 8
		r.Strengths = append(r.Strengths, "CI configuration present")
	} else {
		r.Weaknesses = append(r.Weaknesses, "No CI configuration detected")
		r.Recommendations = append(r.Recommendations, "Add a CI workflow so changes are verified automatically")
	}

	if r.Score > CheckMaxScore {
		r.Score = CheckMaxScore
	}
	return r
}

// findBuildConfig returns the label of the first recognized build file.
func findBuildConfig(root string) string {
	for _, ind := range buildIndicators {
		if fileExists(filepath.Join(root, ind.file)) {
			return ind.label
		}
	}
	return ""
}

// hasCI reports whether any recognized CI configuration exists. A workflows
// directory counts only if it contains at least one entry.
func hasCI(root string) bool {
	for _, ind := range ciIndicators {
		path := filepath.Join(root, ind)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			return true
		}
		entries, err := os.ReadDir(path)
		if err == nil && len(entries) > 0 {
			return true
		}
	}
	return false
}

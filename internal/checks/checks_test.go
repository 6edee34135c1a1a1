package checks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/repolens/internal/scanner"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// AssessDocumentation
// ---------------------------------------------------------------------------

func TestAssessDocumentation_EmptyRepo(t *testing.T) {
	r := AssessDocumentation(t.TempDir(), 300)

	if r.Score != 0 {
		t.Errorf("expected score 0, got %d", r.Score)
	}
	if len(r.Weaknesses) < 2 {
		t.Errorf("expected README and instruction-file weaknesses, got %v", r.Weaknesses)
	}
}

func TestAssessDocumentation_StubReadme(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", "# x")

	r := AssessDocumentation(root, 300)

	if r.Score != 4 {
		t.Errorf("expected score 4 for stub README, got %d", r.Score)
	}
	found := false
	for _, w := range r.Weaknesses {
		if strings.Contains(w, "stub") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected stub weakness, got %v", r.Weaknesses)
	}
}

func TestAssessDocumentation_FullMarks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", strings.Repeat("documentation ", 50))
	writeFile(t, root, "CONTRIBUTING.md", "please do")
	writeFile(t, root, filepath.Join("docs", "guide.md"), "guide")
	writeFile(t, root, "CLAUDE.md", "# Instructions")

	r := AssessDocumentation(root, 300)

	if r.Score != 20 {
		t.Errorf("expected score 20, got %d", r.Score)
	}
	if len(r.Weaknesses) != 0 {
		t.Errorf("expected no weaknesses, got %v", r.Weaknesses)
	}
}

func TestAssessDocumentation_AgentsFileRecognized(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "AGENTS.md", "# Instructions")

	r := AssessDocumentation(root, 300)

	found := false
	for _, s := range r.Strengths {
		if strings.Contains(s, "AGENTS.md") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected AGENTS.md strength, got %v", r.Strengths)
	}
}

// ---------------------------------------------------------------------------
// AssessBuild
// ---------------------------------------------------------------------------

func TestAssessBuild_NoConfig(t *testing.T) {
	r := AssessBuild(t.TempDir())

	if r.Score != 0 {
		t.Errorf("expected score 0, got %d", r.Score)
	}
	if len(r.Recommendations) != 2 {
		t.Errorf("expected build and CI recommendations, got %v", r.Recommendations)
	}
}

func TestAssessBuild_GoModuleWithCI(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/x")
	writeFile(t, root, filepath.Join(".github", "workflows", "ci.yml"), "on: push")

	r := AssessBuild(root)

	if r.Score != 18 {
		t.Errorf("expected score 18, got %d", r.Score)
	}
}

func TestAssessBuild_EmptyWorkflowsDirDoesNotCount(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Makefile", "all:")
	if err := os.MkdirAll(filepath.Join(root, ".github", "workflows"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := AssessBuild(root)

	for _, s := range r.Strengths {
		if strings.Contains(s, "CI") {
			t.Errorf("empty workflows dir should not count as CI, got %v", r.Strengths)
		}
	}
}

func TestAssessBuild_DockerfileBonus(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/x")
	writeFile(t, root, "Dockerfile", "FROM scratch")

	r := AssessBuild(root)
	if r.Score != 12 {
		t.Errorf("expected score 12, got %d", r.Score)
	}
}

// ---------------------------------------------------------------------------
// AssessTesting
// ---------------------------------------------------------------------------

func TestAssessTesting_NoFiles(t *testing.T) {
	r := AssessTesting(t.TempDir())
	if r.Score != 0 {
		t.Errorf("expected score 0, got %d", r.Score)
	}
}

func TestAssessTesting_NoTests(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main")

	r := AssessTesting(root)

	if r.Score != 0 {
		t.Errorf("expected score 0, got %d", r.Score)
	}
	found := false
	for _, w := range r.Weaknesses {
		if strings.Contains(w, "No test files") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected no-tests weakness, got %v", r.Weaknesses)
	}
}

func TestAssessTesting_StrongRatio(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main")
	writeFile(t, root, "main_test.go", "package main")

	r := AssessTesting(root)

	if r.Score != 20 {
		t.Errorf("expected score 20, got %d", r.Score)
	}
}

func TestIsTestFile_Conventions(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/r/main_test.go", true},
		{"/r/main.go", false},
		{"/r/test_utils.py", true},
		{"/r/utils.py", false},
		{"/r/app.spec.ts", true},
		{"/r/app.test.js", true},
		{"/r/app.ts", false},
		{"/r/ServiceTest.java", true},
		{"/r/WidgetTests.cs", true},
		{"/r/tests/integration.rs", true},
		{"/r/order_spec.rb", true},
	}
	for _, tc := range tests {
		if got := isTestFile(scanner.NewSourceFile(tc.path)); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.path, tc.want, got)
		}
	}
}

// ---------------------------------------------------------------------------
// GradeInstructions
// ---------------------------------------------------------------------------

func TestGradeInstructions_NoAPIKey(t *testing.T) {
	_, err := GradeInstructions(t.TempDir(), "", "model")
	if err != ErrNoAPIKey {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestGradeInstructions_NoInstructionFile(t *testing.T) {
	r, err := GradeInstructions(t.TempDir(), "key", "model")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Score != 0 || len(r.Weaknesses) != 1 {
		t.Errorf("expected zero score with one weakness, got %+v", r)
	}
}

func TestParseGradeResponse_ValidJSON(t *testing.T) {
	grade, err := parseGradeResponse(`{"score": 14, "strengths": ["concrete commands"], "weaknesses": [], "recommendations": ["add layout section"]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grade.Score != 14 {
		t.Errorf("expected score 14, got %d", grade.Score)
	}
	if len(grade.Strengths) != 1 || len(grade.Recommendations) != 1 {
		t.Errorf("unexpected findings: %+v", grade)
	}
}

func TestParseGradeResponse_CodeFences(t *testing.T) {
	text := "```json\n{\"score\": 7, \"strengths\": [], \"weaknesses\": [\"vague\"], \"recommendations\": []}\n```"
	grade, err := parseGradeResponse(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grade.Score != 7 || len(grade.Weaknesses) != 1 {
		t.Errorf("unexpected grade: %+v", grade)
	}
}

func TestParseGradeResponse_Garbage(t *testing.T) {
	if _, err := parseGradeResponse("not json at all"); err == nil {
		t.Error("expected error for non-JSON response")
	}
}

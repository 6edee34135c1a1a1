package report

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// RenderMarkdown renders the report as a markdown document.
func RenderMarkdown(r Report) string {
	var sb strings.Builder

	sb.WriteString("# Repository Assessment\n\n")
	fmt.Fprintf(&sb, "- **Repository:** %s\n", r.RepoPath)
	if !r.TakenAt.IsZero() {
		fmt.Fprintf(&sb, "- **Assessed:** %s\n", r.TakenAt.UTC().Format(time.RFC3339))
	}
	if r.Version != "" {
		fmt.Fprintf(&sb, "- **Tool version:** %s\n", r.Version)
	}
	fmt.Fprintf(&sb, "- **Overall score:** %d/%d\n\n", r.TotalScore(), r.TotalMax())

	sb.WriteString("## Scores\n\n")
	sb.WriteString("| Category | Score |\n")
	sb.WriteString("|---|---|\n")
	for _, c := range r.Categories {
		fmt.Fprintf(&sb, "| %s | %d/%d |\n", c.Name, c.Result.Score, c.Result.MaxScore)
	}
	sb.WriteString("\n")

	for _, c := range r.Categories {
		res := c.Result
		if len(res.Strengths) == 0 && len(res.Weaknesses) == 0 && len(res.Recommendations) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "## %s\n\n", c.Name)
		writeFindingList(&sb, "Strengths", res.Strengths)
		writeFindingList(&sb, "Weaknesses", res.Weaknesses)
		writeFindingList(&sb, "Recommendations", res.Recommendations)
	}

	return sb.String()
}

func writeFindingList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "### %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
	sb.WriteString("\n")
}

// WriteMarkdown renders the report and writes it to the given path.
func WriteMarkdown(r Report, path string) error {
	if err := os.WriteFile(path, []byte(RenderMarkdown(r)), 0o644); err != nil {
		return fmt.Errorf("writing markdown report: %w", err)
	}
	return nil
}

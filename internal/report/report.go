// Package report assembles assessment results into a single report and
// renders it to markdown.
package report

import (
	"time"

	"github.com/blackwell-systems/repolens/internal/analyzer"
)

// Category is one scored assessment area with its findings.
type Category struct {
	Name   string          `json:"name"`
	Result analyzer.Result `json:"result"`
}

// Report is a complete assessment of a repository.
type Report struct {
	RepoPath   string     `json:"repo_path"`
	Version    string     `json:"version"`
	TakenAt    time.Time  `json:"taken_at"`
	Categories []Category `json:"categories"`
}

// TotalScore sums the category scores.
func (r Report) TotalScore() int {
	total := 0
	for _, c := range r.Categories {
		total += c.Result.Score
	}
	return total
}

// TotalMax sums the category score ceilings.
func (r Report) TotalMax() int {
	total := 0
	for _, c := range r.Categories {
		total += c.Result.MaxScore
	}
	return total
}

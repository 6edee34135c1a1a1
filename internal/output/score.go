package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual bar for a score out of max.
// Example: "████████░░ 16/20"
func ScoreBar(score, max, width int) string {
	if width <= 0 {
		width = 20
	}
	if max <= 0 {
		max = 1
	}
	filled := score * width / max
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	ratio := float64(score) / float64(max)
	var style func(string) string
	switch {
	case ratio >= 0.7:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case ratio >= 0.4:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%d/%d", score, max)))
}

// Grade returns a one-word quality label for a score out of max.
func Grade(score, max int) string {
	if max <= 0 {
		return "unknown"
	}
	switch ratio := float64(score) / float64(max); {
	case ratio >= 0.85:
		return "excellent"
	case ratio >= 0.7:
		return "good"
	case ratio >= 0.4:
		return "fair"
	default:
		return "poor"
	}
}

// TrendArrow returns a styled trend indicator for a score delta between two
// snapshots. Positive deltas are improvements, zero shows a dash.
func TrendArrow(delta int) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}
	if delta > 0 {
		return StyleSuccess.Render(fmt.Sprintf("▲ +%d", delta))
	}
	return StyleError.Render(fmt.Sprintf("▼ %d", delta))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

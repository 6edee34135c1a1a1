// Package analyzer implements the code complexity and dependency analysis
// engine: heuristic function extraction, cyclomatic complexity estimation,
// import counting, dependency graph construction, cycle detection, and
// dependency depth analysis. It is deliberately not a parser: all matching
// is regex-based and language patterns trade precision for coverage.
package analyzer

// Result is the banded outcome of one assessment category: a points score
// plus ordered, human-readable findings.
type Result struct {
	Score           int      `json:"score"`
	MaxScore        int      `json:"max_score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// Merge folds another partial result into r, summing scores and appending
// findings in order.
func (r *Result) Merge(part Result) {
	r.Score += part.Score
	r.Strengths = append(r.Strengths, part.Strengths...)
	r.Weaknesses = append(r.Weaknesses, part.Weaknesses...)
	r.Recommendations = append(r.Recommendations, part.Recommendations...)
}

// CodeUnit is a candidate function or method extracted from a source file.
// The body is an owned copy of the matched text span.
type CodeUnit struct {
	File       string `json:"file"`
	Body       string `json:"-"`
	Complexity int    `json:"complexity"`
}

// DependencyGraph maps a file stem to the stems of files it imports.
// Invariants: every file in the analyzed sample has an entry (possibly
// empty), edge order follows the order imports appear in source, and edges
// only exist between files in the collected set; imports that resolve to
// nothing (third-party libraries) are dropped.
type DependencyGraph map[string][]string

// Cycle is an ordered sequence of node names forming a closed walk in the
// dependency graph.
type Cycle []string

// Thresholds holds the banding boundaries for the engine's sub-checks.
type Thresholds struct {
	// Average cyclomatic complexity bands.
	ComplexityLow  float64 `mapstructure:"complexity_low"`
	ComplexityMid  float64 `mapstructure:"complexity_mid"`
	ComplexityHigh float64 `mapstructure:"complexity_high"`

	// A single unit at or above this complexity is flagged regardless of
	// the average.
	ComplexityUnitMax int `mapstructure:"complexity_unit_max"`

	// Average imports-per-file bands.
	CouplingLow  float64 `mapstructure:"coupling_low"`
	CouplingMid  float64 `mapstructure:"coupling_mid"`
	CouplingHigh float64 `mapstructure:"coupling_high"`

	// A single file at or above this import count is flagged regardless of
	// the average.
	CouplingFileMax int `mapstructure:"coupling_file_max"`

	// Maximum dependency chain depth bands.
	DepthGood     int `mapstructure:"depth_good"`
	DepthModerate int `mapstructure:"depth_moderate"`
	DepthHigh     int `mapstructure:"depth_high"`
}

// DefaultThresholds returns the banding boundaries the scoring was tuned
// against.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ComplexityLow:     5,
		ComplexityMid:     10,
		ComplexityHigh:    15,
		ComplexityUnitMax: 20,
		CouplingLow:       5,
		CouplingMid:       10,
		CouplingHigh:      15,
		CouplingFileMax:   20,
		DepthGood:         3,
		DepthModerate:     5,
		DepthHigh:         8,
	}
}

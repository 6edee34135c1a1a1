package analyzer

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/repolens/internal/scanner"
)

const (
	// DefaultSampleSize caps how many files each sub-check analyzes. The
	// engine deliberately samples a bounded prefix of the collected file
	// list rather than the whole repository.
	DefaultSampleSize = 30

	// MaxScore is the ceiling for the category score.
	MaxScore = 20
)

// errFileUnreadable marks a file skipped because of a permission or read
// error. It never escapes the engine: the file simply contributes no signal.
var errFileUnreadable = errors.New("file unreadable")

// Options configures an assessment run. Zero values fall back to defaults.
type Options struct {
	SampleSize int
	Thresholds Thresholds
	Workers    int
}

func (o *Options) applyDefaults() {
	if o.SampleSize == 0 {
		o.SampleSize = DefaultSampleSize
	}
	if o.Thresholds == (Thresholds{}) {
		o.Thresholds = DefaultThresholds()
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
}

// fileScan holds the per-file signals gathered by one worker.
type fileScan struct {
	file    scanner.SourceFile
	units   []CodeUnit
	imports []string
}

// AssessComplexity runs the complexity and dependency analysis engine
// against the repository at root and returns the banded category result.
// Failures reading individual files degrade to "no signal for that file";
// the function itself never fails.
func AssessComplexity(root string, opts Options) Result {
	opts.applyDefaults()

	files := scanner.CollectSourceFiles(root)
	result := Result{MaxScore: MaxScore}

	if len(files) == 0 {
		result.Weaknesses = append(result.Weaknesses, "No code files found to analyze")
		return result
	}

	sample := scanner.Sample(files, opts.SampleSize)
	scans := scanFiles(sample, opts.Workers)

	var units []CodeUnit
	importCounts := make([]int, 0, len(scans))
	targets := make(map[string][]string, len(scans))
	for _, s := range scans {
		units = append(units, s.units...)
		importCounts = append(importCounts, len(s.imports))
		targets[s.file.Path] = s.imports
	}

	graph := BuildGraph(sample, targets)
	cycles := DetectCycles(graph)
	depths := Depths(graph)

	t := opts.Thresholds
	result.Merge(bandComplexity(units, t))
	result.Merge(bandCoupling(importCounts, t))
	result.Merge(bandCycles(cycles))
	result.Merge(bandDepth(depths, t))

	if result.Score > MaxScore {
		result.Score = MaxScore
	}
	return result
}

// scanFiles reads and pattern-scans each file concurrently. Results are
// written by index so the returned slice follows the input order regardless
// of worker scheduling, keeping finding order deterministic.
func scanFiles(sample []scanner.SourceFile, workers int) []fileScan {
	scans := make([]fileScan, len(sample))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, f := range sample {
		i, f := i, f
		g.Go(func() error {
			scans[i] = scanFile(f)
			return nil
		})
	}
	// Workers never return errors; unreadable files degrade to empty scans.
	_ = g.Wait()

	return scans
}

// scanFile gathers one file's units and import targets.
func scanFile(f scanner.SourceFile) fileScan {
	s := fileScan{file: f}
	src, err := readSource(f.Path)
	if err != nil {
		return s
	}
	for _, body := range ExtractUnits(src, f.Language) {
		s.units = append(s.units, CodeUnit{
			File:       f.Path,
			Body:       body,
			Complexity: UnitComplexity(body),
		})
	}
	s.imports = ImportTargets(src, f.Language)
	return s
}

// readSource reads a file, folding any failure into errFileUnreadable.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errFileUnreadable
	}
	return string(data), nil
}

// bandComplexity scores average and maximum cyclomatic complexity across the
// sampled units.
func bandComplexity(units []CodeUnit, t Thresholds) Result {
	var r Result
	if len(units) == 0 {
		// No extractable units is zero signal, not a defect. A middling
		// award keeps unsupported-language repos from being punished.
		r.Score = 3
		return r
	}

	total, max := 0, 0
	for _, u := range units {
		total += u.Complexity
		if u.Complexity > max {
			max = u.Complexity
		}
	}
	avg := float64(total) / float64(len(units))

	switch {
	case avg < t.ComplexityLow:
		r.Score = 5
		r.Strengths = append(r.Strengths, fmt.Sprintf("Low average function complexity (%.1f)", avg))
	case avg < t.ComplexityMid:
		r.Score = 4
		r.Strengths = append(r.Strengths, fmt.Sprintf("Reasonable average function complexity (%.1f)", avg))
	case avg < t.ComplexityHigh:
		r.Score = 2
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Elevated average function complexity (%.1f)", avg))
		r.Recommendations = append(r.Recommendations, "Break up branching functions; aim for single-purpose units")
	default:
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("High average function complexity (%.1f)", avg))
		r.Recommendations = append(r.Recommendations, "Refactor the most complex functions before adding features")
	}

	if max >= t.ComplexityUnitMax {
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("At least one function has very high complexity (%d)", max))
	}
	return r
}

// bandCoupling scores average and maximum imports-per-file.
func bandCoupling(counts []int, t Thresholds) Result {
	var r Result
	if len(counts) == 0 {
		return r
	}

	total, max := 0, 0
	for _, c := range counts {
		total += c
		if c > max {
			max = c
		}
	}
	avg := float64(total) / float64(len(counts))

	switch {
	case avg < t.CouplingLow:
		r.Score = 5
		r.Strengths = append(r.Strengths, fmt.Sprintf("Low file coupling (%.1f imports per file)", avg))
	case avg < t.CouplingMid:
		r.Score = 4
		r.Strengths = append(r.Strengths, fmt.Sprintf("Moderate file coupling (%.1f imports per file)", avg))
	case avg < t.CouplingHigh:
		r.Score = 2
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Elevated file coupling (%.1f imports per file)", avg))
		r.Recommendations = append(r.Recommendations, "Reduce per-file imports by consolidating related modules")
	default:
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("High file coupling (%.1f imports per file)", avg))
		r.Recommendations = append(r.Recommendations, "Introduce clearer module boundaries to cut import fan-out")
	}

	if max > t.CouplingFileMax {
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("At least one file has very high coupling (%d imports)", max))
	}
	return r
}

// bandCycles scores circular-dependency count.
func bandCycles(cycles []Cycle) Result {
	var r Result
	switch n := len(cycles); {
	case n == 0:
		r.Score = 5
		r.Strengths = append(r.Strengths, "No circular dependencies detected")
	case n <= 2:
		r.Score = 2
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("%d circular dependency chains detected", n))
		r.Recommendations = append(r.Recommendations, "Break dependency cycles by extracting shared code into its own module")
	default:
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("%d circular dependency chains detected", n))
		r.Recommendations = append(r.Recommendations, "Untangle circular dependencies before further work; they defeat incremental reasoning")
	}
	return r
}

// bandDepth scores the maximum dependency chain depth.
func bandDepth(depths map[string]int, t Thresholds) Result {
	var r Result
	max := 0
	for _, d := range depths {
		if d > max {
			max = d
		}
	}

	switch {
	case max <= t.DepthGood:
		r.Score = 5
		r.Strengths = append(r.Strengths, fmt.Sprintf("Shallow dependency chains (max depth %d)", max))
	case max <= t.DepthModerate:
		r.Score = 4
		r.Strengths = append(r.Strengths, fmt.Sprintf("Manageable dependency chains (max depth %d)", max))
	case max <= t.DepthHigh:
		r.Score = 2
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Deep dependency chains (max depth %d)", max))
		r.Recommendations = append(r.Recommendations, "Flatten long import chains; readers must hold every link in mind")
	default:
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Dependency chains exceed comprehension budget (max depth %d)", max))
		r.Recommendations = append(r.Recommendations, "Restructure the deepest import chains; depth beyond eight hops resists review")
	}
	return r
}

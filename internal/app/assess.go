package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repolens/internal/analyzer"
	"github.com/blackwell-systems/repolens/internal/checks"
	"github.com/blackwell-systems/repolens/internal/config"
	"github.com/blackwell-systems/repolens/internal/output"
	"github.com/blackwell-systems/repolens/internal/report"
	"github.com/blackwell-systems/repolens/internal/store"
)

// Category names used in reports and snapshots.
const (
	categoryStructure     = "code-structure"
	categoryDocumentation = "documentation"
	categoryBuild         = "build-ci"
	categoryTesting       = "testing"
	categoryInstructions  = "ai-instructions"
)

var (
	assessJSON     bool
	assessSave     bool
	assessMarkdown string
	assessSample   int
)

var assessCmd = &cobra.Command{
	Use:   "assess [path]",
	Short: "Analyze a repository and render a scored report",
	Long: `Assess runs all checks against a repository: regex-based structure
analysis (complexity, coupling, dependency cycles, chain depth), plus
documentation, build/CI, and test-signal checks. When an Anthropic API key
is configured, the repository's agent instruction file is also graded.

The path defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().BoolVar(&assessJSON, "json", false, "Output as JSON")
	assessCmd.Flags().BoolVar(&assessSave, "save", false, "Persist this assessment as a snapshot")
	assessCmd.Flags().StringVar(&assessMarkdown, "markdown", "", "Write a markdown report to this file")
	assessCmd.Flags().IntVar(&assessSample, "sample-size", 0, "Max files analyzed per structural sub-check (0 = config default)")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}
	output.AutoDetect()

	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", root)
	}

	rep := buildReport(root, cfg)

	if assessMarkdown != "" {
		if err := report.WriteMarkdown(rep, assessMarkdown); err != nil {
			return err
		}
	}

	if assessSave {
		if err := saveSnapshot(rep); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}

	if assessJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	renderAssessOutput(rep)
	return nil
}

// buildReport runs every check and assembles the assessment report.
func buildReport(root string, cfg *config.Config) report.Report {
	sampleSize := cfg.SampleSize
	if assessSample > 0 {
		sampleSize = assessSample
	}

	rep := report.Report{
		RepoPath: root,
		Version:  appVersion,
		TakenAt:  time.Now().UTC(),
	}

	structure := analyzer.AssessComplexity(root, analyzer.Options{
		SampleSize: sampleSize,
		Thresholds: cfg.Thresholds,
	})
	rep.Categories = append(rep.Categories, report.Category{Name: categoryStructure, Result: structure})

	rep.Categories = append(rep.Categories,
		report.Category{Name: categoryDocumentation, Result: checks.AssessDocumentation(root, cfg.ReadmeMinBytes)},
		report.Category{Name: categoryBuild, Result: checks.AssessBuild(root)},
		report.Category{Name: categoryTesting, Result: checks.AssessTesting(root)},
	)

	apiKey := os.Getenv(cfg.Instructions.APIKeyEnv)
	grade, err := checks.GradeInstructions(root, apiKey, cfg.Instructions.Model)
	switch {
	case errors.Is(err, checks.ErrNoAPIKey):
		if flagVerbose {
			fmt.Fprintf(os.Stderr, "skipping instruction grading: %s not set\n", cfg.Instructions.APIKeyEnv)
		}
	case err != nil:
		fmt.Fprintf(os.Stderr, "warning: instruction grading failed: %v\n", err)
	default:
		rep.Categories = append(rep.Categories, report.Category{Name: categoryInstructions, Result: grade})
	}

	return rep
}

// saveSnapshot persists the report to the local snapshot database.
func saveSnapshot(rep report.Report) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	snapshotID, err := db.CreateSnapshot(&store.Snapshot{
		TakenAt:    rep.TakenAt,
		RepoPath:   rep.RepoPath,
		Version:    rep.Version,
		TotalScore: rep.TotalScore(),
		MaxScore:   rep.TotalMax(),
	})
	if err != nil {
		return err
	}

	for _, c := range rep.Categories {
		if err := db.InsertCategoryScore(&store.CategoryScore{
			SnapshotID: snapshotID,
			Category:   c.Name,
			Score:      c.Result.Score,
			MaxScore:   c.Result.MaxScore,
		}); err != nil {
			return err
		}
		if err := saveFindings(db, snapshotID, c); err != nil {
			return err
		}
	}
	return nil
}

func saveFindings(db *store.DB, snapshotID int64, c report.Category) error {
	kinds := []struct {
		kind  string
		items []string
	}{
		{store.FindingStrength, c.Result.Strengths},
		{store.FindingWeakness, c.Result.Weaknesses},
		{store.FindingRecommendation, c.Result.Recommendations},
	}
	for _, k := range kinds {
		for _, msg := range k.items {
			if err := db.InsertFinding(&store.Finding{
				SnapshotID: snapshotID,
				Category:   c.Name,
				Kind:       k.kind,
				Message:    msg,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderAssessOutput(rep report.Report) {
	fmt.Println(output.Section("Repository Assessment"))
	fmt.Println()
	fmt.Printf(" %s\n\n", output.StyleMuted.Render(rep.RepoPath))

	tbl := output.NewTable("Category", "Score", "Grade")
	for _, c := range rep.Categories {
		tbl.AddRow(
			c.Name,
			output.ScoreBar(c.Result.Score, c.Result.MaxScore, 10),
			output.Grade(c.Result.Score, c.Result.MaxScore),
		)
	}
	tbl.Print()

	total, max := rep.TotalScore(), rep.TotalMax()
	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Overall:"),
		output.StyleBold.Render(fmt.Sprintf("%d/%d (%s)", total, max, output.Grade(total, max))))

	for _, c := range rep.Categories {
		res := c.Result
		if len(res.Strengths) == 0 && len(res.Weaknesses) == 0 && len(res.Recommendations) == 0 {
			continue
		}
		fmt.Println(output.Section(c.Name))
		for _, s := range res.Strengths {
			fmt.Printf("  %s %s\n", output.StyleSuccess.Render("+"), s)
		}
		for _, w := range res.Weaknesses {
			fmt.Printf("  %s %s\n", output.StyleError.Render("-"), w)
		}
		for _, r := range res.Recommendations {
			fmt.Printf("  %s %s\n", output.StyleWarning.Render(">"), r)
		}
	}
	fmt.Println()
}

package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repolens/internal/config"
	"github.com/blackwell-systems/repolens/internal/output"
	"github.com/blackwell-systems/repolens/internal/store"
)

var (
	historyLimit   int
	historyCompare bool
	historyJSON    bool
)

var historyCmd = &cobra.Command{
	Use:   "history [path]",
	Short: "List and compare persisted assessment snapshots",
	Long: `History lists assessment snapshots saved with 'assess --save' for a
repository, newest first. With --compare, the two most recent snapshots are
diffed per category with trend arrows.

The path defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Max snapshots to list")
	historyCmd.Flags().BoolVar(&historyCompare, "compare", false, "Diff the two most recent snapshots")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		output.SetNoColor(true)
	}
	output.AutoDetect()

	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if historyCompare {
		return compareSnapshots(db, root)
	}

	snapshots, err := db.ListSnapshots(root, historyLimit)
	if err != nil {
		return fmt.Errorf("listing snapshots: %w", err)
	}

	if historyJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshots)
	}

	if len(snapshots) == 0 {
		fmt.Println(output.StyleMuted.Render("No snapshots recorded. Run 'repolens assess --save' first."))
		return nil
	}

	fmt.Println(output.Section("Assessment History"))
	fmt.Println()

	tbl := output.NewTable("ID", "Taken", "Score", "Trend")
	for i, s := range snapshots {
		trend := output.StyleMuted.Render("─")
		if i+1 < len(snapshots) {
			trend = output.TrendArrow(s.TotalScore - snapshots[i+1].TotalScore)
		}
		tbl.AddRow(
			fmt.Sprintf("%d", s.ID),
			s.TakenAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d/%d", s.TotalScore, s.MaxScore),
			trend,
		)
	}
	tbl.Print()
	fmt.Println()
	return nil
}

// compareSnapshots diffs the two most recent snapshots for a repository.
func compareSnapshots(db *store.DB, root string) error {
	current, err := db.GetSnapshotN(root, 1)
	if err != nil {
		return fmt.Errorf("loading latest snapshot: %w", err)
	}
	previous, err := db.GetSnapshotN(root, 2)
	if err != nil {
		return fmt.Errorf("loading previous snapshot: %w", err)
	}
	if current == nil || previous == nil {
		return fmt.Errorf("need at least two snapshots to compare")
	}

	diff, err := db.DiffSnapshots(previous.ID, current.ID)
	if err != nil {
		return fmt.Errorf("diffing snapshots: %w", err)
	}

	if historyJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(diff)
	}

	fmt.Println(output.Section("Snapshot Comparison"))
	fmt.Println()
	fmt.Printf(" #%d (%s) vs #%d (%s)\n\n",
		previous.ID, previous.TakenAt.Format("2006-01-02 15:04"),
		current.ID, current.TakenAt.Format("2006-01-02 15:04"))

	tbl := output.NewTable("Category", "Previous", "Current", "Trend")
	for _, d := range diff.Deltas {
		tbl.AddRow(
			d.Category,
			fmt.Sprintf("%d", d.Previous),
			fmt.Sprintf("%d", d.Current),
			output.TrendArrow(d.Delta),
		)
	}
	tbl.Print()

	fmt.Println()
	fmt.Printf(" %s %s %s\n",
		output.StyleLabel.Render("Overall:"),
		output.StyleBold.Render(fmt.Sprintf("%d → %d", previous.TotalScore, current.TotalScore)),
		output.TrendArrow(current.TotalScore-previous.TotalScore))
	fmt.Println()
	return nil
}

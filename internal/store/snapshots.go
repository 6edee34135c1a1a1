package store

import (
	"database/sql"
	"fmt"
	"time"
)

// CreateSnapshot inserts a new snapshot and returns its ID.
func (db *DB) CreateSnapshot(s *Snapshot) (int64, error) {
	takenAt := s.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now().UTC()
	}
	result, err := db.conn.Exec(
		"INSERT INTO snapshots (taken_at, repo_path, version, total_score, max_score) VALUES (?, ?, ?, ?, ?)",
		takenAt.Format(time.RFC3339), s.RepoPath, s.Version, s.TotalScore, s.MaxScore,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetLatestSnapshot returns the most recent snapshot for a repository,
// or nil if none exist.
func (db *DB) GetLatestSnapshot(repoPath string) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, repo_path, version, total_score, max_score FROM snapshots WHERE repo_path = ? ORDER BY id DESC LIMIT 1",
		repoPath,
	)
	return scanSnapshot(row)
}

// GetSnapshot returns a snapshot by ID.
func (db *DB) GetSnapshot(id int64) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, repo_path, version, total_score, max_score FROM snapshots WHERE id = ?",
		id,
	)
	return scanSnapshot(row)
}

// GetSnapshotN returns the Nth most recent snapshot for a repository
// (1 = latest, 2 = previous, etc.).
func (db *DB) GetSnapshotN(repoPath string, n int) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, repo_path, version, total_score, max_score FROM snapshots WHERE repo_path = ? ORDER BY id DESC LIMIT 1 OFFSET ?",
		repoPath, n-1,
	)
	return scanSnapshot(row)
}

// ListSnapshots returns up to limit snapshots for a repository, newest first.
// An empty repoPath lists snapshots across all repositories.
func (db *DB) ListSnapshots(repoPath string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	query := "SELECT id, taken_at, repo_path, version, total_score, max_score FROM snapshots"
	args := []any{}
	if repoPath != "" {
		query += " WHERE repo_path = ?"
		args = append(args, repoPath)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		var takenAt string
		if err := rows.Scan(&s.ID, &takenAt, &s.RepoPath, &s.Version, &s.TotalScore, &s.MaxScore); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.RepoPath, &s.Version, &s.TotalScore, &s.MaxScore)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// InsertCategoryScore inserts a category score for a snapshot.
func (db *DB) InsertCategoryScore(cs *CategoryScore) error {
	_, err := db.conn.Exec(
		"INSERT INTO category_scores (snapshot_id, category, score, max_score) VALUES (?, ?, ?, ?)",
		cs.SnapshotID, cs.Category, cs.Score, cs.MaxScore,
	)
	return err
}

// InsertFinding inserts a finding for a snapshot.
func (db *DB) InsertFinding(f *Finding) error {
	_, err := db.conn.Exec(
		"INSERT INTO findings (snapshot_id, category, kind, message) VALUES (?, ?, ?, ?)",
		f.SnapshotID, f.Category, f.Kind, f.Message,
	)
	return err
}

// GetCategoryScores returns all category scores for a snapshot in insertion order.
func (db *DB) GetCategoryScores(snapshotID int64) ([]CategoryScore, error) {
	rows, err := db.conn.Query(
		"SELECT id, snapshot_id, category, score, max_score FROM category_scores WHERE snapshot_id = ? ORDER BY id",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scores []CategoryScore
	for rows.Next() {
		var cs CategoryScore
		if err := rows.Scan(&cs.ID, &cs.SnapshotID, &cs.Category, &cs.Score, &cs.MaxScore); err != nil {
			return nil, err
		}
		scores = append(scores, cs)
	}
	return scores, rows.Err()
}

// GetFindings returns all findings for a snapshot in insertion order.
func (db *DB) GetFindings(snapshotID int64) ([]Finding, error) {
	rows, err := db.conn.Query(
		"SELECT id, snapshot_id, category, kind, message FROM findings WHERE snapshot_id = ? ORDER BY id",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var findings []Finding
	for rows.Next() {
		var f Finding
		if err := rows.Scan(&f.ID, &f.SnapshotID, &f.Category, &f.Kind, &f.Message); err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}
	return findings, rows.Err()
}

// DiffSnapshots compares two snapshots of the same repository and returns
// per-category deltas. Categories present in only one snapshot are reported
// with a zero on the missing side.
func (db *DB) DiffSnapshots(previousID, currentID int64) (*SnapshotDiff, error) {
	previous, err := db.GetSnapshot(previousID)
	if err != nil {
		return nil, err
	}
	current, err := db.GetSnapshot(currentID)
	if err != nil {
		return nil, err
	}
	if previous == nil || current == nil {
		return nil, fmt.Errorf("snapshot not found")
	}

	prevScores, err := db.GetCategoryScores(previousID)
	if err != nil {
		return nil, err
	}
	currScores, err := db.GetCategoryScores(currentID)
	if err != nil {
		return nil, err
	}

	prevByCat := make(map[string]int, len(prevScores))
	for _, cs := range prevScores {
		prevByCat[cs.Category] = cs.Score
	}

	diff := &SnapshotDiff{Previous: previous, Current: current}
	seen := make(map[string]bool, len(currScores))
	for _, cs := range currScores {
		prev := prevByCat[cs.Category]
		diff.Deltas = append(diff.Deltas, ScoreDelta{
			Category: cs.Category,
			Previous: prev,
			Current:  cs.Score,
			Delta:    cs.Score - prev,
		})
		seen[cs.Category] = true
	}
	for _, cs := range prevScores {
		if !seen[cs.Category] {
			diff.Deltas = append(diff.Deltas, ScoreDelta{
				Category: cs.Category,
				Previous: cs.Score,
				Delta:    -cs.Score,
			})
		}
	}
	return diff, nil
}

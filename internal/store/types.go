// Package store provides SQLite database access for repolens assessment snapshots.
package store

import "time"

// Snapshot represents a point-in-time assessment of a repository.
type Snapshot struct {
	ID         int64     `json:"id"`
	TakenAt    time.Time `json:"taken_at"`
	RepoPath   string    `json:"repo_path"`
	Version    string    `json:"version"`
	TotalScore int       `json:"total_score"`
	MaxScore   int       `json:"max_score"`
}

// CategoryScore represents one assessment category's score within a snapshot.
type CategoryScore struct {
	ID         int64  `json:"id"`
	SnapshotID int64  `json:"snapshot_id"`
	Category   string `json:"category"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"max_score"`
}

// Finding kinds stored alongside category scores.
const (
	FindingStrength       = "strength"
	FindingWeakness       = "weakness"
	FindingRecommendation = "recommendation"
)

// Finding represents a single strength, weakness, or recommendation recorded
// for a snapshot.
type Finding struct {
	ID         int64  `json:"id"`
	SnapshotID int64  `json:"snapshot_id"`
	Category   string `json:"category"`
	Kind       string `json:"kind"`
	Message    string `json:"message"`
}

// ScoreDelta represents the change in a category score between two snapshots.
type ScoreDelta struct {
	Category string `json:"category"`
	Previous int    `json:"previous"`
	Current  int    `json:"current"`
	Delta    int    `json:"delta"`
}

// SnapshotDiff represents the comparison between two snapshots of a repository.
type SnapshotDiff struct {
	Previous *Snapshot    `json:"previous"`
	Current  *Snapshot    `json:"current"`
	Deltas   []ScoreDelta `json:"deltas"`
}

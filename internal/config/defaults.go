// Package config provides configuration loading and defaults for repolens.
package config

import "github.com/blackwell-systems/repolens/internal/analyzer"

// DefaultConfigDir is the default location for repolens configuration.
const DefaultConfigDir = "~/.config/repolens"

// DefaultDBName is the filename for the SQLite snapshot database.
const DefaultDBName = "repolens.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultSampleSize caps how many files each check analyzes per run.
const DefaultSampleSize = analyzer.DefaultSampleSize

// DefaultReadmeMinBytes is the size below which a README is treated as a
// stub rather than real documentation.
const DefaultReadmeMinBytes = 300

// DefaultInstructionModel is the model used for AI instruction grading.
const DefaultInstructionModel = "claude-sonnet-4-20250514"

// DefaultThresholds returns the engine banding boundaries.
func DefaultThresholds() analyzer.Thresholds {
	return analyzer.DefaultThresholds()
}

package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// sourceExtensions is the allow-list of file extensions considered source
// code. It spans C-family, script, and JVM/CLR-family languages.
var sourceExtensions = map[string]bool{
	".go":    true,
	".py":    true,
	".js":    true,
	".jsx":   true,
	".mjs":   true,
	".ts":    true,
	".tsx":   true,
	".java":  true,
	".kt":    true,
	".cs":    true,
	".c":     true,
	".h":     true,
	".cpp":   true,
	".cc":    true,
	".hpp":   true,
	".rb":    true,
	".php":   true,
	".rs":    true,
	".swift": true,
}

// skipDirs is the deny-list of directory names excluded from traversal:
// dependency caches, version-control metadata, and build/bundle output.
var skipDirs = map[string]bool{
	".git":             true,
	".hg":              true,
	".svn":             true,
	"node_modules":     true,
	"bower_components": true,
	"vendor":           true,
	"__pycache__":      true,
	".venv":            true,
	"venv":             true,
	"dist":             true,
	"build":            true,
	"target":           true,
	"out":              true,
	"bin":              true,
	"obj":              true,
	".next":            true,
	".idea":            true,
	"coverage":         true,
	"min":              true,
}

// CollectSourceFiles walks root and returns every file whose extension is on
// the source allow-list, skipping deny-listed directories. Entries that
// cannot be read are skipped silently; an empty result is valid, not an
// error. Order follows directory traversal order, so it is stable across
// runs against an unchanged tree.
func CollectSourceFiles(root string) []SourceFile {
	var files []SourceFile

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: skip and continue.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && (skipDirs[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !sourceExtensions[ext] {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		files = append(files, NewSourceFile(abs))
		return nil
	})

	return files
}

// Sample returns at most n files from the front of the list. Each check
// bounds its own work with this; n <= 0 means no cap.
func Sample(files []SourceFile, n int) []SourceFile {
	if n <= 0 || len(files) <= n {
		return files
	}
	return files[:n]
}

// Package scanner provides source file discovery for repository assessment.
package scanner

import (
	"path/filepath"
	"strings"
)

// SourceFile represents one discovered source file.
type SourceFile struct {
	// Path is the absolute filesystem path to the file.
	Path string `json:"path"`

	// Stem is the filename without its extension, used as the node key
	// in the dependency graph.
	Stem string `json:"stem"`

	// Language is the language tag derived from the file extension.
	Language string `json:"language"`
}

// NewSourceFile builds a SourceFile from a path, deriving stem and language.
func NewSourceFile(path string) SourceFile {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return SourceFile{
		Path:     path,
		Stem:     strings.TrimSuffix(base, ext),
		Language: LanguageForExt(ext),
	}
}

// LanguageForExt maps a file extension (including the dot) to a language tag.
// Unknown extensions map to the empty string.
func LanguageForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".go":
		return "go"
	case ".py":
		return "python"
	case ".js", ".jsx", ".mjs":
		return "javascript"
	case ".ts", ".tsx":
		return "typescript"
	case ".java":
		return "java"
	case ".kt", ".kts":
		return "kotlin"
	case ".cs":
		return "csharp"
	case ".c", ".h":
		return "c"
	case ".cpp", ".cc", ".hpp":
		return "cpp"
	case ".rb":
		return "ruby"
	case ".php":
		return "php"
	case ".rs":
		return "rust"
	case ".swift":
		return "swift"
	default:
		return ""
	}
}

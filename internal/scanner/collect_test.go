package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectSourceFiles_FindsAllowedExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main")
	writeFile(t, root, "script.py", "print('hi')")
	writeFile(t, root, "notes.txt", "not source")
	writeFile(t, root, "README.md", "# readme")

	files := CollectSourceFiles(root)
	if len(files) != 2 {
		t.Fatalf("expected 2 source files, got %d", len(files))
	}
}

func TestCollectSourceFiles_SkipsDenyListedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.js", "let x = 1")
	writeFile(t, root, filepath.Join("node_modules", "dep.js"), "module.exports = {}")
	writeFile(t, root, filepath.Join("vendor", "lib.go"), "package lib")
	writeFile(t, root, filepath.Join("build", "out.c"), "int main() {}")

	files := CollectSourceFiles(root)
	if len(files) != 1 {
		t.Fatalf("expected 1 source file, got %d", len(files))
	}
	if files[0].Stem != "app" {
		t.Errorf("expected stem 'app', got %q", files[0].Stem)
	}
}

func TestCollectSourceFiles_SkipsHiddenDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, filepath.Join(".cache", "x.go"), "package x")

	files := CollectSourceFiles(root)
	if len(files) != 0 {
		t.Errorf("expected 0 files, got %d", len(files))
	}
}

func TestCollectSourceFiles_EmptyRoot(t *testing.T) {
	files := CollectSourceFiles(t.TempDir())
	if len(files) != 0 {
		t.Errorf("expected 0 files for empty dir, got %d", len(files))
	}
}

func TestCollectSourceFiles_NonExistentRoot(t *testing.T) {
	files := CollectSourceFiles("/tmp/does-not-exist-repolens-test")
	if len(files) != 0 {
		t.Errorf("expected 0 files for missing dir, got %d", len(files))
	}
}

func TestNewSourceFile_DerivesStemAndLanguage(t *testing.T) {
	tests := []struct {
		path string
		stem string
		lang string
	}{
		{"/repo/src/main.go", "main", "go"},
		{"/repo/utils.py", "utils", "python"},
		{"/repo/App.tsx", "App", "typescript"},
		{"/repo/Service.java", "Service", "java"},
		{"/repo/widget.cpp", "widget", "cpp"},
		{"/repo/unknown.xyz", "unknown", ""},
	}

	for _, tc := range tests {
		sf := NewSourceFile(tc.path)
		if sf.Stem != tc.stem {
			t.Errorf("%s: expected stem %q, got %q", tc.path, tc.stem, sf.Stem)
		}
		if sf.Language != tc.lang {
			t.Errorf("%s: expected language %q, got %q", tc.path, tc.lang, sf.Language)
		}
	}
}

func TestSample_CapsList(t *testing.T) {
	files := []SourceFile{{Stem: "a"}, {Stem: "b"}, {Stem: "c"}}

	if got := Sample(files, 2); len(got) != 2 {
		t.Errorf("expected 2, got %d", len(got))
	}
	if got := Sample(files, 10); len(got) != 3 {
		t.Errorf("expected 3, got %d", len(got))
	}
	if got := Sample(files, 0); len(got) != 3 {
		t.Errorf("expected full list for n=0, got %d", len(got))
	}
}

package analyzer

import (
	"reflect"
	"testing"
)

func TestImportTargets_GoSingleAndBlock(t *testing.T) {
	src := `package main

import "fmt"

import (
	"os"
	stdlog "log"
)
`
	got := ImportTargets(src, "go")
	want := []string{"fmt", "os", "log"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestImportTargets_PythonForms(t *testing.T) {
	src := `import os
from collections import defaultdict
import utils.strings
`
	got := ImportTargets(src, "python")
	want := []string{"os", "collections", "utils.strings"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestImportTargets_JavaScriptForms(t *testing.T) {
	src := `import React from 'react';
import './styles.css';
const fs = require('fs');
`
	got := ImportTargets(src, "javascript")
	want := []string{"react", "./styles.css", "fs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestImportTargets_CIncludes(t *testing.T) {
	src := `#include <stdio.h>
#include "local/util.h"
`
	got := ImportTargets(src, "c")
	want := []string{"stdio.h", "local/util.h"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestImportTargets_CSharpUsing(t *testing.T) {
	src := "using System;\nusing System.Collections.Generic;\n"
	got := ImportTargets(src, "csharp")
	want := []string{"System", "System.Collections.Generic"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestImportTargets_SourceOrderAcrossPatterns(t *testing.T) {
	// require appears before the import-from; order must follow the source,
	// not the pattern table.
	src := `const a = require('alpha');
import b from 'beta';
`
	got := ImportTargets(src, "javascript")
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCountImports_ZeroForNoImports(t *testing.T) {
	if n := CountImports("package main\n\nfunc main() {}\n", "go"); n != 0 {
		t.Errorf("expected 0 imports, got %d", n)
	}
}

func TestCountImports_UnknownLanguage(t *testing.T) {
	if n := CountImports("import whatever", "cobol"); n != 0 {
		t.Errorf("expected 0 for unconfigured language, got %d", n)
	}
}

package analyzer

import (
	"strings"
	"testing"
)

func TestExtractUnits_GoFunction(t *testing.T) {
	src := `package main

import "fmt"

func Greet(name string) string {
	if name == "" {
		return "hello"
	}
	return fmt.Sprintf("hello, %s", name)
}
`
	units := ExtractUnits(src, "go")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if !strings.HasPrefix(units[0], "func Greet(") {
		t.Errorf("unit should start at the signature, got %q", units[0][:20])
	}
	if !strings.HasSuffix(units[0], "}") {
		t.Errorf("unit should end at the matching closing brace")
	}
}

func TestExtractUnits_GoMethod(t *testing.T) {
	src := `package main

func (s *Server) Handle(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(200)
}
`
	units := ExtractUnits(src, "go")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
}

func TestExtractUnits_MultipleInOrder(t *testing.T) {
	src := `package main

func First() {
}

func Second() {
}
`
	units := ExtractUnits(src, "go")
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	if !strings.HasPrefix(units[0], "func First") || !strings.HasPrefix(units[1], "func Second") {
		t.Error("units should appear in source order")
	}
}

func TestExtractUnits_UnbalancedBracesDiscarded(t *testing.T) {
	src := `func Broken() {
	if true {
		// file truncated before braces balance
`
	units := ExtractUnits(src, "go")
	if len(units) != 0 {
		t.Errorf("expected partial span to be discarded, got %d units", len(units))
	}
}

func TestExtractUnits_NestedFunctionsOverlap(t *testing.T) {
	src := `function outer() {
  const inner = async () => {
    return 1;
  }
  return inner;
}
`
	units := ExtractUnits(src, "javascript")
	if len(units) != 2 {
		t.Fatalf("expected 2 overlapping units (outer and inner), got %d", len(units))
	}
	if !strings.Contains(units[0], "inner") {
		t.Error("outer unit should contain the nested function's text")
	}
}

func TestExtractUnits_PythonIndentBlock(t *testing.T) {
	src := "def compute(x):\n" +
		"    if x > 0:\n" +
		"        return x\n" +
		"    return -x\n" +
		"\n" +
		"TOP_LEVEL = 1\n"

	units := ExtractUnits(src, "python")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if strings.Contains(units[0], "TOP_LEVEL") {
		t.Error("unit should end before the next top-level statement")
	}
	if !strings.Contains(units[0], "return -x") {
		t.Error("unit should include the whole indented block")
	}
}

func TestExtractUnits_PythonMethodInClass(t *testing.T) {
	src := "class Svc:\n" +
		"    def run(self):\n" +
		"        pass\n" +
		"\n" +
		"    def stop(self):\n" +
		"        pass\n"

	units := ExtractUnits(src, "python")
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
}

func TestExtractUnits_NoMatchesSilent(t *testing.T) {
	if units := ExtractUnits("just some prose\n", "go"); len(units) != 0 {
		t.Errorf("expected 0 units, got %d", len(units))
	}
}

func TestExtractUnits_UnknownLanguage(t *testing.T) {
	if units := ExtractUnits("func X() {}", "cobol"); units != nil {
		t.Errorf("expected nil for unconfigured language, got %v", units)
	}
}

func TestExtractUnits_RubyHasNoFunctionPattern(t *testing.T) {
	if units := ExtractUnits("def greet\n  puts 'hi'\nend\n", "ruby"); len(units) != 0 {
		t.Errorf("expected 0 units for ruby, got %d", len(units))
	}
}

func TestExtractUnits_RustAndSwiftSignatures(t *testing.T) {
	rust := "pub async fn fetch(url: &str) -> Result<String, Error> {\n    Ok(String::new())\n}\n"
	if units := ExtractUnits(rust, "rust"); len(units) != 1 {
		t.Errorf("rust: expected 1 unit, got %d", len(units))
	}

	swift := "public override func viewDidLoad() {\n    super.viewDidLoad()\n}\n"
	if units := ExtractUnits(swift, "swift"); len(units) != 1 {
		t.Errorf("swift: expected 1 unit, got %d", len(units))
	}
}

func TestExtractUnits_JavaMethod(t *testing.T) {
	src := `public class Svc {
    public String render(int n) {
        return String.valueOf(n);
    }
}
`
	units := ExtractUnits(src, "java")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if !strings.Contains(units[0], "String.valueOf") {
		t.Error("unit should span the method body")
	}
}

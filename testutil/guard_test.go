package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestInternalImportForbiddenPredicate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"casetrack/internal/core", true},
		{"casetrack/pkg/domain", false},
	}
	for _, c := range cases {
		if got := InternalImportForbidden(c.in); got != c.want {
			t.Fatalf("InternalImportForbidden(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestIOImportForbiddenPredicate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"os", true},
		{"net/http", true},
		{"database/sql", true},
		{"strings", false},
		{"regexp", false},
	}
	for _, c := range cases {
		if got := IOImportForbidden(c.in); got != c.want {
			t.Fatalf("IOImportForbidden(%q)=%v want %v", c.in, got, c.want)
		}
	}
	combined := AnyForbidden(InternalImportForbidden, IOImportForbidden)
	if !combined("os") || !combined("x/internal/y") || combined("sort") {
		t.Fatalf("AnyForbidden did not combine predicates")
	}
}

func TestAssertNoDirectImportsIgnoresTestFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, src string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("x.go", "package tmp\nimport \"fmt\"\nfunc X(){fmt.Println(1)}")
	write("x_test.go", "package tmp\nimport \"os\"\nvar _ = os.Args")
	if err := os.Mkdir(filepath.Join(dir, "sub.go"), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	AssertNoDirectImports(t, dir, IOImportForbidden, "test files and directories are skipped")
}

type captureFatal struct{ msg string }

func (c *captureFatal) Fatalf(format string, args ...any) { c.msg = fmt.Sprintf(format, args...) }

func TestDirectImportViolationsReported(t *testing.T) {
	dir := t.TempDir()
	src := "package tmp\nimport \"os\"\nvar _ = os.Args"
	if err := os.WriteFile(filepath.Join(dir, "io.go"), []byte(src), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	viols, err := directImportViolations(dir, IOImportForbidden)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(viols) != 1 || viols[0] != "os (in io.go)" {
		t.Fatalf("unexpected violations: %v", viols)
	}
	var cf captureFatal
	failIfViolations(&cf, "no io", viols)
	if cf.msg == "" {
		t.Fatalf("expected failure message")
	}
}

package fn

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestCompilePolynomial(t *testing.T) {
	f, err := Compile("2*x + 1")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := f(3); got != 7 {
		t.Fatalf("f(3) = %v, want 7", got)
	}
}

func TestCompileUsesMath(t *testing.T) {
	f, err := Compile("math.Sin(x)")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := f(0); got != 0 {
		t.Fatalf("sin(0) = %v, want 0", got)
	}
	if got := f(math.Pi / 2); math.Abs(got-1) > 1e-12 {
		t.Fatalf("sin(pi/2) = %v, want 1", got)
	}
}

func TestCompileMixedExpression(t *testing.T) {
	f, err := Compile("math.Sin(x) + 2*x + 1")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := f(0); got != 1 {
		t.Fatalf("f(0) = %v, want 1", got)
	}
}

func TestCompileErrors(t *testing.T) {
	for _, expr := range []string{"", "   ", "x +* 2"} {
		if _, err := Compile(expr); err == nil {
			t.Fatalf("Compile(%q) expected error", expr)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubic.go")
	src := `package main

func F(x float64) float64 {
	return x*x*x - x
}
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := f(2); got != 6 {
		t.Fatalf("F(2) = %v, want 6", got)
	}
}

func TestLoadFileMissingF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nofunc.go")
	if err := os.WriteFile(path, []byte("package main\n\nvar G = 1\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("file without F should fail")
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.go")
	if err := os.WriteFile(path, []byte("  \n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("empty file should fail")
	}
}

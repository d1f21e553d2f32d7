package exercises

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"calcpad/internal/check"
	"calcpad/internal/config"
	"calcpad/internal/exercise"
	"calcpad/internal/logbook"
	"calcpad/internal/report"
)

func builtins(t *testing.T) *exercise.Registry {
	t.Helper()
	reg := exercise.NewRegistry()
	RegisterBuiltins(reg)
	return reg
}

func testContext(t *testing.T) *exercise.Context {
	t.Helper()
	dir := t.TempDir()
	if err := config.InitCalcpadDir(dir); err != nil {
		t.Fatalf("init project: %v", err)
	}
	cfg, err := config.NewConfig(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "session.log"))
	if err != nil {
		t.Fatalf("open logbook: %v", err)
	}
	return exercise.NewContext(cfg, lb)
}

func TestRegisterBuiltins(t *testing.T) {
	reg := builtins(t)
	want := []string{
		"cross-product",
		"derivative",
		"integral",
		"interpolation",
		"least-squares",
		"plot-fn",
		"row-reduce",
		"slopes",
	}
	if got := reg.IDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("IDs = %v, want %v", got, want)
	}
}

func TestEveryBuiltinCarriesExamples(t *testing.T) {
	reg := builtins(t)
	for _, id := range reg.IDs() {
		ex, err := reg.Resolve(id, exercise.Config{})
		if err != nil {
			t.Fatalf("resolve %s: %v", id, err)
		}
		provider, ok := ex.(check.Provider)
		if !ok {
			t.Fatalf("%s does not carry examples", id)
		}
		examples := provider.Examples()
		if len(examples) == 0 {
			t.Fatalf("%s has no examples", id)
		}
		if failures := check.RunAll(examples); len(failures) != 0 {
			t.Fatalf("%s examples failed: %v", id, failures)
		}
	}
}

func TestBuiltinsAskForMissingInput(t *testing.T) {
	reg := builtins(t)
	ctx := testContext(t)
	// These builtins cannot run without parameters and must say so
	// instead of failing.
	for _, id := range []string{
		"cross-product", "slopes", "least-squares", "interpolation",
		"row-reduce", "plot-fn", "derivative", "integral",
	} {
		ex, err := reg.Resolve(id, exercise.Config{})
		if err != nil {
			t.Fatalf("resolve %s: %v", id, err)
		}
		result, err := ex.Run(ctx)
		if err != nil {
			t.Fatalf("%s run: %v", id, err)
		}
		if result.Status != exercise.StatusNeedsInput {
			t.Fatalf("%s status = %s, want %s", id, result.Status, exercise.StatusNeedsInput)
		}
		if result.Message == "" {
			t.Fatalf("%s needs-input result carries no guidance", id)
		}
	}
}

func TestCrossProductEndToEnd(t *testing.T) {
	reg := builtins(t)
	ctx := testContext(t)
	ex, err := reg.Resolve("cross-product", exercise.Config{"u": "1,2,-2", "v": "3,0,1"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	result, err := ex.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Status != exercise.StatusCompleted {
		t.Fatalf("status = %s: %s", result.Status, result.Message)
	}
	meta, body, err := report.Read(result.ReportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if meta.ExerciseID != "cross-product" {
		t.Fatalf("report exercise id = %s", meta.ExerciseID)
	}
	if !strings.Contains(string(body), "(2, -7, -6)") {
		t.Fatalf("report missing result:\n%s", body)
	}
}

func TestSlopesEndToEnd(t *testing.T) {
	reg := builtins(t)
	ctx := testContext(t)
	data := "11\t68\n11.25\t85\n11.5\t101\n11.75\t117\n12.75\t185\n"
	if err := os.WriteFile(filepath.Join(ctx.Config.DataDir(), "walk.tsv"), []byte(data), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}
	ex, err := reg.Resolve("slopes", exercise.Config{"data": "walk.tsv"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	result, err := ex.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Status != exercise.StatusCompleted {
		t.Fatalf("status = %s: %s", result.Status, result.Message)
	}
	_, body, err := report.Read(result.ReportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(body), "| (11, 68) to (11.25, 85) | 68 |") {
		t.Fatalf("report missing slope row:\n%s", body)
	}
}

func TestRowReduceSolveEndToEnd(t *testing.T) {
	reg := builtins(t)
	ctx := testContext(t)
	ex, err := reg.Resolve("row-reduce", exercise.Config{"matrix": "1,1,3;1,-1,1", "solve": "true"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	result, err := ex.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Status != exercise.StatusCompleted {
		t.Fatalf("status = %s: %s", result.Status, result.Message)
	}
	_, body, err := report.Read(result.ReportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(body), "x1 = 2") || !strings.Contains(string(body), "x2 = 1") {
		t.Fatalf("report missing solution:\n%s", body)
	}
}

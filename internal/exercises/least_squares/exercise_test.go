package least_squares

import (
	"path/filepath"
	"strings"
	"testing"

	"calcpad/internal/config"
	"calcpad/internal/exercise"
	"calcpad/internal/logbook"
	"calcpad/internal/points"
)

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

func writeWorksheetData(t *testing.T, ctx *exercise.Context) {
	t.Helper()
	path := filepath.Join(ctx.Config.DataDir(), "worksheet.tsv")
	if err := points.WriteFile(path, examplePoints); err != nil {
		t.Fatalf("write data: %v", err)
	}
}

func TestRunBothMethodsAgree(t *testing.T) {
	ctx := testContext(t)
	writeWorksheetData(t, ctx)

	direct, err := New(exercise.Config{"data": "worksheet.tsv"}).Run(ctx)
	if err != nil {
		t.Fatalf("direct run: %v", err)
	}
	if direct.Status != exercise.StatusCompleted {
		t.Fatalf("direct status = %s: %s", direct.Status, direct.Message)
	}

	normal, err := New(exercise.Config{"data": "worksheet.tsv", "method": "normal"}).Run(ctx)
	if err != nil {
		t.Fatalf("normal run: %v", err)
	}
	if normal.Status != exercise.StatusCompleted {
		t.Fatalf("normal status = %s: %s", normal.Status, normal.Message)
	}
	if direct.Message != normal.Message {
		t.Fatalf("fits disagree: %q vs %q", direct.Message, normal.Message)
	}
}

func TestRunRejectsUnknownMethod(t *testing.T) {
	ctx := testContext(t)
	writeWorksheetData(t, ctx)
	result, err := New(exercise.Config{"data": "worksheet.tsv", "method": "magic"}).Run(ctx)
	if err == nil {
		t.Fatalf("expected error, got status %s", result.Status)
	}
	if !strings.Contains(err.Error(), "unknown method") {
		t.Fatalf("err = %v", err)
	}
}

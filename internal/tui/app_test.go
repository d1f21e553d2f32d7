package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"calcpad/internal/config"
	"calcpad/internal/exercise"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	projectDir := t.TempDir()
	if err := config.InitCalcpadDir(projectDir); err != nil {
		t.Fatalf("init calcpad dir: %v", err)
	}
	app, err := NewApp(projectDir)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app
}

func pressEnter(t *testing.T, app *App) *App {
	t.Helper()
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, ok := model.(*App)
	if !ok {
		t.Fatalf("update returned %T", model)
	}
	return next
}

func TestNewAppWarnsWhenLogbookUnavailable(t *testing.T) {
	projectDir := t.TempDir()
	if err := config.InitCalcpadDir(projectDir); err != nil {
		t.Fatalf("init calcpad dir: %v", err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	// A plain file where the logs directory belongs keeps the log file
	// from opening.
	if err := os.RemoveAll(cfg.LogsDir()); err != nil {
		t.Fatalf("remove logs dir: %v", err)
	}
	if err := os.WriteFile(cfg.LogsDir(), []byte("blocked"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	app, err := NewApp(projectDir)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if !strings.Contains(app.statusMsg, "logbook unavailable") {
		t.Fatalf("statusMsg = %q, want logbook warning", app.statusMsg)
	}
	if !strings.Contains(app.View(), "logbook unavailable") {
		t.Fatal("warning should be visible in the view")
	}
}

func TestMainMenuListsEveryAction(t *testing.T) {
	app := newTestApp(t)
	items := app.mainMenu.Items()
	if len(items) != 5 {
		t.Fatalf("got %d menu items, want 5", len(items))
	}
	first, ok := items[0].(menuItem)
	if !ok || first.title != "Work an Exercise" {
		t.Fatalf("first item = %+v", items[0])
	}
}

func TestExerciseMenuCarriesBuiltins(t *testing.T) {
	app := newTestApp(t)
	items := app.exerciseMenu.Items()
	if len(items) != len(app.registry.IDs()) {
		t.Fatalf("menu has %d items, registry has %d", len(items), len(app.registry.IDs()))
	}
	found := false
	for _, item := range items {
		ex, ok := item.(exerciseItem)
		if !ok {
			t.Fatalf("menu item is %T", item)
		}
		if ex.id == "cross-product" {
			found = true
			if ex.name != "Cross Product" {
				t.Fatalf("cross-product item name = %q", ex.name)
			}
		}
	}
	if !found {
		t.Fatalf("cross-product missing from exercise menu")
	}
}

func TestParseParams(t *testing.T) {
	params, err := parseParams("u=1,2,-2 v=3,0,1")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got, _ := params.String("u", ""); got != "1,2,-2" {
		t.Fatalf("u = %q", got)
	}
	if got, _ := params.String("v", ""); got != "3,0,1" {
		t.Fatalf("v = %q", got)
	}
	if _, err := parseParams("dangling"); err == nil {
		t.Fatalf("expected error for bare token")
	}
	empty, err := parseParams("   ")
	if err != nil || len(empty) != 0 {
		t.Fatalf("blank input: %v, %v", empty, err)
	}
}

func TestRunExerciseThroughParamEntry(t *testing.T) {
	app := newTestApp(t)
	app.pendingExercise = "cross-product"
	app.paramInput.SetValue("u=1,2,-2 v=3,0,1")
	app.state = stateParamEntry
	app = pressEnter(t, app)
	if app.state != stateResult {
		t.Fatalf("state = %d, want result screen", app.state)
	}
	if !strings.Contains(app.resultBody, "(2, -7, -6)") {
		t.Fatalf("result missing cross product:\n%s", app.resultBody)
	}
	if !strings.Contains(app.resultBody, "Report: ") {
		t.Fatalf("result missing report path:\n%s", app.resultBody)
	}
}

func TestRunExerciseSurfacesNeedsInput(t *testing.T) {
	app := newTestApp(t)
	body := app.runExercise("cross-product", exercise.Config{})
	if !strings.Contains(body, string(exercise.StatusNeedsInput)) {
		t.Fatalf("expected needs-input status:\n%s", body)
	}
}

func TestEliminatorSession(t *testing.T) {
	app := newTestApp(t)
	elim := newEliminator(app.runCtx)

	if done, _ := elim.Handle("1,1,3;1,-1,1"); done {
		t.Fatalf("loading the matrix must not finish the session")
	}
	if !elim.HasMatrix() {
		t.Fatalf("matrix not loaded")
	}
	if _, msg := elim.Handle("combine 1 2 -1"); strings.Contains(msg, "usage") {
		t.Fatalf("combine rejected: %s", msg)
	}
	if elim.current[1][0] != 0 {
		t.Fatalf("combine left %v in row 2", elim.current[1])
	}
	if _, msg := elim.Handle("scale 2 -1/2"); msg == "" {
		t.Fatalf("scale produced no feedback")
	}
	if elim.current[1][1] != 1 {
		t.Fatalf("scale left %v in row 2", elim.current[1])
	}

	elim.Handle("undo")
	if elim.current[1][1] != -2 {
		t.Fatalf("undo did not restore row 2: %v", elim.current[1])
	}

	done, msg := elim.Handle("done")
	if !done {
		t.Fatalf("done must finish the session")
	}
	if !strings.Contains(msg, "Report: ") {
		t.Fatalf("final message missing report path: %s", msg)
	}
}

func TestEliminatorRejectsBadCommands(t *testing.T) {
	app := newTestApp(t)
	elim := newEliminator(app.runCtx)
	elim.Handle("1,2;3,4")

	if _, msg := elim.Handle("swap 1 9"); !strings.Contains(msg, "row") {
		t.Fatalf("out of range swap accepted: %s", msg)
	}
	if _, msg := elim.Handle("scale 1 0"); msg == "" {
		t.Fatalf("zero scale accepted")
	}
	if _, msg := elim.Handle("teleport"); !strings.Contains(msg, "Unknown command") {
		t.Fatalf("unknown command accepted: %s", msg)
	}
	// Failed operations must not leave junk on the undo stack.
	if _, msg := elim.Handle("undo"); msg != "Nothing to undo." {
		t.Fatalf("undo after failures: %s", msg)
	}
}

// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for calcpad.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calcpad/internal/check"
	"calcpad/internal/config"
	"calcpad/internal/exercise"
	"calcpad/internal/exercises"
	"calcpad/internal/logbook"
	"calcpad/internal/worksheet"
)

// appState represents which "screen" we're on
type appState int

const (
	stateMainMenu        appState = iota
	stateExerciseSelect           // Exercise picker
	stateParamEntry               // Parameter entry for the chosen exercise
	stateWorksheetSelect          // Worksheet picker
	stateEliminator               // Step-by-step row reduction workbench
	stateResult                   // Text result of the last action
	stateLogbook                  // Recent logbook entries
)

const logbookTailLines = 15

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithRegistry overrides the exercise registry (tests inject stubs here).
func WithRegistry(reg *exercise.Registry) AppOption {
	return func(a *App) {
		if reg != nil {
			a.registry = reg
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state    appState
	config   *config.Config
	logbook  *logbook.Logbook
	registry *exercise.Registry
	runCtx   *exercise.Context

	// UI components
	mainMenu      list.Model
	exerciseMenu  list.Model
	worksheetMenu list.Model
	paramInput    textinput.Model
	elim          *eliminator

	pendingExercise string
	resultTitle     string
	resultBody      string
	statusMsg       string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// menuItem implements list.Item interface for our menu items
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

type exerciseItem struct {
	id   string
	name string
	desc string
}

func (i exerciseItem) Title() string       { return i.name }
func (i exerciseItem) Description() string { return i.desc }
func (i exerciseItem) FilterValue() string { return i.id }

type worksheetItem struct {
	sheet worksheet.Worksheet
}

func (i worksheetItem) Title() string { return i.sheet.Name }
func (i worksheetItem) Description() string {
	if i.sheet.Description != "" {
		return i.sheet.Description
	}
	return fmt.Sprintf("%d exercises", len(i.sheet.Exercises))
}
func (i worksheetItem) FilterValue() string { return i.sheet.ID }

// NewApp creates a new App instance
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	lb, lbErr := logbook.New(filepath.Join(cfg.LogsDir(), "session.log"))
	if lbErr == nil {
		lb.Info("Session opened")
	}

	mainMenu := list.New(buildMainMenu(), list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "CALCPAD"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)

	exerciseMenu := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	exerciseMenu.Title = "Select Exercise"
	exerciseMenu.SetShowStatusBar(false)
	exerciseMenu.SetFilteringEnabled(false)

	worksheetMenu := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	worksheetMenu.Title = "Select Worksheet"
	worksheetMenu.SetShowStatusBar(false)
	worksheetMenu.SetFilteringEnabled(false)

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 256

	app := &App{
		state:         stateMainMenu,
		config:        cfg,
		logbook:       lb,
		mainMenu:      mainMenu,
		exerciseMenu:  exerciseMenu,
		worksheetMenu: worksheetMenu,
		paramInput:    input,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	if app.registry == nil {
		app.registry = exercise.NewRegistry()
		exercises.RegisterBuiltins(app.registry)
	}
	app.runCtx = exercise.NewContext(cfg, lb).WithOrigin("tui")
	if lbErr != nil {
		app.statusMsg = fmt.Sprintf("logbook unavailable, session will not be recorded: %v", lbErr)
	}
	app.refreshExerciseMenu()
	return app, nil
}

// buildMainMenu creates the main menu items
func buildMainMenu() []list.Item {
	return []list.Item{
		menuItem{title: "Work an Exercise", desc: "Pick a numeric exercise and run it"},
		menuItem{title: "Run a Worksheet", desc: "Work through a saved problem set"},
		menuItem{title: "Row Reduction Workbench", desc: "Reduce a matrix one row operation at a time"},
		menuItem{title: "View Logbook", desc: "Recent session entries"},
		menuItem{title: "Exit", desc: "Quit calcpad"},
	}
}

func (a *App) refreshExerciseMenu() {
	ids := a.registry.IDs()
	items := make([]list.Item, 0, len(ids))
	for _, id := range ids {
		item := exerciseItem{id: id, name: id}
		if ex, err := a.registry.Resolve(id, exercise.Config{}); err == nil {
			info := ex.Info()
			item.name = info.Name
			item.desc = info.Description
		}
		items = append(items, item)
	}
	a.exerciseMenu.SetItems(items)
}

func (a *App) refreshWorksheetMenu() error {
	sheets, err := worksheet.LoadDir(a.config.WorksheetsDir())
	if err != nil {
		return err
	}
	items := make([]list.Item, len(sheets))
	for i, sheet := range sheets {
		items[i] = worksheetItem{sheet: sheet}
	}
	a.worksheetMenu.SetItems(items)
	return nil
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-8))
		a.exerciseMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-8))
		a.worksheetMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-8))
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == stateMainMenu {
				return a, tea.Quit
			}
			// Text entry screens need the letter itself.
			if a.state != stateParamEntry && a.state != stateEliminator {
				return a.returnToMainMenu()
			}
		case "esc":
			if a.state != stateMainMenu {
				return a.returnToMainMenu()
			}
		case "enter":
			switch a.state {
			case stateMainMenu:
				return a.handleMainMenuSelection()
			case stateExerciseSelect:
				return a.beginParamEntry()
			case stateParamEntry:
				return a.runPendingExercise()
			case stateWorksheetSelect:
				return a.runSelectedWorksheet()
			case stateEliminator:
				return a.handleEliminatorCommand()
			case stateResult, stateLogbook:
				return a.returnToMainMenu()
			}
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case stateMainMenu:
		a.mainMenu, cmd = a.mainMenu.Update(msg)
	case stateExerciseSelect:
		a.exerciseMenu, cmd = a.exerciseMenu.Update(msg)
	case stateWorksheetSelect:
		a.worksheetMenu, cmd = a.worksheetMenu.Update(msg)
	case stateParamEntry, stateEliminator:
		a.paramInput, cmd = a.paramInput.Update(msg)
	}
	return a, cmd
}

// handleMainMenuSelection processes menu item selection
func (a *App) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}

	switch item.title {
	case "Work an Exercise":
		a.state = stateExerciseSelect
		a.statusMsg = "Pick an exercise, esc to go back"
		return a, nil

	case "Run a Worksheet":
		if err := a.refreshWorksheetMenu(); err != nil {
			a.statusMsg = fmt.Sprintf("Worksheets unavailable: %v", err)
			return a, nil
		}
		if len(a.worksheetMenu.Items()) == 0 {
			a.statusMsg = fmt.Sprintf("No worksheets in %s", a.config.WorksheetsDir())
			return a, nil
		}
		a.state = stateWorksheetSelect
		a.statusMsg = "Pick a worksheet, esc to go back"
		return a, nil

	case "Row Reduction Workbench":
		a.elim = newEliminator(a.runCtx)
		a.paramInput.SetValue("")
		a.paramInput.Placeholder = "matrix rows, e.g. 1,1,3;1,-1,1"
		a.paramInput.Focus()
		a.state = stateEliminator
		a.statusMsg = ""
		return a, textinput.Blink

	case "View Logbook":
		lines, total := a.logbook.Tail(logbookTailLines)
		if total == 0 {
			a.resultBody = "Logbook is empty."
		} else {
			a.resultBody = fmt.Sprintf("%s\n\n(%d of %d entries)", strings.Join(lines, "\n"), len(lines), total)
		}
		a.resultTitle = "Logbook"
		a.state = stateLogbook
		return a, nil

	case "Exit":
		a.logInfo("Session closed")
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) beginParamEntry() (tea.Model, tea.Cmd) {
	item, ok := a.exerciseMenu.SelectedItem().(exerciseItem)
	if !ok {
		return a, nil
	}
	a.pendingExercise = item.id
	a.paramInput.SetValue("")
	a.paramInput.Placeholder = "key=value pairs, e.g. u=1,2,-2 v=3,0,1 (empty runs defaults)"
	a.paramInput.Focus()
	a.state = stateParamEntry
	a.statusMsg = fmt.Sprintf("Parameters for %s", item.id)
	return a, textinput.Blink
}

func (a *App) runPendingExercise() (tea.Model, tea.Cmd) {
	params, err := parseParams(a.paramInput.Value())
	if err != nil {
		a.statusMsg = err.Error()
		return a, nil
	}
	a.resultTitle = a.pendingExercise
	a.resultBody = a.runExercise(a.pendingExercise, params)
	a.state = stateResult
	return a, nil
}

// runExercise resolves, runs, and summarizes one exercise.
func (a *App) runExercise(id string, params exercise.Config) string {
	ex, err := a.registry.Resolve(id, params)
	if err != nil {
		a.logError("%s: %v", id, err)
		return fmt.Sprintf("Could not prepare %s: %v", id, err)
	}
	result, err := ex.Run(a.runCtx)
	if err != nil {
		a.logError("%s: %v", id, err)
		return fmt.Sprintf("%s failed: %v", id, err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s\n", result.Status)
	if result.Message != "" {
		fmt.Fprintf(&b, "%s\n", result.Message)
	}
	if result.ReportPath != "" {
		fmt.Fprintf(&b, "Report: %s\n", result.ReportPath)
	}
	if provider, ok := ex.(check.Provider); ok && result.Status == exercise.StatusCompleted {
		if failures := check.RunAll(provider.Examples()); len(failures) > 0 {
			b.WriteString("\nSelf-check failures:\n")
			for _, f := range failures {
				fmt.Fprintf(&b, "  %s\n", f)
			}
		} else {
			b.WriteString("Self-check: ok\n")
		}
	}
	return b.String()
}

func (a *App) runSelectedWorksheet() (tea.Model, tea.Cmd) {
	item, ok := a.worksheetMenu.SelectedItem().(worksheetItem)
	if !ok {
		return a, nil
	}
	sheet := item.sheet
	a.logInfo("Worksheet %s started (%d exercises)", sheet.ID, len(sheet.Exercises))
	var b strings.Builder
	for _, ref := range sheet.Exercises {
		fmt.Fprintf(&b, "== %s ==\n", ref.InstanceID())
		b.WriteString(a.runExercise(ref.ExerciseID, ref.Config))
		b.WriteString("\n")
	}
	a.logInfo("Worksheet %s finished", sheet.ID)
	a.resultTitle = sheet.Name
	a.resultBody = b.String()
	a.state = stateResult
	return a, nil
}

func (a *App) handleEliminatorCommand() (tea.Model, tea.Cmd) {
	line := a.paramInput.Value()
	a.paramInput.SetValue("")
	done, msg := a.elim.Handle(line)
	a.statusMsg = msg
	if done {
		a.resultTitle = "Row Reduction Workbench"
		a.resultBody = msg
		a.elim = nil
		a.state = stateResult
		return a, nil
	}
	if a.elim.HasMatrix() {
		a.paramInput.Placeholder = "swap i j | scale i c | combine i j c | reduce | undo | reset | done"
	}
	return a, nil
}

// returnToMainMenu transitions back to the main menu
func (a *App) returnToMainMenu() (tea.Model, tea.Cmd) {
	a.state = stateMainMenu
	a.pendingExercise = ""
	a.elim = nil
	a.paramInput.Blur()
	a.statusMsg = ""
	return a, nil
}

// parseParams reads space-separated key=value pairs into an exercise config.
func parseParams(s string) (exercise.Config, error) {
	params := exercise.Config{}
	for _, field := range strings.Fields(s) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("parameter %q is not key=value", field)
		}
		params[key] = value
	}
	return params, nil
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			MarginBottom(1)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// View renders the current state to a string.
func (a *App) View() string {
	header := headerStyle.Render("CALCPAD")
	var content string
	switch a.state {
	case stateMainMenu:
		content = a.mainMenu.View()
	case stateExerciseSelect:
		content = a.exerciseMenu.View()
	case stateWorksheetSelect:
		content = a.worksheetMenu.View()
	case stateParamEntry:
		content = fmt.Sprintf("Exercise: %s\n\n%s\n\n%s",
			a.pendingExercise,
			a.paramInput.View(),
			statusStyle.Render("enter to run, esc to go back"))
	case stateEliminator:
		content = fmt.Sprintf("%s\n%s\n\n%s",
			a.elim.View(),
			a.paramInput.View(),
			statusStyle.Render("done to finish, esc to abandon"))
	case stateResult, stateLogbook:
		content = fmt.Sprintf("%s\n\n%s",
			resultStyle.Render(fmt.Sprintf("%s\n\n%s", a.resultTitle, strings.TrimRight(a.resultBody, "\n"))),
			statusStyle.Render("enter or esc to go back"))
	}

	parts := []string{header, content}
	if a.statusMsg != "" {
		parts = append(parts, statusStyle.Render(a.statusMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"calcpad/internal/check"
	"calcpad/internal/config"
	"calcpad/internal/exercise"
	"calcpad/internal/exercises"
	"calcpad/internal/logbook"
	"calcpad/internal/worksheet"
)

func main() {
	exerciseID := flag.String("exercise", "", "exercise identifier to run (e.g. cross-product)")
	worksheetFile := flag.String("worksheet", "", "worksheet file to run (relative to the worksheets directory)")
	projectDir := flag.String("project", "", "path to the project directory (defaults to cwd)")
	configFile := flag.String("config-file", "", "path to YAML file with exercise parameters")
	listIDs := flag.Bool("list", false, "list registered exercises and exit")
	runChecks := flag.Bool("check", false, "run embedded examples instead of the exercise or worksheet")
	sets := keyValueFlag{}
	flag.Var(&sets, "set", "exercise parameter (key=value, repeatable)")
	flag.Parse()

	reg := exercise.NewRegistry()
	exercises.RegisterBuiltins(reg)

	if *listIDs {
		for _, id := range reg.IDs() {
			label := id
			if ex, err := reg.Resolve(id, exercise.Config{}); err == nil {
				label = fmt.Sprintf("%-15s %s", id, ex.Info().Description)
			}
			fmt.Println(label)
		}
		return
	}

	if strings.TrimSpace(*exerciseID) == "" && strings.TrimSpace(*worksheetFile) == "" {
		die("--exercise or --worksheet is required (use --list to see what is available)")
	}

	project := *projectDir
	if project == "" {
		var err error
		project, err = os.Getwd()
		if err != nil {
			die("determine working directory: %v", err)
		}
	}
	absoluteProject, err := filepath.Abs(project)
	if err != nil {
		die("resolve project dir: %v", err)
	}
	if err := config.InitCalcpadDir(absoluteProject); err != nil {
		die("init .calcpad: %v", err)
	}
	cfg, err := config.NewConfig(absoluteProject)
	if err != nil {
		die("load config: %v", err)
	}
	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "runner.log"))
	if err != nil {
		die("open logbook: %v", err)
	}
	ctx := exercise.NewContext(cfg, lb).WithOrigin("exercise-runner")

	params, err := buildParams(*configFile, sets)
	if err != nil {
		die("load parameters: %v", err)
	}

	if strings.TrimSpace(*worksheetFile) != "" {
		runWorksheet(reg, ctx, cfg, *worksheetFile, *runChecks)
		return
	}
	runOne(reg, ctx, *exerciseID, params, *runChecks)
}

func runOne(reg *exercise.Registry, ctx *exercise.Context, id string, params exercise.Config, checkOnly bool) {
	ex, err := reg.Resolve(id, params)
	if err != nil {
		die("resolve exercise: %v", err)
	}
	if checkOnly {
		failures := checkExercise(id, ex)
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "FAIL %s\n", f)
		}
		if len(failures) > 0 {
			os.Exit(1)
		}
		fmt.Printf("%s: all examples check out.\n", id)
		return
	}
	result, err := ex.Run(ctx)
	if err != nil {
		die("run exercise: %v", err)
	}
	report(ex.Info().Name, result)
	if result.Status == exercise.StatusFailed {
		os.Exit(1)
	}
}

// checkExercise runs the embedded examples for one exercise.
func checkExercise(label string, ex exercise.Exercise) []string {
	provider, ok := ex.(check.Provider)
	if !ok {
		return []string{fmt.Sprintf("%s carries no embedded examples", label)}
	}
	var msgs []string
	for _, f := range check.RunAll(provider.Examples()) {
		msgs = append(msgs, f.String())
	}
	return msgs
}

// checkWorksheet runs the embedded examples for every exercise a
// worksheet names and reports whether any failed.
func checkWorksheet(reg *exercise.Registry, sheet worksheet.Worksheet) bool {
	failed := false
	for _, ref := range sheet.Exercises {
		ex, err := reg.Resolve(ref.ExerciseID, ref.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", ref.InstanceID(), err)
			failed = true
			continue
		}
		failures := checkExercise(ref.InstanceID(), ex)
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "FAIL %s: %s\n", ref.InstanceID(), f)
		}
		if len(failures) > 0 {
			failed = true
			continue
		}
		fmt.Printf("%s: all examples check out.\n", ref.InstanceID())
	}
	return failed
}

func runWorksheet(reg *exercise.Registry, ctx *exercise.Context, cfg *config.Config, name string, checkOnly bool) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.WorksheetsDir(), name)
	}
	sheet, err := worksheet.LoadFile(path)
	if err != nil {
		die("load worksheet: %v", err)
	}
	fmt.Printf("Worksheet: %s (%d exercises)\n\n", sheet.Name, len(sheet.Exercises))
	if checkOnly {
		if checkWorksheet(reg, sheet) {
			os.Exit(1)
		}
		return
	}
	failed := false
	for _, ref := range sheet.Exercises {
		ex, err := reg.Resolve(ref.ExerciseID, ref.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", ref.InstanceID(), err)
			failed = true
			continue
		}
		result, err := ex.Run(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", ref.InstanceID(), err)
			failed = true
			continue
		}
		report(ref.InstanceID(), result)
		if result.Status == exercise.StatusFailed {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func report(label string, result exercise.Result) {
	fmt.Printf("%s: %s\n", label, result.Status)
	if result.Message != "" {
		fmt.Printf("  %s\n", result.Message)
	}
	if result.ReportPath != "" {
		fmt.Printf("  report: %s\n", result.ReportPath)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

type keyValueFlag map[string]string

func (kv *keyValueFlag) String() string {
	if kv == nil || len(*kv) == 0 {
		return ""
	}
	var pairs []string
	for key, value := range *kv {
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, value))
	}
	return strings.Join(pairs, ", ")
}

func (kv *keyValueFlag) Set(value string) error {
	parts := strings.SplitN(value, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	key := strings.TrimSpace(parts[0])
	if key == "" {
		return fmt.Errorf("parameter key is empty in %q", value)
	}
	if *kv == nil {
		*kv = keyValueFlag{}
	}
	(*kv)[key] = parts[1]
	return nil
}

func buildParams(configFile string, overrides keyValueFlag) (exercise.Config, error) {
	params := exercise.Config{}
	if path := strings.TrimSpace(configFile); path != "" {
		fileParams, err := readParamsFile(path)
		if err != nil {
			return nil, err
		}
		params = fileParams
	}
	for key, value := range overrides {
		params[key] = value
	}
	return params, nil
}

func readParamsFile(path string) (exercise.Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open config file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, expected a file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("config file %s is empty", path)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	params := make(exercise.Config, len(raw))
	for key, value := range raw {
		params[key] = value
	}
	return params, nil
}

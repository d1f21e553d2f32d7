package exercise

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"calcpad/internal/config"
	"calcpad/internal/logbook"
)

type stubExercise struct {
	Base
	result Result
}

func (s *stubExercise) Run(ctx *Context) (Result, error) {
	return s.result, nil
}

func stubFactory(info Info, result Result) Factory {
	return func(cfg Config) (Exercise, error) {
		return &stubExercise{Base: NewBase(info), result: result}, nil
	}
}

func validInfo(id string) Info {
	return Info{ID: id, Name: "Stub " + id, Version: "1.0.0"}
}

func TestInfoValidate(t *testing.T) {
	cases := []struct {
		name    string
		info    Info
		wantErr bool
	}{
		{"valid", validInfo("cross-product"), false},
		{"missing id", Info{Name: "x", Version: "1.0.0"}, true},
		{"missing name", Info{ID: "x", Version: "1.0.0"}, true},
		{"missing version", Info{ID: "x", Name: "x"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.info.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRegistryRegisterAndResolve(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("slopes", stubFactory(validInfo("slopes"), Result{Status: StatusCompleted})); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	ex, err := reg.Resolve("slopes", Config{})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if ex.Info().ID != "slopes" {
		t.Fatalf("resolved wrong exercise: %s", ex.Info().ID)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	factory := stubFactory(validInfo("slopes"), Result{})
	if err := reg.Register("slopes", factory); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := reg.Register("slopes", factory); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistryRejectsInvalidInfo(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("broken", stubFactory(Info{ID: "broken"}, Result{}))
	if _, err := reg.Resolve("broken", Config{}); err == nil {
		t.Fatalf("expected validation error from resolve")
	}
}

func TestRegistryUnknownID(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Resolve("missing", Config{}); err == nil {
		t.Fatalf("expected unknown id error")
	}
}

func TestRegistryIDsSorted(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []string{"slopes", "cross-product", "row-reduce"} {
		reg.MustRegister(id, stubFactory(validInfo(id), Result{}))
	}
	got := reg.IDs()
	want := []string{"cross-product", "row-reduce", "slopes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("IDs = %v, want %v", got, want)
	}
}

func TestConfigFloat(t *testing.T) {
	cfg := Config{"step": "1e-6", "samples": 200, "tolerance": 0.5}
	if got, err := cfg.Float("step", 0); err != nil || got != 1e-6 {
		t.Fatalf("Float(step) = %v, %v", got, err)
	}
	if got, err := cfg.Float("samples", 0); err != nil || got != 200 {
		t.Fatalf("Float(samples) = %v, %v", got, err)
	}
	if got, err := cfg.Float("tolerance", 0); err != nil || got != 0.5 {
		t.Fatalf("Float(tolerance) = %v, %v", got, err)
	}
	if got, err := cfg.Float("absent", 3.5); err != nil || got != 3.5 {
		t.Fatalf("Float default = %v, %v", got, err)
	}
	if _, err := cfg.Float("bad", 0); err != nil {
		t.Fatalf("absent key should return default, got %v", err)
	}
	cfg["bad"] = []int{1}
	if _, err := cfg.Float("bad", 0); err == nil {
		t.Fatalf("expected type error for slice value")
	}
}

func TestConfigInt(t *testing.T) {
	cfg := Config{"panels": "40", "width": 72, "fromYAML": float64(24)}
	if got, err := cfg.Int("panels", 0); err != nil || got != 40 {
		t.Fatalf("Int(panels) = %v, %v", got, err)
	}
	if got, err := cfg.Int("width", 0); err != nil || got != 72 {
		t.Fatalf("Int(width) = %v, %v", got, err)
	}
	if got, err := cfg.Int("fromYAML", 0); err != nil || got != 24 {
		t.Fatalf("Int(fromYAML) = %v, %v", got, err)
	}
	cfg["frac"] = 2.5
	if _, err := cfg.Int("frac", 0); err == nil {
		t.Fatalf("expected error for non-integral float")
	}
}

func TestContextValidate(t *testing.T) {
	var nilCtx *Context
	if err := nilCtx.Validate("slopes"); err == nil {
		t.Fatalf("nil context should fail validation")
	}

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
	ctx := NewContext(cfg, lb)
	if err := ctx.Validate("slopes"); err != nil {
		t.Fatalf("valid context rejected: %v", err)
	}

	broken := &Context{}
	if err := broken.Validate("slopes"); err == nil || !strings.Contains(err.Error(), "missing config") {
		t.Fatalf("expected missing config error, got %v", err)
	}
}

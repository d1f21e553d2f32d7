// internal/config/config.go
//
// This package handles configuration and the .calcpad directory structure.
// Every project that uses calcpad gets a .calcpad/ folder created in its
// root to hold logs, reports, plot data, and worksheet definitions.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// CalcpadDir is the name of the directory created in each project.
	CalcpadDir = ".calcpad"

	defaultTolerance = 1e-9
	defaultSamples   = 200
	defaultPlotW     = 72
	defaultPlotH     = 24
)

const defaultProjectConfigYAML = `# calcpad project configuration
version: 1

# Numeric defaults shared by the exercises.
defaults:
  tolerance: 1e-9
  samples: 200

# Character grid used by the terminal plot view.
plot:
  width: 72
  height: 24
`

// Defaults carries the numeric knobs the exercises fall back on.
type Defaults struct {
	Tolerance float64 `yaml:"tolerance"`
	Samples   int     `yaml:"samples"`
}

// PlotConfig sizes the terminal plot grid.
type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ProjectConfig models .calcpad/config.yaml.
type ProjectConfig struct {
	Version  int        `yaml:"version"`
	Defaults Defaults   `yaml:"defaults"`
	Plot     PlotConfig `yaml:"plot"`
}

// Config holds the runtime configuration for calcpad.
type Config struct {
	// ProjectDir is the directory where the user ran `calcpad` from.
	ProjectDir string

	// CalcpadProjectDir is ProjectDir/.calcpad.
	CalcpadProjectDir string

	Project ProjectConfig
}

// InitCalcpadDir creates the .calcpad directory structure in the given
// project directory. Called on every startup; existing content is kept.
//
// Structure created:
// .calcpad/
// ├── logs/        <- session logbook
// ├── reports/     <- worked-exercise reports
// ├── data/        <- TSV point sets (gnuplot format)
// ├── plots/       <- sampled plot data
// ├── functions/   <- user f(x) definitions (Go files)
// └── worksheets/  <- worksheet definitions (YAML)
func InitCalcpadDir(projectDir string) error {
	calcpadDir := filepath.Join(projectDir, CalcpadDir)

	dirs := []string{
		filepath.Join(calcpadDir, "logs"),
		filepath.Join(calcpadDir, "reports"),
		filepath.Join(calcpadDir, "data"),
		filepath.Join(calcpadDir, "plots"),
		filepath.Join(calcpadDir, "functions"),
		filepath.Join(calcpadDir, "worksheets"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return ensureProjectConfig(filepath.Join(calcpadDir, "config.yaml"))
}

// ensureProjectConfig seeds a commented default config.yaml when none
// exists yet.
func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	return nil
}

// NewConfig creates a Config populated from .calcpad/config.yaml, filling
// in defaults for anything the file leaves unset.
func NewConfig(projectDir string) (*Config, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("config: resolve project dir: %w", err)
	}
	cfg := &Config{
		ProjectDir:        abs,
		CalcpadProjectDir: filepath.Join(abs, CalcpadDir),
	}
	project, err := loadProjectConfig(filepath.Join(cfg.CalcpadProjectDir, "config.yaml"))
	if err != nil {
		return nil, err
	}
	cfg.Project = applyDefaults(project)
	return cfg, nil
}

func loadProjectConfig(path string) (ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		// Run before InitCalcpadDir, or a bare checkout. Defaults apply.
		return ProjectConfig{}, nil
	}
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var project ProjectConfig
	if err := yaml.Unmarshal(data, &project); err != nil {
		return ProjectConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return project, nil
}

func applyDefaults(project ProjectConfig) ProjectConfig {
	if project.Defaults.Tolerance <= 0 {
		project.Defaults.Tolerance = defaultTolerance
	}
	if project.Defaults.Samples < 1 {
		project.Defaults.Samples = defaultSamples
	}
	if project.Plot.Width < 1 {
		project.Plot.Width = defaultPlotW
	}
	if project.Plot.Height < 1 {
		project.Plot.Height = defaultPlotH
	}
	return project
}

// LogsDir is where the session logbook lives.
func (c *Config) LogsDir() string { return filepath.Join(c.CalcpadProjectDir, "logs") }

// ReportsDir is where exercises write their worked reports.
func (c *Config) ReportsDir() string { return filepath.Join(c.CalcpadProjectDir, "reports") }

// DataDir holds TSV point sets read by the data-driven exercises.
func (c *Config) DataDir() string { return filepath.Join(c.CalcpadProjectDir, "data") }

// PlotsDir holds sampled plot data in gnuplot format.
func (c *Config) PlotsDir() string { return filepath.Join(c.CalcpadProjectDir, "plots") }

// FunctionsDir holds user-written f(x) definition files.
func (c *Config) FunctionsDir() string { return filepath.Join(c.CalcpadProjectDir, "functions") }

// WorksheetsDir holds worksheet definition YAML.
func (c *Config) WorksheetsDir() string { return filepath.Join(c.CalcpadProjectDir, "worksheets") }

// Tolerance is the default comparison tolerance for checks.
func (c *Config) Tolerance() float64 { return c.Project.Defaults.Tolerance }

// Samples is the default sample count for plotting and integration.
func (c *Config) Samples() int { return c.Project.Defaults.Samples }

// PlotSize returns the configured terminal plot grid.
func (c *Config) PlotSize() (width, height int) {
	return c.Project.Plot.Width, c.Project.Plot.Height
}

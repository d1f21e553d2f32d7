// Package report renders worked-exercise output as markdown documents
// with a YAML frontmatter block recording which exercise produced them
// and when, so a stack of reports stays greppable.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingFrontMatter indicates the document did not start with a YAML fence.
	ErrMissingFrontMatter = errors.New("report: missing frontmatter")
	// ErrMalformedFrontMatter indicates the YAML block could not be parsed.
	ErrMalformedFrontMatter = errors.New("report: malformed frontmatter")
)

// Metadata captures provenance stored inside report frontmatter.
type Metadata struct {
	ExerciseID string
	Version    string
	CreatedAt  time.Time
	Notes      map[string]string
}

type calcpadEnvelope struct {
	Calcpad calcpadMetadata `yaml:"calcpad"`
}

type calcpadMetadata struct {
	Exercise  string            `yaml:"exercise"`
	Version   string            `yaml:"version,omitempty"`
	CreatedAt string            `yaml:"created_at,omitempty"`
	Notes     map[string]string `yaml:"notes,omitempty"`
}

func (e *calcpadEnvelope) fromMetadata(m Metadata) {
	e.Calcpad = calcpadMetadata{
		Exercise: m.ExerciseID,
		Version:  m.Version,
		Notes:    m.Notes,
	}
	if !m.CreatedAt.IsZero() {
		e.Calcpad.CreatedAt = m.CreatedAt.UTC().Format(time.RFC3339)
	}
}

func (e calcpadEnvelope) toMetadata() (Metadata, error) {
	meta := Metadata{
		ExerciseID: e.Calcpad.Exercise,
		Version:    e.Calcpad.Version,
		Notes:      e.Calcpad.Notes,
	}
	if e.Calcpad.CreatedAt != "" {
		ts, err := time.Parse(time.RFC3339, e.Calcpad.CreatedAt)
		if err != nil {
			return Metadata{}, fmt.Errorf("report: parse created_at: %w", err)
		}
		meta.CreatedAt = ts
	}
	return meta, nil
}

func normalizeNewlines(content []byte) []byte {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))
}

// ParseFrontMatter extracts the metadata block and body from a document
// that starts with `---` YAML fences.
func ParseFrontMatter(content []byte) (Metadata, []byte, error) {
	if len(content) == 0 {
		return Metadata{}, nil, ErrMissingFrontMatter
	}
	normalized := normalizeNewlines(content)
	if !bytes.HasPrefix(normalized, []byte("---\n")) {
		return Metadata{}, nil, ErrMissingFrontMatter
	}
	rest := normalized[4:]
	parts := bytes.SplitN(rest, []byte("\n---\n"), 2)
	if len(parts) < 2 {
		return Metadata{}, nil, ErrMalformedFrontMatter
	}
	var envelope calcpadEnvelope
	if err := yaml.Unmarshal(parts[0], &envelope); err != nil {
		return Metadata{}, nil, fmt.Errorf("report: parse frontmatter: %w", err)
	}
	meta, err := envelope.toMetadata()
	if err != nil {
		return Metadata{}, nil, err
	}
	if meta.ExerciseID == "" {
		return Metadata{}, nil, fmt.Errorf("report: frontmatter missing exercise id")
	}
	return meta, bytes.TrimLeft(parts[1], "\n"), nil
}

// WriteFrontMatter renders metadata + body with YAML fences.
func WriteFrontMatter(meta Metadata, body []byte) ([]byte, error) {
	if meta.ExerciseID == "" {
		return nil, fmt.Errorf("report: metadata missing exercise id")
	}
	envelope := calcpadEnvelope{}
	envelope.fromMetadata(meta)
	data, err := yaml.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("report: encode frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(bytes.TrimRight(data, "\n"))
	buf.WriteString("\n---\n\n")
	buf.Write(body)
	return buf.Bytes(), nil
}

// Store writes reports into a single directory, one file per run.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// WithClock overrides the timestamp source (tests).
func (s *Store) WithClock(clock func() time.Time) *Store {
	if clock != nil {
		s.now = clock
	}
	return s
}

// Dir returns the directory reports are written to.
func (s *Store) Dir() string { return s.dir }

// Write stamps metadata and persists a new report, returning its path.
func (s *Store) Write(exerciseID, version string, notes map[string]string, body []byte) (string, error) {
	if exerciseID == "" {
		return "", fmt.Errorf("report: exercise id is required")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("report: ensure %s: %w", s.dir, err)
	}
	created := s.now().UTC()
	meta := Metadata{
		ExerciseID: exerciseID,
		Version:    version,
		CreatedAt:  created,
		Notes:      notes,
	}
	content, err := WriteFrontMatter(meta, body)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%s.md", exerciseID, created.Format("20060102-150405"))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}

// Read loads a report back, splitting metadata from body.
func Read(path string) (Metadata, []byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("report: read %s: %w", path, err)
	}
	return ParseFrontMatter(content)
}

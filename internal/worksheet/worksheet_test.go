package worksheet

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleYAML = `
id: week-3
name: Week 3 problem set
description: Slopes and least squares practice
exercises:
  - exercise: slopes
  - exercise: least-squares
    config:
      data: week3.tsv
  - id: least-squares-normal
    exercise: least-squares
    config:
      data: week3.tsv
      method: normal
metadata:
  course: applied-calculus
`

func TestParseYAML(t *testing.T) {
	ws, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ws.ID != "week-3" {
		t.Fatalf("id = %q", ws.ID)
	}
	want := []string{"slopes", "least-squares", "least-squares-normal"}
	if got := ws.ExerciseIDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("exercise ids = %v, want %v", got, want)
	}
	method, err := ws.Exercises[2].Config.String("method", "")
	if err != nil || method != "normal" {
		t.Fatalf("method = %q, %v", method, err)
	}
}

func TestParseYAMLRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"empty payload", "   \n", "payload is empty"},
		{"missing id", "name: x\nexercises:\n  - exercise: slopes\n", "id is required"},
		{"no exercises", "id: empty\nname: Empty\n", "at least one exercise"},
		{"blank exercise ref", "id: ws\nexercises:\n  - name: dangling\n", "exercise id is required"},
		{
			"duplicate instance",
			"id: ws\nexercises:\n  - exercise: slopes\n  - exercise: slopes\n",
			"duplicate exercise instance id",
		},
		{"malformed yaml", "id: [unclosed\n", "decode definition"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want substring %q", err, tc.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	ws, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	clone := ws.Clone()
	clone.Exercises[1].Config["data"] = "other.tsv"
	clone.Metadata["course"] = "changed"

	if got, _ := ws.Exercises[1].Config.String("data", ""); got != "week3.tsv" {
		t.Fatalf("clone mutated original config: %q", got)
	}
	if ws.Metadata["course"] != "applied-calculus" {
		t.Fatalf("clone mutated original metadata")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, id string) {
		content := "id: " + id + "\nname: " + id + "\nexercises:\n  - exercise: slopes\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	write("b.yaml", "week-2")
	write("a.yml", "week-1")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	sheets, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(sheets) != 2 || sheets[0].ID != "week-1" || sheets[1].ID != "week-2" {
		t.Fatalf("unexpected sheets: %+v", sheets)
	}
}

func TestLoadDirMissing(t *testing.T) {
	sheets, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if len(sheets) != 0 {
		t.Fatalf("expected no sheets, got %d", len(sheets))
	}
}

// Package worksheet groups exercises into a named problem set that can be
// worked through in order. A worksheet is a flat list, not a graph: each
// exercise runs independently and order only matters for presentation.
package worksheet

import (
	"fmt"

	"calcpad/internal/exercise"
)

// Worksheet declares a sequence of exercises plus the metadata required to
// render it in a menu.
type Worksheet struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Exercises   []ExerciseRef     `yaml:"exercises"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// Clone returns a deep copy of the worksheet.
func (ws Worksheet) Clone() Worksheet {
	clone := Worksheet{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		Metadata:    cloneStringMap(ws.Metadata),
	}
	if len(ws.Exercises) > 0 {
		clone.Exercises = make([]ExerciseRef, len(ws.Exercises))
		for i, ref := range ws.Exercises {
			clone.Exercises[i] = ref.Clone()
		}
	}
	return clone
}

// Validate ensures the worksheet is self-consistent.
func (ws Worksheet) Validate() error {
	if ws.ID == "" {
		return fmt.Errorf("worksheet: id is required")
	}
	if len(ws.Exercises) == 0 {
		return fmt.Errorf("worksheet %s: at least one exercise is required", ws.ID)
	}
	seen := map[string]struct{}{}
	for idx, ref := range ws.Exercises {
		if err := ref.Validate(); err != nil {
			return fmt.Errorf("worksheet %s exercise[%d]: %w", ws.ID, idx, err)
		}
		instanceID := ref.InstanceID()
		if _, exists := seen[instanceID]; exists {
			return fmt.Errorf("worksheet %s: duplicate exercise instance id %s", ws.ID, instanceID)
		}
		seen[instanceID] = struct{}{}
	}
	return nil
}

// ExerciseIDs returns the worksheet-scoped identifiers in declaration order.
func (ws Worksheet) ExerciseIDs() []string {
	ids := make([]string, 0, len(ws.Exercises))
	for _, ref := range ws.Exercises {
		ids = append(ids, ref.InstanceID())
	}
	return ids
}

// ExerciseRef describes how a worksheet composes and configures an exercise.
type ExerciseRef struct {
	ID         string          `yaml:"id,omitempty"`
	ExerciseID string          `yaml:"exercise"`
	Name       string          `yaml:"name,omitempty"`
	Config     exercise.Config `yaml:"config,omitempty"`
}

// Clone returns a deep copy of the exercise reference.
func (ref ExerciseRef) Clone() ExerciseRef {
	clone := ExerciseRef{
		ID:         ref.ID,
		ExerciseID: ref.ExerciseID,
		Name:       ref.Name,
	}
	if len(ref.Config) > 0 {
		clone.Config = make(exercise.Config, len(ref.Config))
		for key, value := range ref.Config {
			clone.Config[key] = value
		}
	}
	return clone
}

// InstanceID returns the worksheet-local identifier. Setting an explicit ID
// lets the same exercise appear twice with different parameters.
func (ref ExerciseRef) InstanceID() string {
	if ref.ID != "" {
		return ref.ID
	}
	return ref.ExerciseID
}

// Validate ensures the reference is usable.
func (ref ExerciseRef) Validate() error {
	if ref.ExerciseID == "" {
		return fmt.Errorf("worksheet: exercise id is required")
	}
	return nil
}

func cloneStringMap(values map[string]string) map[string]string {
	if len(values) == 0 {
		return nil
	}
	clone := make(map[string]string, len(values))
	for key, value := range values {
		clone[key] = value
	}
	return clone
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"calcpad/internal/exercise"
	"calcpad/internal/matrix"
)

const workbenchID = "row-reduce-workbench"

// eliminator drives an interactive row reduction session. Rows are
// numbered from 1 the way they are on paper.
type eliminator struct {
	ctx     *exercise.Context
	initial matrix.Matrix
	current matrix.Matrix
	history []matrix.Matrix
	steps   []string
}

func newEliminator(ctx *exercise.Context) *eliminator {
	return &eliminator{ctx: ctx}
}

// HasMatrix reports whether a matrix has been loaded yet.
func (e *eliminator) HasMatrix() bool {
	return e.current != nil
}

// View renders the working matrix.
func (e *eliminator) View() string {
	if !e.HasMatrix() {
		return "Enter the matrix to work on."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Step %d\n\n%s", len(e.steps), e.current)
	return b.String()
}

// Handle applies one command line. It returns done=true when the session
// is over; msg carries feedback either way.
func (e *eliminator) Handle(line string) (done bool, msg string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, ""
	}
	if !e.HasMatrix() {
		A, err := matrix.Parse(line)
		if err != nil {
			return false, err.Error()
		}
		e.initial = A
		e.current = A.Clone()
		rows, cols := A.Shape()
		e.logStep("loaded %dx%d matrix", rows, cols)
		return false, fmt.Sprintf("Loaded %dx%d matrix.", rows, cols)
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "swap":
		i, j, err := twoRows(args)
		if err != nil {
			return false, err.Error()
		}
		e.push()
		if err := matrix.Swap(e.current, i, j); err != nil {
			e.pop()
			return false, err.Error()
		}
		e.logStep("R%d <-> R%d", i, j)
		return false, fmt.Sprintf("Swapped R%d and R%d.", i, j)

	case "scale":
		if len(args) != 2 {
			return false, "usage: scale i c"
		}
		i, err := rowIndex(args[0])
		if err != nil {
			return false, err.Error()
		}
		c, err := matrix.ParseScalar(args[1])
		if err != nil {
			return false, err.Error()
		}
		e.push()
		if err := matrix.ScaleRow(e.current, i, c); err != nil {
			e.pop()
			return false, err.Error()
		}
		e.logStep("R%d *= %v", i, c)
		return false, fmt.Sprintf("Scaled R%d by %v.", i, c)

	case "combine":
		if len(args) != 3 {
			return false, "usage: combine i j c (adds c*Ri to Rj)"
		}
		i, err := rowIndex(args[0])
		if err != nil {
			return false, err.Error()
		}
		j, err := rowIndex(args[1])
		if err != nil {
			return false, err.Error()
		}
		c, err := matrix.ParseScalar(args[2])
		if err != nil {
			return false, err.Error()
		}
		e.push()
		if err := matrix.Combine(e.current, i, j, c); err != nil {
			e.pop()
			return false, err.Error()
		}
		e.logStep("R%d += %v * R%d", j, c, i)
		return false, fmt.Sprintf("Added %v times R%d to R%d.", c, i, j)

	case "reduce":
		e.push()
		e.current = matrix.Reduce(e.current)
		e.logStep("reduced to row echelon form")
		return false, "Reduced to row echelon form."

	case "undo":
		if len(e.history) == 0 {
			return false, "Nothing to undo."
		}
		e.pop()
		if len(e.steps) > 0 {
			e.steps = e.steps[:len(e.steps)-1]
		}
		return false, "Undid the last operation."

	case "reset":
		e.current = e.initial.Clone()
		e.history = nil
		e.steps = nil
		e.logStep("reset to the starting matrix")
		return false, "Back to the starting matrix."

	case "done":
		return true, e.finish()

	default:
		return false, fmt.Sprintf("Unknown command %q. Commands: swap, scale, combine, reduce, undo, reset, done.", cmd)
	}
}

func (e *eliminator) push() {
	e.history = append(e.history, e.current.Clone())
}

func (e *eliminator) pop() {
	last := len(e.history) - 1
	e.current = e.history[last]
	e.history = e.history[:last]
}

func (e *eliminator) logStep(format string, args ...any) {
	e.steps = append(e.steps, fmt.Sprintf(format, args...))
	if e.ctx != nil && e.ctx.Logbook != nil {
		e.ctx.Logbook.Step("workbench: "+format, args...)
	}
}

// finish writes the worked session to a report and summarizes it.
func (e *eliminator) finish() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Row Reduction Workbench\n\n")
	fmt.Fprintf(&b, "Starting matrix:\n\n```\n%s```\n\n", e.initial)
	fmt.Fprintf(&b, "## Steps\n\n")
	for i, step := range e.steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "\nFinal matrix:\n\n```\n%s```\n", e.current)

	summary := fmt.Sprintf("Finished after %d steps.", len(e.steps))
	if e.ctx == nil || e.ctx.Reports == nil {
		return summary
	}
	path, err := e.ctx.Reports.Write(workbenchID, "1.0.0", nil, []byte(b.String()))
	if err != nil {
		return fmt.Sprintf("%s Report not written: %v", summary, err)
	}
	return fmt.Sprintf("%s\nReport: %s", summary, path)
}

func rowIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("row %q is not a number", s)
	}
	return i, nil
}

func twoRows(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("usage: swap i j")
	}
	i, err := rowIndex(args[0])
	if err != nil {
		return 0, 0, err
	}
	j, err := rowIndex(args[1])
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

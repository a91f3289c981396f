package astar

import (
	"fmt"
	"io"
	"strings"
)

// String renders the snapshot in the classic trace layout:
//
//	<n>. iteration
//	Open:
//	(x, y) f = … g = … h = …
//	Closed:
//	(x, y) f = … g = … h = …
func (s Snapshot) String() string {
	var sb strings.Builder
	_ = s.Render(&sb)

	return sb.String()
}

// Render writes the String form of s to w.
func (s Snapshot) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d. iteration\nOpen:\n", s.Iteration); err != nil {
		return err
	}
	if err := writeSteps(w, s.Open); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "Closed:\n"); err != nil {
		return err
	}

	return writeSteps(w, s.Closed)
}

// WriteSteps writes one step per line after a title line.
// It renders the "Help table" and "Path" sections of a trace.
func WriteSteps(w io.Writer, title string, steps []Step) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}

	return writeSteps(w, steps)
}

func writeSteps(w io.Writer, steps []Step) error {
	for _, st := range steps {
		if _, err := fmt.Fprintln(w, st.String()); err != nil {
			return err
		}
	}

	return nil
}

package triage

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
)

// InArrivalOrder returns a copy of the waiting patients sorted by arrival.
func (q *Queue) InArrivalOrder() []Patient {
	out := slices.Clone(q.patients)
	slices.SortFunc(out, func(a, b Patient) int {
		return cmp.Compare(a.Arrival(), b.Arrival())
	})
	return out
}

// WriteCommandLog writes one "add <severity> <name>" line per waiting patient,
// in arrival order. Replaying the lines into an empty queue reproduces the
// same order of service. It returns the number of lines written.
func WriteCommandLog(w io.Writer, q *Queue) (int, error) {
	bw := bufio.NewWriter(w)
	written := 0
	for _, p := range q.InArrivalOrder() {
		if _, err := fmt.Fprintf(bw, "add %s %s\n", p.DisplaySeverity(), p.Name()); err != nil {
			return written, fmt.Errorf("writing command log: %w", err)
		}
		written++
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("writing command log: %w", err)
	}
	return written, nil
}

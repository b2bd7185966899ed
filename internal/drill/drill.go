// Package drill generates synthetic command files for training sessions and
// load testing of the triage console.
package drill

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/mrsinham/triage/internal/triage"
)

func defaultRNG() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
}

// Options controls a generated shift
type Options struct {
	Patients int     // number of add lines
	Seed     uint64  // same seed, same script
	CallRate float64 // chance of a next line after each arrival
}

// DefaultOptions returns a 20 patient shift with roughly one call every three
// arrivals
func DefaultOptions() Options {
	return Options{Patients: 20, CallRate: 0.3}
}

// Validate checks if options are valid
func (o Options) Validate() error {
	if o.Patients <= 0 {
		return fmt.Errorf("patients must be > 0, got %d", o.Patients)
	}
	if o.CallRate < 0 || o.CallRate > 1 {
		return fmt.Errorf("call rate must be between 0 and 1, got %g", o.CallRate)
	}
	return nil
}

// Severity draws a priority code with an emergency-room like distribution:
// 5% immediate, 15% emergency, 40% urgent, 40% minimal.
func Severity(rng *rand.Rand) triage.Severity {
	if rng == nil {
		rng = defaultRNG()
	}

	r := rng.Float64()
	switch {
	case r < 0.05:
		return triage.Immediate
	case r < 0.20:
		return triage.Emergency
	case r < 0.60:
		return triage.Urgent
	}
	return triage.Minimal
}

// Lines returns the generated script, one console command per line
func Lines(opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	lines := make([]string, 0, opts.Patients+opts.Patients/2)
	for range opts.Patients {
		lines = append(lines, fmt.Sprintf("add %s %s", Severity(rng), PatientName(rng)))
		if rng.Float64() < opts.CallRate {
			lines = append(lines, "next")
		}
	}
	return lines, nil
}

// WriteScript writes the generated script to w and returns the number of
// lines written, including on failure
func WriteScript(w io.Writer, opts Options) (int, error) {
	lines, err := Lines(opts)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	written := 0
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return written, fmt.Errorf("writing drill script: %w", err)
		}
		written++
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("writing drill script: %w", err)
	}
	return written, nil
}

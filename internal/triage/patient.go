package triage

import "fmt"

// Patient is a waiting patient. Values are immutable: a severity change
// produces a new Patient with the same name and arrival number.
type Patient struct {
	name     string
	severity Severity
	arrival  int
}

// NewPatient creates a patient record. The caller is responsible for passing
// a valid severity and a positive arrival number.
func NewPatient(severity Severity, name string, arrival int) Patient {
	return Patient{
		name:     name,
		severity: severity,
		arrival:  arrival,
	}
}

// Name returns the patient's name
func (p Patient) Name() string { return p.name }

// Severity returns the patient's current severity
func (p Patient) Severity() Severity { return p.severity }

// Arrival returns the arrival number assigned at admission
func (p Patient) Arrival() int { return p.arrival }

// DisplaySeverity returns the canonical lowercase severity label
func (p Patient) DisplaySeverity() string { return p.severity.String() }

// Compare orders patients by severity rank, then by arrival.
// It returns -1 if p must be called before other, +1 if after, 0 if both
// severity and arrival match.
func (p Patient) Compare(other Patient) int {
	switch {
	case p.severity.Rank() < other.severity.Rank():
		return -1
	case p.severity.Rank() > other.severity.Rank():
		return 1
	case p.arrival < other.arrival:
		return -1
	case p.arrival > other.arrival:
		return 1
	default:
		return 0
	}
}

// withSeverity returns a copy of p with a new severity
func (p Patient) withSeverity(s Severity) Patient {
	p.severity = s
	return p
}

// String returns a debug representation, e.g. "Bob { pri=immediate, arrive=2 }"
func (p Patient) String() string {
	return fmt.Sprintf("%s { pri=%s, arrive=%d }", p.name, p.severity, p.arrival)
}

// internal/triage/severity.go
package triage

import (
	"fmt"
)

// Severity represents the triage level assigned at admission.
// Lower values are more urgent.
type Severity int

const (
	Immediate Severity = iota + 1
	Emergency
	Urgent
	Minimal
)

// AllSeverities returns every severity from most to least urgent
func AllSeverities() []Severity {
	return []Severity{Immediate, Emergency, Urgent, Minimal}
}

// Rank returns the numeric rank used for ordering (1 = most urgent)
func (s Severity) Rank() int {
	return int(s)
}

// Valid reports whether s is one of the four known levels
func (s Severity) Valid() bool {
	return s >= Immediate && s <= Minimal
}

// String returns the canonical lowercase label of the severity
func (s Severity) String() string {
	switch s {
	case Immediate:
		return "immediate"
	case Emergency:
		return "emergency"
	case Urgent:
		return "urgent"
	case Minimal:
		return "minimal"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity parses a label into a Severity. Matching is exact and
// case-sensitive.
func ParseSeverity(label string) (Severity, error) {
	switch label {
	case "immediate":
		return Immediate, nil
	case "emergency":
		return Emergency, nil
	case "urgent":
		return Urgent, nil
	case "minimal":
		return Minimal, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: immediate, emergency, urgent, minimal)", ErrInvalidSeverity, label)
	}
}

package triage

import "errors"

var (
	// ErrInvalidSeverity is returned when a severity label is not one of the four known levels.
	ErrInvalidSeverity = errors.New("triage: invalid severity")
	// ErrEmptyQueue is returned by Peek and Remove when nobody is waiting.
	ErrEmptyQueue = errors.New("triage: queue is empty")
	// ErrPatientNotFound is returned when no waiting patient has the requested arrival number.
	ErrPatientNotFound = errors.New("triage: patient not found")
)

package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mrsinham/triage/internal/triage"
)

// Kind identifies a console command
type Kind string

const (
	KindAdd    Kind = "add"
	KindPeek   Kind = "peek"
	KindNext   Kind = "next"
	KindList   Kind = "list"
	KindLoad   Kind = "load"
	KindSave   Kind = "save"
	KindChange Kind = "change"
	KindHelp   Kind = "help"
	KindQuit   Kind = "quit"
)

var (
	ErrNoCommand        = errors.New("no command given")
	ErrUnknownCommand   = errors.New("unrecognized command")
	ErrNoPriority       = errors.New("no priority code given")
	ErrNoName           = errors.New("no patient name given")
	ErrNoPatientID      = errors.New("no patient id provided")
	ErrInvalidPatientID = errors.New("invalid patient id")
	ErrNoFileName       = errors.New("no file name given")
)

// Command is a parsed console line. Only the fields relevant to Kind are set.
type Command struct {
	Kind     Kind
	Severity string // add, change
	Name     string // add
	Arrival  int    // change
	Path     string // load, save
}

// Parse turns a console line into a Command. Priority labels are checked
// against the known severities so that invalid input never reaches the queue.
func Parse(line string) (Command, error) {
	word, rest := nextToken(line)
	if word == "" {
		return Command{}, ErrNoCommand
	}

	cmd := Command{Kind: Kind(word)}
	switch cmd.Kind {
	case KindPeek, KindNext, KindList, KindHelp, KindQuit:
		return cmd, nil

	case KindAdd:
		severity, name := nextToken(rest)
		if severity == "" {
			return Command{}, ErrNoPriority
		}
		if name == "" {
			return Command{}, ErrNoName
		}
		if _, err := triage.ParseSeverity(severity); err != nil {
			return Command{}, err
		}
		cmd.Severity = severity
		cmd.Name = name
		return cmd, nil

	case KindChange:
		id, rest := nextToken(rest)
		if id == "" {
			return Command{}, ErrNoPatientID
		}
		severity, _ := nextToken(rest)
		if severity == "" {
			return Command{}, ErrNoPriority
		}
		arrival, err := strconv.Atoi(id)
		if err != nil || arrival <= 0 {
			return Command{}, fmt.Errorf("%w: %s", ErrInvalidPatientID, id)
		}
		if _, err := triage.ParseSeverity(severity); err != nil {
			return Command{}, err
		}
		cmd.Arrival = arrival
		cmd.Severity = severity
		return cmd, nil

	case KindLoad, KindSave:
		if rest == "" {
			return Command{}, ErrNoFileName
		}
		cmd.Path = rest
		return cmd, nil

	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, word)
	}
}

// nextToken splits off the first whitespace-delimited token. The remainder is
// returned with surrounding whitespace trimmed and inner spacing preserved.
func nextToken(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

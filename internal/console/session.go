// Package console implements the line-oriented triage command interface on
// top of a triage.Queue.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/mrsinham/triage/internal/triage"
)

// DefaultPrompt is printed before each interactive line and before each
// replayed line of a loaded file.
const DefaultPrompt = "triage> "

var (
	ErrOpenFile      = errors.New("could not open file")
	ErrReadFile      = errors.New("could not read file")
	ErrWriteFile     = errors.New("could not write file")
	ErrRecursiveLoad = errors.New("file is already being loaded")
)

// LoadResult summarizes a replayed command file
type LoadResult struct {
	Lines  int // lines replayed
	Failed int // lines that reported an error
}

// Session runs console commands against a queue and writes the results to out.
type Session struct {
	queue      *triage.Queue
	out        io.Writer
	log        hclog.Logger
	prompt     string
	showPrompt bool

	// files currently being replayed, innermost last
	loading []string
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the diagnostics logger. Defaults to a null logger.
func WithLogger(l hclog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithPrompt overrides DefaultPrompt
func WithPrompt(prompt string) Option {
	return func(s *Session) { s.prompt = prompt }
}

// WithPromptShown controls whether Run prints the prompt before reading a line
func WithPromptShown(show bool) Option {
	return func(s *Session) { s.showPrompt = show }
}

// NewSession creates a session over q
func NewSession(q *triage.Queue, out io.Writer, opts ...Option) *Session {
	s := &Session{
		queue:      q,
		out:        out,
		log:        hclog.NewNullLogger(),
		prompt:     DefaultPrompt,
		showPrompt: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session", uuid.NewString())
	return s
}

// Queue returns the queue driven by the session
func (s *Session) Queue() *triage.Queue {
	return s.queue
}

// SetOutput redirects command output to w and returns the previous writer
func (s *Session) SetOutput(w io.Writer) io.Writer {
	prev := s.out
	s.out = w
	return prev
}

// Logger returns the session logger
func (s *Session) Logger() hclog.Logger {
	return s.log
}

// Run reads commands from in until quit or end of input. An over-long line
// is reported and skipped.
func (s *Session) Run(in io.Reader) error {
	r := bufio.NewReader(in)
	for {
		if s.showPrompt {
			fmt.Fprint(s.out, "\n"+s.prompt)
		}
		line, err := readLine(r)
		switch {
		case errors.Is(err, ErrLineTooLong):
			s.log.Debug("skipping over-long line")
			fmt.Fprintln(s.out, Message(err))
			continue
		case err == io.EOF:
			if s.showPrompt {
				fmt.Fprintln(s.out)
			}
			return nil
		case err != nil:
			return fmt.Errorf("%w: reading commands: %w", ErrReadFile, err)
		}
		if !s.Execute(line) {
			return nil
		}
	}
}

// Execute runs a single line. It returns false when the session should end.
func (s *Session) Execute(line string) bool {
	quit, err := s.exec(line)
	if err != nil {
		fmt.Fprintln(s.out, Message(err))
	}
	return !quit
}

// exec runs a line and reports whether it asked to quit
func (s *Session) exec(line string) (bool, error) {
	cmd, err := Parse(line)
	if err != nil {
		s.log.Debug("rejected command", "error", err)
		return false, err
	}

	switch cmd.Kind {
	case KindQuit:
		return true, nil
	case KindHelp:
		fmt.Fprint(s.out, HelpText)
	case KindAdd:
		return false, s.add(cmd)
	case KindPeek:
		return false, s.peek()
	case KindNext:
		return false, s.next()
	case KindList:
		WriteList(s.out, s.queue)
	case KindChange:
		return false, s.change(cmd)
	case KindLoad:
		_, err := s.Load(cmd.Path)
		return false, err
	case KindSave:
		n, err := s.Save(cmd.Path)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "Saved %d patients to %s\n", n, cmd.Path)
	}
	return false, nil
}

func (s *Session) add(cmd Command) error {
	p, err := s.queue.Admit(cmd.Severity, cmd.Name)
	if err != nil {
		return err
	}
	s.log.Debug("patient admitted", "arrival", p.Arrival(), "severity", p.Severity(), "waiting", s.queue.Size())
	fmt.Fprintf(s.out, "\nAdded patient \"%s\" to the priority system\n", p.Name())
	return nil
}

func (s *Session) peek() error {
	p, err := s.queue.Peek()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Highest priority patient to be called next: %s\n", p.Name())
	return nil
}

func (s *Session) next() error {
	p, err := s.queue.Remove()
	if err != nil {
		return err
	}
	s.log.Debug("patient called", "arrival", p.Arrival(), "severity", p.Severity(), "waiting", s.queue.Size())
	fmt.Fprintf(s.out, "This patient will now be seen: %s\n", p.Name())
	return nil
}

func (s *Session) change(cmd Command) error {
	c, err := s.queue.UpdatePriority(cmd.Arrival, cmd.Severity)
	if err != nil {
		return err
	}
	s.log.Debug("priority changed", "arrival", c.Arrival, "from", c.From, "to", c.To)
	fmt.Fprintln(s.out, c.String())
	return nil
}

// Load replays every line of the file at path as if it had been typed,
// echoing each line first. A failing line does not stop the replay, and quit
// inside a file is ignored.
func (s *Session) Load(path string) (LoadResult, error) {
	var res LoadResult

	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}
	if slices.Contains(s.loading, key) {
		return res, fmt.Errorf("%w: %s", ErrRecursiveLoad, path)
	}

	f, err := os.Open(path)
	if err != nil {
		s.log.Warn("cannot open command file", "path", path, "error", err)
		return res, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}
	defer f.Close()

	s.loading = append(s.loading, key)
	defer func() { s.loading = s.loading[:len(s.loading)-1] }()

	log := s.log.With("file", path)
	log.Debug("replaying command file")

	r := bufio.NewReader(f)
	for {
		line, err := readLine(r)
		if err == io.EOF {
			break
		}
		if errors.Is(err, ErrLineTooLong) {
			res.Lines++
			res.Failed++
			log.Warn("skipping over-long line", "line", res.Lines)
			fmt.Fprintln(s.out, Message(err))
			continue
		}
		if err != nil {
			log.Warn("command file read failed", "line", res.Lines+1, "error", err)
			return res, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
		}

		res.Lines++
		fmt.Fprintf(s.out, "\n%s%s\n", s.prompt, line)

		quit, err := s.exec(line)
		if err != nil {
			res.Failed++
			fmt.Fprintln(s.out, Message(err))
		}
		if quit {
			log.Debug("ignoring quit in command file", "line", res.Lines)
		}
	}

	log.Debug("command file replayed", "lines", res.Lines, "failed", res.Failed)
	return res, nil
}

// Save writes the waiting list to path as a re-playable command log and
// returns the number of patients written.
func (s *Session) Save(path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		s.log.Warn("cannot create command log", "path", path, "error", err)
		return 0, fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	n, err := triage.WriteCommandLog(f, s.queue)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	s.log.Debug("command log saved", "path", path, "patients", n)
	return n, nil
}

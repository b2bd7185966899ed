package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/mrsinham/triage/internal/triage"
)

// HelpText is printed by the help command
const HelpText = `add <priority-code> <patient-name>
            Adds the patient to the triage system.
            <priority-code> must be one of the 4 accepted priority codes:
                1. immediate 2. emergency 3. urgent 4. minimal
            <patient-name>: patient's full legal name (may contain spaces)
next        Announces the patient to be seen next. Takes into account the
            type of emergency and the patient's arrival order.
peek        Displays the patient that is next in line, but keeps in queue
list        Displays the list of all patients that are still waiting
            in heap order (the first one listed is called next).
change <arrival-#> <priority-code>
            Changes the priority code of the waiting patient with the
            given arrival number.
load <file> Reads the file and executes the command on each line
save <file> Writes the waiting patients to the file as add commands,
            in arrival order, so the list can be loaded again later.
help        Displays this menu
quit        Exits the program
`

// Message converts an error from Parse, the queue or file handling into the
// line shown to the operator.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNoCommand):
		return "Error: no command given."
	case errors.Is(err, ErrNoPriority):
		return "Error: no priority code given."
	case errors.Is(err, ErrNoName):
		return "Error: no patient name given."
	case errors.Is(err, ErrNoPatientID):
		return "Error: no patient id provided."
	case errors.Is(err, ErrNoFileName):
		return "Error: no file name given."
	case errors.Is(err, triage.ErrInvalidSeverity):
		return "Error: invalid priority code (must be 'immediate', 'emergency', 'urgent' or 'minimal')."
	case errors.Is(err, triage.ErrEmptyQueue):
		return "Error: there are no patients waiting."
	case errors.Is(err, triage.ErrPatientNotFound):
		return "Error: no patient with the given id was found."
	case errors.Is(err, ErrOpenFile):
		return "Error: could not open file."
	case errors.Is(err, ErrReadFile):
		return "Error: could not read file."
	case errors.Is(err, ErrWriteFile):
		return "Error: could not write file."
	case errors.Is(err, ErrLineTooLong):
		return fmt.Sprintf("Error: line is longer than %d characters, skipped.", MaxLineLength)
	default:
		// ErrUnknownCommand, ErrInvalidPatientID and ErrRecursiveLoad carry
		// the offending token in their message
		return "Error: " + err.Error()
	}
}

// WriteList prints the waiting patients in heap order
func WriteList(w io.Writer, q *triage.Queue) {
	fmt.Fprintf(w, "# patients waiting: %d\n", q.Size())
	fmt.Fprint(w, "  Arrival #   Priority Code   Patient Name\n"+
		"+-----------+---------------+--------------+\n")
	for p := range q.All() {
		fmt.Fprintf(w, "%7d\t\t%-15s%s\n", p.Arrival(), p.DisplaySeverity(), p.Name())
	}
}

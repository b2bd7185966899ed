package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all board form fields
var Texts = map[string]HelpText{
	"name": {
		Title:       "PATIENT NAME",
		Description: "Full legal name of the arriving patient.",
		Details:     "May contain spaces. The patient receives the next arrival number once admitted.",
	},
	"severity": {
		Title:       "PRIORITY CODE",
		Description: "How soon the patient must be seen.",
		Details: `immediate - life-threatening, seen first
emergency - could become life-threatening
urgent    - needs care but can wait
minimal   - minor injury or illness
Patients with the same code are seen in arrival order.`,
	},
	"arrival": {
		Title:       "ARRIVAL NUMBER",
		Description: "Number given to the patient when admitted.",
		Details:     "Shown in the first column of the waiting list. Must be greater than zero.",
	},
	"new_severity": {
		Title:       "NEW PRIORITY CODE",
		Description: "Code the patient is re-triaged to.",
		Details:     "The patient keeps their arrival number, so ties are still broken by arrival.",
	},
	"load_path": {
		Title:       "COMMAND FILE",
		Description: "File replayed one command per line.",
		Details:     "Lines that fail are reported and skipped. quit inside the file is ignored.",
	},
	"save_path": {
		Title:       "SAVE FILE",
		Description: "Where to write the waiting list.",
		Details:     "Written as add commands in arrival order, so loading it rebuilds the same list.",
	},
}

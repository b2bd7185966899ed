package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"

	"github.com/mrsinham/triage/cmd/triage/board"
	"github.com/mrsinham/triage/internal/config"
	"github.com/mrsinham/triage/internal/console"
	"github.com/mrsinham/triage/internal/drill"
	"github.com/mrsinham/triage/internal/triage"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for drill subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "drill" {
		if err := runDrill(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	configFile := flag.String("config", "", "Load configuration from YAML file")

	var loadFiles []string
	flag.Func("load", "Replay a command file before the first prompt (repeatable)", func(s string) error {
		loadFiles = append(loadFiles, s)
		return nil
	})
	saveOnQuit := flag.String("save-on-quit", "", "Write the waiting list as a command file when the session ends")
	logLevel := flag.String("log-level", "", "Diagnostics level: trace, debug, info, warn, error, off (default: warn)")

	interactive := flag.Bool("interactive", false, "Launch the interactive board")
	flag.BoolVar(interactive, "i", false, "Launch the interactive board (shortcut)")

	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	if *showVersion {
		fmt.Printf("triage %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected argument %q\n", flag.Arg(0))
		printUsage()
		os.Exit(1)
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// flags override the file
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *saveOnQuit != "" {
		cfg.SaveOnQuit = *saveOnQuit
	}
	cfg.Startup = append(cfg.Startup, loadFiles...)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger(os.Stderr)
	terminal := isTerminal(os.Stdin)

	if *interactive && !terminal {
		fmt.Fprintf(os.Stderr, "Error: --interactive requires a terminal\n")
		os.Exit(1)
	}

	session := console.NewSession(triage.New(), os.Stdout,
		console.WithLogger(logger),
		console.WithPrompt(cfg.Prompt),
		console.WithPromptShown(terminal),
	)

	fmt.Println("Welcome to the hospital triage system.")

	for _, path := range cfg.Startup {
		if _, err := session.Load(path); err != nil {
			fmt.Println(console.Message(err))
		}
	}

	exitCode := 0
	if *interactive {
		if err := board.Run(session, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else if err := session.Run(os.Stdin); err != nil {
		logger.Error("session ended with an error", "error", err)
		fmt.Fprintf(os.Stderr, "%s (%v)\n", console.Message(err), err)
		exitCode = 1
	}

	if cfg.SaveOnQuit != "" {
		saveWaiting(session, cfg.SaveOnQuit, logger)
	}

	fmt.Println("Exiting hospital triage system.")
	os.Exit(exitCode)
}

// runDrill writes a generated shift to stdout or to --output
func runDrill(args []string) error {
	opts := drill.DefaultOptions()

	fs := flag.NewFlagSet("drill", flag.ExitOnError)
	fs.IntVar(&opts.Patients, "patients", opts.Patients, "Number of arriving patients")
	fs.Uint64Var(&opts.Seed, "seed", 0, "Seed for reproducibility (auto-generated if not specified)")
	fs.Float64Var(&opts.CallRate, "call-rate", opts.CallRate, "Chance of a next command after each arrival (0-1)")
	output := fs.String("output", "", "Write the script to this file instead of stdout")
	fs.Parse(args)

	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	if *output == "" {
		_, err := drill.WriteScript(os.Stdout, opts)
		return err
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("creating drill script: %w", err)
	}
	n, err := drill.WriteScript(f, opts)
	if err != nil {
		f.Close()
		return fmt.Errorf("%s: %d commands written: %w", *output, n, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing drill script %s: %w", *output, err)
	}
	fmt.Printf("Wrote %d commands to %s (seed %d)\n", n, *output, opts.Seed)
	return nil
}

func saveWaiting(session *console.Session, path string, logger hclog.Logger) {
	n, err := session.Save(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save waiting list: %v\n", err)
		return
	}
	logger.Info("waiting list saved", "path", path, "patients", n)
	fmt.Printf("Saved %d patients to %s\n", n, path)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  triage [options]")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("triage")
	fmt.Println("======")
	fmt.Println()
	fmt.Println("Emergency room waiting list ordered by priority code, then arrival.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  triage [options]")
	fmt.Println("  triage drill [--patients N] [--seed N] [--call-rate R] [--output FILE]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config <FILE>       Load configuration from YAML file")
	fmt.Println("  --load <FILE>         Replay a command file before the first prompt (repeatable)")
	fmt.Println("  --save-on-quit <FILE> Write the waiting list as add commands when the session ends")
	fmt.Println("  --log-level <LEVEL>   Diagnostics on stderr: trace, debug, info, warn, error, off")
	fmt.Println("                        (default: warn)")
	fmt.Println("  -i, --interactive     Launch the full-screen board (requires a terminal)")
	fmt.Println("  --version             Show version")
	fmt.Println("  --help                Show this help message")
	fmt.Println()
	fmt.Println("Commands (one per line on standard input):")
	fmt.Print(indent(console.HelpText))
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Start with yesterday's waiting list")
	fmt.Println("  triage --load waiting.txt --save-on-quit waiting.txt")
	fmt.Println()
	fmt.Println("  # Run a script without prompts")
	fmt.Println("  triage < shift.txt")
	fmt.Println()
	fmt.Println("  # Rehearse a busy shift, same arrivals every time")
	fmt.Println("  triage drill --patients 40 --seed 7 --output shift.txt")
	fmt.Println("  triage --load shift.txt")
	fmt.Println()
	fmt.Println("  # Board view with debug logs kept out of the screen")
	fmt.Println("  triage -i --config triage.yaml --log-level debug 2> triage.log")
}

func indent(text string) string {
	return "  " + strings.ReplaceAll(strings.TrimSuffix(text, "\n"), "\n", "\n  ") + "\n"
}

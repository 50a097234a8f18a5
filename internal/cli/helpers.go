package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Global output flags, set once by the root command before any
// subcommand runs.
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags wires the root command's persistent flags into this
// package.
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// Confirm asks a yes/no question on stdin. With --yes in effect it
// answers true without prompting, so destructive commands stay
// scriptable.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}
	fmt.Print(prompt + suffix)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// PrintSuccess reports a completed recipe operation on stdout. Quiet
// mode drops it entirely.
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	printTagged(os.Stdout, "✓", "OK", format, args...)
}

// PrintInfo prints a secondary hint, like the follow-up suggestion
// after an import. Quiet mode drops it.
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	printTagged(os.Stdout, "ℹ", "INFO", format, args...)
}

// PrintWarning goes to stderr and ignores quiet mode; a skipped or
// half-parsed recipe should never vanish silently.
func PrintWarning(format string, args ...interface{}) {
	printTagged(os.Stderr, "⚠", "WARNING", format, args...)
}

// PrintError goes to stderr and ignores quiet mode.
func PrintError(format string, args ...interface{}) {
	printTagged(os.Stderr, "✗", "ERROR", format, args...)
}

func printTagged(w *os.File, glyph, plain, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(w, "%s: %s\n", plain, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", glyph, msg)
}

package output

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// ANSI color codes
const (
	reset = "\033[0m"
	red   = "\033[31m"
	green = "\033[32m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
)

// Success returns text styled for success messages
func Success(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", green, text, reset)
}

// Error returns text styled for error messages
func Error(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", red, text, reset)
}

// PrintSuccess prints a success message with checkmark
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError prints an error message with X symbol to stderr
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Error(SymbolError), Error(message))
}

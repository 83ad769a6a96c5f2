package utils

import (
	"fmt"
	"io"
	"os"
)

// Terminal colors for status lines
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// Out receives every status line. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

func printStatus(color, mark, msg string, args ...interface{}) {
	fmt.Fprintf(Out, color+mark+" "+msg+ColorReset+"\n", args...)
}

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	printStatus(ColorGreen, "✓", msg, args...)
}

// PrintError prints an error message
func PrintError(msg string, args ...interface{}) {
	printStatus(ColorRed, "✗", msg, args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	printStatus(ColorCyan, "ℹ", msg, args...)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	printStatus(ColorYellow, "⚠", msg, args...)
}

// FileExists reports whether path can be stat'ed
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

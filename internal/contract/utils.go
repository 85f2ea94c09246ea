package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Disruption tier label constants.
const (
	FrontierValue     = "Frontier"     // Frontier tier
	AcceleratingValue = "Accelerating" // Accelerating tier
	EmergingValue     = "Emerging"     // Emerging tier
	NascentValue      = "Nascent"      // Nascent tier
)

// Color variables for console output.
var (
	FrontierColor     = color.New(color.FgGreen, color.Bold) // frontierColor marks the top tier.
	AcceleratingColor = color.New(color.FgCyan, color.Bold)  // acceleratingColor marks strong momentum.
	EmergingColor     = color.New(color.FgYellow)            // emergingColor marks moderate disruption, not bold.
	NascentColor      = color.New(color.FgBlue)              // nascentColor represents an early, low-signal tier.
)

// GetPlainLabel returns a plain text label indicating the disruption tier
// based on the composite index score. This is the core logic used for
// CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 40:
		return FrontierValue
	case score >= 30:
		return AcceleratingValue
	case score >= 20:
		return EmergingValue
	default:
		return NascentValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case FrontierValue:
		return FrontierColor.Sprint(text)
	case AcceleratingValue:
		return AcceleratingColor.Sprint(text)
	case EmergingValue:
		return EmergingColor.Sprint(text)
	default: // "Nascent"
		return NascentColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateName truncates an industry name to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is space for both the
// ellipsis and at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

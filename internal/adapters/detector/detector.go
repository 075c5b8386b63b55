// Package detector picks the log format from the terminal environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat represents how log lines are rendered on stderr.
type LogFormat int

const (
	// FormatAuto defers to environment detection.
	FormatAuto LogFormat = iota
	// FormatPretty renders colored, human-readable lines.
	FormatPretty
	// FormatJSON renders one JSON object per line.
	FormatJSON
)

// String returns the flag spelling of the format.
func (f LogFormat) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatJSON:
		return "json"
	default:
		return "auto"
	}
}

// DetectLogFormat returns the recommended log format.
// Pretty output needs stderr to be a terminal outside of CI; a daemon spawned
// by the Salt master has neither and logs JSON.
func DetectLogFormat() LogFormat {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) LogFormat {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies the --json-logs override to auto-detection.
func ResolveFormat(autoDetected LogFormat, forceJSON bool) LogFormat {
	if forceJSON {
		return FormatJSON
	}
	if autoDetected == FormatAuto {
		return FormatPretty
	}
	return autoDetected
}

// Package output decides how styled text is written to a stream.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Mode tells New whether to trust the stream's own terminal detection.
type Mode uint8

const (
	// Detect colors the stream only when it is a terminal.
	Detect Mode = iota
	// Force treats the stream as a terminal. The pretty log handler uses it
	// because non-terminal stderr already switches logging to JSON.
	Force
)

// New returns a termenv.Output for w, which defaults to stderr.
// NO_COLOR always yields the Ascii profile.
func New(w io.Writer, mode Mode) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts := []termenv.OutputOption{termenv.WithTTY(mode == Force)}
	if os.Getenv("NO_COLOR") != "" {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w, opts...)
}

// Profile returns the color profile New would pick for w.
func Profile(w io.Writer, mode Mode) termenv.Profile {
	return New(w, mode).Profile
}

// Package style defines the interface for citation style plugins and the
// dispatcher that routes a publication to one of them.
package style

import (
	"fmt"
	"strings"

	"github.com/yubetsu/cite/pub"
)

// Style defines the interface that all citation style plugins must implement.
type Style interface {
	// Name returns the style identifier (e.g., "apa", "bibtex")
	Name() string

	// Description returns a human-readable style description
	Description() string

	// FormatAuthors renders the full author list by this style's rules.
	FormatAuthors(authors []string) (string, error)

	// Render assembles the complete citation string for p in the given mode.
	Render(p *pub.Publication, mode Mode) (string, error)
}

// Mode selects the output rendering of a citation.
type Mode int

const (
	// ModeRaw is plain, punctuation-delimited text.
	ModeRaw Mode = iota

	// ModeHTML wraps the container name in italics and the DOI in a
	// hyperlink; punctuation is otherwise identical to ModeRaw.
	ModeHTML
)

// ParseMode converts a mode name ("raw" or "html") into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "raw":
		return ModeRaw, nil
	case "html":
		return ModeHTML, nil
	default:
		return 0, &UnsupportedFormatError{Kind: "style", Value: s}
	}
}

// UnsupportedFormatError reports an unrecognized format type or output mode.
type UnsupportedFormatError struct {
	Kind  string // "format" or "style"
	Value string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s %s is not supported", e.Value, e.Kind)
}

// Package names tokenizes personal names for the citation styles.
//
// Names are split on whitespace. The final token is treated as the family
// name and everything before it as given names, so a four-token name simply
// contributes an extra given name. A single-token name has no recognizable
// shape and is rejected with *FormattingError.
package names

import (
	"fmt"
	"strings"
)

// Name is a personal name split into given-name tokens and a family name.
type Name struct {
	Given  []string
	Family string
}

// FormattingError reports a name whose shape no style can render.
type FormattingError struct {
	Name string
}

func (e *FormattingError) Error() string {
	return fmt.Sprintf("unrecognized name shape: %q", e.Name)
}

// Split parses a whitespace-separated "First [Middle ...] Last" name.
func Split(full string) (Name, error) {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return Name{}, &FormattingError{Name: full}
	}
	return Name{
		Given:  parts[:len(parts)-1],
		Family: parts[len(parts)-1],
	}, nil
}

// GivenNames joins the given-name tokens with spaces ("First Middle").
func (n Name) GivenNames() string {
	return strings.Join(n.Given, " ")
}

// Direct renders the name in "First Middle Last" order.
func (n Name) Direct() string {
	return n.GivenNames() + " " + n.Family
}

// Inverted renders the name in "Last, First Middle" order.
func (n Name) Inverted() string {
	return n.Family + ", " + n.GivenNames()
}

// DottedInitials renders the given names as "F. M.".
func (n Name) DottedInitials() string {
	initials := make([]string, 0, len(n.Given))
	for _, g := range n.Given {
		initials = append(initials, string([]rune(g)[0])+".")
	}
	return strings.Join(initials, " ")
}

// ConcatInitials renders the given names as "FM", no periods or spaces.
func (n Name) ConcatInitials() string {
	var sb strings.Builder
	for _, g := range n.Given {
		sb.WriteRune([]rune(g)[0])
	}
	return sb.String()
}

// Package bibtex provides the BibTeX entry generator plugin.
package bibtex

import "github.com/yubetsu/cite/style"

// Style implements BibTeX generation. It has a single rendering; the
// output mode is ignored.
type Style struct{}

var _ style.Style = (*Style)(nil)

// Name returns the style identifier.
func (s *Style) Name() string {
	return "bibtex"
}

// Description returns a human-readable style description.
func (s *Style) Description() string {
	return "BibTeX bibliography entry"
}

func init() {
	style.Register(&Style{})
}

// Package apa provides the APA (7th edition) citation style plugin.
package apa

import "github.com/yubetsu/cite/style"

// AuthorCap is the number of authors listed before the APA ellipsis
// truncation kicks in.
var AuthorCap = 20

// Style implements the APA citation style.
type Style struct{}

// Ensure Style implements the interface
var _ style.Style = (*Style)(nil)

// Name returns the style identifier.
func (s *Style) Name() string {
	return "apa"
}

// Description returns a human-readable style description.
func (s *Style) Description() string {
	return "APA style (American Psychological Association)"
}

func init() {
	style.Register(&Style{})
}

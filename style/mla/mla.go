// Package mla provides the MLA citation style plugin.
package mla

import "github.com/yubetsu/cite/style"

// EtAlThreshold is the author count at which the list collapses to the
// first author plus "et al.".
var EtAlThreshold = 3

// Style implements the MLA citation style.
type Style struct{}

var _ style.Style = (*Style)(nil)

// Name returns the style identifier.
func (s *Style) Name() string {
	return "mla"
}

// Description returns a human-readable style description.
func (s *Style) Description() string {
	return "MLA style (Modern Language Association)"
}

func init() {
	style.Register(&Style{})
}

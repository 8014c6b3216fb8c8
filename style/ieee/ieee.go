// Package ieee provides the IEEE citation style plugin.
package ieee

import "github.com/yubetsu/cite/style"

// EtAlCap is the author count at which the reference-list form collapses
// to the first author plus "et al.".
var EtAlCap = 6

// Style implements the IEEE citation style.
type Style struct{}

var _ style.Style = (*Style)(nil)

// Name returns the style identifier.
func (s *Style) Name() string {
	return "ieee"
}

// Description returns a human-readable style description.
func (s *Style) Description() string {
	return "IEEE style (Institute of Electrical and Electronics Engineers)"
}

func init() {
	style.Register(&Style{})
}

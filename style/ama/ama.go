// Package ama provides the AMA citation style plugin.
package ama

import "github.com/yubetsu/cite/style"

var (
	// ListCap is the most authors rendered in full before truncation.
	ListCap = 6

	// EtAlCount is how many authors are kept ahead of "et al." when the
	// list is truncated.
	EtAlCount = 3
)

// Style implements the AMA citation style.
type Style struct{}

var _ style.Style = (*Style)(nil)

// Name returns the style identifier.
func (s *Style) Name() string {
	return "ama"
}

// Description returns a human-readable style description.
func (s *Style) Description() string {
	return "AMA style (American Medical Association)"
}

func init() {
	style.Register(&Style{})
}

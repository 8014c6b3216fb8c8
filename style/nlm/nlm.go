// Package nlm provides the NLM citation style plugin.
package nlm

import "github.com/yubetsu/cite/style"

var (
	// ListCap is the most authors rendered in full before truncation.
	ListCap = 3

	// EtAlCount is how many authors are kept ahead of "et al." when the
	// list is truncated.
	EtAlCount = 3
)

// Style implements the NLM citation style.
type Style struct{}

var _ style.Style = (*Style)(nil)

// Name returns the style identifier.
func (s *Style) Name() string {
	return "nlm"
}

// Description returns a human-readable style description.
func (s *Style) Description() string {
	return "NLM style (National Library of Medicine)"
}

func init() {
	style.Register(&Style{})
}

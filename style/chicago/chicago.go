// Package chicago provides the Chicago citation style plugin.
package chicago

import "github.com/yubetsu/cite/style"

// ListCap is the most authors rendered in full; longer lists collapse to
// the first author plus "et al.".
var ListCap = 3

// Style implements the Chicago citation style.
type Style struct{}

var _ style.Style = (*Style)(nil)

// Name returns the style identifier.
func (s *Style) Name() string {
	return "chicago"
}

// Description returns a human-readable style description.
func (s *Style) Description() string {
	return "Chicago style (The Chicago Manual of Style)"
}

func init() {
	style.Register(&Style{})
}

package style

import (
	"strings"

	"github.com/yubetsu/cite/pub"
)

// Generate renders p in the named format and output mode. formatType is
// case-insensitive (APA, MLA, AMA, NLM, CHICAGO, IEEE, BIBTEX); mode is
// "raw" or "html" and is ignored for bibtex. Unknown values are reported as
// *UnsupportedFormatError.
func Generate(p *pub.Publication, formatType, mode string) (string, error) {
	s, ok := DefaultRegistry.Get(formatType)
	if !ok {
		return "", &UnsupportedFormatError{Kind: "format", Value: formatType}
	}

	// BibTeX has a single rendering; the mode argument is ignored.
	if strings.ToLower(formatType) == "bibtex" {
		return s.Render(p, ModeRaw)
	}

	m, err := ParseMode(mode)
	if err != nil {
		return "", err
	}
	return s.Render(p, m)
}

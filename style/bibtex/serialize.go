package bibtex

import (
	"fmt"
	"strings"

	"github.com/yubetsu/cite/pub"
	"github.com/yubetsu/cite/style"
)

// FormatAuthors joins the authors with " and " in the order and form they
// were given; BibTeX does its own name transformation downstream.
func (s *Style) FormatAuthors(authors []string) (string, error) {
	return strings.Join(authors, " and "), nil
}

// Render emits an @article entry keyed by the record's citekey. Optional
// fields are emitted only when present; the mode argument is ignored.
func (s *Style) Render(p *pub.Publication, _ style.Mode) (string, error) {
	authors, err := s.FormatAuthors(p.Authors())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "@article{%s,\n", p.Citekey())
	fmt.Fprintf(&sb, "  author = {%s},\n", authors)
	fmt.Fprintf(&sb, "  title = {%s},\n", p.Title())
	fmt.Fprintf(&sb, "  journal = {%s},\n", p.Journal())
	fmt.Fprintf(&sb, "  year = {%d},\n", p.Year())
	if p.Volume() != 0 {
		fmt.Fprintf(&sb, "  volume = {%d},\n", p.Volume())
	}
	if p.Issue() != 0 {
		fmt.Fprintf(&sb, "  number = {%d},\n", p.Issue())
	}
	if p.Pages() != "" {
		// Widen the page-range hyphen to the TeX en dash.
		pages := strings.Join(strings.Split(p.Pages(), "-"), "--")
		fmt.Fprintf(&sb, "  pages = {%s},\n", pages)
	}
	if p.DOI() != "" {
		fmt.Fprintf(&sb, "  doi = {%s},\n", p.DOI())
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

package mla

import (
	"fmt"
	"strings"

	"github.com/yubetsu/cite/names"
	"github.com/yubetsu/cite/pub"
	"github.com/yubetsu/cite/style"
)

// FormatAuthors renders the author list by MLA rules: the first author
// last-first, a second author in direct order after "and", and
// EtAlThreshold or more authors collapsed to the first plus "et al.".
func (s *Style) FormatAuthors(authors []string) (string, error) {
	first, err := names.Split(authors[0])
	if err != nil {
		return "", err
	}

	if len(authors) == 1 {
		return first.Inverted(), nil
	}
	if len(authors) >= EtAlThreshold {
		return first.Inverted() + ", et al.", nil
	}

	rest := make([]string, 0, len(authors)-1)
	for _, a := range authors[1:] {
		n, err := names.Split(a)
		if err != nil {
			return "", err
		}
		rest = append(rest, n.Direct())
	}

	all := append([]string{first.Inverted()}, rest...)
	last := all[len(all)-1]
	return strings.Join(all[:len(all)-1], ", ") + ", and " + last, nil
}

// Render assembles the MLA citation:
// Authors. "Title." Journal, vol. V, no. I, pp. P, Year. Database. doi:DOI.
func (s *Style) Render(p *pub.Publication, mode style.Mode) (string, error) {
	authors, err := s.FormatAuthors(p.Authors())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(authors)
	if mode == style.ModeHTML {
		sb.WriteString(". \"<i>" + p.Title() + "</i>.\" ")
		sb.WriteString("<i>" + p.Journal() + "</i>")
	} else {
		sb.WriteString(". \"" + p.Title() + ".\" ")
		sb.WriteString(p.Journal())
	}

	if p.Volume() != 0 {
		sb.WriteString(fmt.Sprintf(", vol. %d", p.Volume()))
	}
	if p.Issue() != 0 {
		sb.WriteString(fmt.Sprintf(", no. %d", p.Issue()))
	}
	if p.Pages() != "" {
		sb.WriteString(", pp. " + p.Pages())
	}
	sb.WriteString(fmt.Sprintf(", %d.", p.Year()))

	if p.Database() != "" {
		if mode == style.ModeHTML {
			sb.WriteString(" <i>" + p.Database() + "</i>.")
		} else {
			sb.WriteString(" " + p.Database() + ".")
		}
	}
	if p.DOI() != "" {
		if mode == style.ModeHTML {
			sb.WriteString(fmt.Sprintf(" doi:<a href='https://doi.org/%s'>%s</a>.", p.DOI(), p.DOI()))
		} else {
			sb.WriteString(" doi:" + p.DOI() + ".")
		}
	}

	return sb.String(), nil
}

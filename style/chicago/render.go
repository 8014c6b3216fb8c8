package chicago

import (
	"fmt"
	"strings"

	"github.com/yubetsu/cite/names"
	"github.com/yubetsu/cite/pub"
	"github.com/yubetsu/cite/style"
)

// FormatAuthors renders the author list by Chicago rules: the first author
// last-first, subsequent authors in direct order, comma-separated with
// "and" before the last; more than ListCap authors collapse to the first
// plus "et al.".
func (s *Style) FormatAuthors(authors []string) (string, error) {
	first, err := names.Split(authors[0])
	if err != nil {
		return "", err
	}
	if len(authors) == 1 {
		return first.Inverted(), nil
	}
	if len(authors) > ListCap {
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

// Render assembles the Chicago citation:
// Authors. "Title." Journal Volume, no. Issue (Month Year): Pages. https://doi.org/DOI.
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
		sb.WriteString(fmt.Sprintf(" %d", p.Volume()))
	}
	if p.Issue() != 0 {
		sb.WriteString(fmt.Sprintf(", no. %d", p.Issue()))
	}

	if p.Month() != 0 {
		sb.WriteString(fmt.Sprintf(" (%s %d)", pub.MonthName(p.Month()), p.Year()))
	} else {
		sb.WriteString(fmt.Sprintf(" (%d)", p.Year()))
	}

	if p.Pages() != "" {
		sb.WriteString(": " + p.Pages())
	}
	sb.WriteString(".")

	if p.DOI() != "" {
		url := "https://doi.org/" + p.DOI()
		if mode == style.ModeHTML {
			sb.WriteString(fmt.Sprintf(" <a href='%s'>%s</a>.", url, url))
		} else {
			sb.WriteString(" " + url + ".")
		}
	}

	return sb.String(), nil
}

// Raw renders p as a plain-text Chicago citation.
func Raw(p *pub.Publication) (string, error) {
	return (&Style{}).Render(p, style.ModeRaw)
}

// HTML renders p as an HTML-tagged Chicago citation.
func HTML(p *pub.Publication) (string, error) {
	return (&Style{}).Render(p, style.ModeHTML)
}

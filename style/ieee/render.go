package ieee

import (
	"fmt"
	"strings"

	"github.com/yubetsu/cite/names"
	"github.com/yubetsu/cite/pub"
	"github.com/yubetsu/cite/style"
)

// formatAuthor renders a single author initials-first: "F. M. Last".
func formatAuthor(author string) (string, error) {
	n, err := names.Split(author)
	if err != nil {
		return "", err
	}
	return n.DottedInitials() + " " + n.Family, nil
}

// FormatAuthors renders the reference-list author form: comma-separated
// with "and" before the last, collapsing to the first author plus
// "et al." at EtAlCap authors.
func (s *Style) FormatAuthors(authors []string) (string, error) {
	formatted := make([]string, 0, len(authors))
	for _, a := range authors {
		f, err := formatAuthor(a)
		if err != nil {
			return "", err
		}
		formatted = append(formatted, f)
	}

	switch {
	case len(formatted) == 1:
		return formatted[0], nil
	case len(formatted) >= EtAlCap:
		return formatted[0] + " et al.", nil
	default:
		last := formatted[len(formatted)-1]
		return strings.Join(formatted[:len(formatted)-1], ", ") + " and " + last, nil
	}
}

// InText renders the in-text author form: the first author's surname,
// followed by "et al." when there is more than one author.
func InText(p *pub.Publication) (string, error) {
	authors := p.Authors()
	first, err := names.Split(authors[0])
	if err != nil {
		return "", err
	}
	if len(authors) > 1 {
		return first.Family + " et al.", nil
	}
	return first.Family, nil
}

// Render assembles the IEEE citation:
// Authors, "Title," Journal, vol. V, no. I, pp. P, Year. doi: DOI.
func (s *Style) Render(p *pub.Publication, mode style.Mode) (string, error) {
	authors, err := s.FormatAuthors(p.Authors())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(authors)
	if mode == style.ModeHTML {
		sb.WriteString(", \"<i>" + p.Title() + "</i>,\" ")
		sb.WriteString("<i>" + p.Journal() + "</i>")
	} else {
		sb.WriteString(", \"" + p.Title() + ",\" ")
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

	if p.DOI() != "" {
		if mode == style.ModeHTML {
			sb.WriteString(fmt.Sprintf(" doi: <a href='https://doi.org/%s'>%s</a>.", p.DOI(), p.DOI()))
		} else {
			sb.WriteString(" doi: " + p.DOI() + ".")
		}
	}

	return sb.String(), nil
}

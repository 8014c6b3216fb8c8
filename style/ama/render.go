package ama

import (
	"fmt"
	"strings"

	"github.com/yubetsu/cite/names"
	"github.com/yubetsu/cite/pub"
	"github.com/yubetsu/cite/style"
)

// formatAuthor renders a single author as "Last FM": family name, space,
// concatenated initials with no periods.
func formatAuthor(author string) (string, error) {
	n, err := names.Split(author)
	if err != nil {
		return "", err
	}
	return n.Family + " " + n.ConcatInitials(), nil
}

// FormatAuthors renders the author list by AMA rules: a comma-separated
// list, truncated to the first EtAlCount authors plus "et al." when more
// than ListCap authors are present.
func (s *Style) FormatAuthors(authors []string) (string, error) {
	formatted := make([]string, 0, len(authors))
	for _, a := range authors {
		f, err := formatAuthor(a)
		if err != nil {
			return "", err
		}
		formatted = append(formatted, f)
	}

	if len(formatted) > ListCap {
		return strings.Join(formatted[:EtAlCount], ", ") + ", et al.", nil
	}
	return strings.Join(formatted, ", "), nil
}

// Render assembles the AMA citation:
// Authors. Title. Journal. Year;Volume(Issue):Pages. doi:DOI.
func (s *Style) Render(p *pub.Publication, mode style.Mode) (string, error) {
	authors, err := s.FormatAuthors(p.Authors())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(authors)
	if mode == style.ModeHTML {
		sb.WriteString(". <i>" + p.Title() + "</i>. ")
		sb.WriteString("<i>" + p.Journal() + "</i>. ")
	} else {
		sb.WriteString(". " + p.Title() + ". ")
		sb.WriteString(p.Journal() + ". ")
	}
	sb.WriteString(fmt.Sprintf("%d", p.Year()))

	var loc strings.Builder
	if p.Volume() != 0 {
		fmt.Fprintf(&loc, "%d", p.Volume())
	}
	if p.Issue() != 0 {
		fmt.Fprintf(&loc, "(%d)", p.Issue())
	}
	if p.Pages() != "" {
		loc.WriteString(":" + p.Pages())
	}
	if loc.Len() > 0 {
		sb.WriteString(";" + loc.String())
	}
	sb.WriteString(".")

	if p.DOI() != "" {
		if mode == style.ModeHTML {
			sb.WriteString(fmt.Sprintf(" doi:<a href='https://doi.org/%s'>%s</a>.", p.DOI(), p.DOI()))
		} else {
			sb.WriteString(" doi:" + p.DOI() + ".")
		}
	}

	return sb.String(), nil
}

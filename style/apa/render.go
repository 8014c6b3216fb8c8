package apa

import (
	"fmt"
	"strings"

	"github.com/yubetsu/cite/names"
	"github.com/yubetsu/cite/pub"
	"github.com/yubetsu/cite/style"
)

// formatAuthor renders a single author as "Last, F. M.".
func formatAuthor(author string) (string, error) {
	n, err := names.Split(author)
	if err != nil {
		return "", err
	}
	return n.Family + ", " + n.DottedInitials(), nil
}

// FormatAuthors renders the author list by APA rules: two authors joined
// with "&", three or more comma-separated with "&" before the last, and
// lists longer than AuthorCap truncated with an ellipsis before the final
// author.
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
	case len(formatted) == 2:
		return formatted[0] + " & " + formatted[1], nil
	case len(formatted) <= AuthorCap:
		last := formatted[len(formatted)-1]
		return strings.Join(formatted[:len(formatted)-1], ", ") + ", & " + last, nil
	default:
		last := formatted[len(formatted)-1]
		return strings.Join(formatted[:AuthorCap-1], ", ") + ", ... " + last, nil
	}
}

// Render assembles the APA citation:
// Authors (Year, Month). Title. Journal, Volume(Issue), Pages. https://doi.org/DOI
func (s *Style) Render(p *pub.Publication, mode style.Mode) (string, error) {
	authors, err := s.FormatAuthors(p.Authors())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(authors)
	sb.WriteString(fmt.Sprintf(" (%d", p.Year()))
	if p.Month() != 0 {
		sb.WriteString(", " + pub.MonthName(p.Month()))
	}
	sb.WriteString("). ")

	if mode == style.ModeHTML {
		sb.WriteString("<i>" + p.Title() + "</i>. ")
		sb.WriteString("<i>" + p.Journal() + "</i>")
	} else {
		sb.WriteString(p.Title() + ". ")
		sb.WriteString(p.Journal())
	}

	if p.Volume() != 0 {
		if mode == style.ModeHTML {
			sb.WriteString(fmt.Sprintf(", <b>%d</b>", p.Volume()))
		} else {
			sb.WriteString(fmt.Sprintf(", %d", p.Volume()))
		}
	}
	if p.Issue() != 0 {
		sb.WriteString(fmt.Sprintf("(%d)", p.Issue()))
	}
	if p.Pages() != "" {
		sb.WriteString(", " + p.Pages())
	}
	sb.WriteString(".")

	if p.DOI() != "" {
		url := "https://doi.org/" + p.DOI()
		if mode == style.ModeHTML {
			sb.WriteString(fmt.Sprintf(" <a href='%s'>%s</a>", url, url))
		} else {
			sb.WriteString(" " + url)
		}
	}

	return sb.String(), nil
}

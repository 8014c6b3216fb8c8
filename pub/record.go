// Package pub holds the publication record that citation styles render.
package pub

import (
	"fmt"
	"strings"
)

// Fields carries the raw field values used to construct a Publication.
type Fields struct {
	// Authors are full personal names in "First [Middle] Last" form.
	Authors []string

	Year  int
	Month int // 1-12, 0 = unset

	Title   string
	Journal string

	Volume int // 0 = unset
	Issue  int // 0 = unset

	Pages      string // conventionally "start-end"
	DOI        string
	Database   string // hosting database, e.g. "Project MUSE"
	AccessDate string

	// Citekey overrides the derived BibTeX key.
	Citekey string
}

// Publication is an immutable journal-article record. Construct one with New;
// all methods are read-only projections.
type Publication struct {
	authors    []string
	year       int
	month      int
	title      string
	journal    string
	volume     int
	issue      int
	pages      string
	doi        string
	database   string
	accessDate string
	citekey    string
}

// New validates f and returns a Publication. Authors, title, journal, and
// year are mandatory; everything else is optional. Failures are reported as
// *ValidationError and no partial record is returned.
func New(f Fields) (*Publication, error) {
	if len(f.Authors) == 0 {
		return nil, &ValidationError{
			Field:   "authors",
			Code:    "required",
			Message: "at least one author is required",
		}
	}
	for i, a := range f.Authors {
		if strings.TrimSpace(a) == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("authors[%d]", i),
				Code:    "required",
				Message: "author name cannot be empty",
			}
		}
	}
	if strings.TrimSpace(f.Title) == "" {
		return nil, &ValidationError{
			Field:   "title",
			Code:    "required",
			Message: "title is required",
		}
	}
	if strings.TrimSpace(f.Journal) == "" {
		return nil, &ValidationError{
			Field:   "journal",
			Code:    "required",
			Message: "journal or container name is required",
		}
	}
	if f.Year == 0 {
		return nil, &ValidationError{
			Field:   "year",
			Code:    "required",
			Message: "year is required",
		}
	}
	if f.Month != 0 && (f.Month < 1 || f.Month > 12) {
		return nil, &ValidationError{
			Field:   "month",
			Code:    "out_of_range",
			Message: fmt.Sprintf("month %d is invalid (must be 1-12)", f.Month),
		}
	}

	p := &Publication{
		authors:    append([]string(nil), f.Authors...),
		year:       f.Year,
		month:      f.Month,
		title:      f.Title,
		journal:    f.Journal,
		volume:     f.Volume,
		issue:      f.Issue,
		pages:      f.Pages,
		doi:        f.DOI,
		database:   f.Database,
		accessDate: f.AccessDate,
		citekey:    f.Citekey,
	}
	if p.citekey == "" {
		p.citekey = deriveCitekey(p.authors[0], p.year)
	}
	return p, nil
}

// deriveCitekey builds the default BibTeX key: the lowercased family-name
// token of the first author (letters only) followed by the year.
func deriveCitekey(author string, year int) string {
	parts := strings.Fields(author)
	family := parts[len(parts)-1]
	family = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, family)
	return strings.ToLower(family) + fmt.Sprintf("%d", year)
}

// Authors returns a copy of the author list.
func (p *Publication) Authors() []string {
	return append([]string(nil), p.authors...)
}

// Year returns the publication year.
func (p *Publication) Year() int { return p.year }

// Month returns the publication month, 0 when unset.
func (p *Publication) Month() int { return p.month }

// Title returns the article title.
func (p *Publication) Title() string { return p.title }

// Journal returns the journal or container name.
func (p *Publication) Journal() string { return p.journal }

// Volume returns the journal volume, 0 when unset.
func (p *Publication) Volume() int { return p.volume }

// Issue returns the issue number, 0 when unset.
func (p *Publication) Issue() int { return p.issue }

// Pages returns the page range, "" when unset.
func (p *Publication) Pages() string { return p.pages }

// DOI returns the DOI, "" when unset.
func (p *Publication) DOI() string { return p.doi }

// Database returns the hosting database name, "" when unset.
func (p *Publication) Database() string { return p.database }

// AccessDate returns the access date, "" when unset.
func (p *Publication) AccessDate() string { return p.accessDate }

// Citekey returns the BibTeX citation key.
func (p *Publication) Citekey() string { return p.citekey }

package ieee

import (
	"testing"

	"github.com/yubetsu/cite/pub"
	"github.com/yubetsu/cite/style"
)

func TestFormatAuthors(t *testing.T) {
	s := &Style{}
	cases := []struct {
		name    string
		authors []string
		want    string
	}{
		{"single initials-first", []string{"John Doe"}, "J. Doe"},
		{"middle initial", []string{"Alice Mary Johnson"}, "A. M. Johnson"},
		{"two joined with and", []string{"John Doe", "Jane Smith"}, "J. Doe and J. Smith"},
		{
			"three comma-separated",
			[]string{"John Doe", "Jane Smith", "Alice Johnson"},
			"J. Doe, J. Smith and A. Johnson",
		},
		{
			"six collapse to et al.",
			[]string{"A One", "B Two", "C Three", "D Four", "E Five", "F Six"},
			"A. One et al.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.FormatAuthors(tc.authors)
			if err != nil {
				t.Fatalf("FormatAuthors failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("FormatAuthors = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInText(t *testing.T) {
	cases := []struct {
		name    string
		authors []string
		want    string
	}{
		{"single surname only", []string{"John Doe"}, "Doe"},
		{"two collapse to et al.", []string{"John Doe", "Jane Smith"}, "Doe et al."},
		{"three collapse to et al.", []string{"John Doe", "Jane Smith", "Alice Johnson"}, "Doe et al."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := pub.New(pub.Fields{
				Authors: tc.authors,
				Year:    2024,
				Title:   "A Study",
				Journal: "Journal of Studies",
			})
			if err != nil {
				t.Fatalf("pub.New failed: %v", err)
			}
			got, err := InText(p)
			if err != nil {
				t.Fatalf("InText failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("InText = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_Raw(t *testing.T) {
	p, err := pub.New(pub.Fields{
		Authors: []string{"John Doe", "Jane Smith"},
		Year:    2024,
		Title:   "A Comprehensive Study",
		Journal: "Journal of Studies",
		Volume:  34,
		Issue:   2,
		Pages:   "123-145",
		DOI:     "10.1000/j.jos.2024.001",
	})
	if err != nil {
		t.Fatalf("pub.New failed: %v", err)
	}

	got, err := (&Style{}).Render(p, style.ModeRaw)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := `J. Doe and J. Smith, "A Comprehensive Study," Journal of Studies, vol. 34, no. 2, pp. 123-145, 2024.` +
		` doi: 10.1000/j.jos.2024.001.`
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_HTML(t *testing.T) {
	p, err := pub.New(pub.Fields{
		Authors: []string{"John Doe"},
		Year:    2024,
		Title:   "A Study",
		Journal: "Journal of Studies",
		DOI:     "10.1000/j.jos.2024.001",
	})
	if err != nil {
		t.Fatalf("pub.New failed: %v", err)
	}

	got, err := (&Style{}).Render(p, style.ModeHTML)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := `J. Doe, "<i>A Study</i>," <i>Journal of Studies</i>, 2024.` +
		` doi: <a href='https://doi.org/10.1000/j.jos.2024.001'>10.1000/j.jos.2024.001</a>.`
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_OmitsAbsentOptionals(t *testing.T) {
	p, err := pub.New(pub.Fields{
		Authors: []string{"John Doe"},
		Year:    2024,
		Title:   "A Study",
		Journal: "Journal of Studies",
	})
	if err != nil {
		t.Fatalf("pub.New failed: %v", err)
	}

	got, err := (&Style{}).Render(p, style.ModeRaw)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := `J. Doe, "A Study," Journal of Studies, 2024.`
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

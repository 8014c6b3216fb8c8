package chicago

import (
	"testing"

	"github.com/yubetsu/cite/pub"
)

func TestFormatAuthors(t *testing.T) {
	s := &Style{}
	cases := []struct {
		name    string
		authors []string
		want    string
	}{
		{"single inverted", []string{"John Doe"}, "Doe, John"},
		{"two", []string{"John Doe", "Jane Smith"}, "Doe, John, and Jane Smith"},
		{
			"three listed in full",
			[]string{"John Doe", "Jane Smith", "Alice Johnson"},
			"Doe, John, Jane Smith, and Alice Johnson",
		},
		{
			"four collapse to et al.",
			[]string{"John Doe", "Jane Smith", "Alice Johnson", "Bob Brown"},
			"Doe, John, et al.",
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

func TestRender_Raw(t *testing.T) {
	p, err := pub.New(pub.Fields{
		Authors: []string{"John Doe", "Jane Smith"},
		Year:    2024,
		Month:   9,
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

	got, err := Raw(p)
	if err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	want := `Doe, John, and Jane Smith. "A Comprehensive Study." Journal of Studies 34, no. 2 (September 2024): 123-145.` +
		` https://doi.org/10.1000/j.jos.2024.001.`
	if got != want {
		t.Errorf("Raw = %q, want %q", got, want)
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

	got, err := HTML(p)
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	want := `Doe, John. "<i>A Study</i>." <i>Journal of Studies</i> (2024).` +
		` <a href='https://doi.org/10.1000/j.jos.2024.001'>https://doi.org/10.1000/j.jos.2024.001</a>.`
	if got != want {
		t.Errorf("HTML = %q, want %q", got, want)
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

	got, err := Raw(p)
	if err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	want := `Doe, John. "A Study." Journal of Studies (2024).`
	if got != want {
		t.Errorf("Raw = %q, want %q", got, want)
	}
}

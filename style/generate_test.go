package style_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yubetsu/cite/pub"
	"github.com/yubetsu/cite/style"

	// Register style plugins
	_ "github.com/yubetsu/cite/style/ama"
	_ "github.com/yubetsu/cite/style/apa"
	_ "github.com/yubetsu/cite/style/bibtex"
	_ "github.com/yubetsu/cite/style/chicago"
	_ "github.com/yubetsu/cite/style/ieee"
	_ "github.com/yubetsu/cite/style/mla"
	_ "github.com/yubetsu/cite/style/nlm"
)

func testPub(t *testing.T) *pub.Publication {
	t.Helper()
	p, err := pub.New(pub.Fields{
		Authors: []string{"John Doe", "Jane Smith"},
		Year:    2024,
		Title:   "A Study",
		Journal: "Journal of Studies",
		Volume:  34,
		Issue:   2,
		Pages:   "123-145",
		DOI:     "10.1000/j.jos.2024.001",
	})
	if err != nil {
		t.Fatalf("pub.New failed: %v", err)
	}
	return p
}

func TestGenerate_AllStylesRegistered(t *testing.T) {
	for _, name := range []string{"apa", "mla", "ama", "nlm", "chicago", "ieee", "bibtex"} {
		if _, ok := style.Get(name); !ok {
			t.Errorf("style %q is not registered", name)
		}
	}
}

func TestGenerate_CaseInsensitiveFormat(t *testing.T) {
	p := testPub(t)
	lower, err := style.Generate(p, "apa", "raw")
	if err != nil {
		t.Fatalf("Generate(apa) failed: %v", err)
	}
	upper, err := style.Generate(p, "APA", "raw")
	if err != nil {
		t.Fatalf("Generate(APA) failed: %v", err)
	}
	if lower != upper {
		t.Errorf("Generate(APA) = %q, want %q", upper, lower)
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	_, err := style.Generate(testPub(t), "BOGUS", "raw")
	if err == nil {
		t.Fatal("Generate(BOGUS) succeeded, want *UnsupportedFormatError")
	}
	var uerr *style.UnsupportedFormatError
	if !errors.As(err, &uerr) {
		t.Fatalf("error type = %T, want *UnsupportedFormatError", err)
	}
	if uerr.Kind != "format" {
		t.Errorf("Kind = %q, want %q", uerr.Kind, "format")
	}
}

func TestGenerate_UnknownMode(t *testing.T) {
	_, err := style.Generate(testPub(t), "APA", "pdf")
	if err == nil {
		t.Fatal("Generate(APA, pdf) succeeded, want *UnsupportedFormatError")
	}
	var uerr *style.UnsupportedFormatError
	if !errors.As(err, &uerr) {
		t.Fatalf("error type = %T, want *UnsupportedFormatError", err)
	}
	if uerr.Kind != "style" {
		t.Errorf("Kind = %q, want %q", uerr.Kind, "style")
	}
}

func TestGenerate_BibtexIgnoresMode(t *testing.T) {
	p := testPub(t)
	want, err := style.Generate(p, "BIBTEX", "raw")
	if err != nil {
		t.Fatalf("Generate(BIBTEX, raw) failed: %v", err)
	}
	got, err := style.Generate(p, "BIBTEX", "pdf")
	if err != nil {
		t.Fatalf("Generate(BIBTEX, pdf) failed: %v", err)
	}
	if got != want {
		t.Errorf("Generate(BIBTEX, pdf) = %q, want %q", got, want)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	p := testPub(t)
	for _, name := range []string{"apa", "mla", "ama", "nlm", "chicago", "ieee", "bibtex"} {
		for _, mode := range []string{"raw", "html"} {
			first, err := style.Generate(p, name, mode)
			if err != nil {
				t.Fatalf("Generate(%s, %s) failed: %v", name, mode, err)
			}
			second, err := style.Generate(p, name, mode)
			if err != nil {
				t.Fatalf("Generate(%s, %s) failed on repeat: %v", name, mode, err)
			}
			if first != second {
				t.Errorf("Generate(%s, %s) changed between calls", name, mode)
			}
		}
	}
}

func TestGenerate_OmitsAbsentDOI(t *testing.T) {
	p, err := pub.New(pub.Fields{
		Authors: []string{"John Doe"},
		Year:    2024,
		Title:   "A Study",
		Journal: "Journal of Studies",
	})
	if err != nil {
		t.Fatalf("pub.New failed: %v", err)
	}

	for _, name := range []string{"apa", "mla", "ama", "nlm", "chicago", "ieee", "bibtex"} {
		for _, mode := range []string{"raw", "html"} {
			citation, err := style.Generate(p, name, mode)
			if err != nil {
				t.Fatalf("Generate(%s, %s) failed: %v", name, mode, err)
			}
			if containsAny(citation, "doi.org", "doi:", "doi = ") {
				t.Errorf("Generate(%s, %s) = %q; record has no DOI", name, mode, citation)
			}
		}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

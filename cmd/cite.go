package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yubetsu/cite/limits"
	"github.com/yubetsu/cite/pub"
	"github.com/yubetsu/cite/style"
)

var (
	citeAuthors    []string
	citeYear       int
	citeMonth      int
	citeTitle      string
	citeJournal    string
	citeVolume     int
	citeIssue      int
	citePages      string
	citeDOI        string
	citeDatabase   string
	citeAccessDate string
	citeCitekey    string
	citeFormat     string
	citeMode       string
	citeOutput     string
	limitsFile     string
)

var citeCmd = &cobra.Command{
	Use:   "cite",
	Short: "Format a single citation",
	Long: `Format one journal-article citation from field flags.

Authors, year, title, and journal are mandatory; everything else is
optional and omitted from the citation when absent.

Examples:
  cite cite --author "John Doe" --author "Jane Smith" --year 2024 \
    --title "A Comprehensive Study" --journal "Journal of Studies" \
    --volume 34 --issue 2 --pages 123-145 --doi 10.1000/j.jos.2024.001 \
    --format apa --mode raw

  # BibTeX entry (mode is ignored)
  cite cite --author "Jane Smith" --year 2024 --title "A Study" \
    --journal "Journal of Studies" -f bibtex`,
	RunE: runCite,
}

func init() {
	citeCmd.Flags().StringArrayVarP(&citeAuthors, "author", "a", nil, "Author name, repeatable ('First [Middle] Last')")
	citeCmd.Flags().IntVarP(&citeYear, "year", "y", 0, "Publication year")
	citeCmd.Flags().IntVar(&citeMonth, "month", 0, "Publication month (1-12)")
	citeCmd.Flags().StringVarP(&citeTitle, "title", "t", "", "Article title")
	citeCmd.Flags().StringVarP(&citeJournal, "journal", "j", "", "Journal or container name")
	citeCmd.Flags().IntVar(&citeVolume, "volume", 0, "Journal volume")
	citeCmd.Flags().IntVar(&citeIssue, "issue", 0, "Journal issue")
	citeCmd.Flags().StringVar(&citePages, "pages", "", "Page range (e.g., 123-145)")
	citeCmd.Flags().StringVar(&citeDOI, "doi", "", "DOI")
	citeCmd.Flags().StringVar(&citeDatabase, "database", "", "Hosting database name")
	citeCmd.Flags().StringVar(&citeAccessDate, "access-date", "", "Date of access")
	citeCmd.Flags().StringVar(&citeCitekey, "citekey", "", "BibTeX citation key (default: derived)")
	citeCmd.Flags().StringVarP(&citeFormat, "format", "f", "apa", "Citation format (apa, mla, ama, nlm, chicago, ieee, bibtex)")
	citeCmd.Flags().StringVarP(&citeMode, "mode", "m", "raw", "Output mode (raw, html)")
	citeCmd.Flags().StringVarP(&citeOutput, "output", "o", "", "Output file (default: stdout)")
	citeCmd.Flags().StringVar(&limitsFile, "limits-file", "", "YAML file overriding per-style author caps")
}

func runCite(cmd *cobra.Command, args []string) (err error) {
	if limitsFile != "" {
		l, err := limits.Load(limitsFile)
		if err != nil {
			return fmt.Errorf("loading limits: %w", err)
		}
		l.Apply()
		slog.Debug("applied author-cap overrides", "file", limitsFile)
	}

	p, err := pub.New(pub.Fields{
		Authors:    citeAuthors,
		Year:       citeYear,
		Month:      citeMonth,
		Title:      citeTitle,
		Journal:    citeJournal,
		Volume:     citeVolume,
		Issue:      citeIssue,
		Pages:      citePages,
		DOI:        citeDOI,
		Database:   citeDatabase,
		AccessDate: citeAccessDate,
		Citekey:    citeCitekey,
	})
	if err != nil {
		return fmt.Errorf("invalid publication: %w", err)
	}

	citation, err := style.Generate(p, citeFormat, citeMode)
	if err != nil {
		return err
	}

	var output *os.File
	if citeOutput != "" {
		f, err := os.Create(citeOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = os.Stdout
	}

	fmt.Fprintln(output, citation)
	return nil
}

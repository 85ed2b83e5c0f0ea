package lookup

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// DOIClient resolves citations through doi.org content negotiation: an APA
// rendering for the long citation and a BibTeX record from which the short
// "<authors>, <year>" form is synthesized.
type DOIClient struct {
	BaseURL string
	Client  *Client
}

var _ CitationResolver = (*DOIClient)(nil)

// mojibake repairs for known bad records in the upstream journal metadata.
var citationRepairs = strings.NewReplacer(
	"Gotz", "Götz",
	"Ã¢Â€Â“", "-",
)

// Citations implements CitationResolver.
func (c *DOIClient) Citations(ctx context.Context, doi string) (string, string, error) {
	target := strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(doi, "/")

	long, err := c.Client.getText(ctx, target, "text/x-bibliography; style=apa")
	if err != nil {
		return "", "", fmt.Errorf("fetching citation for %s: %w", doi, err)
	}
	long = citationRepairs.Replace(long)

	bibtex, err := c.Client.getText(ctx, target, "application/x-bibtex")
	if err != nil {
		return "", "", fmt.Errorf("fetching bibtex for %s: %w", doi, err)
	}
	bibtex = citationRepairs.Replace(bibtex)

	author, year, err := parseBibtex(bibtex)
	if err != nil {
		return "", "", fmt.Errorf("parsing bibtex for %s: %w", doi, err)
	}
	return long, ShortCitation(author, year), nil
}

var (
	bibtexAuthorRe = regexp.MustCompile(`(?i)author\s*=\s*[{"]([^}"]+)[}"]`)
	bibtexYearRe   = regexp.MustCompile(`(?i)year\s*=\s*[{"]?(\d{4})`)
)

// parseBibtex extracts the author and year fields of a BibTeX record.
func parseBibtex(bibtex string) (author, year string, err error) {
	am := bibtexAuthorRe.FindStringSubmatch(bibtex)
	if am == nil {
		return "", "", fmt.Errorf("no author field")
	}
	ym := bibtexYearRe.FindStringSubmatch(bibtex)
	if ym == nil {
		return "", "", fmt.Errorf("no year field")
	}
	return strings.TrimSpace(am[1]), ym[1], nil
}

// ShortCitation renders the short citation form "<authors>, <year>" from a
// BibTeX author field ("Family, Given and Family, Given ...").
//
// Up to three authors are listed by family name with the last joined by an
// ampersand; four or more collapse to "<first author> et al.". The cutoff
// and the ampersand join are load-bearing: they must match the short
// citations already in the published dataset.
func ShortCitation(authorField, year string) string {
	var authors string
	if strings.Contains(authorField, " and ") {
		parts := strings.Split(authorField, " and ")
		names := make([]string, len(parts))
		for i, p := range parts {
			names[i] = familyName(p)
		}
		if len(names) <= 3 {
			authors = strings.Join(names, ", ")
			if i := strings.LastIndex(authors, ", "); i >= 0 {
				authors = authors[:i] + " & " + authors[i+2:]
			}
		} else {
			authors = names[0] + " et al."
		}
	} else {
		authors = familyName(authorField)
	}
	return fmt.Sprintf("%s, %s", authors, year)
}

// familyName returns the text before the first comma of a BibTeX author name.
func familyName(name string) string {
	return strings.TrimSpace(strings.Split(name, ",")[0])
}

package build

import (
	"context"
	"strings"

	"github.com/audiogrambase/ingest/internal/model"
	"github.com/audiogrambase/ingest/internal/sheet"
)

// sourceRepairs fixes a recurring mojibake artifact in the sheet's citation
// columns (the author name Møhl survived a double encoding).
var sourceRepairs = strings.NewReplacer("MÃ¸hl", "Møhl")

// buildPublications reconciles publications in two passes. Pass one builds
// one publication per distinct DOI, asking the citation service for the long
// and short forms and falling back to the sheet's own citation columns when
// the service fails. Pass two adds the citation-only publications, those
// whose rows carry no DOI, with ids continuing after pass one.
func (p *Pipeline) buildPublications(ctx context.Context, sh *sheet.Sheet, reg *model.Registry) {
	for _, doi := range sh.DistinctValues("DOI") {
		doi = strings.TrimSpace(doi)

		long, short, err := p.Citations.Citations(ctx, doi)
		if err != nil {
			// Wrong or unregistered DOI; the sheet still has usable text.
			p.Log.Warn("citation lookup failed, using sheet text", "doi", doi, "error", err)
			first := firstRowForDOI(sh, doi)
			long = sourceRepairs.Replace(first["Source long"])
			short = sourceRepairs.Replace(first["Source short"])
		}

		reg.AddPublication(&model.Publication{
			DOI:           model.Text(doi),
			CitationLong:  long,
			CitationShort: short,
		})
	}

	for _, cite := range sh.DistinctValues("Source long") {
		first := sh.RowsWhere("Source long", cite)[0]
		if !sheet.IsBlank(first["DOI"]) {
			continue
		}
		reg.AddPublication(&model.Publication{
			CitationLong:  sourceRepairs.Replace(cite),
			CitationShort: sourceRepairs.Replace(first["Source short"]),
		})
	}
	p.Log.Info("publications built", "count", len(reg.Publications))
}

// firstRowForDOI returns the first row carrying the DOI, tolerating
// surrounding whitespace in the cell.
func firstRowForDOI(sh *sheet.Sheet, doi string) sheet.Row {
	for _, row := range sh.Rows {
		if strings.TrimSpace(row["DOI"]) == doi {
			return row
		}
	}
	return sheet.Row{}
}

// buildAudiogramPublications links every experiment to its publications. For
// each distinct long citation, the distinct experiment ids of its rows are
// linked to the publication found by DOI when the rows carry one, otherwise
// by the citation text.
func (p *Pipeline) buildAudiogramPublications(sh *sheet.Sheet, reg *model.Registry) {
	for _, cite := range sh.DistinctValues("Source long") {
		rows := sh.RowsWhere("Source long", cite)

		seen := make(map[int64]bool)
		var expIDs []int64
		for _, row := range rows {
			if sheet.IsBlank(row["Audiogram ID"]) {
				continue
			}
			id, err := floorInt(row["Audiogram ID"])
			if err != nil {
				p.Log.Warn("skipping publication link, bad Audiogram ID",
					"value", row["Audiogram ID"], "error", err)
				continue
			}
			if !seen[id] {
				seen[id] = true
				expIDs = append(expIDs, id)
			}
		}

		var pubID int64
		var ok bool
		if doi := rows[0]["DOI"]; !sheet.IsBlank(doi) {
			pubID, ok = reg.PublicationIDByDOI(strings.TrimSpace(doi))
		} else {
			pubID, ok = reg.PublicationIDByCitation(sourceRepairs.Replace(cite))
		}
		if !ok {
			p.Log.Warn("no publication for citation, links skipped", "citation", cite)
			continue
		}

		for _, expID := range expIDs {
			reg.AudiogramPublications = append(reg.AudiogramPublications, &model.AudiogramPublication{
				AudiogramExperimentID: expID,
				PublicationID:         pubID,
			})
		}
	}
	p.Log.Info("audiogram publications built", "count", len(reg.AudiogramPublications))
}

// Package taxonomy reconstructs the taxonomic hierarchy for the species in
// an import: lineage resolution through an external service, deduplicated
// taxon registration with parent linking, vernacular-name enrichment, and
// nested-set indexing of the finished tree.
package taxonomy

import (
	"context"
	"log/slog"

	"github.com/audiogrambase/ingest/internal/lookup"
	"github.com/audiogrambase/ingest/internal/model"
)

// Resolver registers taxa for scientific names using the injected lineage
// and vernacular services.
type Resolver struct {
	Lineages    lookup.LineageResolver
	Vernaculars lookup.VernacularResolver
	Log         *slog.Logger
}

// Populate resolves every scientific name and registers its full lineage in
// the registry. Failures are per-name: a name whose lookup fails is logged
// and skipped, the rest of the import continues (partial taxonomy is
// acceptable; a missing root is caught later by the indexer).
func (r *Resolver) Populate(ctx context.Context, reg *model.Registry, scientificNames []string) {
	for _, name := range scientificNames {
		lineage, err := r.Lineages.Lineage(ctx, name)
		if err != nil {
			r.Log.Warn("skipping taxon, lineage lookup failed", "name", name, "error", err)
			continue
		}
		r.registerLineage(ctx, reg, lineage)
	}
}

// registerLineage walks the lineage senior to junior, registering or reusing
// one taxon per present rank. Each taxon links to the nearest senior rank
// actually present; absent ranks are skipped, not invented.
func (r *Resolver) registerLineage(ctx context.Context, reg *model.Registry, lineage *lookup.Lineage) {
	var parent *model.Taxon
	var species *model.Taxon

	for _, rank := range lookup.Ranks {
		entry := lineage.At(rank)
		if entry == nil {
			continue
		}

		taxon := reg.TaxonByName(entry.Name)
		if taxon == nil {
			taxon = reg.AddTaxon(&model.Taxon{
				UniqueName: entry.Name,
				Rank:       rank,
				OttID:      entry.OttID,
			})
		}
		if rank == "species" && !taxon.VernacularEN.Valid && !taxon.VernacularDE.Valid {
			r.addVernacular(ctx, taxon)
		}
		if parent != nil && !taxon.Parent.Valid {
			taxon.Parent = model.Int(parent.OttID)
		}

		switch rank {
		case "species":
			species = taxon
		case "subspecies":
			// A subspecies without names of its own inherits the species'.
			if species != nil && !taxon.VernacularEN.Valid && !taxon.VernacularDE.Valid {
				taxon.VernacularEN = species.VernacularEN
				taxon.VernacularDE = species.VernacularDE
			}
		}
		parent = taxon
	}
}

// addVernacular fills in common names, curated cache first, external lookup
// second. On total failure the fields stay unset.
func (r *Resolver) addVernacular(ctx context.Context, taxon *model.Taxon) {
	if v, ok := KnownVernacular(taxon.UniqueName); ok {
		taxon.VernacularEN = model.Text(v.English)
		taxon.VernacularDE = model.Text(v.German)
		return
	}
	v, err := r.Vernaculars.Vernacular(ctx, taxon.UniqueName)
	if err != nil {
		r.Log.Warn("no vernacular names", "name", taxon.UniqueName, "error", err)
		return
	}
	if v.English != "" {
		taxon.VernacularEN = model.Text(v.English)
	}
	if v.German != "" {
		taxon.VernacularDE = model.Text(v.German)
	}
}

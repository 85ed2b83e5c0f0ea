package taxonomy

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/audiogrambase/ingest/internal/lookup"
	"github.com/audiogrambase/ingest/internal/model"
)

type fakeLineages struct {
	lineages map[string]*lookup.Lineage
}

func (f *fakeLineages) Lineage(_ context.Context, name string) (*lookup.Lineage, error) {
	l, ok := f.lineages[name]
	if !ok {
		return nil, fmt.Errorf("no lineage for %q", name)
	}
	return l, nil
}

type fakeVernaculars struct {
	names map[string]*lookup.Vernacular
	calls []string
}

func (f *fakeVernaculars) Vernacular(_ context.Context, name string) (*lookup.Vernacular, error) {
	f.calls = append(f.calls, name)
	v, ok := f.names[name]
	if !ok {
		return nil, fmt.Errorf("no vernacular for %q", name)
	}
	return v, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orcaLineage() *lookup.Lineage {
	return lookup.NewLineage(map[string]*lookup.RankEntry{
		"phylum":  {Name: "Chordata", OttID: 125642},
		"class":   {Name: "Mammalia", OttID: 244265},
		"order":   {Name: "Artiodactyla", OttID: 622916},
		"family":  {Name: "Delphinidae", OttID: 698420},
		"genus":   {Name: "Orcinus", OttID: 124214},
		"species": {Name: "Orcinus orca", OttID: 124215},
	})
}

func dolphinLineage() *lookup.Lineage {
	return lookup.NewLineage(map[string]*lookup.RankEntry{
		"phylum":  {Name: "Chordata", OttID: 125642},
		"class":   {Name: "Mammalia", OttID: 244265},
		"order":   {Name: "Artiodactyla", OttID: 622916},
		"family":  {Name: "Delphinidae", OttID: 698420},
		"genus":   {Name: "Tursiops", OttID: 1022063},
		"species": {Name: "Tursiops truncatus", OttID: 124230},
	})
}

func TestPopulateRegistersFullLineage(t *testing.T) {
	reg := model.NewRegistry()
	r := &Resolver{
		Lineages:    &fakeLineages{lineages: map[string]*lookup.Lineage{"Orcinus orca": orcaLineage()}},
		Vernaculars: &fakeVernaculars{},
		Log:         discard(),
	}

	r.Populate(context.Background(), reg, []string{"Orcinus orca"})

	if len(reg.Taxa) != 6 {
		t.Fatalf("taxa = %d, want 6", len(reg.Taxa))
	}

	species := reg.TaxonByName("Orcinus orca")
	if species == nil || species.Rank != "species" || species.OttID != 124215 {
		t.Fatalf("species = %+v", species)
	}
	genus := reg.TaxonByName("Orcinus")
	if !species.Parent.Valid || species.Parent.Int64 != genus.OttID {
		t.Errorf("species parent = %+v, want genus ott id %d", species.Parent, genus.OttID)
	}
	phylum := reg.TaxonByName("Chordata")
	if phylum.Parent.Valid {
		t.Errorf("phylum must have no parent, got %+v", phylum.Parent)
	}
}

func TestPopulateSharedAncestorsRegisteredOnce(t *testing.T) {
	reg := model.NewRegistry()
	r := &Resolver{
		Lineages: &fakeLineages{lineages: map[string]*lookup.Lineage{
			"Orcinus orca":       orcaLineage(),
			"Tursiops truncatus": dolphinLineage(),
		}},
		Vernaculars: &fakeVernaculars{},
		Log:         discard(),
	}

	r.Populate(context.Background(), reg, []string{"Orcinus orca", "Tursiops truncatus"})

	// Shared ranks phylum..family once, plus two genera and two species.
	if len(reg.Taxa) != 8 {
		t.Fatalf("taxa = %d, want 8", len(reg.Taxa))
	}
	seen := map[string]int{}
	for _, taxon := range reg.Taxa {
		seen[taxon.UniqueName]++
	}
	for name, n := range seen {
		if n != 1 {
			t.Errorf("taxon %q registered %d times", name, n)
		}
	}
}

func TestPopulateSkipsAbsentRanks(t *testing.T) {
	reg := model.NewRegistry()
	gapped := lookup.NewLineage(map[string]*lookup.RankEntry{
		"phylum":  {Name: "Chordata", OttID: 125642},
		"family":  {Name: "Delphinidae", OttID: 698420},
		"species": {Name: "Orcinus orca", OttID: 124215},
	})
	r := &Resolver{
		Lineages:    &fakeLineages{lineages: map[string]*lookup.Lineage{"Orcinus orca": gapped}},
		Vernaculars: &fakeVernaculars{},
		Log:         discard(),
	}

	r.Populate(context.Background(), reg, []string{"Orcinus orca"})

	if len(reg.Taxa) != 3 {
		t.Fatalf("taxa = %d, want 3", len(reg.Taxa))
	}
	family := reg.TaxonByName("Delphinidae")
	if !family.Parent.Valid || family.Parent.Int64 != 125642 {
		t.Errorf("family parent = %+v, want phylum ott id (nearest present senior rank)", family.Parent)
	}
	species := reg.TaxonByName("Orcinus orca")
	if !species.Parent.Valid || species.Parent.Int64 != 698420 {
		t.Errorf("species parent = %+v, want family ott id", species.Parent)
	}
}

func TestPopulateSkipsFailedNames(t *testing.T) {
	reg := model.NewRegistry()
	r := &Resolver{
		Lineages:    &fakeLineages{lineages: map[string]*lookup.Lineage{"Orcinus orca": orcaLineage()}},
		Vernaculars: &fakeVernaculars{},
		Log:         discard(),
	}

	r.Populate(context.Background(), reg, []string{"Monstrum marinum", "Orcinus orca"})

	if len(reg.Taxa) != 6 {
		t.Errorf("taxa = %d, want 6 (failed name skipped, rest imported)", len(reg.Taxa))
	}
	if reg.TaxonByName("Orcinus orca") == nil {
		t.Error("lineage after the failed one was not registered")
	}
}

func TestVernacularCacheWinsOverLookup(t *testing.T) {
	reg := model.NewRegistry()
	verns := &fakeVernaculars{}
	r := &Resolver{
		Lineages:    &fakeLineages{lineages: map[string]*lookup.Lineage{"Orcinus orca": orcaLineage()}},
		Vernaculars: verns,
		Log:         discard(),
	}

	r.Populate(context.Background(), reg, []string{"Orcinus orca"})

	species := reg.TaxonByName("Orcinus orca")
	if species.VernacularEN.String != "Orca" || species.VernacularDE.String != "Schwertwal" {
		t.Errorf("vernaculars = %q / %q", species.VernacularEN.String, species.VernacularDE.String)
	}
	if len(verns.calls) != 0 {
		t.Errorf("external vernacular lookups = %v, want none for cached species", verns.calls)
	}
}

func TestVernacularLookupForUncachedSpecies(t *testing.T) {
	reg := model.NewRegistry()
	uncached := lookup.NewLineage(map[string]*lookup.RankEntry{
		"phylum":  {Name: "Chordata", OttID: 125642},
		"species": {Name: "Balaena mysticetus", OttID: 336231},
	})
	verns := &fakeVernaculars{names: map[string]*lookup.Vernacular{
		"Balaena mysticetus": {English: "Bowhead whale", German: "Grönlandwal"},
	}}
	r := &Resolver{
		Lineages:    &fakeLineages{lineages: map[string]*lookup.Lineage{"Balaena mysticetus": uncached}},
		Vernaculars: verns,
		Log:         discard(),
	}

	r.Populate(context.Background(), reg, []string{"Balaena mysticetus"})

	species := reg.TaxonByName("Balaena mysticetus")
	if species.VernacularEN.String != "Bowhead whale" || species.VernacularDE.String != "Grönlandwal" {
		t.Errorf("vernaculars = %q / %q", species.VernacularEN.String, species.VernacularDE.String)
	}
	if len(verns.calls) != 1 {
		t.Errorf("external lookups = %v, want exactly one", verns.calls)
	}
}

func TestSubspeciesInheritsSpeciesVernaculars(t *testing.T) {
	reg := model.NewRegistry()
	withSub := lookup.NewLineage(map[string]*lookup.RankEntry{
		"phylum":     {Name: "Chordata", OttID: 125642},
		"species":    {Name: "Phoca vitulina", OttID: 180546},
		"subspecies": {Name: "Phoca vitulina concolor", OttID: 180547},
	})
	r := &Resolver{
		Lineages:    &fakeLineages{lineages: map[string]*lookup.Lineage{"Phoca vitulina concolor": withSub}},
		Vernaculars: &fakeVernaculars{},
		Log:         discard(),
	}

	r.Populate(context.Background(), reg, []string{"Phoca vitulina concolor"})

	sub := reg.TaxonByName("Phoca vitulina concolor")
	if sub == nil {
		t.Fatal("subspecies not registered")
	}
	if sub.VernacularEN.String != "Harbour seal" || sub.VernacularDE.String != "Seehund" {
		t.Errorf("subspecies vernaculars = %q / %q, want inherited from species",
			sub.VernacularEN.String, sub.VernacularDE.String)
	}
	if !sub.Parent.Valid || sub.Parent.Int64 != 180546 {
		t.Errorf("subspecies parent = %+v, want species ott id", sub.Parent)
	}
}

func TestKnownVernacular(t *testing.T) {
	v, ok := KnownVernacular("Orcinus orca")
	if !ok || v.English != "Orca" || v.German != "Schwertwal" {
		t.Errorf("KnownVernacular(Orcinus orca) = %+v, %v", v, ok)
	}
	if _, ok := KnownVernacular("Monstrum marinum"); ok {
		t.Error("unknown name should miss the cache")
	}
}

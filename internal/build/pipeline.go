// Package build contains the entity builders that turn the loaded sheet into
// a populated registry. Each builder consumes the full row sequence plus the
// registry, resolving foreign keys against entities registered by earlier
// builders.
//
// Builders run in dependency order: facilities and the static reference
// lists first, then experiments (facility/method ids), taxonomy, individual
// animals (taxon ids), test-animal links, data points, publications, and the
// audiogram-publication links. Row-level failures are logged and skipped;
// only a malformed taxonomy tree aborts the run.
package build

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/audiogrambase/ingest/internal/lookup"
	"github.com/audiogrambase/ingest/internal/model"
	"github.com/audiogrambase/ingest/internal/sheet"
	"github.com/audiogrambase/ingest/internal/taxonomy"
)

// Pipeline wires the builders to their external collaborators.
type Pipeline struct {
	Lineages    lookup.LineageResolver
	Vernaculars lookup.VernacularResolver
	Citations   lookup.CitationResolver
	Log         *slog.Logger

	// DataPoints controls whether the per-row data points are built.
	DataPoints bool
}

// Run executes the full import pipeline over the sheet and returns the
// populated registry, ready for serialization.
func (p *Pipeline) Run(ctx context.Context, sh *sheet.Sheet) (*model.Registry, error) {
	reg := model.NewRegistry()

	p.buildFacilities(sh, reg)
	p.buildExperiments(sh, reg)

	resolver := &taxonomy.Resolver{
		Lineages:    p.Lineages,
		Vernaculars: p.Vernaculars,
		Log:         p.Log,
	}
	resolver.Populate(ctx, reg, sh.DistinctValues("Binomial name"))
	if err := taxonomy.Index(reg); err != nil {
		return nil, fmt.Errorf("indexing taxonomy: %w", err)
	}

	p.buildIndividualAnimals(sh, reg)
	p.buildTestAnimals(sh, reg)
	if p.DataPoints {
		p.buildDataPoints(sh, reg)
	}
	p.buildPublications(ctx, sh, reg)
	p.buildAudiogramPublications(sh, reg)

	return reg, nil
}

// buildFacilities registers one facility per distinct non-blank facility
// name, ids in first-seen order.
func (p *Pipeline) buildFacilities(sh *sheet.Sheet, reg *model.Registry) {
	for _, name := range sh.DistinctValues("Name of the facility") {
		reg.AddFacility(name)
	}
	p.Log.Info("facilities built", "count", len(reg.Facilities))
}

// floorInt parses a numeric cell and truncates it toward negative infinity.
// The sheet stores ids and years as floats ("31.0").
func floorInt(raw string) (int64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return int64(math.Floor(f)), nil
}

// optFloat parses an optional numeric cell. Blank or unparseable values come
// back invalid; the caller decides whether that is worth a log line.
func optFloat(raw string) pgtype.Float8 {
	if sheet.IsBlank(raw) {
		return pgtype.Float8{}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return pgtype.Float8{}
	}
	return model.Float(f)
}

// optText wraps a cell as present text unless it is blank.
func optText(raw string) pgtype.Text {
	if sheet.IsBlank(raw) {
		return pgtype.Text{}
	}
	return model.Text(raw)
}
